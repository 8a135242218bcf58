package order

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/product"
)

// MaxPageSize caps FindMany page sizes.
const MaxPageSize = 100

// ErrInvalidPage is returned for a negative offset or non-positive limit.
var ErrInvalidPage = errors.New("offset must be >= 0 and limit must be > 0")

// InsufficientStockError rejects a commit whose line asks for more units
// than the variant has in stock.
type InsufficientStockError struct {
	DisplayName string
	VariantID   string
	Remaining   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %q has only %d left in stock", e.DisplayName, e.Remaining)
}

func (e *InsufficientStockError) Unwrap() error { return product.ErrInsufficientStock }

// Request holds the input shared by preview and commit.
type Request struct {
	UserID       string
	Contact      Contact
	DiscountCode string
	Items        []Item
}

// Seller is the mutating side of the inventory store.
type Seller interface {
	Sell(ctx context.Context, id string, quantity int) (*product.Variant, error)
}

// Discounts is the discount registry as seen by checkout.
type Discounts interface {
	FindByCode(ctx context.Context, code string) (*discount.Discount, error)
	IncrementUsage(ctx context.Context, code string) (bool, error)
}

// Options configures optional Service dependencies.
type Options struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

func (o *Options) setDefaults() {
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
}

// Service is the order engine: it prices carts, commits orders and serves
// order reads.
type Service struct {
	resolver  *Resolver
	inventory Seller
	discounts Discounts
	orders    Repository
	tx        Transactor
	notifier  Notifier
	now       func() time.Time

	tracer   trace.Tracer
	created  metric.Int64Counter
	rejected metric.Int64Counter
}

// NewService creates an order Service with the required domain dependencies.
func NewService(
	resolver *Resolver,
	inventory Seller,
	discounts Discounts,
	orders Repository,
	tx Transactor,
	notifier Notifier,
	opts Options,
) (*Service, error) {
	opts.setDefaults()
	meter := opts.MeterProvider.Meter("github.com/xenking/storefront/internal/domain/order")

	created, err := meter.Int64Counter("store.orders.created",
		metric.WithDescription("Orders committed"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "orders.created counter")
	}
	rejected, err := meter.Int64Counter("store.orders.rejected",
		metric.WithDescription("Order commits rejected before or during persistence"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "orders.rejected counter")
	}

	return &Service{
		resolver:  resolver,
		inventory: inventory,
		discounts: discounts,
		orders:    orders,
		tx:        tx,
		notifier:  notifier,
		now:       time.Now,
		tracer:    opts.TracerProvider.Tracer("github.com/xenking/storefront/internal/domain/order"),
		created:   created,
		rejected:  rejected,
	}, nil
}

// CalculateCart prices a cart without side effects. An unknown or exhausted
// discount code is dropped silently and omitted from the preview.
func (s *Service) CalculateCart(ctx context.Context, req Request) (_ *Preview, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.CalculateCart")
	defer func() { endSpan(span, rerr) }()

	res, err := s.resolver.Resolve(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	total := Total(res.Lines)

	var appliedCode string
	if code := discount.NormalizeCode(req.DiscountCode); code != "" {
		d, err := s.discounts.FindByCode(ctx, code)
		switch {
		case err == nil && !d.Exhausted():
			total = d.Apply(total)
			appliedCode = d.Code
		case err != nil && !errors.Is(err, discount.ErrNotFound):
			zctx.From(ctx).Warn("Discount lookup failed during preview",
				zap.String("code", code),
				zap.Error(err),
			)
		}
	}

	return &Preview{
		UserID:       req.UserID,
		Contact:      req.Contact,
		DiscountCode: appliedCode,
		Cart:         Cart{Lines: res.Lines, Total: total.Round(2)},
		CreatedAt:    s.now().Truncate(time.Microsecond),
	}, nil
}

// Create commits an order. Every validation runs before the first write;
// the order insert, stock decrements and discount usage then share one
// transaction. The buyer is notified after commit on a best-effort basis.
func (s *Service) Create(ctx context.Context, req Request) (_ *Order, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.Create")
	defer func() {
		if rerr != nil {
			s.rejected.Add(ctx, 1)
		}
		endSpan(span, rerr)
	}()

	res, err := s.resolver.Resolve(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := checkStock(res); err != nil {
		return nil, err
	}
	total := Total(res.Lines)

	code := discount.NormalizeCode(req.DiscountCode)
	if code != "" {
		d, err := s.discounts.FindByCode(ctx, code)
		if err != nil {
			return nil, errors.Wrapf(err, "discount %q", code)
		}
		if d.Exhausted() {
			return nil, errors.Wrapf(discount.ErrExhausted, "discount %q", code)
		}
		total = d.Apply(total)
		code = d.Code
	}

	o := &Order{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		Contact:      req.Contact,
		DiscountCode: code,
		Cart:         Cart{Lines: res.Lines, Total: total.Round(2)},
		Status:       StatusPending,
		CreatedAt:    s.now().Truncate(time.Microsecond),
	}
	span.SetAttributes(attribute.String("order.id", o.ID))

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, o); err != nil {
			return errors.Wrap(err, "create order")
		}
		for _, l := range sellPlan(o.Lines) {
			v, err := s.inventory.Sell(ctx, l.VariantID, l.Quantity)
			if errors.Is(err, product.ErrInsufficientStock) {
				remaining := 0
				if v != nil {
					remaining = v.Stock
				}
				return &InsufficientStockError{DisplayName: l.DisplayName, VariantID: l.VariantID, Remaining: remaining}
			}
			if err != nil {
				return errors.Wrapf(err, "sell variant %s", l.VariantID)
			}
		}
		if code != "" {
			ok, err := s.discounts.IncrementUsage(ctx, code)
			if err != nil {
				return err
			}
			if !ok {
				// Another commit took the last use after our check.
				return errors.Wrapf(discount.ErrExhausted, "discount %q", code)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created.Add(ctx, 1)
	zctx.From(ctx).Info("Order created",
		zap.String("order_id", o.ID),
		zap.Int("lines", len(o.Lines)),
		zap.String("total", o.Total.String()),
		zap.String("discount_code", o.DiscountCode),
	)

	s.notifier.OrderPlaced(ctx, o)
	return o, nil
}

// UpdateStatus overwrites the status of an order. Transitions are not
// checked against a state machine.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

// FindByID returns a persisted order.
func (s *Service) FindByID(ctx context.Context, id string) (*Order, error) {
	return s.orders.FindByID(ctx, id)
}

// FindMany returns a page of orders, newest first, optionally filtered by
// buyer email.
func (s *Service) FindMany(ctx context.Context, f ListFilter) ([]Order, error) {
	if f.Offset < 0 || f.Limit <= 0 {
		return nil, ErrInvalidPage
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return s.orders.FindMany(ctx, f)
}

// CompletedStats returns count and revenue of completed orders.
func (s *Service) CompletedStats(ctx context.Context) (Stats, error) {
	return s.orders.CompletedStats(ctx)
}

// checkStock verifies every line against the stock read during resolution.
// Quantities of a variant repeated across lines are summed.
func checkStock(res *Resolved) error {
	need := make(map[string]int, len(res.Lines))
	for _, l := range res.Lines {
		need[l.VariantID] += l.Quantity
	}
	for _, l := range res.Lines {
		v := res.Variants[l.VariantID]
		if v.Stock < need[l.VariantID] {
			return &InsufficientStockError{DisplayName: l.DisplayName, VariantID: v.ID, Remaining: v.Stock}
		}
	}
	return nil
}

// sellPlan merges lines of the same variant and orders them by variant id,
// so concurrent orders lock variant rows in the same order.
func sellPlan(lines []Line) []Line {
	idx := make(map[string]int, len(lines))
	plan := make([]Line, 0, len(lines))
	for _, l := range lines {
		if i, ok := idx[l.VariantID]; ok {
			plan[i].Quantity += l.Quantity
			continue
		}
		idx[l.VariantID] = len(plan)
		plan = append(plan, l)
	}
	slices.SortFunc(plan, func(a, b Line) int {
		return strings.Compare(a.VariantID, b.VariantID)
	})
	return plan
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
