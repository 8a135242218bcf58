package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	// StatusCart marks a preview; it is never persisted.
	StatusCart      Status = "CART"
	StatusPending   Status = "PENDING"
	StatusShipping  Status = "SHIPPING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// PreviewID is the identifier rendered for previews.
const PreviewID = "temp_cart"

var (
	// ErrNotFound is returned when no order matches the id.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for values outside the Status enum.
	ErrInvalidStatus = errors.New("invalid order status")
)

// ParseStatus validates s against the Status enum.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusCart, StatusPending, StatusShipping, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", errors.Wrapf(ErrInvalidStatus, "%q", s)
	}
}

// Line is a price snapshot of one purchased variant. It does not follow
// later catalog changes.
type Line struct {
	ProductID   string          `json:"productId"`
	VariantID   string          `json:"variantId"`
	DisplayName string          `json:"displayName"`
	ImageURL    string          `json:"imgUrl"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal returns quantity × unit price.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Contact holds buyer contact details.
type Contact struct {
	FullName string
	Email    string
	Phone    string
}

// Cart is the priced content shared by previews and persisted orders.
type Cart struct {
	Lines []Line
	Total decimal.Decimal
}

// Order is a persisted order.
type Order struct {
	ID           string
	UserID       string
	Contact      Contact
	DiscountCode string
	Cart
	Status    Status
	CreatedAt time.Time
}

// Preview is the non-persisted result of pricing a cart. It is a separate
// type so it cannot be handed to the order store by mistake.
type Preview struct {
	UserID       string
	Contact      Contact
	DiscountCode string
	Cart
	CreatedAt time.Time
}

// Stats aggregates completed orders.
type Stats struct {
	Count   int
	Revenue decimal.Decimal
}

// ListFilter selects a page of orders, newest first.
type ListFilter struct {
	Email  string
	Offset int
	Limit  int
}

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindMany(ctx context.Context, f ListFilter) ([]Order, error)
	// UpdateStatus overwrites the status and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	CompletedStats(ctx context.Context) (Stats, error)
}

// Transactor runs fn inside a single store transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier tells the buyer about a placed order. Implementations must not
// block the caller on delivery.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order)
}
