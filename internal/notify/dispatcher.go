package notify

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
)

var _ order.Notifier = (*Dispatcher)(nil)

var (
	// ErrQueueFull is reported when a notification cannot be queued.
	ErrQueueFull = errors.New("notification queue is full")
	// ErrClosed is reported for notifications scheduled after Close.
	ErrClosed = errors.New("dispatcher is closed")
)

// Options configures a Dispatcher.
type Options struct {
	// Workers bounds concurrent deliveries. Defaults to 4.
	Workers int
	// QueueSize bounds notifications waiting for a worker. Defaults to 1024.
	QueueSize int
	// Timeout bounds a single delivery. Defaults to 30s.
	Timeout time.Duration

	MeterProvider metric.MeterProvider
	// OnFailure is called after a failed delivery has been logged.
	OnFailure func(orderID string, err error)
}

func (o *Options) setDefaults() {
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 1024
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
}

type job struct {
	ctx     context.Context
	orderID string
	msg     Message
}

// Dispatcher queues notifications for a bounded worker pool. Scheduling
// never blocks: a burst waits in the queue, and only a notification that
// finds the queue full is dropped and reported as a failure.
type Dispatcher struct {
	sender    Sender
	pool      *ants.Pool
	timeout   time.Duration
	failed    metric.Int64Counter
	onFailure func(orderID string, err error)

	mu      sync.RWMutex
	closed  bool
	queue   chan job
	drained chan struct{}
}

// NewDispatcher creates a Dispatcher delivering through sender.
func NewDispatcher(sender Sender, opts Options) (*Dispatcher, error) {
	opts.setDefaults()

	pool, err := ants.NewPool(opts.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	failed, err := opts.MeterProvider.Meter("github.com/xenking/storefront/internal/notify").
		Int64Counter("store.notifications.failed",
			metric.WithDescription("Buyer notifications that could not be delivered"),
		)
	if err != nil {
		pool.Release()
		return nil, errors.Wrap(err, "notifications.failed counter")
	}

	d := &Dispatcher{
		sender:    sender,
		pool:      pool,
		timeout:   opts.Timeout,
		failed:    failed,
		onFailure: opts.OnFailure,
		queue:     make(chan job, opts.QueueSize),
		drained:   make(chan struct{}),
	}
	go d.run()
	return d, nil
}

// run feeds queued notifications to the pool, waiting for a free worker.
func (d *Dispatcher) run() {
	defer close(d.drained)
	for j := range d.queue {
		err := d.pool.Submit(func() {
			ctx, cancel := context.WithTimeout(j.ctx, d.timeout)
			defer cancel()
			if err := d.sender.Send(ctx, j.msg); err != nil {
				d.fail(ctx, j.orderID, err)
			}
		})
		if err != nil {
			d.fail(j.ctx, j.orderID, errors.Wrap(err, "submit notification"))
		}
	}
}

// OrderPlaced schedules the order confirmation. The delivery outlives the
// caller's context cancellation but keeps its values, so the request logger
// is still used.
func (d *Dispatcher) OrderPlaced(ctx context.Context, o *order.Order) {
	if o.Contact.Email == "" {
		return
	}
	msg, err := OrderPlaced(o)
	if err != nil {
		d.fail(ctx, o.ID, err)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.fail(ctx, o.ID, ErrClosed)
		return
	}
	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), orderID: o.ID, msg: msg}:
	default:
		d.fail(ctx, o.ID, ErrQueueFull)
	}
}

func (d *Dispatcher) fail(ctx context.Context, orderID string, err error) {
	d.failed.Add(context.WithoutCancel(ctx), 1)
	zctx.From(ctx).Warn("Order notification failed",
		zap.String("order_id", orderID),
		zap.Error(err),
	)
	if d.onFailure != nil {
		d.onFailure(orderID, err)
	}
}

// Close stops accepting notifications and waits up to timeout for queued
// and in-flight deliveries.
func (d *Dispatcher) Close(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.drained:
	case <-time.After(timeout):
		d.pool.Release()
		return errors.New("notification queue not drained")
	}
	return d.pool.ReleaseTimeout(time.Until(deadline))
}
