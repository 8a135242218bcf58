package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/order"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []Message
	err   error
	block chan struct{}
}

func (s *recordingSender) Send(ctx context.Context, m Message) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, m)
	return s.err
}

func (s *recordingSender) messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.sent...)
}

func testOrder() *order.Order {
	return &order.Order{
		ID:           "o-1",
		Contact:      order.Contact{FullName: "Jane <Doe>", Email: "jane@example.com"},
		DiscountCode: "SAVE5",
		Cart: order.Cart{
			Lines: []order.Line{
				{DisplayName: "Classic Tee - M", Quantity: 2, Price: decimal.RequireFromString("10")},
			},
			Total: decimal.RequireFromString("15"),
		},
		Status: order.StatusPending,
	}
}

func TestOrderPlaced_Render(t *testing.T) {
	m, err := OrderPlaced(testOrder())
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", m.To)
	assert.Contains(t, m.Subject, "o-1")
	assert.Contains(t, m.HTML, "Classic Tee - M")
	assert.Contains(t, m.HTML, "10.00")
	assert.Contains(t, m.HTML, "15.00")
	assert.Contains(t, m.HTML, "SAVE5")
	assert.Contains(t, m.HTML, "Jane &lt;Doe&gt;")
}

func TestDispatcher_Delivers(t *testing.T) {
	s := &recordingSender{}
	d, err := NewDispatcher(s, Options{Workers: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	d.OrderPlaced(ctx, testOrder())
	// Cancelling the request must not abort delivery.
	cancel()

	require.NoError(t, d.Close(time.Second))
	msgs := s.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "jane@example.com", msgs[0].To)
}

func TestDispatcher_SkipsMissingEmail(t *testing.T) {
	s := &recordingSender{}
	d, err := NewDispatcher(s, Options{})
	require.NoError(t, err)

	o := testOrder()
	o.Contact.Email = ""
	d.OrderPlaced(context.Background(), o)

	require.NoError(t, d.Close(time.Second))
	assert.Empty(t, s.messages())
}

func TestDispatcher_FailureReported(t *testing.T) {
	s := &recordingSender{err: errors.New("relay down")}
	failures := make(chan string, 1)
	d, err := NewDispatcher(s, Options{
		OnFailure: func(orderID string, err error) { failures <- orderID },
	})
	require.NoError(t, err)

	d.OrderPlaced(context.Background(), testOrder())

	select {
	case id := <-failures:
		assert.Equal(t, "o-1", id)
	case <-time.After(5 * time.Second):
		t.Fatal("failure not reported")
	}
	require.NoError(t, d.Close(time.Second))
}

type failureCounter struct {
	mu   sync.Mutex
	errs []error
}

func (c *failureCounter) record(_ string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

func (c *failureCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// placeAll schedules n notifications and fails the test if scheduling blocks.
func placeAll(t *testing.T, d *Dispatcher, n int) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		for i := 0; i < n; i++ {
			d.OrderPlaced(context.Background(), testOrder())
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("OrderPlaced blocked on busy workers")
	}
}

func TestDispatcher_BurstIsQueued(t *testing.T) {
	s := &recordingSender{block: make(chan struct{})}
	var failures failureCounter
	d, err := NewDispatcher(s, Options{Workers: 1, QueueSize: 16, OnFailure: failures.record})
	require.NoError(t, err)

	placeAll(t, d, 10)

	close(s.block)
	require.NoError(t, d.Close(5*time.Second))
	assert.Len(t, s.messages(), 10)
	assert.Zero(t, failures.count())
}

func TestDispatcher_FullQueueDoesNotBlock(t *testing.T) {
	s := &recordingSender{block: make(chan struct{})}
	var failures failureCounter
	d, err := NewDispatcher(s, Options{Workers: 1, QueueSize: 1, OnFailure: failures.record})
	require.NoError(t, err)

	placeAll(t, d, 5)

	close(s.block)
	require.NoError(t, d.Close(5*time.Second))
	assert.Equal(t, 5, failures.count()+len(s.messages()))
	assert.Positive(t, failures.count())
	failures.mu.Lock()
	defer failures.mu.Unlock()
	for _, err := range failures.errs {
		assert.ErrorIs(t, err, ErrQueueFull)
	}
}

func TestDispatcher_ClosedRejects(t *testing.T) {
	s := &recordingSender{}
	var failures failureCounter
	d, err := NewDispatcher(s, Options{OnFailure: failures.record})
	require.NoError(t, err)
	require.NoError(t, d.Close(time.Second))

	d.OrderPlaced(context.Background(), testOrder())

	assert.Equal(t, 1, failures.count())
	assert.ErrorIs(t, failures.errs[0], ErrClosed)
	assert.Empty(t, s.messages())
}

func TestLogSender(t *testing.T) {
	require.NoError(t, LogSender{}.Send(context.Background(), Message{To: "a@b.c", Subject: "s"}))
}
