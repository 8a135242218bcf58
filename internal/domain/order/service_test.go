package order

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/product"
)

// memStore is an in-memory catalog, discount and order store. Transactions
// are serialized and InTx restores a snapshot when fn fails.
type memStore struct {
	txMu      sync.Mutex
	mu        sync.Mutex
	products  map[string]product.Product
	variants  map[string]product.Variant
	discounts map[string]discount.Discount
	orders    map[string]Order

	createErr error
	sellHook  func(id string)
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]product.Product{},
		variants:  map[string]product.Variant{},
		discounts: map[string]discount.Discount{},
		orders:    map[string]Order{},
	}
}

func (m *memStore) addProduct(p product.Product) {
	for _, v := range p.Variants {
		v.ProductID = p.ID
		m.variants[v.ID] = v
	}
	m.products[p.ID] = p
}

func (m *memStore) GetVariants(_ context.Context, ids []string) ([]product.Variant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []product.Variant
	for _, id := range ids {
		if v, ok := m.variants[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memStore) GetProductsByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []product.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) Sell(_ context.Context, id string, quantity int) (*product.Variant, error) {
	if m.sellHook != nil {
		m.sellHook(id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.variants[id]
	if !ok {
		return nil, product.ErrVariantNotFound
	}
	if v.Stock < quantity {
		return &v, product.ErrInsufficientStock
	}
	v.Stock -= quantity
	v.Sold += quantity
	m.variants[id] = v
	return &v, nil
}

func (m *memStore) FindByCode(_ context.Context, code string) (*discount.Discount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.discounts[code]
	if !ok {
		return nil, discount.ErrNotFound
	}
	return &d, nil
}

func (m *memStore) IncrementUsage(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.discounts[code]
	if !ok || d.UsageCount >= d.UsageLimit {
		return false, nil
	}
	d.UsageCount++
	m.discounts[code] = d
	return true, nil
}

func (m *memStore) Create(_ context.Context, o *Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = *o
	return nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *memStore) FindMany(_ context.Context, f ListFilter) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.orders {
		if f.Email == "" || o.Contact.Email == f.Email {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id string, status Status) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return &o, nil
}

func (m *memStore) CompletedStats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := Stats{Revenue: decimal.Zero}
	for _, o := range m.orders {
		if o.Status == StatusCompleted {
			st.Count++
			st.Revenue = st.Revenue.Add(o.Total)
		}
	}
	return st, nil
}

func (m *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	variants := make(map[string]product.Variant, len(m.variants))
	for k, v := range m.variants {
		variants[k] = v
	}
	discounts := make(map[string]discount.Discount, len(m.discounts))
	for k, v := range m.discounts {
		discounts[k] = v
	}
	orders := make(map[string]Order, len(m.orders))
	for k, v := range m.orders {
		orders[k] = v
	}
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.variants, m.discounts, m.orders = variants, discounts, orders
		m.mu.Unlock()
		return err
	}
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	placed []string
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, o *Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.placed = append(n.placed, o.ID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.placed)
}

// --- Helpers ---

func seedStore() *memStore {
	m := newMemStore()
	m.addProduct(product.Product{
		ID:        "p1",
		Title:     "Classic Tee",
		ImageURLs: []string{"tee-front.jpg", "tee-back.jpg"},
		Variants: []product.Variant{
			{ID: "v1", Name: "Red / M", Price: decimal.RequireFromString("10.00"), Stock: 5},
			{ID: "v2", Name: "Blue / L", Price: decimal.RequireFromString("20.00"), Stock: 1},
		},
	})
	m.addProduct(product.Product{
		ID:    "p2",
		Title: "Mug",
		Variants: []product.Variant{
			{ID: "v3", Name: "White", Price: decimal.RequireFromString("7.50"), Stock: 100},
		},
	})
	m.discounts["SAVE5"] = discount.Discount{ID: "d1", Code: "SAVE5", Value: decimal.RequireFromString("5.00"), UsageLimit: 3}
	m.discounts["GONE0"] = discount.Discount{ID: "d2", Code: "GONE0", Value: decimal.RequireFromString("5.00"), UsageCount: 1, UsageLimit: 1}
	m.discounts["BIG99"] = discount.Discount{ID: "d3", Code: "BIG99", Value: decimal.RequireFromString("1000"), UsageLimit: 10}
	return m
}

func newTestService(t *testing.T, m *memStore) (*Service, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	svc, err := NewService(NewResolver(m), m, m, m, m, n, Options{})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, n
}

func buyer() Contact {
	return Contact{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+100"}
}

// --- Tests ---

func TestCalculateCart(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		code     string
		wantCode string
		want     string
	}{
		{
			name:  "no discount",
			items: []Item{{VariantID: "v1", Quantity: 2}, {VariantID: "v3", Quantity: 1}},
			want:  "27.5",
		},
		{
			name:     "valid discount",
			items:    []Item{{VariantID: "v1", Quantity: 2}},
			code:     "SAVE5",
			wantCode: "SAVE5",
			want:     "15",
		},
		{
			name:     "code is case-insensitive",
			items:    []Item{{VariantID: "v1", Quantity: 2}},
			code:     "  save5 ",
			wantCode: "SAVE5",
			want:     "15",
		},
		{
			name:  "unknown code is dropped",
			items: []Item{{VariantID: "v1", Quantity: 2}},
			code:  "NOPE1",
			want:  "20",
		},
		{
			name:  "exhausted code is dropped",
			items: []Item{{VariantID: "v1", Quantity: 2}},
			code:  "GONE0",
			want:  "20",
		},
		{
			name:     "total floors at zero",
			items:    []Item{{VariantID: "v1", Quantity: 1}},
			code:     "BIG99",
			wantCode: "BIG99",
			want:     "0",
		},
		{
			name:  "preview ignores stock",
			items: []Item{{VariantID: "v2", Quantity: 50}},
			want:  "1000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seedStore()
			svc, n := newTestService(t, m)

			p, err := svc.CalculateCart(context.Background(), Request{
				UserID:       "u1",
				Contact:      buyer(),
				DiscountCode: tt.code,
				Items:        tt.items,
			})
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(p.Total), "total %s", p.Total)
			assert.Equal(t, tt.wantCode, p.DiscountCode)
			assert.Len(t, p.Lines, len(tt.items))

			assert.Empty(t, m.orders)
			assert.Equal(t, 0, n.count())
		})
	}
}

func TestCalculateCart_NoSideEffects(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)

	_, err := svc.CalculateCart(context.Background(), Request{
		DiscountCode: "SAVE5",
		Items:        []Item{{VariantID: "v1", Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, m.variants["v1"].Stock)
	assert.Equal(t, 0, m.variants["v1"].Sold)
	assert.Equal(t, 0, m.discounts["SAVE5"].UsageCount)
}

func TestCalculateCart_LinesSnapshot(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)

	p, err := svc.CalculateCart(context.Background(), Request{
		Items: []Item{{VariantID: "v3", Quantity: 1}, {VariantID: "v1", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, p.Lines, 2)

	assert.Equal(t, "Mug - White", p.Lines[0].DisplayName)
	assert.Equal(t, "", p.Lines[0].ImageURL)
	assert.Equal(t, Line{
		ProductID:   "p1",
		VariantID:   "v1",
		DisplayName: "Classic Tee - Red / M",
		ImageURL:    "tee-front.jpg",
		Quantity:    2,
		Price:       decimal.RequireFromString("10.00"),
	}, p.Lines[1])
}

func TestCalculateCart_ResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty items",
			items: nil,
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, ErrEmptyItems) },
		},
		{
			name:  "zero quantity",
			items: []Item{{VariantID: "v1", Quantity: 0}},
			check: func(t *testing.T, err error) {
				var qe *InvalidQuantityError
				require.ErrorAs(t, err, &qe)
				assert.Equal(t, "v1", qe.VariantID)
			},
		},
		{
			name:  "negative quantity",
			items: []Item{{VariantID: "v1", Quantity: 1}, {VariantID: "v3", Quantity: -2}},
			check: func(t *testing.T, err error) {
				var qe *InvalidQuantityError
				require.ErrorAs(t, err, &qe)
				assert.Equal(t, "v3", qe.VariantID)
			},
		},
		{
			name:  "unknown variant",
			items: []Item{{VariantID: "nope", Quantity: 1}},
			check: func(t *testing.T, err error) {
				var ve *VariantNotFoundError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "nope", ve.VariantID)
				assert.ErrorIs(t, err, product.ErrVariantNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, seedStore())
			_, err := svc.CalculateCart(context.Background(), Request{Items: tt.items})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCalculateCart_OrphanVariant(t *testing.T) {
	m := seedStore()
	m.variants["v9"] = product.Variant{ID: "v9", ProductID: "ghost", Name: "X", Price: decimal.NewFromInt(1), Stock: 1}
	svc, _ := newTestService(t, m)

	_, err := svc.CalculateCart(context.Background(), Request{Items: []Item{{VariantID: "v9", Quantity: 1}}})

	var pe *ProductNotFoundError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "ghost", pe.ProductID)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestCreate(t *testing.T) {
	m := seedStore()
	svc, n := newTestService(t, m)

	o, err := svc.Create(context.Background(), Request{
		UserID:       "u1",
		Contact:      buyer(),
		DiscountCode: "save5",
		Items:        []Item{{VariantID: "v1", Quantity: 2}, {VariantID: "v3", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "SAVE5", o.DiscountCode)
	assert.True(t, decimal.RequireFromString("30").Equal(o.Total), "total %s", o.Total)
	assert.Equal(t, buyer(), o.Contact)

	stored, err := svc.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)

	assert.Equal(t, 3, m.variants["v1"].Stock)
	assert.Equal(t, 2, m.variants["v1"].Sold)
	assert.Equal(t, 98, m.variants["v3"].Stock)
	assert.Equal(t, 1, m.discounts["SAVE5"].UsageCount)
	assert.Equal(t, 1, n.count())
}

func TestCreate_MatchesPreviewTotal(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	req := Request{
		DiscountCode: "SAVE5",
		Items:        []Item{{VariantID: "v1", Quantity: 1}, {VariantID: "v3", Quantity: 3}},
	}

	p, err := svc.CalculateCart(context.Background(), req)
	require.NoError(t, err)
	o, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, p.Total.Equal(o.Total))
	assert.Equal(t, p.Lines, o.Lines)
}

func TestCreate_SellsInVariantOrder(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	var sold []string
	m.sellHook = func(id string) { sold = append(sold, id) }

	o, err := svc.Create(context.Background(), Request{
		Items: []Item{
			{VariantID: "v3", Quantity: 1},
			{VariantID: "v1", Quantity: 1},
			{VariantID: "v3", Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"v1", "v3"}, sold)
	assert.Equal(t, 97, m.variants["v3"].Stock)
	assert.Equal(t, 3, m.variants["v3"].Sold)
	require.Len(t, o.Lines, 3)
	assert.Equal(t, 1, o.Lines[0].Quantity)
	assert.Equal(t, 2, o.Lines[2].Quantity)
}

func TestCreate_TimestampMicrosecondPrecision(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC) }
	req := Request{Items: []Item{{VariantID: "v1", Quantity: 1}}}

	p, err := svc.CalculateCart(context.Background(), req)
	require.NoError(t, err)
	o, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 123456000, o.CreatedAt.Nanosecond())
	assert.Equal(t, o.CreatedAt, p.CreatedAt)
}

func TestCreate_InsufficientStock(t *testing.T) {
	tests := []struct {
		name      string
		items     []Item
		remaining int
	}{
		{
			name:      "single line over stock",
			items:     []Item{{VariantID: "v2", Quantity: 2}},
			remaining: 1,
		},
		{
			name:      "repeated variant summed",
			items:     []Item{{VariantID: "v1", Quantity: 3}, {VariantID: "v1", Quantity: 3}},
			remaining: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seedStore()
			svc, n := newTestService(t, m)

			_, err := svc.Create(context.Background(), Request{Items: tt.items})

			var se *InsufficientStockError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.remaining, se.Remaining)
			assert.ErrorIs(t, err, product.ErrInsufficientStock)
			assert.Empty(t, m.orders)
			assert.Equal(t, 5, m.variants["v1"].Stock)
			assert.Equal(t, 0, n.count())
		})
	}
}

func TestCreate_DiscountErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "unknown", code: "NOPE1", want: discount.ErrNotFound},
		{name: "exhausted", code: "GONE0", want: discount.ErrExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seedStore()
			svc, n := newTestService(t, m)

			_, err := svc.Create(context.Background(), Request{
				DiscountCode: tt.code,
				Items:        []Item{{VariantID: "v1", Quantity: 1}},
			})
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, m.orders)
			assert.Equal(t, 5, m.variants["v1"].Stock)
			assert.Equal(t, 0, n.count())
		})
	}
}

func TestCreate_LostStockRaceRollsBack(t *testing.T) {
	m := seedStore()
	svc, n := newTestService(t, m)
	// A concurrent buyer drains v3 between the stock check and the sale.
	m.sellHook = func(id string) {
		if id != "v3" {
			return
		}
		m.mu.Lock()
		v := m.variants["v3"]
		v.Stock = 0
		m.variants["v3"] = v
		m.mu.Unlock()
	}

	_, err := svc.Create(context.Background(), Request{
		DiscountCode: "SAVE5",
		Items:        []Item{{VariantID: "v1", Quantity: 2}, {VariantID: "v3", Quantity: 1}},
	})

	var se *InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "v3", se.VariantID)
	assert.Equal(t, 0, se.Remaining)

	assert.Empty(t, m.orders)
	assert.Equal(t, 5, m.variants["v1"].Stock)
	assert.Equal(t, 0, m.variants["v1"].Sold)
	assert.Equal(t, 0, m.discounts["SAVE5"].UsageCount)
	assert.Equal(t, 0, n.count())
}

func TestCreate_LostDiscountRaceRollsBack(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	// Another commit takes the last use while stock is being decremented.
	m.sellHook = func(string) {
		m.mu.Lock()
		d := m.discounts["SAVE5"]
		d.UsageCount = d.UsageLimit
		m.discounts["SAVE5"] = d
		m.mu.Unlock()
	}

	_, err := svc.Create(context.Background(), Request{
		DiscountCode: "SAVE5",
		Items:        []Item{{VariantID: "v1", Quantity: 1}},
	})
	require.ErrorIs(t, err, discount.ErrExhausted)
	assert.Empty(t, m.orders)
	assert.Equal(t, 5, m.variants["v1"].Stock)
}

func TestCreate_StoreFailure(t *testing.T) {
	m := seedStore()
	m.createErr = errors.New("connection reset")
	svc, n := newTestService(t, m)

	_, err := svc.Create(context.Background(), Request{Items: []Item{{VariantID: "v1", Quantity: 1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 5, m.variants["v1"].Stock)
	assert.Equal(t, 0, n.count())
}

func TestCreate_ConcurrentNeverOversells(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), Request{Items: []Item{{VariantID: "v1", Quantity: 1}}})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok int
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 0, m.variants["v1"].Stock)
	assert.Equal(t, 5, m.variants["v1"].Sold)
	assert.Len(t, m.orders, 5)
}

func TestUpdateStatus(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	ctx := context.Background()

	o, err := svc.Create(ctx, Request{Items: []Item{{VariantID: "v3", Quantity: 1}}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, o.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, o.ID, Status("LOST"))
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", StatusShipping)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindMany(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		i := i
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		c := buyer()
		if i%3 == 0 {
			c.Email = "other@example.com"
		}
		_, err := svc.Create(ctx, Request{Contact: c, Items: []Item{{VariantID: "v3", Quantity: 1}}})
		require.NoError(t, err)
	}

	page, err := svc.FindMany(ctx, ListFilter{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.True(t, page[0].CreatedAt.After(page[9].CreatedAt))

	rest, err := svc.FindMany(ctx, ListFilter{Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, rest, 5)

	filtered, err := svc.FindMany(ctx, ListFilter{Email: "other@example.com", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, filtered, 5)

	_, err = svc.FindMany(ctx, ListFilter{Offset: -1, Limit: 10})
	require.ErrorIs(t, err, ErrInvalidPage)
	_, err = svc.FindMany(ctx, ListFilter{Limit: 0})
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestCompletedStats(t *testing.T) {
	m := seedStore()
	svc, _ := newTestService(t, m)
	ctx := context.Background()

	var ids []string
	for _, qty := range []int{1, 2, 4} {
		o, err := svc.Create(ctx, Request{Items: []Item{{VariantID: "v3", Quantity: qty}}})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	_, err := svc.UpdateStatus(ctx, ids[0], StatusCompleted)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, ids[2], StatusCompleted)
	require.NoError(t, err)

	st, err := svc.CompletedStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.True(t, decimal.RequireFromString("37.5").Equal(st.Revenue), "revenue %s", st.Revenue)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"CART", "PENDING", "SHIPPING", "COMPLETED", "CANCELLED"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}
	_, err := ParseStatus("pending")
	require.ErrorIs(t, err, ErrInvalidStatus)
}
