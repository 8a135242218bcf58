package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/oas"
)

const (
	adminKey = "secret-admin-key"
	orderKey = "secret-order-key"
)

var (
	testTime   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testPepper = []byte("test-pepper")
)

// --- Mock implementations ---

type mockOrders struct {
	lastReq    order.Request
	lastFilter order.ListFilter
	lastStatus order.Status
	order      *order.Order
	preview    *order.Preview
	list       []order.Order
	stats      order.Stats
	err        error
}

func (m *mockOrders) CalculateCart(_ context.Context, req order.Request) (*order.Preview, error) {
	m.lastReq = req
	return m.preview, m.err
}

func (m *mockOrders) Create(_ context.Context, req order.Request) (*order.Order, error) {
	m.lastReq = req
	return m.order, m.err
}

func (m *mockOrders) UpdateStatus(_ context.Context, _ string, status order.Status) (*order.Order, error) {
	m.lastStatus = status
	if m.err != nil {
		return nil, m.err
	}
	o := *m.order
	o.Status = status
	return &o, nil
}

func (m *mockOrders) FindByID(_ context.Context, id string) (*order.Order, error) {
	if m.order == nil || m.order.ID != id {
		return nil, order.ErrNotFound
	}
	return m.order, nil
}

func (m *mockOrders) FindMany(_ context.Context, f order.ListFilter) ([]order.Order, error) {
	m.lastFilter = f
	return m.list, m.err
}

func (m *mockOrders) CompletedStats(context.Context) (order.Stats, error) {
	return m.stats, m.err
}

type mockCatalog struct {
	product  *product.Product
	brands   []product.Counter
	lastCR   product.CreateRequest
	lastUR   product.UpdateRequest
	lastRate product.RatingRequest
	err      error
}

func (m *mockCatalog) Get(_ context.Context, id string) (*product.Product, error) {
	if m.product == nil || m.product.ID != id {
		return nil, product.ErrProductNotFound
	}
	return m.product, nil
}

func (m *mockCatalog) GetBySlug(_ context.Context, slug string) (*product.Product, error) {
	if m.product == nil || m.product.Slug != slug {
		return nil, product.ErrProductNotFound
	}
	return m.product, nil
}

func (m *mockCatalog) Brands(context.Context) ([]product.Counter, error) { return m.brands, m.err }

func (m *mockCatalog) Categories(context.Context) ([]product.Counter, error) { return nil, m.err }

func (m *mockCatalog) Create(_ context.Context, req product.CreateRequest) (*product.Product, error) {
	m.lastCR = req
	return m.product, m.err
}

func (m *mockCatalog) Update(_ context.Context, _ string, req product.UpdateRequest) (*product.Product, error) {
	m.lastUR = req
	return m.product, m.err
}

func (m *mockCatalog) Delete(context.Context, string) error { return m.err }

func (m *mockCatalog) Rate(_ context.Context, _ string, req product.RatingRequest) (*product.Product, error) {
	m.lastRate = req
	return m.product, m.err
}

type mockDiscounts struct {
	discount *discount.Discount
	lastCR   discount.CreateRequest
	lastUR   discount.UpdateRequest
	err      error
}

func (m *mockDiscounts) Create(_ context.Context, req discount.CreateRequest) (*discount.Discount, error) {
	m.lastCR = req
	return m.discount, m.err
}

func (m *mockDiscounts) Update(_ context.Context, _ string, req discount.UpdateRequest) (*discount.Discount, error) {
	m.lastUR = req
	return m.discount, m.err
}

func (m *mockDiscounts) Delete(context.Context, string) error { return m.err }

func (m *mockDiscounts) FindByID(context.Context, string) (*discount.Discount, error) {
	return m.discount, m.err
}

func (m *mockDiscounts) FindByCode(context.Context, string) (*discount.Discount, error) {
	return m.discount, m.err
}

func (m *mockDiscounts) List(context.Context) ([]discount.Discount, error) {
	if m.discount == nil {
		return nil, m.err
	}
	return []discount.Discount{*m.discount}, m.err
}

type keyRepo map[string]*auth.APIKeyInfo

func (m keyRepo) FindByHash(_ context.Context, hash string) (*auth.APIKeyInfo, error) {
	info, ok := m[hash]
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return info, nil
}

func newAuthenticator() *auth.Authenticator {
	admin := auth.HashKey(adminKey, testPepper)
	orders := auth.HashKey(orderKey, testPepper)
	return auth.NewAuthenticator(keyRepo{
		admin:  {ID: "k1", KeyHash: admin, Name: "dashboard", Scopes: []string{auth.ScopeAdmin}},
		orders: {ID: "k2", KeyHash: orders, Name: "checkout", Scopes: []string{"create_order"}},
	}, testPepper)
}

// --- Helpers ---

type fixture struct {
	orders    *mockOrders
	catalog   *mockCatalog
	discounts *mockDiscounts
	h         *Handler
}

func newFixture(cfg HandlerConfig) *fixture {
	f := &fixture{
		orders:    &mockOrders{},
		catalog:   &mockCatalog{},
		discounts: &mockDiscounts{},
	}
	f.h = NewHandler(cfg, f.orders, f.catalog, f.discounts)
	return f
}

// server serves the fixture through the generated router, the way the
// application mounts it.
func (f *fixture) server(t *testing.T) http.Handler {
	t.Helper()
	srv, err := oas.NewServer(f.h, NewSecurityHandler(newAuthenticator()),
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(ErrorHandler),
	)
	require.NoError(t, err)
	return srv
}

func serve(t *testing.T, h http.Handler, method, path, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) oas.Error {
	t.Helper()
	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return oas.Error{Code: body.Code, Message: body.Message}
}

// requireStatus asserts err renders as the given status and message.
func requireStatus(t *testing.T, h *Handler, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	resp := h.NewError(context.Background(), err)
	assert.Equal(t, status, resp.StatusCode)
	assert.Equal(t, status, resp.Response.Code)
	if message != "" {
		assert.Equal(t, message, resp.Response.Message)
	}
}

func sampleOrder() *order.Order {
	return &order.Order{
		ID:      "o-1",
		Contact: order.Contact{FullName: "Jane Doe", Email: "jane@example.com", Phone: "0123"},
		Cart: order.Cart{
			Lines: []order.Line{{
				ProductID:   "p1",
				VariantID:   "v1",
				DisplayName: "Tee - M",
				ImageURL:    "img/tee.jpg",
				Quantity:    2,
				Price:       decimal.RequireFromString("10.50"),
			}},
			Total: decimal.RequireFromString("21"),
		},
		Status:    order.StatusPending,
		CreatedAt: testTime,
	}
}

func orderReq() *oas.OrderRequest {
	return &oas.OrderRequest{
		FullName:     oas.NewOptString("Jane Doe"),
		Email:        oas.NewOptString("jane@example.com"),
		PhoneNum:     oas.NewOptString("0123"),
		DiscountCode: oas.NewOptString("save5"),
		Items:        []oas.OrderItem{{VariantId: "v1", Quantity: 2}},
	}
}

const orderBody = `{"fullName":"Jane Doe","email":"jane@example.com","phoneNum":"0123",
	"discountCode":"save5","items":[{"variantId":"v1","quantity":2}]}`

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	f := newFixture(HandlerConfig{})
	f.orders.order = sampleOrder()

	resp, err := f.h.CreateOrder(context.Background(), orderReq())
	require.NoError(t, err)

	assert.Equal(t, order.Request{
		Contact:      order.Contact{FullName: "Jane Doe", Email: "jane@example.com", Phone: "0123"},
		DiscountCode: "save5",
		Items:        []order.Item{{VariantID: "v1", Quantity: 2}},
	}, f.orders.lastReq)

	assert.Equal(t, &oas.Order{
		ID:         "o-1",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		PhoneNum:   "0123",
		TotalPrice: 21,
		Status:     oas.OrderStatus("PENDING"),
		CreatedAt:  testTime,
		Lines: []oas.OrderLine{{
			ProductId:   "p1",
			VariantId:   "v1",
			DisplayName: "Tee - M",
			ImgUrl:      "img/tee.jpg",
			Quantity:    2,
			Price:       10.5,
		}},
	}, resp)
	assert.False(t, resp.DiscountCode.IsSet())
	assert.False(t, resp.UserId.IsSet())
}

func TestCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     func(r *oas.OrderRequest)
		err     error
		status  int
		message string
	}{
		{name: "MissingFullName", req: func(r *oas.OrderRequest) { r.FullName.Reset() }, status: 400, message: "fullName is required"},
		{name: "MissingEmail", req: func(r *oas.OrderRequest) { r.Email.Reset() }, status: 400, message: "email is required"},
		{name: "MissingPhone", req: func(r *oas.OrderRequest) { r.PhoneNum.Reset() }, status: 400, message: "phoneNum is required"},
		{
			name:    "InsufficientStock",
			err:     &order.InsufficientStockError{DisplayName: "Tee - M", VariantID: "v1", Remaining: 1},
			status:  400,
			message: `product "Tee - M" has only 1 left in stock`,
		},
		{name: "Exhausted", err: errors.Wrap(discount.ErrExhausted, `discount "SAVE5"`), status: 400},
		{name: "UnknownDiscount", err: errors.Wrap(discount.ErrNotFound, `discount "SAVE5"`), status: 404},
		{name: "UnknownVariant", err: &order.VariantNotFoundError{VariantID: "v9"}, status: 404, message: "variant v9 not found"},
		{name: "BadQuantity", err: &order.InvalidQuantityError{VariantID: "v1"}, status: 400},
		{name: "EmptyItems", err: order.ErrEmptyItems, status: 400},
		{name: "StoreDown", err: errors.New("connection reset"), status: 500, message: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(HandlerConfig{})
			f.orders.err = tt.err
			req := orderReq()
			if tt.req != nil {
				tt.req(req)
			}

			_, err := f.h.CreateOrder(context.Background(), req)
			requireStatus(t, f.h, err, tt.status, tt.message)
		})
	}
}

func TestCalculateCart(t *testing.T) {
	f := newFixture(HandlerConfig{ImageBaseURL: "https://cdn.example.com/"})
	o := sampleOrder()
	f.orders.preview = &order.Preview{Cart: o.Cart, CreatedAt: testTime}

	// Contact details are optional for a preview.
	resp, err := f.h.CalculateCart(context.Background(), &oas.OrderRequest{
		Items: []oas.OrderItem{{VariantId: "v1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, order.PreviewID, resp.ID)
	assert.Equal(t, oas.OrderStatus("CART"), resp.Status)
	assert.False(t, resp.DiscountCode.IsSet())
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "https://cdn.example.com/img/tee.jpg", resp.Lines[0].ImgUrl)
	assert.Equal(t, "", f.orders.lastReq.DiscountCode)
}

func TestListOrders(t *testing.T) {
	f := newFixture(HandlerConfig{})
	f.orders.list = []order.Order{*sampleOrder()}

	out, err := f.h.ListOrders(context.Background(), oas.ListOrdersParams{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "o-1", out[0].ID)
	assert.Equal(t, order.ListFilter{Offset: 0, Limit: 10}, f.orders.lastFilter)

	_, err = f.h.ListOrders(context.Background(), oas.ListOrdersParams{
		Start: oas.NewOptInt(10),
		Count: oas.NewOptInt(5),
		Email: oas.NewOptString("jane@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, order.ListFilter{Email: "jane@example.com", Offset: 10, Limit: 5}, f.orders.lastFilter)

	f.orders.err = order.ErrInvalidPage
	_, err = f.h.ListOrders(context.Background(), oas.ListOrdersParams{Count: oas.NewOptInt(0)})
	requireStatus(t, f.h, err, 400, "")
}

func TestGetOrder(t *testing.T) {
	f := newFixture(HandlerConfig{})
	f.orders.order = sampleOrder()

	resp, err := f.h.GetOrder(context.Background(), oas.GetOrderParams{ID: "o-1"})
	require.NoError(t, err)
	assert.Equal(t, "o-1", resp.ID)

	_, err = f.h.GetOrder(context.Background(), oas.GetOrderParams{ID: "missing"})
	requireStatus(t, f.h, err, 404, "order not found")
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newFixture(HandlerConfig{})
	f.orders.order = sampleOrder()
	ctx := context.Background()

	_, err := f.h.UpdateOrderStatus(ctx, &oas.OrderStatusUpdate{ID: "o-1", Status: "LOST"})
	requireStatus(t, f.h, err, 400, "")

	_, err = f.h.UpdateOrderStatus(ctx, &oas.OrderStatusUpdate{Status: "SHIPPING"})
	requireStatus(t, f.h, err, 400, "id is required")

	resp, err := f.h.UpdateOrderStatus(ctx, &oas.OrderStatusUpdate{ID: "o-1", Status: "SHIPPING"})
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipping, f.orders.lastStatus)
	assert.Equal(t, oas.OrderStatus("SHIPPING"), resp.Status)

	f.orders.err = order.ErrNotFound
	_, err = f.h.UpdateOrderStatus(ctx, &oas.OrderStatusUpdate{ID: "nope", Status: "COMPLETED"})
	requireStatus(t, f.h, err, 404, "")
}

func TestDashboard(t *testing.T) {
	f := newFixture(HandlerConfig{})
	f.orders.stats = order.Stats{Count: 3, Revenue: decimal.RequireFromString("37.5")}

	count, err := f.h.GetCompletedOrderCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	revenue, err := f.h.GetCompletedOrderRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 37.5, revenue)
}

func TestDiscounts(t *testing.T) {
	d := &discount.Discount{
		ID:         "d1",
		Code:       "SAVE5",
		Value:      decimal.RequireFromString("5"),
		UsageCount: 1,
		UsageLimit: 3,
		CreatedAt:  testTime,
	}
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.discount = d

		resp, err := f.h.CreateDiscount(ctx, &oas.DiscountInput{Code: "save5", DiscountValue: 5, UsageLimit: 3})
		require.NoError(t, err)
		assert.Equal(t, "save5", f.discounts.lastCR.Code)
		assert.True(t, decimal.RequireFromString("5").Equal(f.discounts.lastCR.Value))
		assert.Equal(t, 3, f.discounts.lastCR.UsageLimit)
		assert.Equal(t, &oas.Discount{
			ID:            "d1",
			Code:          "SAVE5",
			DiscountValue: 5,
			UsageCount:    1,
			UsageLimit:    3,
			CreatedAt:     testTime,
		}, resp)
	})
	t.Run("CreateDuplicate", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.err = discount.ErrDuplicateCode
		_, err := f.h.CreateDiscount(ctx, &oas.DiscountInput{Code: "SAVE5", DiscountValue: 5, UsageLimit: 1})
		requireStatus(t, f.h, err, 409, "")
	})
	t.Run("CreateInvalid", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.err = &discount.ValidationError{Field: "code", Reason: "must be exactly 5 characters"}
		_, err := f.h.CreateDiscount(ctx, &oas.DiscountInput{Code: "AB", DiscountValue: 5, UsageLimit: 1})
		requireStatus(t, f.h, err, 400, "")
		assert.Contains(t, f.h.NewError(ctx, err).Response.Message, "invalid code")
	})
	t.Run("UpdatePartial", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.discount = d
		_, err := f.h.UpdateDiscount(ctx, &oas.DiscountUpdate{UsageLimit: oas.NewOptInt(10)}, oas.UpdateDiscountParams{ID: "d1"})
		require.NoError(t, err)
		assert.Nil(t, f.discounts.lastUR.Code)
		assert.Nil(t, f.discounts.lastUR.Value)
		require.NotNil(t, f.discounts.lastUR.UsageLimit)
		assert.Equal(t, 10, *f.discounts.lastUR.UsageLimit)
	})
	t.Run("GetByCode", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.discount = d
		resp, err := f.h.GetDiscountByCode(ctx, oas.GetDiscountByCodeParams{Code: "save5"})
		require.NoError(t, err)
		assert.Equal(t, "SAVE5", resp.Code)
	})
	t.Run("List", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.discounts.discount = d
		out, err := f.h.ListDiscounts(ctx)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "d1", out[0].ID)
	})
	t.Run("Delete", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		require.NoError(t, f.h.DeleteDiscount(ctx, oas.DeleteDiscountParams{ID: "d1"}))

		f.discounts.err = discount.ErrNotFound
		requireStatus(t, f.h, f.h.DeleteDiscount(ctx, oas.DeleteDiscountParams{ID: "d1"}), 404, "")
	})
}

func TestProducts(t *testing.T) {
	p := &product.Product{
		ID:        "p1",
		Title:     "Classic Tee",
		Slug:      "classic-tee",
		Brand:     "Acme",
		ImageURLs: []string{"https://img.example.com/tee.jpg", "tee-back.jpg"},
		Variants:  []product.Variant{{ID: "v1", ProductID: "p1", Name: "M", Price: decimal.RequireFromString("10"), Stock: 4, Sold: 1}},
		CreatedAt: testTime,
	}
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		f := newFixture(HandlerConfig{ImageBaseURL: "https://cdn.example.com"})
		f.catalog.product = p
		resp, err := f.h.GetProduct(ctx, oas.GetProductParams{ID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://img.example.com/tee.jpg", "https://cdn.example.com/tee-back.jpg"}, resp.ImgUrls)
		assert.Equal(t, []oas.Variant{{ID: "v1", Name: "M", Price: 10, Stock: 4, Sold: 1}}, resp.Variants)
		assert.NotNil(t, resp.Ratings)
		assert.Empty(t, resp.Ratings)

		_, err = f.h.GetProduct(ctx, oas.GetProductParams{ID: "p2"})
		requireStatus(t, f.h, err, 404, "product not found")
	})
	t.Run("GetBySlug", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.product = p
		resp, err := f.h.GetProductBySlug(ctx, oas.GetProductBySlugParams{Slug: "classic-tee"})
		require.NoError(t, err)
		assert.Equal(t, "p1", resp.ID)
		assert.Equal(t, "classic-tee", resp.Slug)

		_, err = f.h.GetProductBySlug(ctx, oas.GetProductBySlugParams{Slug: "missing"})
		requireStatus(t, f.h, err, 404, "")
	})
	t.Run("Create", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.product = p
		_, err := f.h.CreateProduct(ctx, &oas.ProductInput{
			Title:    "Classic Tee",
			Brand:    oas.NewOptString("Acme"),
			Category: oas.NewOptString("Shirts"),
			ImgUrls:  []string{"a.jpg"},
			Variants: []oas.VariantInput{{Name: "M", Price: 10.25, Stock: 4}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Classic Tee", f.catalog.lastCR.Title)
		assert.Equal(t, "Acme", f.catalog.lastCR.Brand)
		assert.Equal(t, []string{"a.jpg"}, f.catalog.lastCR.ImageURLs)
		require.Len(t, f.catalog.lastCR.Variants, 1)
		assert.Equal(t, 4, f.catalog.lastCR.Variants[0].Stock)
		assert.Equal(t, "10.25", f.catalog.lastCR.Variants[0].Price.String())
	})
	t.Run("CreateInvalid", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.err = &product.ValidationError{Field: "title", Reason: "must not be empty"}
		_, err := f.h.CreateProduct(ctx, &oas.ProductInput{})
		requireStatus(t, f.h, err, 400, "")
	})
	t.Run("CreateDuplicateSlug", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.err = product.ErrDuplicateSlug
		_, err := f.h.CreateProduct(ctx, &oas.ProductInput{Title: "Classic Tee"})
		requireStatus(t, f.h, err, 409, "")
	})
	t.Run("UpdatePartial", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.product = p
		_, err := f.h.UpdateProduct(ctx, &oas.ProductUpdate{Brand: oas.NewOptString("Other")}, oas.UpdateProductParams{ID: "p1"})
		require.NoError(t, err)
		require.NotNil(t, f.catalog.lastUR.Brand)
		assert.Equal(t, "Other", *f.catalog.lastUR.Brand)
		assert.Nil(t, f.catalog.lastUR.Title)
		assert.Nil(t, f.catalog.lastUR.ImageURLs)
		assert.Nil(t, f.catalog.lastUR.Variants)
	})
	t.Run("Delete", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		require.NoError(t, f.h.DeleteProduct(ctx, oas.DeleteProductParams{ID: "p1"}))
	})
	t.Run("Rate", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.product = p
		_, err := f.h.RateProduct(ctx, &oas.RatingInput{
			UserName: oas.NewOptString("Jane"),
			Score:    5,
			Comment:  oas.NewOptString("great"),
		}, oas.RateProductParams{ID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, product.RatingRequest{UserName: "Jane", Score: 5, Comment: "great"}, f.catalog.lastRate)
	})
	t.Run("Brands", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.catalog.brands = []product.Counter{{Title: "Acme", ProductCount: 2}}
		out, err := f.h.ListBrands(ctx)
		require.NoError(t, err)
		assert.Equal(t, []oas.Counter{{Title: "Acme", ProductCount: 2}}, out)
	})
}

func TestHandleAPIKey(t *testing.T) {
	s := NewSecurityHandler(newAuthenticator())
	ctx := context.Background()

	_, err := s.HandleAPIKey(ctx, oas.UpdateOrderStatusOperation, oas.APIKey{APIKey: adminKey})
	require.NoError(t, err)

	for _, key := range []string{orderKey, "wrong", ""} {
		_, err := s.HandleAPIKey(ctx, oas.UpdateOrderStatusOperation, oas.APIKey{APIKey: key})
		assert.ErrorIs(t, err, auth.ErrUnauthorized, key)
	}
}

func TestNewError_Security(t *testing.T) {
	h := NewHandler(HandlerConfig{}, nil, nil, nil)
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "BadKey", err: auth.ErrUnauthorized, status: 401},
		{name: "MissingKey", err: ogenerrors.ErrSecurityRequirementIsNotSatisfied, status: 401},
		{name: "LookupFailed", err: errors.New("find api key: connection refused"), status: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ogenerrors.SecurityError{Security: "APIKey", Err: tt.err}
			resp := h.NewError(context.Background(), err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotContains(t, resp.Response.Message, "connection refused")
		})
	}
}

func TestServer(t *testing.T) {
	t.Run("AdminScopeRequired", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.orders.order = sampleOrder()
		srv := f.server(t)
		body := `{"id":"o-1","status":"SHIPPING"}`

		for _, key := range []string{"", "wrong", orderKey} {
			rec := serve(t, srv, http.MethodPatch, "/api/orders/status", body, key)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, key)
			assert.Equal(t, oas.Error{Code: 401, Message: "unauthorized"}, decodeError(t, rec))
		}
		assert.Empty(t, f.orders.lastStatus)

		rec := serve(t, srv, http.MethodPatch, "/api/orders/status", body, adminKey)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, order.StatusShipping, f.orders.lastStatus)
	})
	t.Run("InsufficientStockMessage", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		f.orders.err = &order.InsufficientStockError{DisplayName: "Tee - M", VariantID: "v1", Remaining: 1}

		rec := serve(t, f.server(t), http.MethodPost, "/api/orders", orderBody, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, oas.Error{Code: 400, Message: `product "Tee - M" has only 1 left in stock`}, decodeError(t, rec))
	})
	t.Run("MalformedBody", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		for _, body := range []string{"", `{"fullName":`, `{"items":[{"variantId":"v1","quantity":"two"}]}`} {
			rec := serve(t, f.server(t), http.MethodPost, "/api/orders", body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, 400, decodeError(t, rec).Code)
		}
	})
	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(HandlerConfig{})
		rec := serve(t, f.server(t), http.MethodGet, "/api/orders/missing", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, oas.Error{Code: 404, Message: "order not found"}, decodeError(t, rec))
	})
}

func TestErrorHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorHandler(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil),
		&ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 400, decodeError(t, rec).Code)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrUnauthorized, http.StatusUnauthorized},
		{discount.ErrDuplicateCode, http.StatusConflict},
		{product.ErrDuplicateSlug, http.StatusConflict},
		{errors.Wrap(product.ErrVariantNotFound, "variant v1"), http.StatusNotFound},
		{&order.ProductNotFoundError{ProductID: "p1"}, http.StatusNotFound},
		{errors.Wrap(product.ErrInsufficientStock, "sell"), http.StatusBadRequest},
		{order.ErrEmptyItems, http.StatusBadRequest},
		{errors.Wrap(order.ErrInvalidStatus, `"LOST"`), http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}

func TestResolveImageURL(t *testing.T) {
	h := NewHandler(HandlerConfig{ImageBaseURL: "https://cdn.example.com/"}, nil, nil, nil)
	assert.Equal(t, "https://cdn.example.com/a.jpg", h.resolveImageURL("/a.jpg"))
	assert.Equal(t, "http://other/a.jpg", h.resolveImageURL("http://other/a.jpg"))
	assert.Equal(t, "", h.resolveImageURL(""))

	h = NewHandler(HandlerConfig{}, nil, nil, nil)
	assert.Equal(t, "a.jpg", h.resolveImageURL("a.jpg"))
}
