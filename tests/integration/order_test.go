//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func uniqueEmail() string {
	return "buyer-" + uuid.New().String()[:8] + "@example.com"
}

func TestCalculateCart_IsPreview(t *testing.T) {
	p := createProduct(t, "Integration Preview", 12.5, 10)
	v := p.Variants[0]

	resp := doPost(t, "/api/orders/calculate", orderRequest{
		Items: []itemRequest{{VariantID: v.ID, Quantity: 2}},
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	cart := decodeJSON[orderResponse](t, resp)
	if cart.ID != "temp_cart" {
		t.Errorf("id: got %q, want temp_cart", cart.ID)
	}
	if cart.Status != "CART" {
		t.Errorf("status: got %q, want CART", cart.Status)
	}
	if cart.TotalPrice != 25 {
		t.Errorf("totalPrice: got %v, want 25", cart.TotalPrice)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", cart.Lines)
	}

	// Nothing is reserved by a preview.
	if got := getProduct(t, p.ID).Variants[0].Stock; got != 10 {
		t.Errorf("stock after preview: got %d, want 10", got)
	}
}

func TestCreateOrder(t *testing.T) {
	p := createProduct(t, "Integration Orders", 30, 5)
	v := p.Variants[0]
	email := uniqueEmail()

	resp := doPost(t, "/api/orders", buyer(email, itemRequest{VariantID: v.ID, Quantity: 3}))
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	o := decodeJSON[orderResponse](t, resp)
	if _, err := uuid.Parse(o.ID); err != nil {
		t.Errorf("order id %q is not a UUID", o.ID)
	}
	if o.Status != "PENDING" {
		t.Errorf("status: got %q, want PENDING", o.Status)
	}
	if o.TotalPrice != 90 {
		t.Errorf("totalPrice: got %v, want 90", o.TotalPrice)
	}
	if o.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}

	after := getProduct(t, p.ID).Variants[0]
	if after.Stock != 2 || after.Sold != 3 {
		t.Errorf("variant after order: stock=%d sold=%d, want 2 and 3", after.Stock, after.Sold)
	}

	get := doGet(t, "/api/orders/"+o.ID)
	defer get.Body.Close()
	expectStatus(t, get, http.StatusOK)
	if got := decodeJSON[orderResponse](t, get); got.Email != email {
		t.Errorf("email: got %q, want %q", got.Email, email)
	}
}

func TestCreateOrder_Rejected(t *testing.T) {
	p := createProduct(t, "Integration Rejects", 10, 1)
	v := p.Variants[0]

	tests := []struct {
		name string
		req  orderRequest
		want int
	}{
		{"missing contact", orderRequest{Items: []itemRequest{{VariantID: v.ID, Quantity: 1}}}, http.StatusBadRequest},
		{"empty items", buyer(uniqueEmail()), http.StatusBadRequest},
		{"zero quantity", buyer(uniqueEmail(), itemRequest{VariantID: v.ID, Quantity: 0}), http.StatusBadRequest},
		{"insufficient stock", buyer(uniqueEmail(), itemRequest{VariantID: v.ID, Quantity: 2}), http.StatusBadRequest},
		{"unknown variant", buyer(uniqueEmail(), itemRequest{VariantID: uuid.New().String(), Quantity: 1}), http.StatusNotFound},
		{"unknown discount", func() orderRequest {
			r := buyer(uniqueEmail(), itemRequest{VariantID: v.ID, Quantity: 1})
			r.DiscountCode = uniqueCode()
			return r
		}(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doPost(t, "/api/orders", tt.req)
			defer resp.Body.Close()
			expectStatus(t, resp, tt.want)

			body := decodeJSON[errorResponse](t, resp)
			if body.Message == "" {
				t.Error("expected an error message")
			}
		})
	}

	if got := getProduct(t, p.ID).Variants[0].Stock; got != 1 {
		t.Errorf("rejected orders changed stock: got %d, want 1", got)
	}
}

func TestCreateOrder_DiscountUsageLimit(t *testing.T) {
	p := createProduct(t, "Integration Discounts", 100, 10)
	v := p.Variants[0]
	d := createDiscount(t, 50, 1)

	req := buyer(uniqueEmail(), itemRequest{VariantID: v.ID, Quantity: 2})
	req.DiscountCode = d.Code

	resp := doPost(t, "/api/orders", req)
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	o := decodeJSON[orderResponse](t, resp)
	if o.TotalPrice != 150 {
		t.Errorf("totalPrice: got %v, want 150", o.TotalPrice)
	}
	if o.DiscountCode == nil || *o.DiscountCode != d.Code {
		t.Errorf("discountCode: got %v, want %q", o.DiscountCode, d.Code)
	}

	// The single use is spent.
	again := doPost(t, "/api/orders", req)
	defer again.Body.Close()
	expectStatus(t, again, http.StatusBadRequest)

	// A preview without a code is not discounted.
	preview := doPost(t, "/api/orders/calculate", orderRequest{Items: req.Items})
	defer preview.Body.Close()
	expectStatus(t, preview, http.StatusOK)
	if got := decodeJSON[orderResponse](t, preview).TotalPrice; got != 200 {
		t.Errorf("preview totalPrice: got %v, want 200", got)
	}

	dr := do(t, http.MethodGet, "/api/discounts/"+d.ID, nil, testAPIKey)
	defer dr.Body.Close()
	expectStatus(t, dr, http.StatusOK)
	if got := decodeJSON[discountResponse](t, dr).UsageCount; got != 1 {
		t.Errorf("usageCount: got %d, want 1", got)
	}
}

func TestCreateOrder_ConcurrentOversell(t *testing.T) {
	p := createProduct(t, "Integration Concurrency", 5, 5)
	v := p.Variants[0]

	quantities := []int{3, 4}
	statuses := make([]int, len(quantities))

	var wg sync.WaitGroup
	for i, q := range quantities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := doPost(t, "/api/orders", buyer(uniqueEmail(), itemRequest{VariantID: v.ID, Quantity: q}))
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}()
	}
	wg.Wait()

	var ok, rejected int
	for _, s := range statuses {
		switch s {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			rejected++
		}
	}
	if ok != 1 || rejected != 1 {
		t.Fatalf("expected one success and one rejection, got statuses %v", statuses)
	}

	after := getProduct(t, p.ID).Variants[0]
	if after.Stock < 0 || after.Stock+after.Sold != 5 {
		t.Errorf("stock=%d sold=%d, want stock+sold=5", after.Stock, after.Sold)
	}
}

func TestCreateOrder_ConcurrentOppositeCarts(t *testing.T) {
	pa := createProduct(t, "Integration Lock Order", 3, 100)
	pb := createProduct(t, "Integration Lock Order", 4, 100)
	a, b := pa.Variants[0], pb.Variants[0]

	carts := [][]itemRequest{
		{{VariantID: a.ID, Quantity: 1}, {VariantID: b.ID, Quantity: 1}},
		{{VariantID: b.ID, Quantity: 1}, {VariantID: a.ID, Quantity: 1}},
	}
	const rounds = 10
	statuses := make([]int, rounds*len(carts))

	var wg sync.WaitGroup
	for r := 0; r < rounds; r++ {
		for i, items := range carts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp := doPost(t, "/api/orders", buyer(uniqueEmail(), items...))
				resp.Body.Close()
				statuses[r*len(carts)+i] = resp.StatusCode
			}()
		}
	}
	wg.Wait()

	for i, s := range statuses {
		if s != http.StatusOK {
			t.Fatalf("order %d: got status %d, want 200 (all: %v)", i, s, statuses)
		}
	}
	want := rounds * len(carts)
	for _, p := range []productResponse{pa, pb} {
		after := getProduct(t, p.ID).Variants[0]
		if after.Sold != want || after.Stock != 100-want {
			t.Errorf("variant %s: stock=%d sold=%d, want stock=%d sold=%d", after.ID, after.Stock, after.Sold, 100-want, want)
		}
	}
}

func TestListOrders_Pagination(t *testing.T) {
	p := createProduct(t, "Integration Paging", 1, 100)
	v := p.Variants[0]
	email := uniqueEmail()

	for i := 0; i < 15; i++ {
		resp := doPost(t, "/api/orders", buyer(email, itemRequest{VariantID: v.ID, Quantity: 1}))
		expectStatus(t, resp, http.StatusOK)
		resp.Body.Close()
	}

	page := func(start, count int) []orderResponse {
		t.Helper()
		resp := doGet(t, fmt.Sprintf("/api/orders?email=%s&start=%d&count=%d", email, start, count))
		defer resp.Body.Close()
		expectStatus(t, resp, http.StatusOK)
		return decodeJSON[[]orderResponse](t, resp)
	}

	first := page(0, 10)
	second := page(10, 10)
	if len(first) != 10 || len(second) != 5 {
		t.Fatalf("page sizes: got %d and %d, want 10 and 5", len(first), len(second))
	}

	seen := map[string]bool{}
	for _, o := range append(first, second...) {
		if o.Email != email {
			t.Errorf("order %s has email %q", o.ID, o.Email)
		}
		if seen[o.ID] {
			t.Errorf("order %s returned twice", o.ID)
		}
		seen[o.ID] = true
	}
	for i := 1; i < len(first); i++ {
		if first[i].CreatedAt.After(first[i-1].CreatedAt) {
			t.Fatalf("orders not newest first at index %d", i)
		}
	}

	resp := doGet(t, "/api/orders?start=-1")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusBadRequest)
}

func TestUpdateOrderStatus(t *testing.T) {
	p := createProduct(t, "Integration Status", 40, 5)
	resp := doPost(t, "/api/orders", buyer(uniqueEmail(), itemRequest{VariantID: p.Variants[0].ID, Quantity: 1}))
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	o := decodeJSON[orderResponse](t, resp)

	body := map[string]string{"id": o.ID, "status": "COMPLETED"}

	noKey := do(t, http.MethodPatch, "/api/orders/status", body, "")
	defer noKey.Body.Close()
	expectStatus(t, noKey, http.StatusUnauthorized)

	wrongKey := do(t, http.MethodPatch, "/api/orders/status", body, "not-the-key")
	defer wrongKey.Body.Close()
	expectStatus(t, wrongKey, http.StatusUnauthorized)

	bad := do(t, http.MethodPatch, "/api/orders/status", map[string]string{"id": o.ID, "status": "LOST"}, testAPIKey)
	defer bad.Body.Close()
	expectStatus(t, bad, http.StatusBadRequest)

	countBefore := dashboardCount(t)

	ok := do(t, http.MethodPatch, "/api/orders/status", body, testAPIKey)
	defer ok.Body.Close()
	expectStatus(t, ok, http.StatusOK)
	if got := decodeJSON[orderResponse](t, ok).Status; got != "COMPLETED" {
		t.Errorf("status: got %q, want COMPLETED", got)
	}

	if got := dashboardCount(t); got != countBefore+1 {
		t.Errorf("completed count: got %d, want %d", got, countBefore+1)
	}

	rev := do(t, http.MethodGet, "/api/orders/dashboard/revenue", nil, testAPIKey)
	defer rev.Body.Close()
	expectStatus(t, rev, http.StatusOK)
	if got := decodeJSON[float64](t, rev); got < 40 {
		t.Errorf("revenue: got %v, want at least 40", got)
	}

	missing := do(t, http.MethodPatch, "/api/orders/status",
		map[string]string{"id": uuid.New().String(), "status": "SHIPPING"}, testAPIKey)
	defer missing.Body.Close()
	expectStatus(t, missing, http.StatusNotFound)
}

func dashboardCount(t *testing.T) int {
	t.Helper()

	resp := do(t, http.MethodGet, "/api/orders/dashboard/count", nil, testAPIKey)
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	return decodeJSON[int](t, resp)
}

func TestGetOrder_NotFound(t *testing.T) {
	resp := doGet(t, "/api/orders/"+uuid.New().String())
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusNotFound)
}
