//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func brandCount(t *testing.T, brand string) int {
	t.Helper()

	resp := doGet(t, "/api/brands")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	for _, c := range decodeJSON[[]counterResponse](t, resp) {
		if c.Title == brand {
			return c.ProductCount
		}
	}
	return 0
}

func TestProductBySlug(t *testing.T) {
	brand := "Slug " + uuid.New().String()[:8]
	title := "Slug Tee " + uuid.New().String()[:8]

	create := func() productResponse {
		t.Helper()
		resp := do(t, http.MethodPost, "/api/products", map[string]any{
			"title":    title,
			"brand":    brand,
			"variants": []map[string]any{{"name": "M", "price": 5, "stock": 1}},
		}, testAPIKey)
		defer resp.Body.Close()
		expectStatus(t, resp, http.StatusOK)
		return decodeJSON[productResponse](t, resp)
	}

	first := create()
	second := create()
	if first.Slug == "" || first.Slug == second.Slug {
		t.Fatalf("slugs must be unique: %q and %q", first.Slug, second.Slug)
	}

	for _, p := range []productResponse{first, second} {
		resp := doGet(t, "/api/products/by-slug/"+p.Slug)
		expectStatus(t, resp, http.StatusOK)
		if got := decodeJSON[productResponse](t, resp); got.ID != p.ID {
			t.Errorf("slug %q: got product %s, want %s", p.Slug, got.ID, p.ID)
		}
		resp.Body.Close()
	}

	missing := doGet(t, "/api/products/by-slug/no-such-product-"+uuid.New().String()[:8])
	defer missing.Body.Close()
	expectStatus(t, missing, http.StatusNotFound)
}

func TestProductLifecycle(t *testing.T) {
	brand := "Lifecycle " + uuid.New().String()[:8]

	p := createProduct(t, brand, 19.99, 7)
	if p.Slug == "" {
		t.Error("slug not generated")
	}
	if got := brandCount(t, brand); got != 1 {
		t.Fatalf("brand count after create: got %d, want 1", got)
	}

	got := getProduct(t, p.ID)
	if got.Title != p.Title || got.Variants[0].Price != 19.99 {
		t.Errorf("unexpected product: %+v", got)
	}

	newBrand := brand + " Renamed"
	upd := do(t, http.MethodPatch, "/api/products/"+p.ID, map[string]any{"brand": newBrand}, testAPIKey)
	defer upd.Body.Close()
	expectStatus(t, upd, http.StatusOK)
	if b := decodeJSON[productResponse](t, upd).Brand; b != newBrand {
		t.Errorf("brand after update: got %q, want %q", b, newBrand)
	}
	if n := brandCount(t, brand); n != 0 {
		t.Errorf("old brand count: got %d, want 0", n)
	}
	if n := brandCount(t, newBrand); n != 1 {
		t.Errorf("new brand count: got %d, want 1", n)
	}

	rate := doPost(t, "/api/products/"+p.ID+"/ratings", map[string]any{"userName": "Sam", "score": 4, "comment": "solid"})
	defer rate.Body.Close()
	expectStatus(t, rate, http.StatusOK)
	if rs := decodeJSON[productResponse](t, rate).Ratings; len(rs) != 1 || rs[0].Score != 4 {
		t.Errorf("ratings: %+v", rs)
	}

	badRate := doPost(t, "/api/products/"+p.ID+"/ratings", map[string]any{"score": 9})
	defer badRate.Body.Close()
	expectStatus(t, badRate, http.StatusBadRequest)

	del := do(t, http.MethodDelete, "/api/products/"+p.ID, nil, testAPIKey)
	defer del.Body.Close()
	expectStatus(t, del, http.StatusNoContent)

	gone := doGet(t, "/api/products/"+p.ID)
	defer gone.Body.Close()
	expectStatus(t, gone, http.StatusNotFound)

	if n := brandCount(t, newBrand); n != 0 {
		t.Errorf("brand count after delete: got %d, want 0", n)
	}
}

func TestCreateProduct_RequiresKey(t *testing.T) {
	resp := doPost(t, "/api/products", map[string]any{"title": "Nope"})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusUnauthorized)
}

func TestCategories(t *testing.T) {
	resp := doGet(t, "/api/categories")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	if cs := decodeJSON[[]counterResponse](t, resp); len(cs) == 0 {
		t.Fatal("expected seeded categories")
	}
}
