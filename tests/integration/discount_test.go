//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestDiscountCRUD(t *testing.T) {
	d := createDiscount(t, 5, 10)
	if d.UsageCount != 0 || d.UsageLimit != 10 || d.DiscountValue != 5 {
		t.Fatalf("unexpected discount: %+v", d)
	}

	dup := do(t, http.MethodPost, "/api/discounts", map[string]any{
		"code": d.Code, "discountValue": 1, "usageLimit": 1,
	}, testAPIKey)
	defer dup.Body.Close()
	expectStatus(t, dup, http.StatusConflict)

	byCode := do(t, http.MethodGet, "/api/discounts/code/"+d.Code, nil, testAPIKey)
	defer byCode.Body.Close()
	expectStatus(t, byCode, http.StatusOK)
	if got := decodeJSON[discountResponse](t, byCode).ID; got != d.ID {
		t.Errorf("by code: got id %q, want %q", got, d.ID)
	}

	upd := do(t, http.MethodPatch, "/api/discounts/"+d.ID, map[string]any{"usageLimit": 3}, testAPIKey)
	defer upd.Body.Close()
	expectStatus(t, upd, http.StatusOK)
	if got := decodeJSON[discountResponse](t, upd).UsageLimit; got != 3 {
		t.Errorf("usageLimit after update: got %d, want 3", got)
	}

	list := do(t, http.MethodGet, "/api/discounts", nil, testAPIKey)
	defer list.Body.Close()
	expectStatus(t, list, http.StatusOK)
	found := false
	for _, x := range decodeJSON[[]discountResponse](t, list) {
		found = found || x.ID == d.ID
	}
	if !found {
		t.Error("created discount missing from list")
	}

	del := do(t, http.MethodDelete, "/api/discounts/"+d.ID, nil, testAPIKey)
	defer del.Body.Close()
	expectStatus(t, del, http.StatusNoContent)

	gone := do(t, http.MethodGet, "/api/discounts/"+d.ID, nil, testAPIKey)
	defer gone.Body.Close()
	expectStatus(t, gone, http.StatusNotFound)
}

func TestDiscounts_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"short code", map[string]any{"code": "AB", "discountValue": 5, "usageLimit": 1}},
		{"negative value", map[string]any{"code": uniqueCode(), "discountValue": -1, "usageLimit": 1}},
		{"value not a number", map[string]any{"code": uniqueCode(), "discountValue": "lots", "usageLimit": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, "/api/discounts", tt.body, testAPIKey)
			defer resp.Body.Close()
			expectStatus(t, resp, http.StatusBadRequest)
		})
	}
}

func TestDiscounts_RequireKey(t *testing.T) {
	resp := doGet(t, "/api/discounts")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusUnauthorized)
}
