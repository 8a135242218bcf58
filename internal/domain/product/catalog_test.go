package product

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	products   map[string]*Product
	brands     map[string]int
	categories map[string]int
	ratings    []Rating
	updateErr  error
	// raceSlug makes the next write using it fail as if a concurrent
	// writer had just taken the slug.
	raceSlug string
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		products:   map[string]*Product{},
		brands:     map[string]int{},
		categories: map[string]int{},
	}
}

func (m *mockRepo) GetVariant(_ context.Context, id string) (*Variant, error) {
	for _, p := range m.products {
		for _, v := range p.Variants {
			if v.ID == id {
				return &v, nil
			}
		}
	}
	return nil, ErrVariantNotFound
}

func (m *mockRepo) GetVariants(ctx context.Context, ids []string) ([]Variant, error) {
	var out []Variant
	for _, id := range ids {
		if v, err := m.GetVariant(ctx, id); err == nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockRepo) Sell(_ context.Context, _ string, _ int) (*Variant, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetProduct(_ context.Context, id string) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	cp.Variants = append([]Variant(nil), p.Variants...)
	cp.Ratings = append([]Rating(nil), p.Ratings...)
	return &cp, nil
}

func (m *mockRepo) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	for id, p := range m.products {
		if p.Slug == slug {
			return m.GetProduct(ctx, id)
		}
	}
	return nil, ErrProductNotFound
}

// takeRacedSlug simulates losing slug to another writer.
func (m *mockRepo) takeRacedSlug(slug string) bool {
	if m.raceSlug == "" || m.raceSlug != slug {
		return false
	}
	m.products["racer"] = &Product{ID: "racer", Slug: slug}
	m.raceSlug = ""
	return true
}

func (m *mockRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]Product, error) {
	var out []Product
	for _, id := range ids {
		if p, err := m.GetProduct(ctx, id); err == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateProduct(_ context.Context, p *Product) error {
	if m.takeRacedSlug(p.Slug) {
		return ErrDuplicateSlug
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockRepo) UpdateProduct(_ context.Context, p *Product) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.takeRacedSlug(p.Slug) {
		return ErrDuplicateSlug
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockRepo) DeleteProduct(_ context.Context, id string) error {
	delete(m.products, id)
	return nil
}

func (m *mockRepo) AddRating(_ context.Context, r *Rating) error {
	p := m.products[r.ProductID]
	p.Ratings = append(p.Ratings, *r)
	m.ratings = append(m.ratings, *r)
	return nil
}

func adjust(counts map[string]int, title string, delta int) {
	n := counts[title] + delta
	if n < 0 {
		n = 0
	}
	counts[title] = n
}

func (m *mockRepo) AdjustBrand(_ context.Context, title string, delta int) error {
	adjust(m.brands, title, delta)
	return nil
}

func (m *mockRepo) AdjustCategory(_ context.Context, title string, delta int) error {
	adjust(m.categories, title, delta)
	return nil
}

func (m *mockRepo) ListBrands(_ context.Context) ([]Counter, error) {
	var out []Counter
	for k, v := range m.brands {
		out = append(out, Counter{Title: k, ProductCount: v})
	}
	return out, nil
}

func (m *mockRepo) ListCategories(_ context.Context) ([]Counter, error) {
	var out []Counter
	for k, v := range m.categories {
		out = append(out, Counter{Title: k, ProductCount: v})
	}
	return out, nil
}

func (m *mockRepo) RecountCounters(_ context.Context) ([]Correction, error) {
	return nil, nil
}

type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func teeRequest() CreateRequest {
	return CreateRequest{
		Title:     "  Áo Thun Basic ",
		Category:  "Shirts",
		Brand:     "Acme",
		ImageURLs: []string{"a.jpg"},
		Variants: []VariantInput{
			{Name: "S", Price: decimal.RequireFromString("9.99"), Stock: 3},
			{Name: "M", Price: decimal.RequireFromString("9.99"), Stock: 4},
		},
	}
}

func TestCatalog_Create(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})

	p, err := c.Create(context.Background(), teeRequest())
	require.NoError(t, err)

	assert.Equal(t, "Áo Thun Basic", p.Title)
	assert.Equal(t, "ao thun basic", p.NormalizedTitle)
	assert.Equal(t, "ao-thun-basic", p.Slug)
	require.Len(t, p.Variants, 2)
	for _, v := range p.Variants {
		assert.NotEmpty(t, v.ID)
		assert.Equal(t, p.ID, v.ProductID)
		assert.Zero(t, v.Sold)
	}
	assert.Equal(t, 1, repo.brands["Acme"])
	assert.Equal(t, 1, repo.categories["Shirts"])

	second, err := c.Create(context.Background(), teeRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.brands["Acme"])
	assert.Equal(t, "ao-thun-basic-2", second.Slug)
}

func TestCatalog_SlugCollisionRace(t *testing.T) {
	repo := newMockRepo()
	repo.raceSlug = "ao-thun-basic"
	c := NewCatalog(repo, passTx{})

	p, err := c.Create(context.Background(), teeRequest())
	require.NoError(t, err)
	assert.Equal(t, "ao-thun-basic-2", p.Slug)
	assert.Equal(t, 1, repo.brands["Acme"])
}

func TestCatalog_GetBySlug(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})
	ctx := context.Background()

	p, err := c.Create(ctx, teeRequest())
	require.NoError(t, err)

	got, err := c.GetBySlug(ctx, " AO-THUN-BASIC ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = c.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, ErrProductNotFound)

	// Renaming to its own title keeps the slug instead of numbering it.
	title := "Áo thun basic"
	updated, err := c.Update(ctx, p.ID, UpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "ao-thun-basic", updated.Slug)
}

func TestCatalog_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(r *CreateRequest)
		field string
	}{
		{name: "empty title", mod: func(r *CreateRequest) { r.Title = "  " }, field: "title"},
		{name: "no variants", mod: func(r *CreateRequest) { r.Variants = nil }, field: "variants"},
		{name: "negative price", mod: func(r *CreateRequest) { r.Variants[0].Price = decimal.NewFromInt(-1) }, field: "variant.price"},
		{name: "negative stock", mod: func(r *CreateRequest) { r.Variants[1].Stock = -1 }, field: "variant.stock"},
		{name: "empty variant name", mod: func(r *CreateRequest) { r.Variants[0].Name = "" }, field: "variant.name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			c := NewCatalog(repo, passTx{})
			req := teeRequest()
			tt.mod(&req)

			_, err := c.Create(context.Background(), req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, repo.products)
			assert.Empty(t, repo.brands)
		})
	}
}

func TestCatalog_Update(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})
	ctx := context.Background()

	p, err := c.Create(ctx, teeRequest())
	require.NoError(t, err)
	keep := p.Variants[0]
	repo.products[p.ID].Variants[0].Sold = 7

	brand := "Globex"
	title := "Crème Tee"
	updated, err := c.Update(ctx, p.ID, UpdateRequest{
		Title: &title,
		Brand: &brand,
		Variants: []VariantInput{
			{ID: keep.ID, Name: "S", Price: decimal.RequireFromString("12.00"), Stock: 10},
			{Name: "XL", Price: decimal.RequireFromString("14.00"), Stock: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "creme-tee", updated.Slug)
	require.Len(t, updated.Variants, 2)
	assert.Equal(t, keep.ID, updated.Variants[0].ID)
	assert.Equal(t, 7, updated.Variants[0].Sold)
	assert.Equal(t, 10, updated.Variants[0].Stock)
	assert.NotEqual(t, p.Variants[1].ID, updated.Variants[1].ID)

	assert.Equal(t, 0, repo.brands["Acme"])
	assert.Equal(t, 1, repo.brands["Globex"])
	assert.Equal(t, 1, repo.categories["Shirts"])
}

func TestCatalog_UpdateErrors(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})
	ctx := context.Background()

	p, err := c.Create(ctx, teeRequest())
	require.NoError(t, err)

	_, err = c.Update(ctx, "missing", UpdateRequest{})
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = c.Update(ctx, p.ID, UpdateRequest{
		Variants: []VariantInput{{ID: "foreign", Name: "S", Price: decimal.NewFromInt(1)}},
	})
	require.ErrorIs(t, err, ErrVariantNotFound)

	_, err = c.Update(ctx, p.ID, UpdateRequest{Variants: []VariantInput{}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	repo.updateErr = errors.New("boom")
	brand := "Other"
	_, err = c.Update(ctx, p.ID, UpdateRequest{Brand: &brand})
	require.Error(t, err)
	assert.Equal(t, 1, repo.brands["Acme"])
	assert.Zero(t, repo.brands["Other"])
}

func TestCatalog_Delete(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})
	ctx := context.Background()

	p, err := c.Create(ctx, teeRequest())
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, p.ID))
	assert.Empty(t, repo.products)
	assert.Equal(t, 0, repo.brands["Acme"])
	assert.Equal(t, 0, repo.categories["Shirts"])

	require.ErrorIs(t, c.Delete(ctx, p.ID), ErrProductNotFound)
}

func TestCatalog_Rate(t *testing.T) {
	repo := newMockRepo()
	c := NewCatalog(repo, passTx{})
	ctx := context.Background()

	p, err := c.Create(ctx, teeRequest())
	require.NoError(t, err)

	for _, score := range []int{0, 6} {
		_, err := c.Rate(ctx, p.ID, RatingRequest{Score: score})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	}

	_, err = c.Rate(ctx, "missing", RatingRequest{Score: 3})
	require.ErrorIs(t, err, ErrProductNotFound)

	rated, err := c.Rate(ctx, p.ID, RatingRequest{UserID: "u1", UserName: "Jane", Score: 5, Comment: "soft"})
	require.NoError(t, err)
	require.Len(t, rated.Ratings, 1)
	assert.Equal(t, 5, rated.Ratings[0].Score)
}
