package discount

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byID      map[string]*Discount
	findErr   error
	incErr    error
	createErr error
}

func newMockRepo(ds ...Discount) *mockRepo {
	m := &mockRepo{byID: map[string]*Discount{}}
	for i := range ds {
		m.byID[ds[i].ID] = &ds[i]
	}
	return m
}

func (m *mockRepo) Create(_ context.Context, d *Discount) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *mockRepo) Update(_ context.Context, d *Discount) error {
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockRepo) FindByID(_ context.Context, id string) (*Discount, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockRepo) FindByCode(_ context.Context, code string) (*Discount, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, d := range m.byID {
		if d.Code == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context) ([]Discount, error) {
	out := make([]Discount, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockRepo) IncrementUsage(_ context.Context, code string) (bool, error) {
	if m.incErr != nil {
		return false, m.incErr
	}
	for _, d := range m.byID {
		if d.Code == code {
			if d.UsageCount >= d.UsageLimit {
				return false, nil
			}
			d.UsageCount++
			return true, nil
		}
	}
	return false, nil
}

func TestRegistry_Create(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateRequest
		field string
	}{
		{name: "empty code", req: CreateRequest{Code: " ", Value: decimal.NewFromInt(1), UsageLimit: 1}, field: "code"},
		{name: "short code", req: CreateRequest{Code: "ABCD", Value: decimal.NewFromInt(1), UsageLimit: 1}, field: "code"},
		{name: "long code", req: CreateRequest{Code: "ABCDEF", Value: decimal.NewFromInt(1), UsageLimit: 1}, field: "code"},
		{name: "negative value", req: CreateRequest{Code: "ABCDE", Value: decimal.NewFromInt(-1), UsageLimit: 1}, field: "discountValue"},
		{name: "zero limit", req: CreateRequest{Code: "ABCDE", Value: decimal.NewFromInt(1), UsageLimit: 0}, field: "usageLimit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			_, err := NewRegistry(repo).Create(context.Background(), tt.req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, repo.byID)
		})
	}

	t.Run("valid", func(t *testing.T) {
		repo := newMockRepo()
		d, err := NewRegistry(repo).Create(context.Background(), CreateRequest{
			Code:       " save5",
			Value:      decimal.Zero,
			UsageLimit: 2,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, "SAVE5", d.Code)
		assert.Zero(t, d.UsageCount)
		assert.Len(t, repo.byID, 1)
	})
}

func TestRegistry_CreateDuplicate(t *testing.T) {
	repo := newMockRepo(Discount{ID: "d1", Code: "SAVE5", Value: decimal.NewFromInt(5), UsageLimit: 1})
	_, err := NewRegistry(repo).Create(context.Background(), CreateRequest{
		Code:       "Save5",
		Value:      decimal.NewFromInt(1),
		UsageLimit: 1,
	})
	require.ErrorIs(t, err, ErrDuplicateCode)

	repo.findErr = errors.New("db down")
	_, err = NewRegistry(repo).Create(context.Background(), CreateRequest{
		Code:       "OTHER",
		Value:      decimal.NewFromInt(1),
		UsageLimit: 1,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateCode)
}

func TestRegistry_Update(t *testing.T) {
	seed := func() *mockRepo {
		return newMockRepo(
			Discount{ID: "d1", Code: "SAVE5", Value: decimal.NewFromInt(5), UsageCount: 2, UsageLimit: 3},
			Discount{ID: "d2", Code: "TAKEN", Value: decimal.NewFromInt(1), UsageLimit: 1},
		)
	}
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	t.Run("rename and raise limit", func(t *testing.T) {
		repo := seed()
		d, err := NewRegistry(repo).Update(context.Background(), "d1", UpdateRequest{
			Code:       str("fresh"),
			UsageLimit: num(10),
		})
		require.NoError(t, err)
		assert.Equal(t, "FRESH", d.Code)
		assert.Equal(t, 10, repo.byID["d1"].UsageLimit)
		assert.Equal(t, 2, repo.byID["d1"].UsageCount)
	})

	t.Run("same code is not a duplicate", func(t *testing.T) {
		_, err := NewRegistry(seed()).Update(context.Background(), "d1", UpdateRequest{Code: str("save5")})
		require.NoError(t, err)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := NewRegistry(seed()).Update(context.Background(), "d1", UpdateRequest{Code: str("TAKEN")})
		require.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("limit below usage", func(t *testing.T) {
		_, err := NewRegistry(seed()).Update(context.Background(), "d1", UpdateRequest{UsageLimit: num(1)})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "usageLimit", ve.Field)
	})

	t.Run("negative value", func(t *testing.T) {
		v := decimal.NewFromInt(-3)
		_, err := NewRegistry(seed()).Update(context.Background(), "d1", UpdateRequest{Value: &v})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := NewRegistry(seed()).Update(context.Background(), "nope", UpdateRequest{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRegistry_FindByCode(t *testing.T) {
	repo := newMockRepo(Discount{ID: "d1", Code: "SAVE5", Value: decimal.NewFromInt(5), UsageLimit: 1})
	r := NewRegistry(repo)

	d, err := r.FindByCode(context.Background(), " save5 ")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)

	_, err = r.FindByCode(context.Background(), "")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.FindByCode(context.Background(), "OTHER")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_IncrementUsage(t *testing.T) {
	repo := newMockRepo(Discount{ID: "d1", Code: "SAVE5", Value: decimal.NewFromInt(5), UsageLimit: 2})
	r := NewRegistry(repo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := r.IncrementUsage(ctx, "save5")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := r.IncrementUsage(ctx, "SAVE5")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, repo.byID["d1"].UsageCount)

	ok, err = r.IncrementUsage(ctx, "UNKWN")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IncrementUsage(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.incErr = errors.New("db down")
	_, err = r.IncrementUsage(ctx, "SAVE5")
	require.Error(t, err)
}

func TestDiscount_Apply(t *testing.T) {
	d := &Discount{Value: decimal.RequireFromString("15.50")}
	assert.True(t, decimal.RequireFromString("4.50").Equal(d.Apply(decimal.NewFromInt(20))))
	assert.True(t, decimal.Zero.Equal(d.Apply(decimal.NewFromInt(10))))

	assert.True(t, (&Discount{UsageCount: 3, UsageLimit: 3}).Exhausted())
	assert.False(t, (&Discount{UsageCount: 2, UsageLimit: 3}).Exhausted())
}
