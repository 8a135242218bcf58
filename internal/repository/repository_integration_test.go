//go:build integration

package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "store",
				"POSTGRES_PASSWORD": "store",
				"POSTGRES_DB":       "store",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := NewPool(ctx, fmt.Sprintf("postgres://store:store@%s:%s/store?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool))
	return pool
}

func seedProduct(t *testing.T, repo *ProductRepository, stock int) *product.Product {
	t.Helper()
	p := &product.Product{
		ID:              "p-" + t.Name(),
		Title:           "Classic Tee",
		NormalizedTitle: "classic tee",
		Slug:            "classic-tee-" + strings.ToLower(strings.ReplaceAll(t.Name(), "/", "-")),
		Brand:           "Acme",
		Category:        "Shirts",
		ImageURLs:       []string{"front.jpg"},
		CreatedAt:       time.Now().UTC(),
		Variants: []product.Variant{
			{ID: "v-" + t.Name(), Name: "M", Price: decimal.RequireFromString("19.99"), Stock: stock},
		},
	}
	require.NoError(t, repo.CreateProduct(context.Background(), p))
	return p
}

func TestIntegration(t *testing.T) {
	pool := startPostgres(t)
	products := NewProductRepository(pool)
	discounts := NewDiscountRepository(pool)
	orders := NewOrderRepository(pool)
	tx := NewTxManager(pool)

	t.Run("ConcurrentSells", func(t *testing.T) {
		ctx := context.Background()
		p := seedProduct(t, products, 5)
		vid := p.Variants[0].ID

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, qty := range []int{3, 4} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = products.Sell(ctx, vid, qty)
			}()
		}
		wg.Wait()

		var ok, insufficient int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, product.ErrInsufficientStock):
				insufficient++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, insufficient)

		v, err := products.GetVariant(ctx, vid)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.Stock, 0)
		assert.Equal(t, 5, v.Stock+v.Sold)
	})

	t.Run("SellUnknownAndInvalid", func(t *testing.T) {
		ctx := context.Background()
		_, err := products.Sell(ctx, "missing", 1)
		require.ErrorIs(t, err, product.ErrVariantNotFound)

		p := seedProduct(t, products, 1)
		_, err = products.Sell(ctx, p.Variants[0].ID, 0)
		require.ErrorIs(t, err, product.ErrInvalidQuantity)

		v, err := products.Sell(ctx, p.Variants[0].ID, 2)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 1, v.Stock)
	})

	t.Run("RollbackUndoesAllWrites", func(t *testing.T) {
		ctx := context.Background()
		p := seedProduct(t, products, 2)
		vid := p.Variants[0].ID
		require.NoError(t, discounts.Create(ctx, &discount.Discount{
			ID: "d-rollback", Code: "ROLLB", Value: decimal.NewFromInt(1), UsageLimit: 5, CreatedAt: time.Now(),
		}))

		o := &order.Order{
			ID:        "o-rollback",
			Cart:      order.Cart{Lines: []order.Line{{VariantID: vid, Quantity: 1, Price: decimal.NewFromInt(1)}}, Total: decimal.NewFromInt(1)},
			Status:    order.StatusPending,
			CreatedAt: time.Now(),
		}
		err := tx.InTx(ctx, func(ctx context.Context) error {
			require.NoError(t, orders.Create(ctx, o))
			_, err := products.Sell(ctx, vid, 1)
			require.NoError(t, err)
			ok, err := discounts.IncrementUsage(ctx, "ROLLB")
			require.NoError(t, err)
			require.True(t, ok)
			_, err = products.Sell(ctx, vid, 5)
			return err
		})
		require.ErrorIs(t, err, product.ErrInsufficientStock)

		_, err = orders.FindByID(ctx, o.ID)
		require.ErrorIs(t, err, order.ErrNotFound)
		v, err := products.GetVariant(ctx, vid)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Stock)
		d, err := discounts.FindByCode(ctx, "ROLLB")
		require.NoError(t, err)
		assert.Equal(t, 0, d.UsageCount)
	})

	t.Run("DiscountUsageLimit", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, discounts.Create(ctx, &discount.Discount{
			ID: "d-limit", Code: "LIMIT", Value: decimal.NewFromInt(2), UsageLimit: 1, CreatedAt: time.Now(),
		}))
		err := discounts.Create(ctx, &discount.Discount{
			ID: "d-limit-2", Code: "LIMIT", Value: decimal.NewFromInt(2), UsageLimit: 1, CreatedAt: time.Now(),
		})
		require.ErrorIs(t, err, discount.ErrDuplicateCode)

		ok, err := discounts.IncrementUsage(ctx, "LIMIT")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = discounts.IncrementUsage(ctx, "LIMIT")
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = discounts.IncrementUsage(ctx, "NONE0")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("OrderPagination", func(t *testing.T) {
		ctx := context.Background()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			require.NoError(t, orders.Create(ctx, &order.Order{
				ID:        fmt.Sprintf("page-%02d", i),
				Contact:   order.Contact{Email: "pager@example.com"},
				Cart:      order.Cart{Lines: []order.Line{{VariantID: "v", Quantity: 1, Price: decimal.NewFromInt(2)}}, Total: decimal.NewFromInt(2)},
				Status:    order.StatusPending,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		first, err := orders.FindMany(ctx, order.ListFilter{Email: "pager@example.com", Offset: 0, Limit: 10})
		require.NoError(t, err)
		require.Len(t, first, 10)
		assert.Equal(t, "page-14", first[0].ID)
		require.Len(t, first[0].Lines, 1)

		rest, err := orders.FindMany(ctx, order.ListFilter{Email: "pager@example.com", Offset: 10, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, rest, 5)
		assert.Equal(t, "page-00", rest[4].ID)

		updated, err := orders.UpdateStatus(ctx, "page-03", order.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, updated.Status)
		_, err = orders.UpdateStatus(ctx, "missing", order.StatusCompleted)
		require.ErrorIs(t, err, order.ErrNotFound)

		st, err := orders.CompletedStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, st.Count)
		assert.True(t, decimal.NewFromInt(2).Equal(st.Revenue))
	})

	t.Run("CountersAndRecount", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, products.AdjustBrand(ctx, "Ghost", 1))
		require.NoError(t, products.AdjustBrand(ctx, "Ghost", -5))

		brands, err := products.ListBrands(ctx)
		require.NoError(t, err)
		for _, b := range brands {
			assert.GreaterOrEqual(t, b.ProductCount, 0)
		}

		require.NoError(t, products.AdjustBrand(ctx, "Drifted", 7))
		fixed, err := products.RecountCounters(ctx)
		require.NoError(t, err)
		assert.Contains(t, fixed, product.Correction{Kind: "brand", Title: "Drifted", Was: 7, Now: 0})

		again, err := products.RecountCounters(ctx)
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("SlugLookupAndUniqueness", func(t *testing.T) {
		ctx := context.Background()
		p := seedProduct(t, products, 1)

		got, err := products.GetProductBySlug(ctx, p.Slug)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		require.Len(t, got.Variants, 1)

		_, err = products.GetProductBySlug(ctx, "no-such-slug")
		require.ErrorIs(t, err, product.ErrProductNotFound)

		dup := *p
		dup.ID = p.ID + "-dup"
		dup.Variants = []product.Variant{{ID: p.Variants[0].ID + "-dup", Name: "L", Price: decimal.NewFromInt(1), Stock: 1}}
		require.ErrorIs(t, products.CreateProduct(ctx, &dup), product.ErrDuplicateSlug)
	})

	t.Run("RetriesDeadlock", func(t *testing.T) {
		ctx := context.Background()
		p := seedProduct(t, products, 5)
		vid := p.Variants[0].ID

		var calls int
		err := tx.InTx(ctx, func(ctx context.Context) error {
			calls++
			if _, err := products.Sell(ctx, vid, 1); err != nil {
				return err
			}
			if calls == 1 {
				return &pgconn.PgError{Code: deadlockDetected}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)

		// The aborted attempt was rolled back.
		v, err := products.GetVariant(ctx, vid)
		require.NoError(t, err)
		assert.Equal(t, 4, v.Stock)

		calls = 0
		err = tx.InTx(ctx, func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: serializationFailure}
		})
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, txAttempts, calls)
	})
}
