package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/repository"
)

type variantJSON struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type productJSON struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Brand       string        `json:"brand"`
	ImageURLs   []string      `json:"imgUrls"`
	Variants    []variantJSON `json:"variants"`
}

func main() {
	var (
		databaseURL  string
		productsFile string
		apiKey       string
		apiKeyPepper string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.StringVar(&apiKey, "api-key", "", "admin API key to seed (or STORE_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or STORE_API_KEY_PEPPER env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if apiKey == "" {
		apiKey = os.Getenv("STORE_SEED_API_KEY")
	}
	if apiKey == "" {
		slog.Error("API key is required: set --api-key or STORE_SEED_API_KEY")
		os.Exit(1)
	}
	if apiKeyPepper == "" {
		apiKeyPepper = os.Getenv("STORE_API_KEY_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile, apiKey, apiKeyPepper); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, productsFile, apiKey, pepper string) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	productRepo := repository.NewProductRepository(pool)
	catalog := product.NewCatalog(productRepo, repository.NewTxManager(pool))
	registry := discount.NewRegistry(repository.NewDiscountRepository(pool))

	if err := seedProducts(ctx, catalog, productRepo, productsFile); err != nil {
		return errors.Wrap(err, "seed products")
	}
	if err := seedDiscounts(ctx, registry); err != nil {
		return errors.Wrap(err, "seed discounts")
	}
	if err := seedAPIKey(ctx, repository.NewAPIKeyRepository(pool), apiKey, pepper); err != nil {
		return errors.Wrap(err, "seed api key")
	}
	return nil
}

// seedProducts creates the catalog through the catalog service so slugs and
// counters are maintained. A catalog that already has brands is left alone.
func seedProducts(ctx context.Context, catalog *product.Catalog, repo *repository.ProductRepository, productsFile string) error {
	brands, err := repo.ListBrands(ctx)
	if err != nil {
		return errors.Wrap(err, "list brands")
	}
	if len(brands) > 0 {
		slog.Info("catalog already seeded, skipping products", slog.Int("brands", len(brands)))
		return nil
	}

	slog.Info("reading products file", slog.String("path", productsFile))

	data, err := os.ReadFile(productsFile)
	if err != nil {
		return errors.Wrap(err, "read products file")
	}

	var products []productJSON
	if err := json.Unmarshal(data, &products); err != nil {
		return errors.Wrap(err, "parse products JSON")
	}

	slog.Info("creating products", slog.Int("count", len(products)))

	for _, in := range products {
		req := product.CreateRequest{
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Brand:       in.Brand,
			ImageURLs:   in.ImageURLs,
		}
		for _, v := range in.Variants {
			req.Variants = append(req.Variants, product.VariantInput{Name: v.Name, Price: v.Price, Stock: v.Stock})
		}

		p, err := catalog.Create(ctx, req)
		if err != nil {
			return errors.Wrapf(err, "create product %q", in.Title)
		}

		slog.Info("created product", slog.String("id", p.ID), slog.String("slug", p.Slug), slog.Int("variants", len(p.Variants)))
	}

	return nil
}

func seedDiscounts(ctx context.Context, registry *discount.Registry) error {
	slog.Info("seeding demo discounts")

	discounts := []discount.CreateRequest{
		{Code: "SAVE5", Value: decimal.NewFromInt(5), UsageLimit: 100},
		{Code: "WELCO", Value: decimal.NewFromInt(10), UsageLimit: 50},
		{Code: "ONCE1", Value: decimal.NewFromInt(50), UsageLimit: 1},
	}

	for _, req := range discounts {
		d, err := registry.Create(ctx, req)
		if errors.Is(err, discount.ErrDuplicateCode) {
			slog.Info("discount exists, skipping", slog.String("code", req.Code))
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "create discount %s", req.Code)
		}

		slog.Info("created discount", slog.String("code", d.Code), slog.String("value", d.Value.String()), slog.Int("limit", d.UsageLimit))
	}

	return nil
}

func seedAPIKey(ctx context.Context, keys *repository.APIKeyRepository, apiKey, pepper string) error {
	slog.Info("seeding admin API key")

	if err := keys.Upsert(ctx, auth.APIKeyInfo{
		ID:      "default",
		KeyHash: auth.HashKey(apiKey, []byte(pepper)),
		Name:    "Default admin key",
		Scopes:  []string{auth.ScopeAdmin},
	}); err != nil {
		return errors.Wrap(err, "upsert default API key")
	}

	slog.Info("upserted API key", slog.String("id", "default"), slog.String("name", "Default admin key"))

	return nil
}
