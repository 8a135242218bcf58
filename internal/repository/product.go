package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/product"
)

const (
	productColumns = `id, title, normalized_title, slug, description, category, brand, image_urls, created_at`
	variantColumns = `id, product_id, name, price, stock, sold`

	getProductSQL       = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	getProductIDBySlug  = `SELECT id FROM products WHERE slug = $1`
	getProductsByIDsSQL = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	getVariantSQL            = `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`
	getVariantsSQL           = `SELECT ` + variantColumns + ` FROM variants WHERE id = ANY($1)`
	getVariantsByProductsSQL = `SELECT ` + variantColumns + ` FROM variants
		WHERE product_id = ANY($1) ORDER BY product_id, position, id`

	sellVariantSQL = `UPDATE variants SET stock = stock - $2, sold = sold + $2
		WHERE id = $1 AND stock >= $2
		RETURNING ` + variantColumns

	getRatingsSQL = `SELECT id, product_id, user_id, user_name, score, comment, created_at
		FROM product_ratings WHERE product_id = $1 ORDER BY created_at, id`

	insertProductSQL = `INSERT INTO products
		(id, title, normalized_title, slug, description, category, brand, image_urls, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateProductSQL = `UPDATE products SET title = $2, normalized_title = $3, slug = $4,
		description = $5, category = $6, brand = $7, image_urls = $8
		WHERE id = $1`

	upsertVariantSQL = `INSERT INTO variants (id, product_id, name, price, stock, sold, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price,
			stock = EXCLUDED.stock, position = EXCLUDED.position`

	deleteOtherVariantsSQL = `DELETE FROM variants WHERE product_id = $1 AND NOT (id = ANY($2))`

	deleteProductSQL = `DELETE FROM products WHERE id = $1`

	insertRatingSQL = `INSERT INTO product_ratings (id, product_id, user_id, user_name, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	adjustCounterTemplate = `INSERT INTO %[1]s (title, product_count) VALUES ($1, GREATEST($2::int, 0))
		ON CONFLICT (title) DO UPDATE SET product_count = GREATEST(%[1]s.product_count + $2::int, 0)`

	listCountersTemplate = `SELECT title, product_count FROM %s ORDER BY product_count DESC, title`

	// recountTemplate rewrites every counter that disagrees with the product
	// table and returns the old and new values.
	recountTemplate = `WITH actual AS (
			SELECT %[2]s AS title, count(*)::int AS cnt FROM products WHERE %[2]s <> '' GROUP BY %[2]s
		), drift AS (
			SELECT COALESCE(c.title, a.title) AS title,
				COALESCE(c.product_count, 0) AS was,
				COALESCE(a.cnt, 0) AS cnt
			FROM %[1]s c FULL JOIN actual a ON a.title = c.title
			WHERE COALESCE(c.product_count, 0) <> COALESCE(a.cnt, 0)
		), fixed AS (
			INSERT INTO %[1]s (title, product_count) SELECT title, cnt FROM drift
			ON CONFLICT (title) DO UPDATE SET product_count = EXCLUDED.product_count
		)
		SELECT title, was, cnt FROM drift ORDER BY title`
)

var (
	adjustBrandSQL     = fmt.Sprintf(adjustCounterTemplate, "brands")
	adjustCategorySQL  = fmt.Sprintf(adjustCounterTemplate, "categories")
	listBrandsSQL      = fmt.Sprintf(listCountersTemplate, "brands")
	listCategoriesSQL  = fmt.Sprintf(listCountersTemplate, "categories")
	recountBrandsSQL   = fmt.Sprintf(recountTemplate, "brands", "brand")
	recountCategorySQL = fmt.Sprintf(recountTemplate, "categories", "category")
)

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository implements product.Repository backed by PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetVariant returns a single variant by its identifier.
func (r *ProductRepository) GetVariant(ctx context.Context, id string) (*product.Variant, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getVariantSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting variant %q: %w", id, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVariant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrVariantNotFound
		}
		return nil, fmt.Errorf("getting variant %q: %w", id, err)
	}
	return &v, nil
}

// GetVariants returns variants matching any of the given IDs.
func (r *ProductRepository) GetVariants(ctx context.Context, ids []string) ([]product.Variant, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getVariantsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting variants by ids: %w", err)
	}
	return pgx.CollectRows(rows, scanVariant)
}

// Sell moves quantity units from stock to sold. The stock condition and the
// update are one statement, so concurrent sales cannot drive stock negative.
func (r *ProductRepository) Sell(ctx context.Context, id string, quantity int) (*product.Variant, error) {
	if quantity <= 0 {
		return nil, product.ErrInvalidQuantity
	}

	rows, err := conn(ctx, r.pool).Query(ctx, sellVariantSQL, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("selling variant %q: %w", id, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVariant)
	if err == nil {
		return &v, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("selling variant %q: %w", id, err)
	}

	cur, err := r.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	return cur, product.ErrInsufficientStock
}

// GetProduct returns a product with its variants and ratings.
func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	q := conn(ctx, r.pool)
	rows, err := q.Query(ctx, getProductSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	rows, err = q.Query(ctx, getVariantsByProductsSQL, []string{id})
	if err != nil {
		return nil, fmt.Errorf("getting variants of %q: %w", id, err)
	}
	if p.Variants, err = pgx.CollectRows(rows, scanVariant); err != nil {
		return nil, fmt.Errorf("getting variants of %q: %w", id, err)
	}

	rows, err = q.Query(ctx, getRatingsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting ratings of %q: %w", id, err)
	}
	if p.Ratings, err = pgx.CollectRows(rows, scanRating); err != nil {
		return nil, fmt.Errorf("getting ratings of %q: %w", id, err)
	}

	return &p, nil
}

// GetProductBySlug returns the product with the given slug, with its
// variants and ratings.
func (r *ProductRepository) GetProductBySlug(ctx context.Context, slug string) (*product.Product, error) {
	var id string
	err := conn(ctx, r.pool).QueryRow(ctx, getProductIDBySlug, slug).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("getting product by slug %q: %w", slug, err)
	}
	return r.GetProduct(ctx, id)
}

// GetProductsByIDs returns products matching any of the given IDs with
// their variants attached. Ratings are not loaded.
func (r *ProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	q := conn(ctx, r.pool)
	rows, err := q.Query(ctx, getProductsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting products by ids: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("getting products by ids: %w", err)
	}

	rows, err = q.Query(ctx, getVariantsByProductsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting variants by product ids: %w", err)
	}
	variants, err := pgx.CollectRows(rows, scanVariant)
	if err != nil {
		return nil, fmt.Errorf("getting variants by product ids: %w", err)
	}

	byProduct := make(map[string][]product.Variant, len(products))
	for _, v := range variants {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for i := range products {
		products[i].Variants = byProduct[products[i].ID]
	}
	return products, nil
}

// CreateProduct inserts a product and its variants. Callers wrap it in a
// transaction to make the inserts atomic.
func (r *ProductRepository) CreateProduct(ctx context.Context, p *product.Product) error {
	q := conn(ctx, r.pool)
	_, err := q.Exec(ctx, insertProductSQL,
		p.ID, p.Title, p.NormalizedTitle, p.Slug, p.Description,
		p.Category, p.Brand, imageURLs(p.ImageURLs), p.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err, productSlugKey) {
			return product.ErrDuplicateSlug
		}
		return fmt.Errorf("creating product %q: %w", p.ID, err)
	}
	return r.upsertVariants(ctx, q, p)
}

// UpdateProduct overwrites product fields, upserts the given variants and
// deletes the rest. Sold counters of existing variants are left as stored.
func (r *ProductRepository) UpdateProduct(ctx context.Context, p *product.Product) error {
	q := conn(ctx, r.pool)
	tag, err := q.Exec(ctx, updateProductSQL,
		p.ID, p.Title, p.NormalizedTitle, p.Slug, p.Description,
		p.Category, p.Brand, imageURLs(p.ImageURLs),
	)
	if err != nil {
		if isConstraintViolation(err, productSlugKey) {
			return product.ErrDuplicateSlug
		}
		return fmt.Errorf("updating product %q: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	keep := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		keep = append(keep, v.ID)
	}
	if _, err := q.Exec(ctx, deleteOtherVariantsSQL, p.ID, keep); err != nil {
		return fmt.Errorf("pruning variants of %q: %w", p.ID, err)
	}
	return r.upsertVariants(ctx, q, p)
}

func (r *ProductRepository) upsertVariants(ctx context.Context, q querier, p *product.Product) error {
	for i, v := range p.Variants {
		_, err := q.Exec(ctx, upsertVariantSQL, v.ID, p.ID, v.Name, v.Price, v.Stock, v.Sold, i)
		if err != nil {
			return fmt.Errorf("upserting variant %q: %w", v.ID, err)
		}
	}
	return nil
}

// DeleteProduct removes a product; variants and ratings cascade.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, deleteProductSQL, id)
	if err != nil {
		return fmt.Errorf("deleting product %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// AddRating inserts a rating.
func (r *ProductRepository) AddRating(ctx context.Context, rt *product.Rating) error {
	_, err := conn(ctx, r.pool).Exec(ctx, insertRatingSQL,
		rt.ID, rt.ProductID, rt.UserID, rt.UserName, rt.Score, rt.Comment, rt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("adding rating to %q: %w", rt.ProductID, err)
	}
	return nil
}

// AdjustBrand moves the product count of a brand by delta.
func (r *ProductRepository) AdjustBrand(ctx context.Context, title string, delta int) error {
	if _, err := conn(ctx, r.pool).Exec(ctx, adjustBrandSQL, title, delta); err != nil {
		return fmt.Errorf("adjusting brand %q: %w", title, err)
	}
	return nil
}

// AdjustCategory moves the product count of a category by delta.
func (r *ProductRepository) AdjustCategory(ctx context.Context, title string, delta int) error {
	if _, err := conn(ctx, r.pool).Exec(ctx, adjustCategorySQL, title, delta); err != nil {
		return fmt.Errorf("adjusting category %q: %w", title, err)
	}
	return nil
}

// ListBrands returns brand counters, most used first.
func (r *ProductRepository) ListBrands(ctx context.Context) ([]product.Counter, error) {
	return r.listCounters(ctx, listBrandsSQL)
}

// ListCategories returns category counters, most used first.
func (r *ProductRepository) ListCategories(ctx context.Context) ([]product.Counter, error) {
	return r.listCounters(ctx, listCategoriesSQL)
}

func (r *ProductRepository) listCounters(ctx context.Context, sql string) ([]product.Counter, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("listing counters: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (product.Counter, error) {
		var c product.Counter
		err := row.Scan(&c.Title, &c.ProductCount)
		return c, err
	})
}

// RecountCounters recomputes brand and category counters from the product
// table in one transaction.
func (r *ProductRepository) RecountCounters(ctx context.Context) ([]product.Correction, error) {
	var out []product.Correction
	err := NewTxManager(r.pool).InTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.pool)
		for _, k := range []struct {
			kind string
			sql  string
		}{
			{kind: "brand", sql: recountBrandsSQL},
			{kind: "category", sql: recountCategorySQL},
		} {
			rows, err := q.Query(ctx, k.sql)
			if err != nil {
				return fmt.Errorf("recounting %s counters: %w", k.kind, err)
			}
			fixed, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (product.Correction, error) {
				c := product.Correction{Kind: k.kind}
				err := row.Scan(&c.Title, &c.Was, &c.Now)
				return c, err
			})
			if err != nil {
				return fmt.Errorf("recounting %s counters: %w", k.kind, err)
			}
			out = append(out, fixed...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func imageURLs(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Title, &p.NormalizedTitle, &p.Slug, &p.Description,
		&p.Category, &p.Brand, &p.ImageURLs, &p.CreatedAt,
	)
	return p, err
}

func scanVariant(row pgx.CollectableRow) (product.Variant, error) {
	var v product.Variant
	err := row.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.Stock, &v.Sold)
	return v, err
}

func scanRating(row pgx.CollectableRow) (product.Rating, error) {
	var rt product.Rating
	err := row.Scan(&rt.ID, &rt.ProductID, &rt.UserID, &rt.UserName, &rt.Score, &rt.Comment, &rt.CreatedAt)
	return rt, err
}
