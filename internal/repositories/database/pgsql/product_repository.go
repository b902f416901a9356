package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// productColumns joins the category so name and slug resolve at read time.
const productColumns = `p.product_id, p.category_id, p.name, p.slug, p.brand, p.description, p.short_description,
	p.image_url, p.price, p.unit, p.stock_quantity, p.is_featured, p.is_active, p.created_at, p.last_updated_at,
	COALESCE(c.name, ''), COALESCE(c.slug, '')`

const productFrom = ` FROM products p LEFT JOIN categories c ON c.category_id = p.category_id`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID,
		&p.CategoryID,
		&p.Name,
		&p.Slug,
		&p.Brand,
		&p.Description,
		&p.ShortDescription,
		&p.ImageURL,
		&p.Price,
		&p.Unit,
		&p.StockQuantity,
		&p.IsFeatured,
		&p.IsActive,
		&p.CreatedAt,
		&p.LastUpdatedAt,
		&p.CategoryName,
		&p.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// productWhere builds the WHERE clause for a filter. Arguments are appended
// to args and referenced positionally.
func productWhere(filter portsrepo.ProductFilter, args *[]any) string {
	var conds []string
	add := func(val any) string {
		*args = append(*args, val)
		return "$" + strconv.Itoa(len(*args))
	}

	if filter.ActiveOnly {
		conds = append(conds, "p.is_active = TRUE")
	}
	if filter.CategoryID != "" {
		conds = append(conds, "p.category_id = "+add(filter.CategoryID))
	}
	if filter.CategorySlug != "" {
		conds = append(conds, "c.slug = "+add(filter.CategorySlug))
	}
	if filter.Featured != nil {
		conds = append(conds, "p.is_featured = "+add(*filter.Featured))
	}
	if filter.Search != "" {
		ph := add("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %s OR p.description ILIKE %s OR p.brand ILIKE %s)", ph, ph, ph))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var args []any
	where := productWhere(filter, &args)

	var total int64
	countQuery := `SELECT COUNT(*)` + productFrom + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := `SELECT ` + productColumns + productFrom + where +
		` ORDER BY p.created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return products, total, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.product_id = $1;`
	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

func (r *PgxProductRepository) FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.slug = $1;`
	product, err := scanProduct(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by slug %s: %w", slug, err)
	}
	return product, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, category_id, name, slug, brand, description, short_description,
			image_url, price, unit, stock_quantity, is_featured, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.CategoryID,
		product.Name,
		product.Slug,
		product.Brand,
		product.Description,
		product.ShortDescription,
		product.ImageURL,
		product.Price,
		product.Unit,
		product.StockQuantity,
		product.IsFeatured,
		product.IsActive,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product slug %s already exists: %w", product.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, brand = $5, description = $6, short_description = $7,
			image_url = $8, price = $9, unit = $10, stock_quantity = $11, is_featured = $12, is_active = $13,
			last_updated_at = $14
		WHERE product_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.CategoryID,
		product.Name,
		product.Slug,
		product.Brand,
		product.Description,
		product.ShortDescription,
		product.ImageURL,
		product.Price,
		product.Unit,
		product.StockQuantity,
		product.IsFeatured,
		product.IsActive,
		product.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product slug %s already exists: %w", product.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
