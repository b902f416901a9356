package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, slug, description, icon, display_order, is_active, created_at, last_updated_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.CategoryID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.Icon,
		&c.DisplayOrder,
		&c.IsActive,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, slug, description, icon, display_order, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Slug,
		category.Description,
		category.Icon,
		category.DisplayOrder,
		category.IsActive,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category slug %s already exists: %w", category.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, icon = $5, display_order = $6, is_active = $7, last_updated_at = $8
		WHERE category_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Slug,
		category.Description,
		category.Icon,
		category.DisplayOrder,
		category.IsActive,
		category.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category slug %s already exists: %w", category.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	// Detach products first so the FK does not block the delete.
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE products SET category_id = NULL WHERE category_id = $1;`, categoryID); err != nil {
		return fmt.Errorf("failed to detach products from category %s: %w", categoryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	category, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return category, nil
}

func (r *PgxCategoryRepository) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1;`
	category, err := scanCategory(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by slug %s: %w", slug, err)
	}
	return category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoriesWithCounts(ctx context.Context, activeOnly bool) ([]domain.CategoryWithCount, error) {
	query := `
		SELECT c.category_id, c.name, c.slug, c.description, c.icon, c.display_order, c.is_active, c.created_at, c.last_updated_at,
		       COUNT(p.product_id) FILTER (WHERE p.is_active) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.category_id`
	if activeOnly {
		query += ` WHERE c.is_active = TRUE`
	}
	query += `
		GROUP BY c.category_id
		ORDER BY c.display_order, c.name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories with counts: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryWithCount
	for rows.Next() {
		var c domain.CategoryWithCount
		err := rows.Scan(
			&c.CategoryID,
			&c.Name,
			&c.Slug,
			&c.Description,
			&c.Icon,
			&c.DisplayOrder,
			&c.IsActive,
			&c.CreatedAt,
			&c.LastUpdatedAt,
			&c.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category count row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category count rows: %w", err)
	}
	return result, nil
}
