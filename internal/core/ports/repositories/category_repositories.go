package repositories

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryBySlug retrieves a category by its unique slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// FindCategories retrieves categories ordered by display order.
	FindCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)

	// FindCategoriesWithCounts retrieves categories with their active product counts.
	FindCategoriesWithCounts(ctx context.Context, activeOnly bool) ([]domain.CategoryWithCount, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Products referencing it keep a null
	// category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
