package repositories

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// ProductFilter narrows a product listing. Zero values mean "no constraint"
// except ActiveOnly, which callers set explicitly.
type ProductFilter struct {
	CategoryID   string
	CategorySlug string
	Featured     *bool
	ActiveOnly   bool
	Search       string // Matches name, description and brand
	Limit        int
	Offset       int
}

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductBySlug retrieves a product by its unique slug.
	FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// FindProducts retrieves a filtered page of products, newest first,
	// along with the total match count for the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Invoice items keep their snapshot of
	// the product name.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
