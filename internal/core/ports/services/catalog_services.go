package services

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
)

// CategoryReaderSvc defines read operations for categories
type CategoryReaderSvc interface {
	// ListCategories retrieves categories ordered by display order.
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)

	// ListCategoriesWithCounts retrieves categories with active product counts.
	ListCategoriesWithCounts(ctx context.Context, activeOnly bool) ([]domain.CategoryWithCount, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// GetCategoryBySlug retrieves a category by its slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories
type CategoryWriterSvc interface {
	// CreateCategory creates a new category. A duplicate slug is a conflict.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies the provided fields to an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	// ListProducts retrieves a filtered page of products with the total count.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, int64, error)

	// ListFeaturedProducts retrieves active featured products.
	ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error)

	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductBySlug retrieves a product by its slug.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// EnquiryLink builds a WhatsApp enquiry link for the product.
	EnquiryLink(ctx context.Context, productID string) (string, error)
}

// ProductWriterSvc defines write operations for products
type ProductWriterSvc interface {
	// CreateProduct creates a new product. A duplicate slug is a conflict.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies the provided fields to an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all product service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
