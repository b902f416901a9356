package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	Slug             string          `json:"slug" binding:"required"`
	CategoryID       *string         `json:"categoryID"` // Optional, use pointer for nullability
	Brand            string          `json:"brand"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	ImageURL         string          `json:"imageURL"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Unit             string          `json:"unit"`
	StockQuantity    int             `json:"stockQuantity" binding:"omitempty,gte=0"`
	IsFeatured       bool            `json:"isFeatured"`
	IsActive         *bool           `json:"isActive"` // Defaults to true when omitted
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Slug             *string          `json:"slug"`
	CategoryID       *string          `json:"categoryID"`
	Brand            *string          `json:"brand"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"shortDescription"`
	ImageURL         *string          `json:"imageURL"`
	Price            *decimal.Decimal `json:"price"`
	Unit             *string          `json:"unit"`
	StockQuantity    *int             `json:"stockQuantity" binding:"omitempty,gte=0"`
	IsFeatured       *bool            `json:"isFeatured"`
	IsActive         *bool            `json:"isActive"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	CategoryID   string `form:"category_id"`
	CategorySlug string `form:"category_slug"`
	Featured     *bool  `form:"featured"`
	ActiveOnly   bool   `form:"active_only,default=true"`
	Search       string `form:"search"`
	Limit        int    `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset       int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID        string          `json:"productID"`
	CategoryID       *string         `json:"categoryID,omitempty"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Brand            string          `json:"brand,omitempty"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	ImageURL         string          `json:"imageURL,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Unit             string          `json:"unit"`
	StockQuantity    int             `json:"stockQuantity"`
	IsFeatured       bool            `json:"isFeatured"`
	IsActive         bool            `json:"isActive"`
	CategoryName     string          `json:"categoryName,omitempty"`
	CategorySlug     string          `json:"categorySlug,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ListProductsResponse wraps the product list with its paging window.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// WhatsAppLinkResponse carries a pre-built click-to-chat URL.
type WhatsAppLinkResponse struct {
	WhatsAppURL string `json:"whatsappURL"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:        p.ProductID,
		CategoryID:       p.CategoryID,
		Name:             p.Name,
		Slug:             p.Slug,
		Brand:            p.Brand,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		ImageURL:         p.ImageURL,
		Price:            p.Price,
		Unit:             p.Unit,
		StockQuantity:    p.StockQuantity,
		IsFeatured:       p.IsFeatured,
		IsActive:         p.IsActive,
		CategoryName:     p.CategoryName,
		CategorySlug:     p.CategorySlug,
		CreatedAt:        p.CreatedAt,
		LastUpdatedAt:    p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
