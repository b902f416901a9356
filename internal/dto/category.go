package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"` // Defaults to true when omitted
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	ActiveOnly bool `form:"active_only,default=true"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CategoryWithCountResponse is a category plus the number of active products
// assigned to it.
type CategoryWithCountResponse struct {
	CategoryResponse
	ProductCount int64 `json:"productCount"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Slug:          cat.Slug,
		Description:   cat.Description,
		Icon:          cat.Icon,
		DisplayOrder:  cat.DisplayOrder,
		IsActive:      cat.IsActive,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryWithCountResponse converts categories with product counts to DTOs
func ToListCategoryWithCountResponse(categories []domain.CategoryWithCount) []CategoryWithCountResponse {
	res := make([]CategoryWithCountResponse, len(categories))
	for i, cat := range categories {
		res[i] = CategoryWithCountResponse{
			CategoryResponse: ToCategoryResponse(&cat.Category),
			ProductCount:     cat.ProductCount,
		}
	}
	return res
}

// ToListCategoryResponse converts a slice of domain.Category to DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
