package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return s.categoryRepo.FindCategories(ctx, activeOnly)
}

func (s *categoryService) ListCategoriesWithCounts(ctx context.Context, activeOnly bool) ([]domain.CategoryWithCount, error) {
	return s.categoryRepo.FindCategoriesWithCounts(ctx, activeOnly)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryBySlug(ctx, slug)
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s for update: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
