package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/whatsapp"
	"github.com/google/uuid"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	business    whatsapp.BusinessInfo
}

// NewProductService creates the product service. business feeds the WhatsApp
// enquiry message template.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, business whatsapp.BusinessInfo) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, business: business}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, int64, error) {
	filter := portsrepo.ProductFilter{
		CategoryID:   params.CategoryID,
		CategorySlug: params.CategorySlug,
		Featured:     params.Featured,
		ActiveOnly:   params.ActiveOnly,
		Search:       params.Search,
		Limit:        params.Limit,
		Offset:       params.Offset,
	}
	return s.productRepo.FindProducts(ctx, filter)
}

func (s *productService) ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	featured := true
	products, _, err := s.productRepo.FindProducts(ctx, portsrepo.ProductFilter{
		Featured:   &featured,
		ActiveOnly: true,
		Limit:      limit,
	})
	return products, err
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.productRepo.FindProductBySlug(ctx, slug)
}

func (s *productService) EnquiryLink(ctx context.Context, productID string) (string, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("failed to load product %s for enquiry link: %w", productID, err)
	}
	return whatsapp.ProductEnquiryLink(s.business, product.Name, product.Brand), nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now()
	product := domain.Product{
		ProductID:        uuid.NewString(),
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Slug:             req.Slug,
		Brand:            req.Brand,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		Price:            req.Price,
		Unit:             req.Unit,
		StockQuantity:    req.StockQuantity,
		IsFeatured:       req.IsFeatured,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s for update: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			product.CategoryID = nil
		} else {
			product.CategoryID = req.CategoryID
		}
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
