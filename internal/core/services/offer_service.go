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

type offerService struct {
	offerRepo portsrepo.OfferRepositoryFacade
}

// NewOfferService creates the offer service.
func NewOfferService(offerRepo portsrepo.OfferRepositoryFacade) portssvc.OfferSvcFacade {
	return &offerService{offerRepo: offerRepo}
}

var _ portssvc.OfferSvcFacade = (*offerService)(nil)

func (s *offerService) ListCurrentOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offerRepo.FindOffers(ctx, true, time.Now())
}

func (s *offerService) ListAllOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offerRepo.FindOffers(ctx, false, time.Now())
}

func (s *offerService) GetOfferByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	return s.offerRepo.FindOfferByID(ctx, offerID)
}

func (s *offerService) CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*domain.Offer, error) {
	now := time.Now()
	offer := domain.Offer{
		OfferID:            uuid.NewString(),
		Title:              req.Title,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		DiscountPercentage: req.DiscountPercentage,
		OfferCode:          req.OfferCode,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		DisplayOrder:       req.DisplayOrder,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := s.offerRepo.SaveOffer(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return &offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offer %s for update: %w", offerID, err)
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.ImageURL != nil {
		offer.ImageURL = *req.ImageURL
	}
	if req.DiscountPercentage != nil {
		offer.DiscountPercentage = req.DiscountPercentage
	}
	if req.OfferCode != nil {
		offer.OfferCode = *req.OfferCode
	}
	if req.StartDate != nil {
		offer.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		offer.EndDate = req.EndDate
	}
	if req.DisplayOrder != nil {
		offer.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}
	offer.LastUpdatedAt = time.Now()

	if err := s.offerRepo.UpdateOffer(ctx, *offer); err != nil {
		return nil, fmt.Errorf("failed to update offer %s: %w", offerID, err)
	}
	return offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, offerID string) error {
	return s.offerRepo.DeleteOffer(ctx, offerID)
}
