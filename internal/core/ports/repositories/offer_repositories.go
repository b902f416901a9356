package repositories

import (
	"context"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// OfferReader defines read operations for offer data
type OfferReader interface {
	// FindOfferByID retrieves a specific offer by its ID.
	FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error)

	// FindOffers retrieves offers ordered by display order. When currentOnly
	// is set, only active offers whose date window contains now are returned.
	FindOffers(ctx context.Context, currentOnly bool, now time.Time) ([]domain.Offer, error)
}

// OfferWriter defines write operations for offer data
type OfferWriter interface {
	// SaveOffer persists a new offer.
	SaveOffer(ctx context.Context, offer domain.Offer) error

	// UpdateOffer updates an existing offer.
	UpdateOffer(ctx context.Context, offer domain.Offer) error

	// DeleteOffer removes an offer.
	DeleteOffer(ctx context.Context, offerID string) error
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
}
