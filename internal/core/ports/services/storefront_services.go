package services

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
)

// OfferSvcFacade defines operations for promotional offers.
type OfferSvcFacade interface {
	// ListCurrentOffers retrieves active offers whose date window contains
	// the current time. This is the public storefront view.
	ListCurrentOffers(ctx context.Context) ([]domain.Offer, error)

	// ListAllOffers retrieves every offer regardless of state.
	ListAllOffers(ctx context.Context) ([]domain.Offer, error)

	// GetOfferByID retrieves an offer by ID.
	GetOfferByID(ctx context.Context, offerID string) (*domain.Offer, error)

	// CreateOffer creates a new offer.
	CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*domain.Offer, error)

	// UpdateOffer applies the provided fields to an existing offer.
	UpdateOffer(ctx context.Context, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error)

	// DeleteOffer removes an offer.
	DeleteOffer(ctx context.Context, offerID string) error
}

// ContactSvcFacade defines operations for the contact inbox.
type ContactSvcFacade interface {
	// SubmitMessage stores a public contact form submission.
	SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error)

	// ListMessages retrieves a page of messages with the total count.
	ListMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error)

	// GetMessageByID retrieves a message by ID.
	GetMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// MarkMessageRead flags a message as read.
	MarkMessageRead(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, messageID string) error
}

// SettingsSvcFacade defines operations for the site settings store.
type SettingsSvcFacade interface {
	// GetSettings returns compiled defaults merged with stored overrides.
	GetSettings(ctx context.Context) (map[string]string, error)

	// UpdateSettings upserts the given key/value pairs and returns the
	// merged result.
	UpdateSettings(ctx context.Context, settings map[string]string) (map[string]string, error)

	// InitializeDefaults writes every compiled default that is not yet
	// stored and returns the merged result.
	InitializeDefaults(ctx context.Context) (map[string]string, error)
}

// DashboardSvcFacade produces the admin dashboard aggregate.
type DashboardSvcFacade interface {
	// GetDashboard assembles counters, recents, rankings and the revenue
	// series.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}
