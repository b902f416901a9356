package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest defines the data needed to create a new offer.
type CreateOfferRequest struct {
	Title              string           `json:"title" binding:"required"`
	Description        string           `json:"description"`
	ImageURL           string           `json:"imageURL"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	OfferCode          string           `json:"offerCode"`
	StartDate          *time.Time       `json:"startDate"`
	EndDate            *time.Time       `json:"endDate"`
	DisplayOrder       int              `json:"displayOrder"`
	IsActive           *bool            `json:"isActive"` // Defaults to true when omitted
}

// UpdateOfferRequest defines the data allowed for updating an offer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOfferRequest struct {
	Title              *string          `json:"title"`
	Description        *string          `json:"description"`
	ImageURL           *string          `json:"imageURL"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	OfferCode          *string          `json:"offerCode"`
	StartDate          *time.Time       `json:"startDate"`
	EndDate            *time.Time       `json:"endDate"`
	DisplayOrder       *int             `json:"displayOrder"`
	IsActive           *bool            `json:"isActive"`
}

// OfferResponse defines the data returned for an offer.
type OfferResponse struct {
	OfferID            string           `json:"offerID"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	ImageURL           string           `json:"imageURL,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	OfferCode          string           `json:"offerCode,omitempty"`
	StartDate          *time.Time       `json:"startDate,omitempty"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
	DisplayOrder       int              `json:"displayOrder"`
	IsActive           bool             `json:"isActive"`
	CreatedAt          time.Time        `json:"createdAt"`
	LastUpdatedAt      time.Time        `json:"lastUpdatedAt"`
}

// ToOfferResponse converts a domain.Offer to OfferResponse DTO
func ToOfferResponse(offer *domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:            offer.OfferID,
		Title:              offer.Title,
		Description:        offer.Description,
		ImageURL:           offer.ImageURL,
		DiscountPercentage: offer.DiscountPercentage,
		OfferCode:          offer.OfferCode,
		StartDate:          offer.StartDate,
		EndDate:            offer.EndDate,
		DisplayOrder:       offer.DisplayOrder,
		IsActive:           offer.IsActive,
		CreatedAt:          offer.CreatedAt,
		LastUpdatedAt:      offer.LastUpdatedAt,
	}
}

// ToListOfferResponse converts a slice of domain.Offer to DTOs
func ToListOfferResponse(offers []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i, offer := range offers {
		res[i] = ToOfferResponse(&offer)
	}
	return res
}
