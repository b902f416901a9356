package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer represents a promotional offer shown on the storefront.
type Offer struct {
	OfferID            string           `json:"offerID"` // Primary Key (UUID)
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	ImageURL           string           `json:"imageURL,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	OfferCode          string           `json:"offerCode,omitempty"`
	StartDate          *time.Time       `json:"startDate,omitempty"` // Nil means no lower bound
	EndDate            *time.Time       `json:"endDate,omitempty"`   // Nil means no upper bound
	DisplayOrder       int              `json:"displayOrder"`
	IsActive           bool             `json:"isActive"`
	AuditFields
}
