package domain

import "github.com/shopspring/decimal"

// Product represents an item in the catalog.
type Product struct {
	ProductID        string          `json:"productID"`            // Primary Key (UUID)
	CategoryID       *string         `json:"categoryID,omitempty"` // Nullable foreign key
	Name             string          `json:"name"`
	Slug             string          `json:"slug"` // Unique, URL-safe identifier
	Brand            string          `json:"brand,omitempty"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	ImageURL         string          `json:"imageURL,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Unit             string          `json:"unit"` // e.g. "piece", "metre", "kg"
	StockQuantity    int             `json:"stockQuantity"`
	IsFeatured       bool            `json:"isFeatured"`
	IsActive         bool            `json:"isActive"`
	AuditFields

	// Resolved from the category at read time; not persisted on the product.
	CategoryName string `json:"categoryName,omitempty"`
	CategorySlug string `json:"categorySlug,omitempty"`
}
