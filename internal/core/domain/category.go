package domain

// Category represents a product category in the catalog.
type Category struct {
	CategoryID   string `json:"categoryID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Slug         string `json:"slug"` // Unique, URL-safe identifier
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// CategoryWithCount is a category together with the number of active
// products assigned to it. Produced by the listing query, never persisted.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"productCount"`
}
