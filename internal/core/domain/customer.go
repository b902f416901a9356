package domain

import "github.com/shopspring/decimal"

// Customer represents a billing customer.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Pincode    string `json:"pincode,omitempty"`
	GSTNumber  string `json:"gstNumber,omitempty"`
	Notes      string `json:"notes,omitempty"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// CustomerWithStats is a customer together with billing aggregates over
// their invoices. Produced by the stats query, never persisted.
type CustomerWithStats struct {
	Customer
	InvoiceCount int64           `json:"invoiceCount"`
	TotalBilled  decimal.Decimal `json:"totalBilled"`
}
