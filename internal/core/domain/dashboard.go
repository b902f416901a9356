package domain

import "github.com/shopspring/decimal"

// DashboardStats are the headline counters shown on the admin dashboard.
// Revenue sums only count invoices whose payment status is paid.
type DashboardStats struct {
	TotalProducts    int64
	TotalCategories  int64
	TotalCustomers   int64
	TotalInvoices    int64
	PendingInvoices  int64
	UnreadMessages   int64
	ActiveOffers     int64
	TotalRevenue     decimal.Decimal
	RevenueThisMonth decimal.Decimal
}

// TopProduct is one row of the most-billed products ranking, grouped by the
// item snapshot name so deleted catalog products still count.
type TopProduct struct {
	ProductName string
	TimesBilled int64
	TotalAmount decimal.Decimal
}

// MonthlyRevenue is one month of paid-invoice revenue, keyed YYYY-MM.
type MonthlyRevenue struct {
	Month   string
	Revenue decimal.Decimal
}

// Dashboard is the full admin dashboard aggregate.
type Dashboard struct {
	Stats           DashboardStats
	RecentInvoices  []Invoice
	RecentCustomers []Customer
	TopProducts     []TopProduct
	MonthlyRevenue  []MonthlyRevenue
}
