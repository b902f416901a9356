package dto

import (
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the headline counters block of the admin
// dashboard.
type DashboardStatsResponse struct {
	TotalProducts    int64           `json:"totalProducts"`
	TotalCategories  int64           `json:"totalCategories"`
	TotalCustomers   int64           `json:"totalCustomers"`
	TotalInvoices    int64           `json:"totalInvoices"`
	PendingInvoices  int64           `json:"pendingInvoices"`
	UnreadMessages   int64           `json:"unreadMessages"`
	ActiveOffers     int64           `json:"activeOffers"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	RevenueThisMonth decimal.Decimal `json:"revenueThisMonth"`
}

// TopProductResponse is one entry in the most-billed products ranking.
type TopProductResponse struct {
	ProductName string          `json:"productName"`
	TimesBilled int64           `json:"timesBilled"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// MonthlyRevenueResponse is one month in the revenue series.
type MonthlyRevenueResponse struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Stats           DashboardStatsResponse   `json:"stats"`
	RecentInvoices  []InvoiceResponse        `json:"recentInvoices"`
	RecentCustomers []CustomerResponse       `json:"recentCustomers"`
	TopProducts     []TopProductResponse     `json:"topProducts"`
	MonthlyRevenue  []MonthlyRevenueResponse `json:"monthlyRevenue"`
}

// ToDashboardResponse converts the domain dashboard aggregate to its DTO
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalProducts:    d.Stats.TotalProducts,
			TotalCategories:  d.Stats.TotalCategories,
			TotalCustomers:   d.Stats.TotalCustomers,
			TotalInvoices:    d.Stats.TotalInvoices,
			PendingInvoices:  d.Stats.PendingInvoices,
			UnreadMessages:   d.Stats.UnreadMessages,
			ActiveOffers:     d.Stats.ActiveOffers,
			TotalRevenue:     d.Stats.TotalRevenue,
			RevenueThisMonth: d.Stats.RevenueThisMonth,
		},
		RecentInvoices:  ToListInvoiceResponse(d.RecentInvoices),
		RecentCustomers: ToListCustomerResponse(d.RecentCustomers),
		TopProducts:     ToTopProductResponses(d.TopProducts),
		MonthlyRevenue:  ToMonthlyRevenueResponses(d.MonthlyRevenue),
	}
}

// ToTopProductResponses converts domain rankings to DTOs
func ToTopProductResponses(rows []domain.TopProduct) []TopProductResponse {
	res := make([]TopProductResponse, len(rows))
	for i, row := range rows {
		res[i] = TopProductResponse{
			ProductName: row.ProductName,
			TimesBilled: row.TimesBilled,
			TotalAmount: row.TotalAmount,
		}
	}
	return res
}

// ToMonthlyRevenueResponses converts the domain revenue series to DTOs
func ToMonthlyRevenueResponses(rows []domain.MonthlyRevenue) []MonthlyRevenueResponse {
	res := make([]MonthlyRevenueResponse, len(rows))
	for i, row := range rows {
		res[i] = MonthlyRevenueResponse{Month: row.Month, Revenue: row.Revenue}
	}
	return res
}
