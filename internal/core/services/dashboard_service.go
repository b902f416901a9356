package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
)

const (
	recentEntryCount   = 5
	topProductCount    = 5
	revenueMonthWindow = 6
)

type dashboardService struct {
	dashboardRepo portsrepo.DashboardReader
	invoiceRepo   portsrepo.InvoiceReader
	customerRepo  portsrepo.CustomerReader
}

// NewDashboardService creates the dashboard aggregation service.
func NewDashboardService(dashboardRepo portsrepo.DashboardReader, invoiceRepo portsrepo.InvoiceReader, customerRepo portsrepo.CustomerReader) portssvc.DashboardSvcFacade {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := s.dashboardRepo.GetStats(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	recentInvoices, err := s.invoiceRepo.FindRecentInvoices(ctx, recentEntryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}

	recentCustomers, err := s.customerRepo.FindCustomers(ctx, "", recentEntryCount, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent customers: %w", err)
	}

	topProducts, err := s.dashboardRepo.FindTopProducts(ctx, topProductCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}

	monthlyRevenue, err := s.dashboardRepo.FindMonthlyRevenue(ctx, revenueMonthWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly revenue: %w", err)
	}

	return &domain.Dashboard{
		Stats:           *stats,
		RecentInvoices:  recentInvoices,
		RecentCustomers: recentCustomers,
		TopProducts:     topProducts,
		MonthlyRevenue:  monthlyRevenue,
	}, nil
}
