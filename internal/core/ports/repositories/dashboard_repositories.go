package repositories

import (
	"context"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// DashboardReader defines the aggregate queries behind the admin dashboard.
// These are read-only rollups; all writes happen through the entity
// repositories.
type DashboardReader interface {
	// GetStats computes the headline counters. monthStart bounds the
	// this-month revenue sum.
	GetStats(ctx context.Context, monthStart time.Time) (*domain.DashboardStats, error)

	// FindTopProducts ranks invoice items by how often their snapshot name
	// was billed.
	FindTopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)

	// FindMonthlyRevenue returns paid revenue grouped by month for the last
	// given number of months, oldest first.
	FindMonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error)
}
