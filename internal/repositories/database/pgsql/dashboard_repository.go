package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDashboardRepository struct {
	db *pgxpool.Pool
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardReader {
	return &PgxDashboardRepository{db: db}
}

// Ensure PgxDashboardRepository implements portsrepo.DashboardReader
var _ portsrepo.DashboardReader = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) GetStats(ctx context.Context, monthStart time.Time) (*domain.DashboardStats, error) {
	// One round trip for all counters. Revenue counts paid invoices only.
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active),
			(SELECT COUNT(*) FROM categories WHERE is_active),
			(SELECT COUNT(*) FROM customers WHERE is_active),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM invoices WHERE payment_status = 'pending'),
			(SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE),
			(SELECT COUNT(*) FROM offers WHERE is_active),
			(SELECT COALESCE(SUM(total_amount), 0) FROM invoices WHERE payment_status = 'paid'),
			(SELECT COALESCE(SUM(total_amount), 0) FROM invoices WHERE payment_status = 'paid' AND invoice_date >= $1);
	`
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query, monthStart).Scan(
		&stats.TotalProducts,
		&stats.TotalCategories,
		&stats.TotalCustomers,
		&stats.TotalInvoices,
		&stats.PendingInvoices,
		&stats.UnreadMessages,
		&stats.ActiveOffers,
		&stats.TotalRevenue,
		&stats.RevenueThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return &stats, nil
}

func (r *PgxDashboardRepository) FindTopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	// Grouped by the snapshot name so items of deleted products still count.
	query := `
		SELECT product_name, COUNT(*) AS times_billed, COALESCE(SUM(total_amount), 0) AS total_amount
		FROM invoice_items
		GROUP BY product_name
		ORDER BY times_billed DESC, total_amount DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top products: %w", err)
	}
	defer rows.Close()

	var result []domain.TopProduct
	for rows.Next() {
		var tp domain.TopProduct
		if err := rows.Scan(&tp.ProductName, &tp.TimesBilled, &tp.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan top product row: %w", err)
		}
		result = append(result, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top product rows: %w", err)
	}
	return result, nil
}

func (r *PgxDashboardRepository) FindMonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error) {
	if months <= 0 {
		months = 6
	}
	query := `
		SELECT to_char(date_trunc('month', invoice_date), 'YYYY-MM') AS month,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM invoices
		WHERE payment_status = 'paid'
		  AND invoice_date >= date_trunc('month', now()) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyRevenue
	for rows.Next() {
		var mr domain.MonthlyRevenue
		if err := rows.Scan(&mr.Month, &mr.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue row: %w", err)
		}
		result = append(result, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly revenue rows: %w", err)
	}
	return result, nil
}
