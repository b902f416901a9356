package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, phone, email, address, city, state, pincode, gst_number, notes, is_active, created_at, last_updated_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.City,
		&c.State,
		&c.Pincode,
		&c.GSTNumber,
		&c.Notes,
		&c.IsActive,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, phone, email, address, city, state, pincode, gst_number, notes, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.City,
		customer.State,
		customer.Pincode,
		customer.GSTNumber,
		customer.Notes,
		customer.IsActive,
		customer.CreatedAt,
		customer.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, city = $6, state = $7, pincode = $8,
			gst_number = $9, notes = $10, is_active = $11, last_updated_at = $12
		WHERE customer_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.City,
		customer.State,
		customer.Pincode,
		customer.GSTNumber,
		customer.Notes,
		customer.IsActive,
		customer.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR phone ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) FindCustomersWithStats(ctx context.Context, limit, offset int) ([]domain.CustomerWithStats, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT c.customer_id, c.name, c.phone, c.email, c.address, c.city, c.state, c.pincode, c.gst_number,
		       c.notes, c.is_active, c.created_at, c.last_updated_at,
		       COUNT(i.invoice_id) AS invoice_count,
		       COALESCE(SUM(i.total_amount), 0) AS total_billed
		FROM customers c
		LEFT JOIN invoices i ON i.customer_id = c.customer_id
		GROUP BY c.customer_id
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers with stats: %w", err)
	}
	defer rows.Close()

	var result []domain.CustomerWithStats
	for rows.Next() {
		var c domain.CustomerWithStats
		err := rows.Scan(
			&c.CustomerID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.City,
			&c.State,
			&c.Pincode,
			&c.GSTNumber,
			&c.Notes,
			&c.IsActive,
			&c.CreatedAt,
			&c.LastUpdatedAt,
			&c.InvoiceCount,
			&c.TotalBilled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer stats row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer stats rows: %w", err)
	}
	return result, nil
}
