package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// invoiceColumns joins the customer so the snapshot fields resolve at read
// time. Customer edits therefore show on historical invoices too.
const invoiceColumns = `i.invoice_id, i.invoice_number, i.customer_id, i.invoice_date, i.due_date,
	i.subtotal, i.tax_amount, i.discount_amount, i.total_amount, i.status, i.payment_status, i.notes,
	i.created_by, i.created_at, i.last_updated_at,
	COALESCE(c.name, ''), COALESCE(c.phone, ''), COALESCE(c.address, ''), COALESCE(c.gst_number, '')`

const invoiceFrom = ` FROM invoices i LEFT JOIN customers c ON c.customer_id = i.customer_id`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.CustomerID,
		&inv.InvoiceDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.DiscountAmount,
		&inv.TotalAmount,
		&inv.Status,
		&inv.PaymentStatus,
		&inv.Notes,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.LastUpdatedAt,
		&inv.CustomerName,
		&inv.CustomerPhone,
		&inv.CustomerAddress,
		&inv.CustomerGST,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) SaveInvoiceWithItems(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin invoice transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	invoiceQuery := `
		INSERT INTO invoices (invoice_id, invoice_number, customer_id, invoice_date, due_date,
			subtotal, tax_amount, discount_amount, total_amount, status, payment_status, notes,
			created_by, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.Subtotal,
		invoice.TaxAmount,
		invoice.DiscountAmount,
		invoice.TotalAmount,
		invoice.Status,
		invoice.PaymentStatus,
		invoice.Notes,
		invoice.CreatedBy,
		invoice.CreatedAt,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, product_id, product_name, description,
			quantity, unit, unit_price, tax_rate, discount_rate, tax_amount, discount_amount,
			total_amount, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for pos, item := range invoice.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ItemID,
			invoice.InvoiceID,
			item.ProductID,
			item.ProductName,
			item.Description,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.TaxRate,
			item.DiscountRate,
			item.TaxAmount,
			item.DiscountAmount,
			item.TotalAmount,
			pos,
			item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save invoice item %d: %w", pos+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice transaction: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $2, invoice_date = $3, due_date = $4, status = $5, payment_status = $6,
			notes = $7, last_updated_at = $8
		WHERE invoice_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.CustomerID,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.Status,
		invoice.PaymentStatus,
		invoice.Notes,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedAt time.Time) error {
	query := `UPDATE invoices SET payment_status = $2, last_updated_at = $3 WHERE invoice_id = $1;`
	tag, err := r.db.Exec(ctx, query, invoiceID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update payment status for invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Items first, then the invoice itself.
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete items of invoice %s: %w", invoiceID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + invoiceFrom + ` WHERE i.invoice_id = $1;`
	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	items, err := r.findItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, product_id, product_name, description, quantity, unit,
		       unit_price, tax_rate, discount_rate, tax_amount, discount_amount, total_amount, created_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items of invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		err := rows.Scan(
			&item.ItemID,
			&item.InvoiceID,
			&item.ProductID,
			&item.ProductName,
			&item.Description,
			&item.Quantity,
			&item.Unit,
			&item.UnitPrice,
			&item.TaxRate,
			&item.DiscountRate,
			&item.TaxAmount,
			&item.DiscountAmount,
			&item.TotalAmount,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice item rows: %w", err)
	}
	return items, nil
}

// invoiceWhere builds the WHERE clause for a filter.
func invoiceWhere(filter portsrepo.InvoiceFilter, args *[]any) string {
	var conds []string
	add := func(val any) string {
		*args = append(*args, val)
		return "$" + strconv.Itoa(len(*args))
	}

	if filter.Status != "" {
		conds = append(conds, "i.status = "+add(filter.Status))
	}
	if filter.PaymentStatus != "" {
		conds = append(conds, "i.payment_status = "+add(filter.PaymentStatus))
	}
	if filter.CustomerID != "" {
		conds = append(conds, "i.customer_id = "+add(filter.CustomerID))
	}
	if filter.FromDate != nil {
		conds = append(conds, "i.invoice_date >= "+add(*filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "i.invoice_date <= "+add(*filter.ToDate))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var args []any
	where := invoiceWhere(filter, &args)

	var total int64
	countQuery := `SELECT COUNT(*)` + invoiceFrom + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := `SELECT ` + invoiceColumns + invoiceFrom + where +
		` ORDER BY i.created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}
	return invoices, total, nil
}

func (r *PgxInvoiceRepository) FindLatestInvoiceNumber(ctx context.Context) (string, error) {
	query := `SELECT invoice_number FROM invoices ORDER BY created_at DESC LIMIT 1;`
	var number string
	err := r.db.QueryRow(ctx, query).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find latest invoice number: %w", err)
	}
	return number, nil
}

func (r *PgxInvoiceRepository) FindRecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `SELECT ` + invoiceColumns + invoiceFrom + ` ORDER BY i.created_at DESC LIMIT $1;`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}
	return invoices, nil
}
