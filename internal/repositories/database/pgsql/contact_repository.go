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

type PgxContactRepository struct {
	db *pgxpool.Pool
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{db: db}
}

// Ensure PgxContactRepository implements portsrepo.ContactRepositoryFacade
var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

const contactColumns = `message_id, name, email, phone, subject, message, is_read, created_at`

func scanContactMessage(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(
		&m.MessageID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.IsRead,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxContactRepository) SaveContactMessage(ctx context.Context, message domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (message_id, name, email, phone, subject, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		message.MessageID,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Message,
		message.IsRead,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) MarkContactMessageRead(ctx context.Context, messageID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE message_id = $1;`, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark contact message %s read: %w", messageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContactRepository) DeleteContactMessage(ctx context.Context, messageID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE message_id = $1;`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete contact message %s: %w", messageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContactRepository) FindContactMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE message_id = $1;`
	msg, err := scanContactMessage(r.db.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact message by ID %s: %w", messageID, err)
	}
	return msg, nil
}

func (r *PgxContactRepository) FindContactMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	where := ""
	if unreadOnly {
		where = ` WHERE is_read = FALSE`
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`+where+`;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contact_messages` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		msgs = append(msgs, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate contact message rows: %w", err)
	}
	return msgs, total, nil
}
