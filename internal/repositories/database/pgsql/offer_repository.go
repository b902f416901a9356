package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOfferRepository struct {
	db *pgxpool.Pool
}

func newPgxOfferRepository(db *pgxpool.Pool) portsrepo.OfferRepositoryFacade {
	return &PgxOfferRepository{db: db}
}

// Ensure PgxOfferRepository implements portsrepo.OfferRepositoryFacade
var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

const offerColumns = `offer_id, title, description, image_url, discount_percentage, offer_code, start_date, end_date, display_order, is_active, created_at, last_updated_at`

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(
		&o.OfferID,
		&o.Title,
		&o.Description,
		&o.ImageURL,
		&o.DiscountPercentage,
		&o.OfferCode,
		&o.StartDate,
		&o.EndDate,
		&o.DisplayOrder,
		&o.IsActive,
		&o.CreatedAt,
		&o.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PgxOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	query := `
		INSERT INTO offers (offer_id, title, description, image_url, discount_percentage, offer_code,
			start_date, end_date, display_order, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		offer.OfferID,
		offer.Title,
		offer.Description,
		offer.ImageURL,
		offer.DiscountPercentage,
		offer.OfferCode,
		offer.StartDate,
		offer.EndDate,
		offer.DisplayOrder,
		offer.IsActive,
		offer.CreatedAt,
		offer.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	return nil
}

func (r *PgxOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer) error {
	query := `
		UPDATE offers
		SET title = $2, description = $3, image_url = $4, discount_percentage = $5, offer_code = $6,
			start_date = $7, end_date = $8, display_order = $9, is_active = $10, last_updated_at = $11
		WHERE offer_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		offer.OfferID,
		offer.Title,
		offer.Description,
		offer.ImageURL,
		offer.DiscountPercentage,
		offer.OfferCode,
		offer.StartDate,
		offer.EndDate,
		offer.DisplayOrder,
		offer.IsActive,
		offer.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer %s: %w", offer.OfferID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOfferRepository) DeleteOffer(ctx context.Context, offerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE offer_id = $1;`, offerID)
	if err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", offerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOfferRepository) FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE offer_id = $1;`
	offer, err := scanOffer(r.db.QueryRow(ctx, query, offerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer by ID %s: %w", offerID, err)
	}
	return offer, nil
}

func (r *PgxOfferRepository) FindOffers(ctx context.Context, currentOnly bool, now time.Time) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers`
	args := []any{}
	if currentOnly {
		// Nil date bounds are open-ended.
		query += ` WHERE is_active = TRUE
			AND (start_date IS NULL OR start_date <= $1)
			AND (end_date IS NULL OR end_date >= $1)`
		args = append(args, now)
	}
	query += ` ORDER BY display_order, created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offer rows: %w", err)
	}
	return offers, nil
}
