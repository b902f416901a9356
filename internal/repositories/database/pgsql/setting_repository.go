package pgsql

import (
	"context"
	"fmt"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingRepository(db *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{db: db}
}

// Ensure PgxSettingRepository implements portsrepo.SettingRepositoryFacade
var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) FindSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT setting_id, key, value FROM settings ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.SettingID, &s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate setting rows: %w", err)
	}
	return settings, nil
}

func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	query := `
		INSERT INTO settings (setting_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	_, err := r.db.Exec(ctx, query, setting.SettingID, setting.Key, setting.Value)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", setting.Key, err)
	}
	return nil
}
