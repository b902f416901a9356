package repositories

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// SettingReader defines read operations for the settings store
type SettingReader interface {
	// FindSettings retrieves all stored settings.
	FindSettings(ctx context.Context) ([]domain.Setting, error)
}

// SettingWriter defines write operations for the settings store
type SettingWriter interface {
	// UpsertSetting inserts the setting or updates its value when the key
	// already exists.
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}

// SettingRepositoryFacade combines all settings-store repository interfaces
type SettingRepositoryFacade interface {
	SettingReader
	SettingWriter
}
