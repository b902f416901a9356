package services

import (
	"context"
	"fmt"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/google/uuid"
)

// defaultSettings are the compiled fallbacks for every known settings key.
// Stored values override these; unknown stored keys pass through untouched.
var defaultSettings = map[string]string{
	"business_name":     "Garuda Electricals & Hardwares",
	"business_email":    "Garudaelectrical@gmail.com",
	"business_phone":    "919489114403",
	"business_whatsapp": "919489114403",
	"business_gst":      "33BLPPS4603G1Z0",
	"business_address":  "Gandhigramam, Karur",
	"business_city":     "Karur",
	"business_pincode":  "639004",
	"google_maps_url":   "",
	"google_maps_embed": "",
	"working_hours":     "9:00 AM - 8:00 PM",
	"working_days":      "Monday - Saturday",
	"facebook_url":      "",
	"instagram_url":     "",
	"twitter_url":       "",
	"youtube_url":       "",
}

type settingsService struct {
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewSettingsService creates the settings store service.
func NewSettingsService(settingRepo portsrepo.SettingRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingRepo: settingRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (map[string]string, error) {
	stored, err := s.settingRepo.FindSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	merged := make(map[string]string, len(defaultSettings)+len(stored))
	for k, v := range defaultSettings {
		merged[k] = v
	}
	for _, setting := range stored {
		merged[setting.Key] = setting.Value
	}
	return merged, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings map[string]string) (map[string]string, error) {
	for key, value := range settings {
		setting := domain.Setting{
			SettingID: uuid.NewString(),
			Key:       key,
			Value:     value,
		}
		if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
			return nil, fmt.Errorf("failed to update setting %s: %w", key, err)
		}
	}
	return s.GetSettings(ctx)
}

func (s *settingsService) InitializeDefaults(ctx context.Context) (map[string]string, error) {
	stored, err := s.settingRepo.FindSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for initialization: %w", err)
	}
	existing := make(map[string]bool, len(stored))
	for _, setting := range stored {
		existing[setting.Key] = true
	}

	for key, value := range defaultSettings {
		if existing[key] {
			continue
		}
		setting := domain.Setting{
			SettingID: uuid.NewString(),
			Key:       key,
			Value:     value,
		}
		if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
			return nil, fmt.Errorf("failed to initialize setting %s: %w", key, err)
		}
	}
	return s.GetSettings(ctx)
}
