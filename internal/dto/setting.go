package dto

// UpdateSettingsRequest upserts a batch of key/value settings. Keys not
// present in the map are left untouched.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}

// SettingsResponse returns the full settings map, compiled defaults merged
// with stored overrides.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}
