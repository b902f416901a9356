package domain

// Setting is one key/value pair in the site-wide settings store.
type Setting struct {
	SettingID string `json:"settingID"` // Primary Key (UUID)
	Key       string `json:"key"`       // Unique
	Value     string `json:"value"`
}
