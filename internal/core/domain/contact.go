package domain

import "time"

// ContactMessage is one submission from the public contact form.
type ContactMessage struct {
	MessageID string    `json:"messageID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
