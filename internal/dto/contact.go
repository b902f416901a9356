package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// CreateContactMessageRequest is a public contact form submission.
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ListContactMessagesParams defines query parameters for the admin inbox.
type ListContactMessagesParams struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
	Offset     int  `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ContactMessageResponse defines the data returned for a contact message.
type ContactMessageResponse struct {
	MessageID string    `json:"messageID"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToContactMessageResponse converts a domain.ContactMessage to its DTO
func ToContactMessageResponse(msg *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: msg.MessageID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}

// ToListContactMessageResponse converts a slice of domain.ContactMessage to DTOs
func ToListContactMessageResponse(msgs []domain.ContactMessage) []ContactMessageResponse {
	res := make([]ContactMessageResponse, len(msgs))
	for i, msg := range msgs {
		res[i] = ToContactMessageResponse(&msg)
	}
	return res
}
