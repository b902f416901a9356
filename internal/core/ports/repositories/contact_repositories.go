package repositories

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// ContactReader defines read operations for the contact inbox
type ContactReader interface {
	// FindContactMessageByID retrieves a specific message by its ID.
	FindContactMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// FindContactMessages retrieves a page of messages, newest first, with
	// the total match count.
	FindContactMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error)
}

// ContactWriter defines write operations for the contact inbox
type ContactWriter interface {
	// SaveContactMessage persists a new message.
	SaveContactMessage(ctx context.Context, message domain.ContactMessage) error

	// MarkContactMessageRead flags a message as read.
	MarkContactMessageRead(ctx context.Context, messageID string) error

	// DeleteContactMessage removes a message.
	DeleteContactMessage(ctx context.Context, messageID string) error
}

// ContactRepositoryFacade combines all contact-inbox repository interfaces
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
