package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/google/uuid"
)

type contactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates the contact inbox service.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.SaveContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return &msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error) {
	return s.contactRepo.FindContactMessages(ctx, unreadOnly, limit, offset)
}

func (s *contactService) GetMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	return s.contactRepo.FindContactMessageByID(ctx, messageID)
}

func (s *contactService) MarkMessageRead(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	if err := s.contactRepo.MarkContactMessageRead(ctx, messageID); err != nil {
		return nil, fmt.Errorf("failed to mark message %s read: %w", messageID, err)
	}
	return s.contactRepo.FindContactMessageByID(ctx, messageID)
}

func (s *contactService) DeleteMessage(ctx context.Context, messageID string) error {
	return s.contactRepo.DeleteContactMessage(ctx, messageID)
}
