package services

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user account.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for authentication and credential management
type UserAuthSvc interface {
	// Login verifies the credentials and returns the user with a signed JWT.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// ForgotPassword issues a reset token and emails it. It reports success
	// for unknown emails so the endpoint cannot be used for enumeration.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword validates a reset token and stores the new password hash.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
