package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/mailer"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// resetAudience scopes reset tokens so a login token can never pass as one.
const resetAudience = "password-reset"

// PasswordResetSender delivers the reset link email. Implemented by the Brevo
// mailer; declared here so the service can be tested without the network.
type PasswordResetSender interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string, expiry time.Duration) error
}

// UserServiceConfig carries the token and reset-flow parameters.
type UserServiceConfig struct {
	JWTSecret        string
	JWTIssuer        string
	JWTExpiry        time.Duration
	ResetTokenExpiry time.Duration
	FrontendResetURL string
}

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	mail     PasswordResetSender
	cfg      UserServiceConfig
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, mail PasswordResetSender, cfg UserServiceConfig) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, mail: mail, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s for update: %w", userID, err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	token, err := s.signToken(user.UserID, s.cfg.JWTExpiry, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign login token: %w", err)
	}
	return user, token, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user %s for password change: %w", userID, err)
	}
	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}
	return s.storePassword(ctx, user, newPassword)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Report success for unknown addresses; the endpoint must not
			// reveal which emails have accounts.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := s.signToken(user.UserID, s.cfg.ResetTokenExpiry, []string{resetAudience})
	if err != nil {
		return fmt.Errorf("failed to sign reset token: %w", err)
	}

	resetURL := s.cfg.FrontendResetURL + "?token=" + url.QueryEscape(token)
	if err := s.mail.SendPasswordReset(ctx, user.Email, user.FullName, resetURL, s.cfg.ResetTokenExpiry); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			logger.Warn("Password reset email skipped: mailer not configured")
			return nil
		}
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	logger.Info("Password reset email sent", slog.String("user_id", user.UserID))
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithAudience(resetAudience))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return fmt.Errorf("invalid or expired reset token: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("invalid or expired reset token: %w", apperrors.ErrUnauthorized)
		}
		return fmt.Errorf("failed to load user for password reset: %w", err)
	}
	return s.storePassword(ctx, user, newPassword)
}

func (s *userService) storePassword(ctx context.Context, user *domain.User, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.LastUpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}

func (s *userService) signToken(userID string, expiry time.Duration, audience []string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.cfg.JWTIssuer,
		Audience:  audience,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}
