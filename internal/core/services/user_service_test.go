package services_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/mailer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock PasswordResetSender ---
type MockResetSender struct {
	mock.Mock
	lastResetURL string
}

func (m *MockResetSender) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string, expiry time.Duration) error {
	m.lastResetURL = resetURL
	args := m.Called(ctx, toEmail, toName, resetURL, expiry)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockSender *MockResetSender
	service    portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockSender = new(MockResetSender)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockSender, services.UserServiceConfig{
		JWTSecret:        "test-secret",
		JWTIssuer:        "garuda-backend",
		JWTExpiry:        time.Hour,
		ResetTokenExpiry: 30 * time.Minute,
		FrontendResetURL: "http://localhost:3000/admin/reset-password",
	})
}

func (suite *UserServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "owner@example.com",
		PasswordHash: hash,
		FullName:     "Shop Owner",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.NotEmpty(token)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, token, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, user.Email, "battery-staple")

	suite.Require().Error(err)
	suite.Nil(loggedIn)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestLogin_DeactivatedAccount() {
	ctx := context.Background()
	user := suite.activeUser("correct-horse")
	user.IsActive = false

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, user.Email, "correct-horse")

	suite.Require().Error(err)
	suite.Nil(loggedIn)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToStaffRole() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Email:    "clerk@example.com",
		Password: "long-enough-pass",
		FullName: "Counter Clerk",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email && u.Role == domain.RoleStaff && u.IsActive && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	user := suite.activeUser("old-password-1")

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, "not-the-old-one", "new-password-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestForgotPassword_UnknownEmailReportsSuccess() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ForgotPassword(ctx, "nobody@example.com")

	suite.Require().NoError(err)
	suite.mockSender.AssertNotCalled(suite.T(), "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestForgotPassword_UnconfiguredMailerReportsSuccess() {
	ctx := context.Background()
	user := suite.activeUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockSender.On("SendPasswordReset", ctx, user.Email, user.FullName, mock.AnythingOfType("string"), 30*time.Minute).
		Return(mailer.ErrNotConfigured).Once()

	err := suite.service.ForgotPassword(ctx, user.Email)

	suite.Require().NoError(err)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPassword_RoundTrip() {
	ctx := context.Background()
	user := suite.activeUser("old-password-1")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockSender.On("SendPasswordReset", ctx, user.Email, user.FullName, mock.AnythingOfType("string"), 30*time.Minute).
		Return(nil).Once()

	suite.Require().NoError(suite.service.ForgotPassword(ctx, user.Email))

	// Pull the token back out of the emailed reset URL.
	parsed, err := url.Parse(suite.mockSender.lastResetURL)
	suite.Require().NoError(err)
	suite.True(strings.HasSuffix(parsed.Path, "/reset-password"))
	token := parsed.Query().Get("token")
	suite.Require().NotEmpty(token)

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == user.UserID && utils.CheckPasswordHash("brand-new-pass", u.PasswordHash)
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.ResetPassword(ctx, token, "brand-new-pass"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPassword_RejectsLoginToken() {
	ctx := context.Background()
	user := suite.activeUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, loginToken, err := suite.service.Login(ctx, user.Email, "correct-horse")
	suite.Require().NoError(err)

	// A login token lacks the reset audience and must never reset a password.
	err = suite.service.ResetPassword(ctx, loginToken, "brand-new-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResetPassword_GarbageToken() {
	ctx := context.Background()

	err := suite.service.ResetPassword(ctx, "not-a-jwt", "brand-new-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
