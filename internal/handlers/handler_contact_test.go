package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/handlers"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) ListMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error) {
	args := m.Called(ctx, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ContactMessage), args.Get(1).(int64), args.Error(2)
}
func (m *MockContactService) GetMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) MarkMessageRead(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) DeleteMessage(ctx context.Context, messageID string) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Mock UserService (for the auth middleware) ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockUserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}
func (m *MockUserService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockUserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type ContactHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockContactService *MockContactService
	mockUserService    *MockUserService
	jwtSecret          string
}

func (suite *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockContactService = new(MockContactService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		User:    suite.mockUserService,
		Contact: suite.mockContactService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a signed JWT for the given user ID.
func (suite *ContactHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "garuda-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// expectUser makes the auth middleware resolve the given account.
func (suite *ContactHandlerTestSuite) expectUser(userID string, role domain.UserRole) {
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: role, IsActive: true}, nil).Once()
}

// --- Test Cases ---

func (suite *ContactHandlerTestSuite) TestSubmitMessage_Success() {
	msgID := uuid.NewString()
	suite.mockContactService.On("SubmitMessage", mock.Anything, mock.MatchedBy(func(req dto.CreateContactMessageRequest) bool {
		return req.Name == "Priya" && req.Message == "Do you stock 6A modular switches?"
	})).Return(&domain.ContactMessage{
		MessageID: msgID,
		Name:      "Priya",
		Message:   "Do you stock 6A modular switches?",
		CreatedAt: time.Now(),
	}, nil).Once()

	payload, _ := json.Marshal(dto.CreateContactMessageRequest{
		Name:    "Priya",
		Message: "Do you stock 6A modular switches?",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.ContactMessageResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(msgID, body.MessageID)
	suite.False(body.IsRead)

	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestSubmitMessage_MissingMessageBody() {
	payload := []byte(`{"name": "Priya"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockContactService.AssertNotCalled(suite.T(), "SubmitMessage")
}

func (suite *ContactHandlerTestSuite) TestListMessages_AdminSeesInbox() {
	adminID := uuid.NewString()
	suite.expectUser(adminID, domain.RoleAdmin)
	suite.mockContactService.On("ListMessages", mock.Anything, false, 50, 0).
		Return([]domain.ContactMessage{
			{MessageID: uuid.NewString(), Name: "Priya", Message: "Enquiry", CreatedAt: time.Now()},
		}, int64(1), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Messages []dto.ContactMessageResponse `json:"messages"`
		Total    int64                        `json:"total"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Messages, 1)
	suite.Equal(int64(1), body.Total)

	suite.mockContactService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestListMessages_StaffForbidden() {
	staffID := uuid.NewString()
	suite.expectUser(staffID, domain.RoleStaff)

	req, _ := http.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(staffID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockContactService.AssertNotCalled(suite.T(), "ListMessages")
}

// --- Run Test Suite ---
func TestContactHandler(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
