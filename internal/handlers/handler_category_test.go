package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/handlers"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategoriesWithCounts(ctx context.Context, activeOnly bool) ([]domain.CategoryWithCount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryWithCount), args.Error(1)
}
func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockCategoryService = new(MockCategoryService)

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true, // skip swagger routes in tests
	}
	container := &portssvc.ServiceContainer{
		Category: suite.mockCategoryService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	expected := []domain.Category{
		{
			CategoryID:   uuid.NewString(),
			Name:         "Switches & Sockets",
			Slug:         "switches-sockets",
			DisplayOrder: 1,
			IsActive:     true,
			AuditFields:  domain.AuditFields{CreatedAt: time.Now()},
		},
		{
			CategoryID:   uuid.NewString(),
			Name:         "Wiring & Cables",
			Slug:         "wiring-cables",
			DisplayOrder: 2,
			IsActive:     true,
			AuditFields:  domain.AuditFields{CreatedAt: time.Now()},
		},
	}
	suite.mockCategoryService.On("ListCategories", mock.Anything, true).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CategoryResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(body, 2)
	suite.Equal(expected[0].Slug, body[0].Slug)
	suite.Equal(expected[1].Slug, body[1].Slug)

	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_IncludesInactiveWhenRequested() {
	suite.mockCategoryService.On("ListCategories", mock.Anything, false).
		Return([]domain.Category{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/categories?active_only=false", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestGetCategoryBySlug_NotFound() {
	suite.mockCategoryService.On("GetCategoryBySlug", mock.Anything, "no-such-slug").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/categories/slug/no-such-slug", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var body handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Category not found", body.Error)

	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_RequiresToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/categories", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "CreateCategory")
}

// --- Run Test Suite ---
func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
