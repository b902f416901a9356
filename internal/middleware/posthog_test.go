package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTracker struct {
	mock.Mock
	initialized bool
}

func (m *mockTracker) IsInitialized() bool { return m.initialized }
func (m *mockTracker) Enqueue(distinctID, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// withTestUser stamps a user ID into the request context the way
// AuthMiddleware does.
func withTestUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func trackedRouter(tracker EventTracker, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	r.Use(PosthogMiddleware(tracker))
	return r
}

func TestPosthogMiddleware_TracksAuthenticatedRequest(t *testing.T) {
	tracker := &mockTracker{initialized: true}
	tracker.On("Enqueue", "user-1", "api_invoices_:id", mock.MatchedBy(func(props map[string]any) bool {
		return props["method"] == http.MethodGet && props["status_code"] == http.StatusOK
	})).Return().Once()

	r := trackedRouter(tracker, withTestUser("user-1"))
	r.GET("/api/invoices/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/invoices/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	tracker.AssertExpectations(t)
}

func TestPosthogMiddleware_SkipsAnonymousRequest(t *testing.T) {
	tracker := &mockTracker{initialized: true}

	r := trackedRouter(tracker)
	r.GET("/api/categories", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	tracker.AssertNotCalled(t, "Enqueue")
}

func TestPosthogMiddleware_SkipsFailedRequest(t *testing.T) {
	tracker := &mockTracker{initialized: true}

	r := trackedRouter(tracker, withTestUser("user-1"))
	r.GET("/api/invoices", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/invoices", nil)
	r.ServeHTTP(w, req)

	tracker.AssertNotCalled(t, "Enqueue")
}

func TestPosthogMiddleware_SkipsHealthPath(t *testing.T) {
	tracker := &mockTracker{initialized: true}

	r := trackedRouter(tracker, withTestUser("user-1"))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	tracker.AssertNotCalled(t, "Enqueue")
}

func TestPosthogMiddleware_UninitializedTrackerPassesThrough(t *testing.T) {
	tracker := &mockTracker{initialized: false}

	r := trackedRouter(tracker, withTestUser("user-1"))
	r.GET("/api/invoices", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/invoices", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	tracker.AssertNotCalled(t, "Enqueue")
}
