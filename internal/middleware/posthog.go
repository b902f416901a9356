package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker records usage analytics events. Implemented by the PostHog
// wrapper; declared here so the middleware can be tested without the network.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

// untrackedPaths contains paths that produce no analytics events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that records one event
// per successful authenticated request, keyed on the user ID set by
// AuthMiddleware. Anonymous and failed requests are not tracked.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		// Event name from the route template, e.g. "/api/invoices/:id" ->
		// "api_invoices_:id". Empty for unmatched routes.
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, eventName, props)
	}
}
