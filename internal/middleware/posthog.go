package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/fxdeals_warehouse/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful API calls with PostHog.
// Events are named after the route, e.g. "/api/v1/deals/bulk" -> "api_v1_deals_bulk".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		eventName = strings.NewReplacer(":", "", "*", "").Replace(eventName)
		if eventName == "" {
			return
		}

		posthogClient.Enqueue(distinctID(c), eventName, map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		})
	}
}

// PosthogEvent sends a custom event from a handler.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(distinctID(c), eventName, properties)
}

// distinctID prefers the authenticated caller and falls back to the client IP.
func distinctID(c *gin.Context) string {
	if callerID, ok := GetCallerIDFromContext(c); ok && callerID != "" {
		return callerID
	}
	return c.ClientIP()
}
