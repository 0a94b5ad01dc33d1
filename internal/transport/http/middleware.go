package http

import (
	"net/http"

	"pressdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const workspaceHeader = "X-Workspace-ID"

// WorkspaceMiddleware resolves the tenant from the X-Workspace-ID header and
// puts it on the request context for the service layer. Requests without a
// valid workspace never reach the core.
func WorkspaceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(workspaceHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + workspaceHeader + " header"})
			return
		}
		ws, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
			return
		}
		ctx := service.WithWorkspaceID(c.Request.Context(), ws)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
