package api

import (
	// Go Internal Packages
	"net/http"
	"strings"
	"time"

	// External Packages
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenCtxKey     = "bearer_token"
	requestIDCtxKey = "request_id"
)

// RequireBearer extracts the session token from the Authorization
// header and stashes it in the request context. The token is opaque
// here; it is passed through to the upstream, which validates it.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}
		c.Set(tokenCtxKey, token)
		c.Next()
	}
}

// RequestID assigns every request an id, honoring one supplied by the
// caller, and echoes it back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDCtxKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// AccessLog logs one line per handled request.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDCtxKey)),
		)
	}
}

func token(c *gin.Context) string {
	return c.GetString(tokenCtxKey)
}
