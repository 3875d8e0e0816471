package middleware

import (
	"net/http"
	"time"

	"github.com/LovationAdmin/calc-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLogger tags every request with an ID (reusing the caller's
// X-Request-ID when present) and logs the outcome once the handler returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		utils.LogAPIRequest(
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}

// GetRequestID returns the ID assigned by RequestLogger, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// MaxBody caps how much of a request body handlers can read.
func MaxBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
