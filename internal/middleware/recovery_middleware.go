package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/blog-api/internal/errors"
	"github.com/ikkim/blog-api/pkg/logger"
)

// RecoveryMiddleware turns a handler panic into a 500 with the standard
// error body and logs it under the request's id.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered", nil, map[string]interface{}{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
			"code":       apperrors.InternalServerError,
		})
		apperrors.InternalError(c, "")
		c.Abort()
	})
}
