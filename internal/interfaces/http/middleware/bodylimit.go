package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CodePayloadTooLarge is reported when a request body is over the limit
const CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

// BodyLimit caps request bodies at maxBytes. A declared Content-Length over
// the limit is rejected up front; chunked bodies fail on the read that
// crosses it. A non-positive limit disables the check.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			logger.FromContext(c.Request.Context()).Debug("request body rejected",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_bytes", maxBytes),
			)
			abortWithResult(c, http.StatusRequestEntityTooLarge,
				shared.NewDomainError(CodePayloadTooLarge, "request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// abortWithResult stops the chain with a failed action result
func abortWithResult(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, action.Fail(err))
}
