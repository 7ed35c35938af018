package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opos-parking/pkg/utils"
)

// DefaultMaxRequestSize mirrors the 10kb JSON body cap the API has always
// enforced.
const DefaultMaxRequestSize = 10 << 10

// RequestSizeLimitMiddleware limits the size of incoming requests to maxSize bytes.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
