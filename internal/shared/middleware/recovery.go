package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.FromContext(c.Request.Context()).Error().
					Interface("error", err).
					Msg("Panic recovered")

				response.Internal(c, fmt.Errorf("%v", err), messages.Internal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
