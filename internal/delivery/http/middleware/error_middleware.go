package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the API's
// flat {error: string} body. Anything that is not an AppError is treated as
// unexpected: logged with its real cause, answered with a generic message so
// internals never leak to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"message", appErr.Message,
					"error", appErr.Err,
					"path", c.FullPath(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
