package middleware

import (
	"errors"
	"net/http"

	"resume-portal-backend/pkg/apperror"
	"resume-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the context into the legacy
// JSON shapes. Validation, auth and conflict responses carry a "message"
// field; not-found and server failures carry "error". The 500 body includes
// the diagnostic string for operators; callers must treat it as opaque.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code == http.StatusInternalServerError {
			logger.Log.Error("request failed",
				"path", c.Request.URL.Path,
				"request_id", c.GetString("RequestID"),
				"error", appErr.Message,
			)
		}

		switch appErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusConflict:
			c.JSON(appErr.Code, gin.H{"success": false, "message": appErr.Message})
		default:
			c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		}
	}
}
