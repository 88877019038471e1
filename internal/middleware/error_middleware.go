package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// RespondError writes a failure envelope with the given status
func RespondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// HandleAPIError maps a service error onto its HTTP status and writes the failure envelope.
// Messages of application errors are shown to the caller; store errors keep their text.
func HandleAPIError(c *gin.Context, err error) {
	message := apperrors.Message(err)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		RespondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)
	case errors.Is(err, apperrors.ErrConflict):
		RespondError(c, http.StatusBadRequest, dto.ErrorCodeConflict, message)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		RespondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		RespondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		RespondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		RespondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, err.Error())
	}
}
