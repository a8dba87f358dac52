package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP status codes and the standard
// error envelope. Unrecognized errors become a 500 without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrLastAdmin):
		respond(http.StatusConflict, dto.ErrorCodeValidationFailed, "At least one admin account must remain")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrSlugAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Slug already exists")
	case errors.Is(err, apperrors.ErrSubscriptionExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email is already subscribed")
	case errors.Is(err, apperrors.ErrResourceInUse):
		respond(http.StatusConflict, dto.ErrorCodeValidationFailed, "Resource is referenced by other records")
	case errors.Is(err, apperrors.ErrInvalidApplicationState):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid application status")
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// HandleValidationError converts a request-binding failure into a 400 response
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
