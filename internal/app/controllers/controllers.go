package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
)

// parseIDParam reads the :id path parameter. A malformed value writes the
// 400 response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID parameter").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parsePagination reads limit and offset query parameters, clamping the limit
// to the configured maximum.
func parsePagination(ctx *gin.Context, defaultLimit, maxLimit uint64) (limit, offset uint64) {
	limit = defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if raw := ctx.Query("offset"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = v
		}
	}
	return limit, offset
}
