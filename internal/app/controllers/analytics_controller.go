package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// defaultVisitorLogLimit caps the visitor log listing unless the caller asks
// for fewer rows.
const defaultVisitorLogLimit = 100

// AnalyticsController handles the dashboard and visitor log endpoints
type AnalyticsController struct {
	analyticsService services.AnalyticsService
	visitorService   services.VisitorService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService, visitorService services.VisitorService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		visitorService:   visitorService,
	}
}

// GetDashboard handles GET /api/analytics
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	resp, err := c.analyticsService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListVisitorLogs handles GET /api/visitor-logs
func (c *AnalyticsController) ListVisitorLogs(ctx *gin.Context) {
	limit := uint64(defaultVisitorLogLimit)
	if raw := ctx.Query("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 && v < limit {
			limit = v
		}
	}

	logs, err := c.visitorService.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, logs)
}
