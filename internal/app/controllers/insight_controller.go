package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// InsightController handles insight article operations
type InsightController struct {
	insightService services.InsightService
}

// NewInsightController creates a new InsightController
func NewInsightController(insightService services.InsightService) *InsightController {
	return &InsightController{insightService: insightService}
}

// CreateInsight handles POST /api/insights
func (c *InsightController) CreateInsight(ctx *gin.Context) {
	var req dto.CreateInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	authorID, _ := middleware.UserIDFromContext(ctx)

	ins, err := c.insightService.CreateInsight(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Insight created", ID: ins.ID})
}

// GetInsight handles GET /api/insights/:id
func (c *InsightController) GetInsight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	ins, err := c.insightService.GetInsight(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ins)
}

// ListInsights handles GET /api/insights
func (c *InsightController) ListInsights(ctx *gin.Context) {
	insights, err := c.insightService.ListInsights(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, insights)
}

// UpdateInsight handles PUT /api/insights/:id
func (c *InsightController) UpdateInsight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.insightService.UpdateInsight(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Insight updated"})
}

// DeleteInsight handles DELETE /api/insights/:id
func (c *InsightController) DeleteInsight(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.insightService.DeleteInsight(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Insight deleted"})
}
