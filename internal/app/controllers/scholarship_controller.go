package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// ScholarshipController handles scholarship operations
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{scholarshipService: scholarshipService}
}

// CreateScholarship handles POST /api/scholarships
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	var req dto.CreateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	sch, err := c.scholarshipService.CreateScholarship(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Scholarship created", ID: sch.ID})
}

// GetScholarship handles GET /api/scholarships/:id
func (c *ScholarshipController) GetScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	sch, err := c.scholarshipService.GetScholarship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sch)
}

// ListScholarships handles GET /api/scholarships
func (c *ScholarshipController) ListScholarships(ctx *gin.Context) {
	scholarships, err := c.scholarshipService.ListScholarships(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarships)
}

// UpdateScholarship handles PUT /api/scholarships/:id
func (c *ScholarshipController) UpdateScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.scholarshipService.UpdateScholarship(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Scholarship updated"})
}

// DeleteScholarship handles DELETE /api/scholarships/:id
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.scholarshipService.DeleteScholarship(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Scholarship deleted"})
}
