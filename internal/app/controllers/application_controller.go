package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// ApplicationController handles application intake and review
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication handles POST /api/applications. This endpoint is public:
// it is the website's application form target.
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	a, err := c.applicationService.SubmitApplication(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Application submitted", ID: a.ID})
}

// GetApplication handles GET /api/applications/:id
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	a, err := c.applicationService.GetApplication(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, a)
}

// ListApplications handles GET /api/applications
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	applications, err := c.applicationService.ListApplications(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// UpdateStatus handles PUT /api/applications/:id. Review only changes status
// and admin notes; applicant data stays as submitted.
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	reviewerID, _ := middleware.UserIDFromContext(ctx)

	if _, err := c.applicationService.UpdateStatus(ctx.Request.Context(), id, reviewerID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Application status updated"})
}

// DeleteApplication handles DELETE /api/applications/:id
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.applicationService.DeleteApplication(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Application deleted"})
}
