package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// TestimonialController handles testimonial operations
type TestimonialController struct {
	testimonialService services.TestimonialService
}

// NewTestimonialController creates a new TestimonialController
func NewTestimonialController(testimonialService services.TestimonialService) *TestimonialController {
	return &TestimonialController{testimonialService: testimonialService}
}

// CreateTestimonial handles POST /api/testimonials
func (c *TestimonialController) CreateTestimonial(ctx *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	t, err := c.testimonialService.CreateTestimonial(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Testimonial created", ID: t.ID})
}

// GetTestimonial handles GET /api/testimonials/:id
func (c *TestimonialController) GetTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	t, err := c.testimonialService.GetTestimonial(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// ListTestimonials handles GET /api/testimonials
func (c *TestimonialController) ListTestimonials(ctx *gin.Context) {
	testimonials, err := c.testimonialService.ListTestimonials(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, testimonials)
}

// UpdateTestimonial handles PUT /api/testimonials/:id
func (c *TestimonialController) UpdateTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.testimonialService.UpdateTestimonial(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Testimonial updated"})
}

// DeleteTestimonial handles DELETE /api/testimonials/:id
func (c *TestimonialController) DeleteTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.testimonialService.DeleteTestimonial(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Testimonial deleted"})
}
