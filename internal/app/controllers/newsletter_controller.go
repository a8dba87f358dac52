package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/config"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// NewsletterController handles newsletter subscription operations
type NewsletterController struct {
	newsletterService services.NewsletterService
	pagination        config.PaginationConfig
}

// NewNewsletterController creates a new NewsletterController
func NewNewsletterController(newsletterService services.NewsletterService, pagination config.PaginationConfig) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
		pagination:        pagination,
	}
}

// Subscribe handles POST /api/newsletter/subscribe. This endpoint is public:
// it is the website's newsletter signup target.
func (c *NewsletterController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	sub, err := c.newsletterService.Subscribe(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Subscribed to newsletter", ID: sub.ID})
}

// ListSubscriptions handles GET /api/newsletter-subscriptions
func (c *NewsletterController) ListSubscriptions(ctx *gin.Context) {
	limit, offset := parsePagination(ctx, uint64(c.pagination.DefaultPageSize), uint64(c.pagination.MaxPageSize))

	subs, err := c.newsletterService.ListSubscriptions(ctx.Request.Context(), limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subs)
}

// GetSubscription handles GET /api/newsletter-subscriptions/:id
func (c *NewsletterController) GetSubscription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	sub, err := c.newsletterService.GetSubscription(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sub)
}

// UpdateSubscription handles PUT /api/newsletter-subscriptions/:id
func (c *NewsletterController) UpdateSubscription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.newsletterService.UpdateSubscription(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subscription updated"})
}

// DeleteSubscription handles DELETE /api/newsletter-subscriptions/:id
func (c *NewsletterController) DeleteSubscription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.newsletterService.DeleteSubscription(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subscription deleted"})
}
