package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/config"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// ContactInquiryController handles contact inquiry operations
type ContactInquiryController struct {
	contactService services.ContactService
	pagination     config.PaginationConfig
}

// NewContactInquiryController creates a new ContactInquiryController
func NewContactInquiryController(contactService services.ContactService, pagination config.PaginationConfig) *ContactInquiryController {
	return &ContactInquiryController{
		contactService: contactService,
		pagination:     pagination,
	}
}

// SubmitInquiry handles POST /api/contact-inquiries. This endpoint is public:
// it is the website's contact form target.
func (c *ContactInquiryController) SubmitInquiry(ctx *gin.Context) {
	var req dto.CreateContactInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	inquiry, err := c.contactService.SubmitInquiry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Contact inquiry submitted", ID: inquiry.ID})
}

// GetInquiry handles GET /api/contact-inquiries/:id
func (c *ContactInquiryController) GetInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	inquiry, err := c.contactService.GetInquiry(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiry)
}

// ListInquiries handles GET /api/contact-inquiries
func (c *ContactInquiryController) ListInquiries(ctx *gin.Context) {
	limit, offset := parsePagination(ctx, uint64(c.pagination.DefaultPageSize), uint64(c.pagination.MaxPageSize))

	inquiries, err := c.contactService.ListInquiries(ctx.Request.Context(), limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiries)
}

// UpdateInquiry handles PUT /api/contact-inquiries/:id
func (c *ContactInquiryController) UpdateInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContactInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resolverID, _ := middleware.UserIDFromContext(ctx)

	if _, err := c.contactService.UpdateInquiry(ctx.Request.Context(), id, resolverID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contact inquiry updated"})
}

// RespondToInquiry handles POST /api/contact-inquiries/:id/respond
func (c *ContactInquiryController) RespondToInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.RespondContactInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	responderID, _ := middleware.UserIDFromContext(ctx)

	if _, err := c.contactService.RespondToInquiry(ctx.Request.Context(), id, responderID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Response sent"})
}

// DeleteInquiry handles DELETE /api/contact-inquiries/:id
func (c *ContactInquiryController) DeleteInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contactService.DeleteInquiry(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contact inquiry deleted"})
}
