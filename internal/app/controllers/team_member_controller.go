package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// TeamMemberController handles team member operations
type TeamMemberController struct {
	teamService services.TeamService
}

// NewTeamMemberController creates a new TeamMemberController
func NewTeamMemberController(teamService services.TeamService) *TeamMemberController {
	return &TeamMemberController{teamService: teamService}
}

// CreateMember handles POST /api/team-members
func (c *TeamMemberController) CreateMember(ctx *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	m, err := c.teamService.CreateMember(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Team member created", ID: m.ID})
}

// GetMember handles GET /api/team-members/:id
func (c *TeamMemberController) GetMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	m, err := c.teamService.GetMember(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// ListMembers handles GET /api/team-members
func (c *TeamMemberController) ListMembers(ctx *gin.Context) {
	members, err := c.teamService.ListMembers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// UpdateMember handles PUT /api/team-members/:id
func (c *TeamMemberController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.teamService.UpdateMember(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Team member updated"})
}

// DeleteMember handles DELETE /api/team-members/:id
func (c *TeamMemberController) DeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.teamService.DeleteMember(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Team member deleted"})
}
