package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// BlogPostController handles blog post operations
type BlogPostController struct {
	blogService services.BlogService
}

// NewBlogPostController creates a new BlogPostController
func NewBlogPostController(blogService services.BlogService) *BlogPostController {
	return &BlogPostController{blogService: blogService}
}

// CreatePost handles POST /api/blog-posts
func (c *BlogPostController) CreatePost(ctx *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	authorID, _ := middleware.UserIDFromContext(ctx)

	post, err := c.blogService.CreatePost(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Blog post created", ID: post.ID})
}

// GetPost handles GET /api/blog-posts/:id
func (c *BlogPostController) GetPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	post, err := c.blogService.GetPost(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// ListPosts handles GET /api/blog-posts
func (c *BlogPostController) ListPosts(ctx *gin.Context) {
	posts, err := c.blogService.ListPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /api/blog-posts/:id
func (c *BlogPostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.blogService.UpdatePost(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Blog post updated"})
}

// DeletePost handles DELETE /api/blog-posts/:id
func (c *BlogPostController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.blogService.DeletePost(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Blog post deleted"})
}
