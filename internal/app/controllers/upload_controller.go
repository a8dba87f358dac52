package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/middleware"
	"github.com/mtendere/educonsult-admin/internal/pkg/filestorage"
)

// UploadController handles admin file uploads
type UploadController struct {
	storage *filestorage.LocalStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage *filestorage.LocalStorage) *UploadController {
	return &UploadController{storage: storage}
}

// UploadFile handles POST /api/uploads
func (c *UploadController) UploadFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file provided").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{
		Message: "File uploaded",
		URL:     "/" + path,
	})
}

// DeleteFile handles DELETE /api/uploads/:filename
func (c *UploadController) DeleteFile(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if filename == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No filename provided").
			WithField("filename")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.storage.DeleteFile(filename); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "File deleted"})
}
