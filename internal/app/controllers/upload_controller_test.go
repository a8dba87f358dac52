package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/pkg/filestorage"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, 1<<20, []string{"png", "pdf"})
	require.NoError(t, err)

	ctrl := NewUploadController(storage)
	router := gin.New()
	router.POST("/api/uploads", ctrl.UploadFile)
	router.DELETE("/api/uploads/:filename", ctrl.DeleteFile)
	return router, dir
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadThenDeleteFile(t *testing.T) {
	router, dir := newUploadRouter(t)

	body, contentType := multipartBody(t, "brochure.pdf", []byte("%PDF-1.4"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var uploaded struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	assert.Equal(t, "File uploaded", uploaded.Message)
	require.True(t, strings.HasPrefix(uploaded.URL, "/uploads/"))

	stored := filepath.Base(uploaded.URL)
	_, err := os.Stat(filepath.Join(dir, stored))
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/uploads/"+stored, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "File deleted")

	_, err = os.Stat(filepath.Join(dir, stored))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "script.sh", []byte("#!/bin/sh"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFileMissingIsIdempotent(t *testing.T) {
	router, _ := newUploadRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/uploads/gone.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
