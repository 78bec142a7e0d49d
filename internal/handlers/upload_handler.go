package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps portfolio images at 5MB, checked before anything touches
// the disk.
const maxUploadSize = 5 << 20

type UploadHandler struct {
	baseDir string
}

// NewUploadHandler builds the handler; baseDir is the uploads root (the
// "projects" subdirectory is created on demand).
func NewUploadHandler(baseDir string) *UploadHandler {
	return &UploadHandler{baseDir: baseDir}
}

// Upload accepts a single image (multipart field "image"), stores it under a
// collision-resistant generated name and returns the reference path.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file was sent"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image must be at most 5MB"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image files are allowed"})
		return
	}

	dir := filepath.Join(h.baseDir, "projects")
	if err := ensureDir(dir); err != nil {
		respondError(c, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := "project-" + uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "image uploaded successfully",
		"imagePath": "/uploads/projects/" + filename,
		"filename":  filename,
	})
}

// Delete removes an uploaded image by filename. Only names matching the
// upload convention are accepted, which also keeps traversal out.
func (h *UploadHandler) Delete(c *gin.Context) {
	filename := c.Param("filename")
	if !validUploadName(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return
	}

	path := filepath.Join(h.baseDir, "projects", filename)
	if !fileExists(path) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if err := os.Remove(path); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}

func validUploadName(name string) bool {
	return strings.HasPrefix(name, "project-") &&
		name == filepath.Base(name) &&
		!strings.ContainsAny(name, "/\\") &&
		!strings.Contains(name, "..")
}
