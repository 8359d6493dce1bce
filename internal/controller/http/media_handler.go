package http

import (
	"fmt"
	"net/http"
	"path/filepath"

	"fitfeed/pkg/logger"
	"fitfeed/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewMediaHandler(s3Client *s3.Client, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{s3Client: s3Client, logger: logger}
}

// Upload stores a media file and returns the URL a client passes as
// mediaUrl when creating a post.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.s3Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("media/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	url, err := h.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		h.logger.Error("Failed to upload media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mediaUrl": url})
}
