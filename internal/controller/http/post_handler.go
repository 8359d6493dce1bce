package http

import (
	"errors"
	"net/http"

	"fitfeed/internal/entity"
	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// CreatePostRequest is the wire shape of POST /posts. Field names are the
// compatibility contract and must stay as they are.
type CreatePostRequest struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	MediaURL string `json:"mediaUrl"`
	Email    string `json:"email"`
}

type LikeRequest struct {
	Email string `json:"email"`
}

type CommentRequest struct {
	Text  string `json:"text"`
	Email string `json:"email"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), req.ID, req.Text, req.MediaURL, req.Email)
	if err != nil {
		h.respondError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.LikePost(c.Request.Context(), postID, req.Email)
	if err != nil {
		h.respondError(c, err, "Failed to like post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CommentPost(c *gin.Context) {
	postID := c.Param("id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CommentPost(c.Request.Context(), postID, req.Text, req.Email)
	if err != nil {
		h.respondError(c, err, "Failed to comment on post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) respondError(c *gin.Context, err error, logMessage string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("%s: %v", logMessage, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusForError maps the shared error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
