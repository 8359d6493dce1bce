package http

import (
	"net/http"

	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase, logger: logger}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUseCase.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "Failed to sign up")
		return
	}

	c.JSON(http.StatusOK, gin.H{"uid": user.ID, "email": user.Email, "success": true})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authUseCase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"uid": user.ID, "email": user.Email, "success": true, "token": token})
}

// SignOut is stateless: the client drops its token.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authUseCase.Profile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) respondError(c *gin.Context, err error, logMessage string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("%s: %v", logMessage, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
