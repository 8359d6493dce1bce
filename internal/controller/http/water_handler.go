package http

import (
	"net/http"

	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WaterHandler struct {
	waterUseCase usecase.WaterUseCase
	logger       *logger.Logger
}

func NewWaterHandler(waterUseCase usecase.WaterUseCase, logger *logger.Logger) *WaterHandler {
	return &WaterHandler{waterUseCase: waterUseCase, logger: logger}
}

type WaterRequest struct {
	Email  string `json:"email"`
	Amount int    `json:"amount"`
}

func (h *WaterHandler) AddIntake(c *gin.Context) {
	var req WaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := h.waterUseCase.AddIntake(c.Request.Context(), req.Email, req.Amount)
	if err != nil {
		h.respondError(c, err, "Failed to record water intake")
		return
	}

	c.JSON(http.StatusOK, gin.H{"waterLevel": level})
}

func (h *WaterHandler) Level(c *gin.Context) {
	email := c.Query("email")

	level, err := h.waterUseCase.Level(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, err, "Failed to read water level")
		return
	}

	c.JSON(http.StatusOK, gin.H{"waterLevel": level})
}

func (h *WaterHandler) Reset(c *gin.Context) {
	var req WaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.waterUseCase.Reset(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err, "Failed to reset water level")
		return
	}

	c.JSON(http.StatusOK, gin.H{"waterLevel": 0})
}

func (h *WaterHandler) respondError(c *gin.Context, err error, logMessage string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("%s: %v", logMessage, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
