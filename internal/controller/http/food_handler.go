package http

import (
	"net/http"

	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foodUseCase usecase.FoodUseCase
	logger      *logger.Logger
}

func NewFoodHandler(foodUseCase usecase.FoodUseCase, logger *logger.Logger) *FoodHandler {
	return &FoodHandler{foodUseCase: foodUseCase, logger: logger}
}

func (h *FoodHandler) Chart(c *gin.Context) {
	items, err := h.foodUseCase.Chart(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load food chart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food chart"})
		return
	}

	c.JSON(http.StatusOK, items)
}
