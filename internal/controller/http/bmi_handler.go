package http

import (
	"net/http"

	"fitfeed/internal/entity"
	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BMIHandler struct {
	bmiUseCase usecase.BMIUseCase
	logger     *logger.Logger
}

func NewBMIHandler(bmiUseCase usecase.BMIUseCase, logger *logger.Logger) *BMIHandler {
	return &BMIHandler{bmiUseCase: bmiUseCase, logger: logger}
}

func (h *BMIHandler) Evaluate(c *gin.Context) {
	var input entity.BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.bmiUseCase.Evaluate(c.Request.Context(), input)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to evaluate BMI: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
