package http

import (
	"net/http"

	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutUseCase usecase.WorkoutUseCase
	logger         *logger.Logger
}

func NewWorkoutHandler(workoutUseCase usecase.WorkoutUseCase, logger *logger.Logger) *WorkoutHandler {
	return &WorkoutHandler{workoutUseCase: workoutUseCase, logger: logger}
}

type WorkoutEndRequest struct {
	Email          string  `json:"email"`
	Duration       int     `json:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

func (h *WorkoutHandler) Start(c *gin.Context) {
	c.JSON(http.StatusOK, h.workoutUseCase.Start())
}

func (h *WorkoutHandler) Next(c *gin.Context) {
	c.JSON(http.StatusOK, h.workoutUseCase.Next())
}

func (h *WorkoutHandler) End(c *gin.Context) {
	var req WorkoutEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.workoutUseCase.End(c.Request.Context(), req.Email, req.Duration, req.CaloriesBurned)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to save workout result: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout ended successfully"})
}
