package usecase

import (
	"context"
	"fmt"
	"time"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
)

type WorkoutUseCase interface {
	Start() *entity.Workout
	Next() *entity.Workout
	End(ctx context.Context, email string, duration int, caloriesBurned float64) error
}

type workoutUseCase struct {
	workoutRepo persistent.WorkoutRepository
}

func NewWorkoutUseCase(workoutRepo persistent.WorkoutRepository) WorkoutUseCase {
	return &workoutUseCase{workoutRepo: workoutRepo}
}

func (uc *workoutUseCase) Start() *entity.Workout {
	return &entity.Workout{Name: "Push-up Session"}
}

func (uc *workoutUseCase) Next() *entity.Workout {
	return &entity.Workout{Name: "Squat Session"}
}

func (uc *workoutUseCase) End(ctx context.Context, email string, duration int, caloriesBurned float64) error {
	if isBlank(email) {
		return fmt.Errorf("%w: email is required", entity.ErrValidation)
	}

	result := &entity.WorkoutResult{
		Email:          email,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		Timestamp:      time.Now().UnixMilli(),
	}
	return uc.workoutRepo.SaveResult(ctx, result)
}
