package usecase

import (
	"context"
	"fmt"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
)

type WaterUseCase interface {
	AddIntake(ctx context.Context, email string, amount int) (int, error)
	Level(ctx context.Context, email string) (int, error)
	Reset(ctx context.Context, email string) error
}

type waterUseCase struct {
	waterRepo persistent.WaterRepository
}

func NewWaterUseCase(waterRepo persistent.WaterRepository) WaterUseCase {
	return &waterUseCase{waterRepo: waterRepo}
}

func (uc *waterUseCase) AddIntake(ctx context.Context, email string, amount int) (int, error) {
	if isBlank(email) {
		return 0, fmt.Errorf("%w: email is required", entity.ErrValidation)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", entity.ErrValidation)
	}
	return uc.waterRepo.AddIntake(ctx, email, amount)
}

func (uc *waterUseCase) Level(ctx context.Context, email string) (int, error) {
	if isBlank(email) {
		return 0, fmt.Errorf("%w: email is required", entity.ErrValidation)
	}
	return uc.waterRepo.Level(ctx, email)
}

func (uc *waterUseCase) Reset(ctx context.Context, email string) error {
	if isBlank(email) {
		return fmt.Errorf("%w: email is required", entity.ErrValidation)
	}
	return uc.waterRepo.Reset(ctx, email)
}
