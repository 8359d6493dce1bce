package usecase

import (
	"context"
	"encoding/json"
	"time"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
	"fitfeed/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	foodChartCacheKey = "foodchart"
	foodChartCacheTTL = 10 * time.Minute
)

type FoodUseCase interface {
	Chart(ctx context.Context) ([]entity.FoodItem, error)
}

type foodUseCase struct {
	foodRepo    persistent.FoodRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewFoodUseCase(foodRepo persistent.FoodRepository, redisClient *redis.Client, logger *logger.Logger) FoodUseCase {
	return &foodUseCase{foodRepo: foodRepo, redisClient: redisClient, logger: logger}
}

// Chart serves the dietary reference chart, cached in Redis since the data
// only changes on re-import.
func (uc *foodUseCase) Chart(ctx context.Context) ([]entity.FoodItem, error) {
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, foodChartCacheKey).Result()
		if err == nil {
			var items []entity.FoodItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := uc.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := uc.redisClient.Set(ctx, foodChartCacheKey, payload, foodChartCacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache food chart: %v", err)
			}
		}
	}

	return items, nil
}
