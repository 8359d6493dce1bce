package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
	"fitfeed/pkg/logger"
)

type BMIUseCase interface {
	Evaluate(ctx context.Context, input entity.BMIInput) (*entity.BMIResult, error)
}

type bmiUseCase struct {
	bmiRepo persistent.BMIRepository
	logger  *logger.Logger
}

func NewBMIUseCase(bmiRepo persistent.BMIRepository, logger *logger.Logger) BMIUseCase {
	return &bmiUseCase{bmiRepo: bmiRepo, logger: logger}
}

func (uc *bmiUseCase) Evaluate(ctx context.Context, input entity.BMIInput) (*entity.BMIResult, error) {
	if input.Weight <= 0 || input.Height <= 0 || input.Age <= 0 ||
		(input.Gender != "male" && input.Gender != "female") {
		return nil, fmt.Errorf("%w: invalid input", entity.ErrValidation)
	}

	bmi := calculateBMI(input.Weight, input.Height)
	category := bmiCategory(bmi)

	result := &entity.BMIResult{
		BMI:            bmi,
		Category:       category,
		Recommendation: recommendation(bmi, input.Age, input.Gender),
	}

	record := &entity.BMIRecord{
		User:      input.User,
		Weight:    input.Weight,
		Height:    input.Height,
		Age:       input.Age,
		Gender:    input.Gender,
		BMI:       bmi,
		Category:  category,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := uc.bmiRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return result, nil
}

// calculateBMI expects weight in kg and height in cm.
func calculateBMI(weight, height float64) float64 {
	return weight / math.Pow(height/100, 2)
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal Weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func recommendation(bmi float64, age int, gender string) string {
	var b strings.Builder

	switch {
	case bmi < 18.5:
		b.WriteString("Consider increasing your caloric intake with nutrient-rich foods. ")
		if age < 30 {
			b.WriteString("Focus on strength training to build muscle mass. ")
		}
	case bmi < 25:
		b.WriteString("Maintain your healthy lifestyle with regular exercise and balanced diet. ")
	case bmi < 30:
		b.WriteString("Consider reducing caloric intake and increasing physical activity. ")
		if gender == "male" {
			b.WriteString("Incorporate more cardio exercises. ")
		} else {
			b.WriteString("Include both cardio and strength training. ")
		}
	default:
		b.WriteString("Consult with a healthcare provider for a personalized weight management plan. ")
		b.WriteString("Start with low-impact exercises and gradual dietary changes. ")
	}

	return b.String()
}
