package persistent

import (
	"context"
	"fmt"

	"fitfeed/internal/entity"

	"go.mongodb.org/mongo-driver/mongo"
)

// BMIRepository keeps the history of BMI evaluations.
type BMIRepository interface {
	Save(ctx context.Context, record *entity.BMIRecord) error
}

type bmiRepository struct {
	collection *mongo.Collection
}

func NewBMIRepository(db *mongo.Database) BMIRepository {
	return &bmiRepository{collection: db.Collection("BMI")}
}

func (r *bmiRepository) Save(ctx context.Context, record *entity.BMIRecord) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("%w: saving bmi record: %v", entity.ErrStorage, err)
	}
	return nil
}
