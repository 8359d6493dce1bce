package persistent

import (
	"context"
	"fmt"

	"fitfeed/internal/entity"

	"go.mongodb.org/mongo-driver/mongo"
)

// WorkoutRepository stores finished workout sessions.
type WorkoutRepository interface {
	SaveResult(ctx context.Context, result *entity.WorkoutResult) error
}

type workoutRepository struct {
	collection *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) WorkoutRepository {
	return &workoutRepository{collection: db.Collection("workouts")}
}

func (r *workoutRepository) SaveResult(ctx context.Context, result *entity.WorkoutResult) error {
	if _, err := r.collection.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("%w: saving workout result: %v", entity.ErrStorage, err)
	}
	return nil
}
