package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitfeed/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WaterRepository tracks a per-email accumulated water level.
type WaterRepository interface {
	AddIntake(ctx context.Context, email string, amount int) (int, error)
	Level(ctx context.Context, email string) (int, error)
	Reset(ctx context.Context, email string) error
}

type waterRepository struct {
	collection *mongo.Collection
}

func NewWaterRepository(db *mongo.Database) WaterRepository {
	return &waterRepository{collection: db.Collection("waterIntakes")}
}

// AddIntake accumulates with an upserting $inc, so two concurrent intakes
// for the same email both count.
func (r *waterRepository) AddIntake(ctx context.Context, email string, amount int) (int, error) {
	var record entity.WaterIntake
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{
			"$inc": bson.M{"waterLevel": amount},
			"$set": bson.M{"timestamp": time.Now().UnixMilli()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return 0, fmt.Errorf("%w: recording water intake: %v", entity.ErrStorage, err)
	}
	return record.WaterLevel, nil
}

func (r *waterRepository) Level(ctx context.Context, email string) (int, error) {
	var record entity.WaterIntake
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: reading water level: %v", entity.ErrStorage, err)
	}
	return record.WaterLevel, nil
}

func (r *waterRepository) Reset(ctx context.Context, email string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"waterLevel": 0, "timestamp": time.Now().UnixMilli()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: resetting water level: %v", entity.ErrStorage, err)
	}
	return nil
}
