package persistent

import (
	"context"
	"fmt"

	"fitfeed/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodRepository reads the dietary reference chart.
type FoodRepository interface {
	FindAll(ctx context.Context) ([]entity.FoodItem, error)
}

type foodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) FoodRepository {
	return &foodRepository{collection: db.Collection("foodchart")}
}

func (r *foodRepository) FindAll(ctx context.Context) ([]entity.FoodItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: reading food chart: %v", entity.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	items := []entity.FoodItem{}
	for cursor.Next(ctx) {
		var item entity.FoodItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("%w: decoding food item: %v", entity.ErrStorage, err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading food chart: %v", entity.ErrStorage, err)
	}
	return items, nil
}
