package entity

// Workout is a named exercise session handed to the client.
type Workout struct {
	Name string `json:"name"`
}

// WorkoutResult is a finished session reported back by the client.
type WorkoutResult struct {
	Email          string  `json:"email" bson:"email"`
	Duration       int     `json:"duration" bson:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned" bson:"caloriesBurned"`
	Timestamp      int64   `json:"timestamp" bson:"timestamp"`
}
