package entity

// WaterIntake tracks the accumulated water level for one user, one document
// per email.
type WaterIntake struct {
	Email      string `json:"email" bson:"email"`
	WaterLevel int    `json:"waterLevel" bson:"waterLevel"`
	Timestamp  int64  `json:"timestamp" bson:"timestamp"`
}
