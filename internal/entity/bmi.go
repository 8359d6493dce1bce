package entity

// BMIInput is one BMI evaluation request. Height is in centimeters,
// weight in kilograms.
type BMIInput struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	User   string  `json:"user"`
}

// BMIResult is what the caller gets back.
type BMIResult struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	Recommendation string  `json:"recommendation"`
}

// BMIRecord is the persisted evaluation.
type BMIRecord struct {
	User      string  `json:"user" bson:"user"`
	Weight    float64 `json:"weight" bson:"weight"`
	Height    float64 `json:"height" bson:"height"`
	Age       int     `json:"age" bson:"age"`
	Gender    string  `json:"gender" bson:"gender"`
	BMI       float64 `json:"bmi" bson:"bmi"`
	Category  string  `json:"category" bson:"category"`
	Timestamp string  `json:"timestamp" bson:"timestamp"`
}
