package entity

// FoodItem is one row of the dietary reference chart. The BSON keys match
// the spreadsheet-style column names the chart was imported with.
type FoodItem struct {
	BMIRange           string `json:"bmiRange" bson:"BMI Range"`
	BMICategory        string `json:"bmiCategory" bson:"BMI Category"`
	MealType           string `json:"mealType" bson:"Meal Type"`
	FoodsList          string `json:"foodsList" bson:"Foods List"`
	CaloriesPerServing int    `json:"caloriesPerServing" bson:"Calories per Serving"`
	NutritionInfo      string `json:"nutritionInfo" bson:"Nutrition Information"`
	ProteinContent     int    `json:"proteinContent" bson:"Protein Content (g)"`
	MonthsToFollow     int    `json:"monthsToFollow" bson:"Months to Follow"`
}
