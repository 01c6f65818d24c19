package service

import "math"

// Calorie adjustments applied on top of TDEE per training goal.
const (
	goalMuscleAdjustment = 300  // ganar masa muscular
	goalFatAdjustment    = -500 // reducir porcentaje de grasa
)

// Macro split: 30% protein, 25% fat, 45% carbs at 4/9/4 kcal per gram.
const (
	proteinCaloriesShare = 0.30
	fatCaloriesShare     = 0.25
	carbCaloriesShare    = 0.45
)

// CalculateNutritionInput describes the person and goal for a macro
// calculation.
type CalculateNutritionInput struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"` // "male" or "female"
	WeightKg      float64 `json:"weight"`
	HeightCm      float64 `json:"height"`
	ActivityLevel float64 `json:"activityLevel"` // 1.2, 1.375, 1.55, 1.725, 1.9
	Goal          string  `json:"goal"`          // "muscle", "fat" or anything else for maintenance
}

// NutritionResult is the rounded output of a calculation.
type NutritionResult struct {
	BMR           int `json:"bmr"`
	TDEE          int `json:"tdee"`
	DailyCalories int `json:"dailyCalories"`
	Protein       int `json:"protein"` // grams
	Carbs         int `json:"carbs"`   // grams
	Fats          int `json:"fats"`    // grams
}

// NutritionService computes daily calorie and macro targets.
type NutritionService struct{}

// NewNutritionService creates a new NutritionService instance.
func NewNutritionService() *NutritionService { return &NutritionService{} }

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// TDEE scales a BMR by the activity factor.
func TDEE(bmr, activityLevel float64) float64 {
	return bmr * activityLevel
}

// Macros splits a daily calorie target into protein/carb/fat grams.
func Macros(calories int) (protein, carbs, fats int) {
	c := float64(calories)
	protein = int(math.Round(c * proteinCaloriesShare / 4))
	fats = int(math.Round(c * fatCaloriesShare / 9))
	carbs = int(math.Round(c * carbCaloriesShare / 4))
	return protein, carbs, fats
}

// Calculate validates the input and produces a full result.
func (s *NutritionService) Calculate(in CalculateNutritionInput) (*NutritionResult, error) {
	if in.Age <= 0 {
		return nil, validationErrorf("age must be greater than 0")
	}
	if in.WeightKg <= 0 {
		return nil, validationErrorf("weight must be greater than 0")
	}
	if in.HeightCm <= 0 {
		return nil, validationErrorf("height must be greater than 0")
	}
	if in.Gender != "male" && in.Gender != "female" {
		return nil, validationErrorf("gender must be male or female")
	}
	if in.ActivityLevel <= 0 {
		return nil, validationErrorf("activity level must be greater than 0")
	}

	bmr := BMR(in.WeightKg, in.HeightCm, in.Age, in.Gender)
	tdee := TDEE(bmr, in.ActivityLevel)

	adjustment := 0
	switch in.Goal {
	case "muscle":
		adjustment = goalMuscleAdjustment
	case "fat":
		adjustment = goalFatAdjustment
	}

	daily := int(math.Round(tdee)) + adjustment
	protein, carbs, fats := Macros(daily)

	return &NutritionResult{
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		DailyCalories: daily,
		Protein:       protein,
		Carbs:         carbs,
		Fats:          fats,
	}, nil
}
