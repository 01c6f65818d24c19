package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// MaxMealsPerDay bounds how many meals a day of a meal plan may hold.
const MaxMealsPerDay = 6

// Meal maps ingredient names to quantity strings, e.g. "pollo" -> "200g".
type Meal map[string]string

// DayMeals is the ordered list of meals for one day, at most MaxMealsPerDay.
type DayMeals []Meal

// WeeklyPlan maps weekdays to meal lists. A missing day has no planned meals.
type WeeklyPlan map[Weekday]DayMeals

// Validate rejects plans keyed by unknown day names or holding too many meals
// on a single day.
func (p WeeklyPlan) Validate() error {
	for day, meals := range p {
		if !day.Valid() {
			return fmt.Errorf("unknown weekday %q", day)
		}
		if len(meals) > MaxMealsPerDay {
			return fmt.Errorf("%s has %d meals, the maximum is %d", day, len(meals), MaxMealsPerDay)
		}
	}
	return nil
}

// Recipe is a weekly meal plan with daily nutritional objectives. The name is
// historical: the product calls meal plans "recipes".
type Recipe struct {
	Base                    `bson:",inline"`
	UserID                  string     `bson:"userId" json:"userId"`
	Name                    string     `bson:"name" json:"name"`
	CaloriasDiariasObjetivo string     `bson:"calorias_diarias_objetivo" json:"calorias_diarias_objetivo"`
	ProteinaDiariaObjetivo  string     `bson:"proteina_diaria_objetivo" json:"proteina_diaria_objetivo"`
	ComidasPorDia           int        `bson:"comidas_por_dia" json:"comidas_por_dia"`
	FrutasPorDia            int        `bson:"frutas_por_dia" json:"frutas_por_dia"`
	Semana                  WeeklyPlan `bson:"semana" json:"semana"`
	Notes                   string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CreateRecipeDTO is the input for a new meal plan.
type CreateRecipeDTO struct {
	UserID                  string     `json:"userId"`
	Name                    string     `json:"name"`
	CaloriasDiariasObjetivo string     `json:"calorias_diarias_objetivo"`
	ProteinaDiariaObjetivo  string     `json:"proteina_diaria_objetivo"`
	ComidasPorDia           int        `json:"comidas_por_dia"`
	FrutasPorDia            int        `json:"frutas_por_dia"`
	Semana                  WeeklyPlan `json:"semana"`
	Notes                   string     `json:"notes,omitempty"`
}

// UpdateRecipeDTO is a partial update; nil fields are left untouched.
type UpdateRecipeDTO struct {
	Name                    *string    `json:"name,omitempty"`
	CaloriasDiariasObjetivo *string    `json:"calorias_diarias_objetivo,omitempty"`
	ProteinaDiariaObjetivo  *string    `json:"proteina_diaria_objetivo,omitempty"`
	ComidasPorDia           *int       `json:"comidas_por_dia,omitempty"`
	FrutasPorDia            *int       `json:"frutas_por_dia,omitempty"`
	Semana                  WeeklyPlan `json:"semana,omitempty"`
	Notes                   *string    `json:"notes,omitempty"`
}

// Fields returns the set of fields present in the partial update.
func (d UpdateRecipeDTO) Fields() bson.M {
	m := bson.M{}
	if d.Name != nil {
		m["name"] = *d.Name
	}
	if d.CaloriasDiariasObjetivo != nil {
		m["calorias_diarias_objetivo"] = *d.CaloriasDiariasObjetivo
	}
	if d.ProteinaDiariaObjetivo != nil {
		m["proteina_diaria_objetivo"] = *d.ProteinaDiariaObjetivo
	}
	if d.ComidasPorDia != nil {
		m["comidas_por_dia"] = *d.ComidasPorDia
	}
	if d.FrutasPorDia != nil {
		m["frutas_por_dia"] = *d.FrutasPorDia
	}
	if d.Semana != nil {
		m["semana"] = d.Semana
	}
	if d.Notes != nil {
		m["notes"] = *d.Notes
	}
	return m
}
