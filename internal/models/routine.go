package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Exercise is a single movement within a day's workout. Field names follow the
// bilingual naming the product uses.
type Exercise struct {
	NombreES     string `bson:"nombre_es" json:"nombre_es"`
	NombreEN     string `bson:"nombre_en" json:"nombre_en"`
	Series       int    `bson:"series" json:"series"`
	Repeticiones string `bson:"repeticiones,omitempty" json:"repeticiones,omitempty"`
	Tiempo       string `bson:"tiempo,omitempty" json:"tiempo,omitempty"`
	URL          string `bson:"url,omitempty" json:"url,omitempty"`
}

// DayRoutine is one day's training: a focus, an ordered list of exercises and
// optional cardio.
type DayRoutine struct {
	Enfoque    string     `bson:"enfoque" json:"enfoque"`
	Ejercicios []Exercise `bson:"ejercicios" json:"ejercicios"`
	Cardio     string     `bson:"cardio,omitempty" json:"cardio,omitempty"`
}

// WeeklyRoutine maps weekdays to workouts. A missing day is a rest day.
type WeeklyRoutine map[Weekday]*DayRoutine

// Validate rejects schedules keyed by anything other than the seven day names.
func (w WeeklyRoutine) Validate() error {
	for day := range w {
		if !day.Valid() {
			return fmt.Errorf("unknown weekday %q", day)
		}
	}
	return nil
}

// NutritionTargets holds free-text daily macro ranges attached to a routine.
type NutritionTargets struct {
	Calories string `bson:"calories" json:"calories"`
	Protein  string `bson:"protein" json:"protein"`
	Fats     string `bson:"fats" json:"fats"`
	Carbs    string `bson:"carbs" json:"carbs"`
}

// Routine is a weekly workout routine owned by a user.
type Routine struct {
	Base          `bson:",inline"`
	UserID        string            `bson:"userId" json:"userId"`
	Name          string            `bson:"name" json:"name"`
	Nivel         string            `bson:"nivel" json:"nivel"`
	DiasPorSemana int               `bson:"dias_por_semana" json:"dias_por_semana"`
	Objetivo      string            `bson:"objetivo" json:"objetivo"`
	Rutina        WeeklyRoutine     `bson:"rutina" json:"rutina"`
	Nutrition     *NutritionTargets `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
	Supplements   string            `bson:"supplements,omitempty" json:"supplements,omitempty"`
	Motivation    string            `bson:"motivation,omitempty" json:"motivation,omitempty"`
}

// CreateRoutineDTO is the input for a new routine.
type CreateRoutineDTO struct {
	UserID        string            `json:"userId"`
	Name          string            `json:"name"`
	Nivel         string            `json:"nivel"`
	DiasPorSemana int               `json:"dias_por_semana"`
	Objetivo      string            `json:"objetivo"`
	Rutina        WeeklyRoutine     `json:"rutina"`
	Nutrition     *NutritionTargets `json:"nutrition,omitempty"`
	Supplements   string            `json:"supplements,omitempty"`
	Motivation    string            `json:"motivation,omitempty"`
}

// UpdateRoutineDTO is a partial update; nil fields are left untouched.
type UpdateRoutineDTO struct {
	Name          *string           `json:"name,omitempty"`
	Nivel         *string           `json:"nivel,omitempty"`
	DiasPorSemana *int              `json:"dias_por_semana,omitempty"`
	Objetivo      *string           `json:"objetivo,omitempty"`
	Rutina        WeeklyRoutine     `json:"rutina,omitempty"`
	Nutrition     *NutritionTargets `json:"nutrition,omitempty"`
	Supplements   *string           `json:"supplements,omitempty"`
	Motivation    *string           `json:"motivation,omitempty"`
}

// Fields returns the set of fields present in the partial update.
func (d UpdateRoutineDTO) Fields() bson.M {
	m := bson.M{}
	if d.Name != nil {
		m["name"] = *d.Name
	}
	if d.Nivel != nil {
		m["nivel"] = *d.Nivel
	}
	if d.DiasPorSemana != nil {
		m["dias_por_semana"] = *d.DiasPorSemana
	}
	if d.Objetivo != nil {
		m["objetivo"] = *d.Objetivo
	}
	if d.Rutina != nil {
		m["rutina"] = d.Rutina
	}
	if d.Nutrition != nil {
		m["nutrition"] = d.Nutrition
	}
	if d.Supplements != nil {
		m["supplements"] = *d.Supplements
	}
	if d.Motivation != nil {
		m["motivation"] = *d.Motivation
	}
	return m
}
