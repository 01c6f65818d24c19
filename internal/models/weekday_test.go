package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayValid(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, day.Valid(), "%s should be valid", day)
	}

	invalid := []Weekday{"", "monday", "Lunes", "miércoles", "feriado"}
	for _, day := range invalid {
		assert.False(t, day.Valid(), "%q should be invalid", day)
	}
}

func TestWeekdaysOrder(t *testing.T) {
	assert.Equal(t, []Weekday{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}, Weekdays)
}

func TestWeeklyRoutineValidate(t *testing.T) {
	ok := WeeklyRoutine{Lunes: {Enfoque: "Pecho"}, Viernes: {Enfoque: "Pierna"}}
	assert.NoError(t, ok.Validate())

	bad := WeeklyRoutine{"someday": {Enfoque: "Pecho"}}
	assert.Error(t, bad.Validate())
}

func TestWeeklyPlanValidate(t *testing.T) {
	ok := WeeklyPlan{Lunes: {Meal{"avena": "80g"}}}
	assert.NoError(t, ok.Validate())

	bad := WeeklyPlan{"someday": {}}
	assert.Error(t, bad.Validate())

	tooMany := make(DayMeals, MaxMealsPerDay+1)
	for i := range tooMany {
		tooMany[i] = Meal{"arroz": "100g"}
	}
	assert.Error(t, WeeklyPlan{Martes: tooMany}.Validate())
}
