package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/service"
)

func nutritionRouter() *gin.Engine {
	r := gin.New()
	h := NewNutritionHandler(service.NewNutritionService(), zap.NewNop())
	r.POST("/nutrition/calculate", asUser("u1"), h.Calculate)
	return r
}

func TestNutritionHandler_Calculate(t *testing.T) {
	w := postJSON(t, nutritionRouter(), "/nutrition/calculate", gin.H{
		"age": 30, "gender": "male", "weight": 80, "height": 180,
		"activityLevel": 1.2, "goal": "muscle",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1780), body["bmr"])
	assert.Equal(t, float64(2136), body["tdee"])
	assert.Equal(t, float64(2436), body["dailyCalories"])
}

func TestNutritionHandler_CalculateRejectsBadInput(t *testing.T) {
	w := postJSON(t, nutritionRouter(), "/nutrition/calculate", gin.H{
		"age": 0, "gender": "male", "weight": 80, "height": 180, "activityLevel": 1.2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
