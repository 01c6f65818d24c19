package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/mocks"
	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/repository"
	"github.com/bodyai/backend/internal/service"
)

func routineRouter(routines service.IRoutineService, userID string) *gin.Engine {
	r := gin.New()
	h := NewRoutineHandler(routines, zap.NewNop())
	g := r.Group("/", asUser(userID))
	g.GET("/routines", h.List)
	g.GET("/routines/:id", h.Get)
	g.POST("/routines", h.Create)
	g.PUT("/routines/:id", h.Update)
	g.DELETE("/routines/:id", h.Delete)
	return r
}

func TestRoutineHandler_Get(t *testing.T) {
	routines := new(mocks.MockRoutineService)
	routine := &models.Routine{
		UserID: "u1",
		Name:   "Hipertrofia 4 dias",
		Rutina: models.WeeklyRoutine{models.Lunes: {Enfoque: "Espalda"}},
	}
	routine.SetID(primitive.NewObjectID())
	routines.On("Get", mock.Anything, routine.ID.Hex()).Return(routine, nil)

	req := httptest.NewRequest(http.MethodGet, "/routines/"+routine.ID.Hex(), nil)
	w := httptest.NewRecorder()
	routineRouter(routines, "u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	got, ok := body["routine"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hipertrofia 4 dias", got["name"])
}

func TestRoutineHandler_GetNotFound(t *testing.T) {
	routines := new(mocks.MockRoutineService)
	id := primitive.NewObjectID().Hex()
	routines.On("Get", mock.Anything, id).Return(nil, repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/routines/"+id, nil)
	w := httptest.NewRecorder()
	routineRouter(routines, "u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", decodeBody(t, w)["error"])
}

func TestRoutineHandler_CreateOwnerComesFromToken(t *testing.T) {
	routines := new(mocks.MockRoutineService)
	created := &models.Routine{UserID: "u1", Name: "Fuerza"}
	created.SetID(primitive.NewObjectID())
	routines.On("Create", mock.Anything, mock.MatchedBy(func(dto models.CreateRoutineDTO) bool {
		return dto.UserID == "u1"
	})).Return(created, nil)

	w := postJSON(t, routineRouter(routines, "u1"), "/routines", gin.H{
		"userId":          "intruso",
		"name":            "Fuerza",
		"nivel":           "intermedio",
		"dias_por_semana": 3,
		"objetivo":        "fuerza",
		"rutina":          gin.H{"lunes": gin.H{"enfoque": "Pecho", "ejercicios": []any{}}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	routines.AssertExpectations(t)
}

func TestRoutineHandler_InternalErrorIsOpaque(t *testing.T) {
	routines := new(mocks.MockRoutineService)
	routines.On("ListByUser", mock.Anything, "u1").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/routines", nil)
	w := httptest.NewRecorder()
	routineRouter(routines, "u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
}
