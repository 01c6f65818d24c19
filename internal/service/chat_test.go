package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bodyai/backend/config"
	"github.com/bodyai/backend/internal/models"
)

func newTestChatService(t *testing.T, baseURL string, routines RoutineRepository, recipes RecipeRepository) *ChatService {
	t.Helper()
	cfg := &config.Config{
		LLMAPIKey:  "test-key",
		LLMBaseURL: baseURL,
		LLMModel:   "test-model",
	}
	return NewChatService(cfg, routines, recipes, nil, zap.NewNop())
}

func chatCompletion(msg ChatMessage) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"choices": []map[string]any{{"index": 0, "message": msg}},
	}
}

func TestChatService_RespondDirectAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Len(t, req.Tools, 2)

		json.NewEncoder(w).Encode(chatCompletion(ChatMessage{Role: "assistant", Content: "Bebe mas agua."}))
	}))
	defer srv.Close()

	svc := newTestChatService(t, srv.URL, &fakeRoutineRepo{}, &fakeRecipeRepo{})

	answer, err := svc.Respond(context.Background(), "u1", []ChatMessage{{Role: "user", Content: "dame un consejo"}})
	require.NoError(t, err)
	assert.Equal(t, "Bebe mas agua.", answer)
}

func TestChatService_RespondExecutesToolCalls(t *testing.T) {
	routines := &fakeRoutineRepo{}
	_, err := routines.Create(context.Background(), &models.Routine{
		UserID: "u1",
		Name:   "Fuerza 3 dias",
		Rutina: models.WeeklyRoutine{models.Lunes: {Enfoque: "Pecho"}},
	})
	require.NoError(t, err)

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch calls {
		case 1:
			json.NewEncoder(w).Encode(chatCompletion(ChatMessage{
				Role: "assistant",
				ToolCalls: []ToolCall{{
					ID:       "call_1",
					Type:     "function",
					Function: FunctionCall{Name: "get_routines", Arguments: "{}"},
				}},
			}))
		default:
			// The tool result for call_1 must be replayed to the model.
			last := req.Messages[len(req.Messages)-1]
			assert.Equal(t, "tool", last.Role)
			assert.Equal(t, "call_1", last.ToolCallID)
			assert.Contains(t, last.Content, "Fuerza 3 dias")

			json.NewEncoder(w).Encode(chatCompletion(ChatMessage{
				Role:    "assistant",
				Content: "Tienes una rutina de fuerza de 3 dias.",
			}))
		}
	}))
	defer srv.Close()

	svc := newTestChatService(t, srv.URL, routines, &fakeRecipeRepo{})

	answer, err := svc.Respond(context.Background(), "u1", []ChatMessage{{Role: "user", Content: "que rutinas tengo?"}})
	require.NoError(t, err)
	assert.Equal(t, "Tienes una rutina de fuerza de 3 dias.", answer)
	assert.Equal(t, 2, calls)
}

func TestChatService_RespondToolLoopBound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always demand another tool call so the loop never settles.
		json.NewEncoder(w).Encode(chatCompletion(ChatMessage{
			Role: "assistant",
			ToolCalls: []ToolCall{{
				ID:       "call_n",
				Type:     "function",
				Function: FunctionCall{Name: "get_recipes", Arguments: "{}"},
			}},
		}))
	}))
	defer srv.Close()

	svc := newTestChatService(t, srv.URL, &fakeRoutineRepo{}, &fakeRecipeRepo{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := svc.Respond(ctx, "u1", []ChatMessage{{Role: "user", Content: "hola"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool steps")
}

func TestChatService_RespondAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := newTestChatService(t, srv.URL, &fakeRoutineRepo{}, &fakeRecipeRepo{})

	_, err := svc.Respond(context.Background(), "u1", []ChatMessage{{Role: "user", Content: "hola"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatService_RespondValidation(t *testing.T) {
	svc := newTestChatService(t, "http://unused", &fakeRoutineRepo{}, &fakeRecipeRepo{})

	_, err := svc.Respond(context.Background(), "", []ChatMessage{{Role: "user", Content: "hola"}})
	assert.True(t, IsValidation(err))

	_, err = svc.Respond(context.Background(), "u1", nil)
	assert.True(t, IsValidation(err))

	unconfigured := NewChatService(&config.Config{}, &fakeRoutineRepo{}, &fakeRecipeRepo{}, nil, zap.NewNop())
	_, err = unconfigured.Respond(context.Background(), "u1", []ChatMessage{{Role: "user", Content: "hola"}})
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}
