package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bodyai/backend/config"
)

// maxToolSteps caps the tool-call loop: tool call -> tool execution -> final
// response should never need more rounds than this.
const maxToolSteps = 5

// historyTTL bounds how long a user's conversation is kept in Redis.
const historyTTL = 24 * time.Hour

// historyLimit is the number of messages of context replayed to the model.
const historyLimit = 20

const systemPrompt = `You are a helpful fitness and nutrition assistant for Body AI.
You help users with their workout routines and meal plans.
When users ask about their routines or recipes, use the available tools to fetch their data from the database.
Be friendly, informative, and provide detailed answers based on the user's actual data.
Always respond in the same language the user is using.`

// ChatMessage is one turn of a conversation in the chat-completions wire
// format.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a model-requested function invocation.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names the tool and carries its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatTool struct {
	Type     string           `json:"type"`
	Function chatToolFunction `json:"function"`
}

type chatToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Tools       []chatTool    `json:"tools,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Index   int         `json:"index"`
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Both tools are read-only: they fetch the authenticated user's stored data
// so the model can answer from it.
var chatTools = []chatTool{
	{
		Type: "function",
		Function: chatToolFunction{
			Name:        "get_routines",
			Description: "Get all workout routines for the current user. Use this when the user asks about their routines, workout plans, exercises, or training schedule.",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		},
	},
	{
		Type: "function",
		Function: chatToolFunction{
			Name:        "get_recipes",
			Description: "Get all meal plans and recipes for the current user. Use this when the user asks about their recipes, meal plans, nutrition, calories, protein, or food.",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		},
	},
}

// ChatService drives the LLM-backed assistant against an OpenAI-compatible
// chat-completions API, wiring in the two data-fetch tools.
type ChatService struct {
	apiKey   string
	baseURL  string
	model    string
	client   *http.Client
	routines RoutineRepository
	recipes  RecipeRepository
	redis    *redis.Client
	logger   *zap.Logger
}

// NewChatService creates a new ChatService instance. The Redis client may be
// nil, in which case conversation history is not persisted.
func NewChatService(cfg *config.Config, routines RoutineRepository, recipes RecipeRepository, rdb *redis.Client, logger *zap.Logger) *ChatService {
	return &ChatService{
		apiKey:   cfg.LLMAPIKey,
		baseURL:  cfg.LLMBaseURL,
		model:    cfg.LLMModel,
		client:   &http.Client{Timeout: 60 * time.Second},
		routines: routines,
		recipes:  recipes,
		redis:    rdb,
		logger:   logger,
	}
}

// Respond runs the conversation through the model, executing tool calls
// against the user's stored routines and meal plans, and returns the final
// assistant message.
func (s *ChatService) Respond(ctx context.Context, userID string, messages []ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("chat: LLM_API_KEY not configured")
	}
	if userID == "" {
		return "", validationErrorf("user id is required")
	}
	if len(messages) == 0 {
		return "", validationErrorf("at least one message is required")
	}

	msgs := make([]ChatMessage, 0, len(messages)+historyLimit+1)
	msgs = append(msgs, ChatMessage{Role: "system", Content: systemPrompt})
	msgs = append(msgs, s.loadHistory(ctx, userID)...)
	msgs = append(msgs, messages...)

	for step := 0; step < maxToolSteps; step++ {
		reply, err := s.complete(ctx, msgs)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			s.saveHistory(ctx, userID, messages, reply.Content)
			return reply.Content, nil
		}

		msgs = append(msgs, *reply)
		for _, call := range reply.ToolCalls {
			result, err := s.executeTool(ctx, userID, call)
			if err != nil {
				return "", err
			}
			msgs = append(msgs, ChatMessage{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return "", fmt.Errorf("chat: no final answer after %d tool steps", maxToolSteps)
}

func (s *ChatService) complete(ctx context.Context, msgs []ChatMessage) (*ChatMessage, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       s.model,
		Messages:    msgs,
		Tools:       chatTools,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("chat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("chat: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat: API error (status %d): %s", resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("chat: parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("chat: no response choices returned")
	}
	return &parsed.Choices[0].Message, nil
}

func (s *ChatService) executeTool(ctx context.Context, userID string, call ToolCall) (string, error) {
	switch call.Function.Name {
	case "get_routines":
		routines, err := s.routines.FindByUserID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("chat: get_routines: %w", err)
		}
		return marshalToolResult("routines", routines)
	case "get_recipes":
		recipes, err := s.recipes.FindByUserID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("chat: get_recipes: %w", err)
		}
		return marshalToolResult("recipes", recipes)
	default:
		return "", fmt.Errorf("chat: unknown tool %q", call.Function.Name)
	}
}

func marshalToolResult(key string, items any) (string, error) {
	data, err := json.Marshal(map[string]any{key: items})
	if err != nil {
		return "", fmt.Errorf("chat: marshal tool result: %w", err)
	}
	return string(data), nil
}

func historyKey(userID string) string { return "chat:history:" + userID }

func (s *ChatService) loadHistory(ctx context.Context, userID string) []ChatMessage {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.LRange(ctx, historyKey(userID), 0, historyLimit-1).Result()
	if err != nil {
		s.logger.Warn("failed to load chat history", zap.Error(err))
		return nil
	}

	// Stored newest first; replay oldest first.
	history := make([]ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			continue
		}
		history = append(history, msg)
	}
	return history
}

func (s *ChatService) saveHistory(ctx context.Context, userID string, messages []ChatMessage, reply string) {
	if s.redis == nil {
		return
	}
	key := historyKey(userID)

	entries := make([]any, 0, len(messages)+1)
	for _, m := range messages {
		if data, err := json.Marshal(m); err == nil {
			entries = append(entries, data)
		}
	}
	if data, err := json.Marshal(ChatMessage{Role: "assistant", Content: reply}); err == nil {
		entries = append(entries, data)
	}

	pipe := s.redis.Pipeline()
	pipe.LPush(ctx, key, entries...)
	pipe.LTrim(ctx, key, 0, historyLimit-1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to save chat history", zap.Error(err))
	}
}
