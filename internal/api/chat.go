package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/middleware"
	"github.com/bodyai/backend/internal/service"
)

// ChatHandler serves the assistant endpoint. The answer is delivered as a
// server-sent event stream so the page can render it as it arrives.
type ChatHandler struct {
	chat   service.IChatService
	logger *zap.Logger
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(chat service.IChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	reply, err := h.chat.Respond(c.Request.Context(), middleware.UserID(c), req.Messages)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	payload, err := json.Marshal(gin.H{"role": "assistant", "content": reply})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SSEvent("message", string(payload))
	c.SSEvent("done", "[DONE]")
	c.Writer.Flush()
}
