package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deakin-rover-ai/internal/domain"
	"deakin-rover-ai/internal/service"
)

const (
	detailInvalidRequest = "invalid request"
	detailEmptyMessage   = "Message cannot be empty."
	detailModelError     = "Groq model error. Try again."
)

// ChatReplier genera la respuesta del asistente para un mensaje.
type ChatReplier interface {
	Reply(ctx context.Context, message string) (domain.ChatResponse, error)
}

// ChatHandler mantiene dependencias para el endpoint de chat.
type ChatHandler struct {
	logger *zap.Logger
	chat   ChatReplier
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chat ChatReplier) *ChatHandler {
	return &ChatHandler{
		logger: logger,
		chat:   chat,
	}
}

// Chat maneja POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		h.logger.Warn("invalid chat request", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
		c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: detailInvalidRequest})
		return
	}

	resp, err := h.chat.Reply(c.Request.Context(), *req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: detailEmptyMessage})
		default:
			h.logger.Error("groq chat error", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: detailModelError})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
