package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"deakin-rover-ai/internal/domain"
	"deakin-rover-ai/internal/llm"
)

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrModelFailure = errors.New("model failure")
)

// ChatService reenvia mensajes del usuario al LLM con el prompt del rover.
type ChatService struct {
	logger      *zap.Logger
	llmClient   llm.LLMClient
	prompts     RoverPromptBuilder
	temperature float64
}

func NewChatService(logger *zap.Logger, llmClient llm.LLMClient, prompts RoverPromptBuilder, temperature float64) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		logger:      logger,
		llmClient:   llmClient,
		prompts:     prompts,
		temperature: temperature,
	}
}

// Reply valida el mensaje, consulta el LLM y devuelve la respuesta.
// Los errores son ErrEmptyMessage o envuelven ErrModelFailure junto a la causa.
func (s *ChatService) Reply(ctx context.Context, message string) (domain.ChatResponse, error) {
	userMessage := strings.TrimSpace(message)
	if userMessage == "" {
		return domain.ChatResponse{}, ErrEmptyMessage
	}
	if s.llmClient == nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: llm client not configured", ErrModelFailure)
	}

	reply, err := s.llmClient.Generate(ctx, llm.Request{
		Messages:    s.prompts.BuildMessages(userMessage),
		Temperature: s.temperature,
	})
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: %w", ErrModelFailure, err)
	}
	if reply == "" {
		return domain.ChatResponse{}, fmt.Errorf("%w: %w", ErrModelFailure, llm.ErrEmptyResponse)
	}

	s.logger.Debug("chat reply generated", zap.Int("message_len", len(userMessage)), zap.Int("reply_len", len(reply)))
	return domain.ChatResponse{Reply: reply}, nil
}
