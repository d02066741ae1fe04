package llm

import (
	"context"
	"errors"

	"deakin-rover-ai/internal/domain"
)

// ErrEmptyResponse indica que el proveedor respondio sin texto generado.
var ErrEmptyResponse = errors.New("llm empty response")

// Request agrupa los mensajes y parametros de muestreo de una completion.
type Request struct {
	Messages    []domain.Message
	Temperature float64
}

// LLMClient define la interfaz para generar respuestas con un LLM.
type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}
