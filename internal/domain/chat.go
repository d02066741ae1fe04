package domain

// Roles admitidos en los mensajes enviados al LLM.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest es el cuerpo de POST /chat.
type ChatRequest struct {
	Message *string `json:"message"`
}

// ChatResponse es la respuesta exitosa de POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Message es un turno con rol dentro del prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse replica el formato {"detail": "..."} que consume el frontend.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
