package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deakin-rover-ai/internal/domain"
)

// HealthHandler responde el health probe en GET /.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root maneja GET /. No depende del LLM.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:  "ok",
		Message: "Groq backend running.",
	})
}
