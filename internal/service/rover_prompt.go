package service

import "deakin-rover-ai/internal/domain"

// RoverSystemPrompt define la persona del asistente del proyecto Deakin Rover.
const RoverSystemPrompt = "You are the Deakin Rover AI assistant. " +
	"Explain things clearly and concisely. " +
	"You can talk about the Deakin Rover project, student rover competitions " +
	"such as the Australian Rover Challenge, robotics, and lunar exploration. " +
	"If you are not sure about something, say that you are not sure."

// RoverPromptBuilder arma el prompt de dos turnos: sistema + usuario.
type RoverPromptBuilder struct{}

// BuildMessages devuelve los mensajes que se envian al LLM.
func (RoverPromptBuilder) BuildMessages(userMessage string) []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: RoverSystemPrompt},
		{Role: domain.RoleUser, Content: userMessage},
	}
}
