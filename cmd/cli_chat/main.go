package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"deakin-rover-ai/internal/config"
	"deakin-rover-ai/internal/domain"
	"deakin-rover-ai/internal/llm"
	"deakin-rover-ai/internal/service"
)

const requestTimeout = 90 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.GroqAPIKey, cfg.LLMModel, logger)
	chatSvc := service.NewChatService(logger, llmClient, service.RoverPromptBuilder{}, cfg.LLMTemperature)

	fmt.Printf("===== Deakin Rover AI (%s) =====\n", cfg.LLMModel)
	fmt.Println("Ask a question. Type /exit to quit.")

	if err := runREPL(os.Stdin, os.Stdout, chatSvc); err != nil {
		log.Fatal(err)
	}
}

type replier interface {
	Reply(ctx context.Context, message string) (domain.ChatResponse, error)
}

// runREPL lee una pregunta por linea y escribe la respuesta del asistente.
func runREPL(in io.Reader, out io.Writer, chatSvc replier) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read stdin: %w", err)
		}
		input := strings.TrimSpace(line)
		if input == "/exit" || input == "/quit" {
			return nil
		}

		if input != "" || !errors.Is(err, io.EOF) {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			resp, replyErr := chatSvc.Reply(ctx, input)
			cancel()
			switch {
			case errors.Is(replyErr, service.ErrEmptyMessage):
				fmt.Fprintln(out, "(empty message)")
			case replyErr != nil:
				fmt.Fprintf(out, "model error: %v\n", replyErr)
			default:
				fmt.Fprintf(out, "Rover: %s\n", resp.Reply)
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}
