package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string   `env:"HTTP_PORT" envDefault:"8080"`
	GroqAPIKey         string   `env:"GROQ_API_KEY,required"`
	LLMBaseURL         string   `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel           string   `env:"LLM_MODEL" envDefault:"llama-3.1-8b-instant"`
	LLMTemperature     float64  `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,https://deakinrover.space"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile            string   `env:"LOG_FILE"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is not set")
	}

	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	cfg.CORSAllowedOrigins = origins
	return &cfg, nil
}
