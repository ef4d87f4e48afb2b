package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LLM         LLMConfig
}

type LLMConfig struct {
	// Provider selects the completion backend: openai, gemini or fake.
	Provider    string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
	MaxTokens   int
	Temperature float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LLM:         loadLLMConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	cfg := LLMConfig{
		Provider:    strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))),
		OpenAIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel: firstNonEmpty(strings.TrimSpace(os.Getenv("OPENAI_MODEL")), "gpt-4"),
		GeminiKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel: firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.0-flash"),
		MaxTokens:   2000,
		Temperature: 0.7,
	}
	if v := os.Getenv("OPENAI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("OPENAI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Temperature = f
		}
	}
	if cfg.Provider == "" {
		switch {
		case cfg.OpenAIKey != "":
			cfg.Provider = "openai"
		case cfg.GeminiKey != "":
			cfg.Provider = "gemini"
		default:
			cfg.Provider = "fake"
		}
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
