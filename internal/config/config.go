package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port           string
	Env            string
	ScoringMode    string
	OpenAIKey      string
	Model          string
	AllowedOrigins []string
}

// Load reads configuration from the environment, loading a local .env file
// first when present.
func Load() Config {
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "development"))
	mode := strings.ToLower(strings.TrimSpace(getEnv("SCORING_MODE", "keyword")))

	if mode == "generative" && os.Getenv("OPENAI_API_KEY") == "" && env == "production" {
		log.Fatal("OPENAI_API_KEY is required when SCORING_MODE=generative in production")
	}

	return Config{
		Port:           getEnv("PORT", "5000"),
		Env:            env,
		ScoringMode:    mode,
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:          getEnv("LLM_MODEL", "gpt-4o-mini"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "development"
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
