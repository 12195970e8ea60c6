package main

import (
	"log"

	"screening-backend/internal/config"
	"screening-backend/internal/llm"
	"screening-backend/internal/llm/openai"
	"screening-backend/internal/screening"
	"screening-backend/internal/server"
	"screening-backend/internal/services/health"
	"screening-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	mode, err := screening.ParseMode(cfg.ScoringMode)
	if err != nil {
		log.Fatalf("invalid SCORING_MODE %q: %v", cfg.ScoringMode, err)
	}

	var client llm.Client = llm.PlaceholderClient{}
	if mode == screening.ModeGenerative {
		openaiClient, err := openai.NewClient(cfg.OpenAIKey, cfg.Model)
		if err != nil {
			telemetry.Warn("llm.client.unavailable", map[string]any{
				"err": err.Error(),
			})
		} else {
			client = openaiClient
		}
	}

	engine := screening.NewEngine(mode, client, nil)
	handler := screening.NewHandler(engine)
	healthSvc := health.NewService(string(mode))

	r := server.NewEngine(cfg, handler, healthSvc)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting screening API on %s (mode=%s)", addr, mode)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
