package screening

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"screening-backend/internal/llm"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/telemetry"
)

// Mode selects the scoring strategy.
type Mode string

const (
	// ModeKeyword is the deterministic rule-based strategy and the fallback
	// for every other mode.
	ModeKeyword Mode = "keyword"
	// ModeGenerative delegates scoring to an external model, falling back to
	// keyword scoring on any failure.
	ModeGenerative Mode = "generative"
)

// ParseMode normalizes and validates a mode string. Empty input defaults to
// keyword.
func ParseMode(raw string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "", string(ModeKeyword):
		return ModeKeyword, nil
	case string(ModeGenerative):
		return ModeGenerative, nil
	default:
		return "", errors.New("scoring mode is invalid")
	}
}

// Engine scores candidate profiles against job descriptions. It is an
// explicitly constructed configuration object: the strategy and the random
// source for summary templates are injected, never global state.
type Engine struct {
	mode Mode
	llm  llm.Client

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine constructs an engine for the given mode. A nil client gets the
// placeholder client, whose errors send generative requests down the keyword
// fallback. A nil rng gets a time-seeded source; tests pass a seeded one for
// deterministic summaries.
func NewEngine(mode Mode, client llm.Client, rng *rand.Rand) *Engine {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		mode: mode,
		llm:  client,
		rng:  rng,
	}
}

// Mode reports the configured scoring mode.
func (e *Engine) Mode() Mode { return e.mode }

// Score computes a scoring result for one candidate against one job
// description. Generative failures are recovered locally by the keyword
// strategy; the caller only ever sees a Result.
func (e *Engine) Score(ctx context.Context, profile Profile, jobDescription string) Result {
	if e.mode == ModeGenerative {
		result, err := e.scoreGenerative(ctx, profile, jobDescription)
		if err == nil {
			return result
		}
		metrics.IncGenerativeFallback()
		telemetry.Warn("screening.generative.fallback", map[string]any{
			"err":  err.Error(),
			"mode": string(e.mode),
		})
	}

	result := scoreKeyword(profile, jobDescription)
	result.Summary = e.summaryFor(result.Category, len(result.MatchedSkills), len(result.MissingSkills), profile.Experience)
	return result
}

func (e *Engine) scoreGenerative(ctx context.Context, profile Profile, jobDescription string) (Result, error) {
	raw, err := e.llm.ScoreResume(ctx, llm.ScoreInput{
		JobDescription: jobDescription,
		Name:           profile.Name,
		Skills:         profile.Skills,
		Education:      profile.Education,
		Experience:     profile.Experience,
	})
	if err != nil {
		return Result{}, err
	}
	result, err := normalizeGenerative(raw)
	if err != nil {
		return Result{}, err
	}
	telemetry.Info("screening.generative.scored", map[string]any{
		"score":    result.Score,
		"category": string(result.Category),
	})
	return result, nil
}

// summaryTemplates holds three interchangeable summary templates per
// category, each interpolating matched count, missing count and experience.
var summaryTemplates = map[Category][3]string{
	CategoryStrong: {
		"Strong match: %d required skills covered, only %d missing, backed by %s of experience.",
		"Excellent fit with %d matched skills and %d gaps; candidate brings %s of relevant experience.",
		"Highly aligned profile: %d skills matched, %d missing, %s of experience.",
	},
	CategoryConsider: {
		"Possible fit: %d required skills matched, %d missing, with %s of experience.",
		"Worth a closer look; %d skills covered and %d gaps, experience at %s.",
		"Moderate alignment with %d matched and %d missing skills over %s of experience.",
	},
	CategoryReject: {
		"Weak match: only %d required skills present, %d missing, despite %s of experience.",
		"Below the bar with %d matched skills and %d gaps; experience listed as %s.",
		"Limited overlap: %d skills matched, %d missing, %s of experience.",
	},
}

func (e *Engine) summaryFor(category Category, matchedCount, missingCount int, experience string) string {
	templates, ok := summaryTemplates[category]
	if !ok {
		templates = summaryTemplates[CategoryReject]
	}
	e.mu.Lock()
	idx := e.rng.Intn(len(templates))
	e.mu.Unlock()
	return fmt.Sprintf(templates[idx], matchedCount, missingCount, experience)
}
