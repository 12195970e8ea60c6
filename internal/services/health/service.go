package health

import "time"

// Service encapsulates health-related checks.
type Service struct {
	mode string
}

// NewService constructs a new health service reporting the configured scoring
// mode.
func NewService(mode string) *Service {
	return &Service{mode: mode}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":    "ok",
		"mode":      s.mode,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
