package screening

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// maxUnwrapDepth bounds the recursive search for a result shape inside
// wrapper objects the model may invent around its answer.
const maxUnwrapDepth = 5

// wrapperKeys are the envelope keys models commonly wrap a JSON answer in.
var wrapperKeys = []string{"result", "data", "response", "output", "analysis", "evaluation", "screening"}

// normalizeGenerative turns a raw model payload into a Result. The payload
// may nest the actual object under arbitrary wrapper keys; unwrap walks those
// recursively until a shape with score and category or summary is found.
func normalizeGenerative(raw json.RawMessage) (Result, error) {
	if len(raw) == 0 {
		return Result{}, errors.New("empty generative result")
	}
	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return Result{}, fmt.Errorf("generative result parse: %w", err)
	}

	node, ok := unwrap(top, 0)
	if !ok {
		return Result{}, errors.New("generative result has no recognizable shape")
	}

	score := clampScore(numberField(node, "score"))
	category, ok := parseCategory(stringField(node, "category"))
	if !ok {
		category = categoryFor(score)
	}

	result := Result{
		Score:         score,
		Category:      category,
		MatchedSkills: stringSliceField(node, "matchedSkills"),
		MissingSkills: stringSliceField(node, "missingSkills"),
		Summary:       strings.TrimSpace(stringField(node, "summary")),
	}
	if details, ok := node["details"].(map[string]any); ok {
		result.Details = Details{
			SkillsScore:     clampScore(numberField(details, "skillsScore")),
			ExperienceScore: clampScore(numberField(details, "experienceScore")),
			EducationScore:  clampScore(numberField(details, "educationScore")),
		}
	}
	if result.Summary == "" {
		return Result{}, errors.New("generative result missing summary")
	}
	return result, nil
}

func unwrap(node map[string]any, depth int) (map[string]any, bool) {
	if hasResultShape(node) {
		return node, true
	}
	if depth >= maxUnwrapDepth {
		return nil, false
	}
	for _, key := range wrapperKeys {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		if found, ok := unwrap(child, depth+1); ok {
			return found, true
		}
	}
	return nil, false
}

func hasResultShape(node map[string]any) bool {
	if _, ok := node["score"]; !ok {
		return false
	}
	_, hasCategory := node["category"]
	_, hasSummary := node["summary"]
	return hasCategory || hasSummary
}

func parseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strong":
		return CategoryStrong, true
	case "consider":
		return CategoryConsider, true
	case "reject":
		return CategoryReject, true
	default:
		return "", false
	}
}

func clampScore(value float64) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return int(math.Round(value))
}

func numberField(node map[string]any, key string) float64 {
	switch v := node[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func stringField(node map[string]any, key string) string {
	if v, ok := node[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(node map[string]any, key string) []string {
	out := []string{}
	switch raw := node[key].(type) {
	case []string:
		return raw
	case []any:
		for _, item := range raw {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
	}
	return out
}
