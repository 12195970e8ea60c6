package openai

import (
	"fmt"
	"strings"

	"screening-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a recruitment screening engine. Respond with JSON only. " +
	"No markdown. Never omit keys. Output must match the schema exactly."

const resultSchema = `{
  "score": <integer 0-100>,
  "category": "Strong" | "Consider" | "Reject",
  "matchedSkills": [<string>],
  "missingSkills": [<string>],
  "summary": <string, 1-2 sentences>,
  "details": {
    "skillsScore": <integer 0-100>,
    "experienceScore": <integer 0-100>,
    "educationScore": <integer 0-100>
  }
}`

// BuildPrompt creates the chat messages for a scoring request.
func BuildPrompt(input llm.ScoreInput) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(input)},
	}
}

func buildUserPrompt(input llm.ScoreInput) string {
	skills := "None listed"
	if len(input.Skills) > 0 {
		skills = strings.Join(input.Skills, ", ")
	}
	return fmt.Sprintf(
		"Score this candidate against the job description.\n\n"+
			"Job Description:\n%s\n\n"+
			"Candidate:\n- Name: %s\n- Skills: %s\n- Education: %s\n- Experience: %s\n\n"+
			"Return a JSON object with exactly this shape:\n%s",
		input.JobDescription,
		fallback(input.Name, "Candidate"),
		skills,
		fallback(input.Education, "Not provided"),
		fallback(input.Experience, "Not provided"),
		resultSchema,
	)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
