package screening

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	defaultName       = "Candidate"
	defaultEducation  = "Education details not found"
	defaultExperience = "0-2 years"

	educationSnippetMax = 150
	educationSnippetMin = 10
	maxEstimatedYears   = 10
)

// Profile holds the structured attributes extracted from resume text.
// It is created once per extraction and not mutated afterwards.
type Profile struct {
	RawText    string   `json:"-"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Experience string   `json:"experience"`
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)

	// Explicit "<N> years" style mention, with an optional trailing
	// "of experience"/"exp"; checked before the role-keyword estimate so an
	// explicit figure always wins.
	explicitExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)?`)
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "bs", "ms", "mba", "university", "college", "degree",
}

var roleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "architect", "consultant", "specialist",
}

// ExtractProfile derives a candidate profile from plain resume text. It is a
// pure function and never fails: each heuristic degrades to a documented
// default when nothing matches.
func ExtractProfile(text string) Profile {
	return Profile{
		RawText:    text,
		Name:       extractName(text),
		Email:      extractEmail(text),
		Phone:      extractPhone(text),
		Skills:     extractSkills(text),
		Education:  extractEducation(text),
		Experience: extractExperience(text),
	}
}

// extractName takes the first non-empty line and accepts it as a name only if
// it has 2-4 words that all start with an uppercase letter. Punctuation-only
// tokens count as words and fail the uppercase check, which is an accepted
// false negative.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			return defaultName
		}
		for _, word := range words {
			runes := []rune(word)
			if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
				return defaultName
			}
		}
		return line
	}
	return defaultName
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the first plausible phone number. Multiple
// interpretations may match; first occurrence wins and no region validation
// is applied.
func extractPhone(text string) string {
	return strings.TrimSpace(phonePattern.FindString(text))
}

// extractSkills tests each vocabulary entry for case-insensitive substring
// containment in the full text, preserving vocabulary order. The vocabulary
// has unique entries already, so the seen map is only a safeguard.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	skills := make([]string, 0, 16)
	seen := make(map[string]struct{}, 16)
	for _, skill := range candidateVocabulary {
		if !strings.Contains(lower, strings.ToLower(skill)) {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}

// extractEducation scans for a line mentioning a degree keyword and returns
// that line joined with up to the two following lines, trimmed to 150
// characters. Snippets of 10 characters or fewer are skipped and scanning
// continues.
func extractEducation(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), educationKeywords) {
			continue
		}
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		snippet := strings.TrimSpace(strings.Join(lines[i:end], " "))
		if len(snippet) <= educationSnippetMin {
			continue
		}
		if runes := []rune(snippet); len(runes) > educationSnippetMax {
			snippet = string(runes[:educationSnippetMax])
		}
		return snippet
	}
	return defaultEducation
}

// extractExperience prefers an explicit "<N> years" mention, with or without
// a trailing "of experience". Without one it estimates from role-keyword
// counts: min(count*2, 10), as "<estimate>+ years". With no signal at all it
// returns "0-2 years".
func extractExperience(text string) string {
	if m := explicitExperiencePattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s years", m[1])
	}

	lower := strings.ToLower(text)
	count := 0
	for _, kw := range roleKeywords {
		count += strings.Count(lower, kw)
	}
	if count == 0 {
		return defaultExperience
	}
	estimate := count * 2
	if estimate > maxEstimatedYears {
		estimate = maxEstimatedYears
	}
	return fmt.Sprintf("%d+ years", estimate)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
