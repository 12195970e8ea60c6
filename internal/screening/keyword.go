package screening

import (
	"math"
	"regexp"
	"strings"
)

const (
	weightSkills     = 0.5
	weightExperience = 0.3
	weightEducation  = 0.2

	neutralSkillsScore   = 50
	defaultRequiredYears = 3

	strongThreshold   = 80
	considerThreshold = 60
)

var (
	requiredYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)
	firstIntPattern      = regexp.MustCompile(`\d+`)
)

// scoreKeyword runs the deterministic rule-based scoring path. Given the same
// profile and job description it always produces the same score, category and
// details; only the summary template choice is randomized by the engine.
func scoreKeyword(profile Profile, jobDescription string) Result {
	required := ExtractRequirements(jobDescription)
	matched, missing := partitionSkills(required, profile.Skills)

	details := Details{
		SkillsScore:     skillsScoreFor(len(matched), len(required)),
		ExperienceScore: experienceScoreFor(profile.Experience, jobDescription),
		EducationScore:  educationScoreFor(profile.Education, jobDescription),
	}

	total := totalScoreFor(details)
	return Result{
		Score:         total,
		Category:      categoryFor(total),
		MatchedSkills: matched,
		MissingSkills: missing,
		Details:       details,
	}
}

// partitionSkills splits required skills into matched and missing, preserving
// required order. A required skill matches a candidate skill when the two are
// case-insensitively equal or either contains the other.
func partitionSkills(required, candidate []string) (matched, missing []string) {
	matched = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for _, req := range required {
		if hasSkillMatch(req, candidate) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

func hasSkillMatch(required string, candidate []string) bool {
	reqLower := strings.ToLower(required)
	for _, cand := range candidate {
		candLower := strings.ToLower(cand)
		if reqLower == candLower ||
			strings.Contains(reqLower, candLower) ||
			strings.Contains(candLower, reqLower) {
			return true
		}
	}
	return false
}

// skillsScoreFor is the matched/required ratio as a 0-100 score. A job
// description yielding no requirements scores a neutral 50 rather than
// penalizing the candidate.
func skillsScoreFor(matchedCount, requiredCount int) int {
	if requiredCount == 0 {
		return neutralSkillsScore
	}
	return int(math.Round(float64(matchedCount) / float64(requiredCount) * 100))
}

// experienceScoreFor maps the candidate's years against the job's required
// years onto a five-bucket step function, inclusive at each threshold and
// evaluated in descending order.
func experienceScoreFor(experience, jobDescription string) int {
	actual := firstInt(experience)
	required := requiredYearsFrom(jobDescription)

	if actual >= required {
		return 100
	}
	ratio := float64(actual) / float64(required)
	switch {
	case ratio >= 0.7:
		return 80
	case ratio >= 0.5:
		return 60
	case ratio >= 0.3:
		return 40
	default:
		return 20
	}
}

// requiredYearsFrom reads the first "<N> years" figure out of the job
// description, defaulting to 3 when none is present. A literal "0 years" is
// taken at face value, which makes every candidate clear the experience bar.
func requiredYearsFrom(jobDescription string) int {
	m := requiredYearsPattern.FindStringSubmatch(jobDescription)
	if m == nil {
		return defaultRequiredYears
	}
	return firstInt(m[1])
}

func firstInt(s string) int {
	m := firstIntPattern.FindString(s)
	if m == "" {
		return 0
	}
	n := 0
	for _, ch := range m {
		n = n*10 + int(ch-'0')
	}
	return n
}

// educationScoreFor checks the education snippet against the job description
// with exact-level matches outranking generic degree mentions. Precedence:
// phd on both sides, then the JD's requested level matched, then generic
// degree mentions in descending order.
func educationScoreFor(education, jobDescription string) int {
	edu := strings.ToLower(education)
	jd := strings.ToLower(jobDescription)

	switch {
	case strings.Contains(jd, "phd") && strings.Contains(edu, "phd"):
		return 100
	case strings.Contains(jd, "master") && containsAny(edu, []string{"master", "ms", "mba"}):
		return 100
	case strings.Contains(jd, "bachelor") && containsAny(edu, []string{"bachelor", "bs", "ba"}):
		return 100
	case containsAny(edu, []string{"master", "ms"}):
		return 90
	case containsAny(edu, []string{"bachelor", "bs"}):
		return 80
	case containsAny(edu, []string{"university", "college"}):
		return 60
	default:
		return 50
	}
}

func totalScoreFor(d Details) int {
	return int(math.Round(
		weightSkills*float64(d.SkillsScore) +
			weightExperience*float64(d.ExperienceScore) +
			weightEducation*float64(d.EducationScore)))
}

func categoryFor(total int) Category {
	switch {
	case total >= strongThreshold:
		return CategoryStrong
	case total >= considerThreshold:
		return CategoryConsider
	default:
		return CategoryReject
	}
}
