package screening

// Category is the coarse bucketing of a total score.
type Category string

const (
	CategoryStrong   Category = "Strong"
	CategoryConsider Category = "Consider"
	CategoryReject   Category = "Reject"
)

// Details exposes the per-dimension sub-scores behind a total score.
type Details struct {
	SkillsScore     int `json:"skillsScore"`
	ExperienceScore int `json:"experienceScore"`
	EducationScore  int `json:"educationScore"`
}

// Result is the outcome of scoring one candidate against one job description.
// It is created once per scoring call and returned to the caller immutable.
type Result struct {
	Score         int      `json:"score"`
	Category      Category `json:"category"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Summary       string   `json:"summary"`
	Details       Details  `json:"details"`
}
