package screening

import "strings"

// ExtractRequirements reads the required-skill set out of a free-text job
// description, applying the same case-insensitive substring test as resume
// skill extraction against the requirement vocabulary. Output order is
// vocabulary order, not mention order.
func ExtractRequirements(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	required := make([]string, 0, 8)
	for _, skill := range requirementVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			required = append(required, skill)
		}
	}
	return required
}
