package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Suggestion rule triggers. Each rule is independent; every rule that fires
// contributes exactly one recommendation, in declaration order.
var (
	experienceWords = regexp.MustCompile(`\b(experience|work|job)\b`)
	educationWords  = regexp.MustCompile(`\b(education|university|college|school)\b`)
	skillWords      = regexp.MustCompile(`\b(skills|expertise|competencies)\b`)
)

// minDetailedLength is the text length under which a resume reads as too
// thin to say much about the candidate.
const minDetailedLength = 200

// Suggestions returns improvement recommendations for the text. Absent
// signals add suggestions rather than failing; a strong resume gets an
// empty list.
func (a *Analyzer) Suggestions(text string) []string {
	lower := strings.ToLower(text)
	suggestions := make([]string, 0)

	if utf8.RuneCountInString(text) < minDetailedLength {
		suggestions = append(suggestions, "Resume appears too short. Consider adding more details about your experience and skills.")
	}
	if !experienceWords.MatchString(lower) {
		suggestions = append(suggestions, "No work experience section found. Add your professional experience.")
	}
	if !educationWords.MatchString(lower) {
		suggestions = append(suggestions, "No education section found. Add your educational background.")
	}
	if !skillWords.MatchString(lower) {
		suggestions = append(suggestions, "No skills section found. List your technical and soft skills.")
	}

	return suggestions
}
