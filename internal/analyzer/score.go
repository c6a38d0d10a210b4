package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-insight/internal/types"
)

// Patterns shared by the scorers. Word-level checks run over lowercased
// text; the non-ASCII check runs over the raw text.
var (
	coreSectionWords   = regexp.MustCompile(`\b(experience|education|skills)\b`)
	nonASCIIPattern    = regexp.MustCompile(`[^\x00-\x7F]`)
	doubleBreakPattern = regexp.MustCompile(`\n\s*\n`)
	properCasePattern  = regexp.MustCompile(`[A-Z][a-z]+`)

	// Contact shapes for the strict formatting pass; deliberately looser
	// than the extraction patterns (any 10-digit phone, any linkedin path).
	strictContactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`),
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`linkedin\.com/\w+`),
	}
)

// clampScore keeps a score inside [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ATSScore estimates how well automated tracking systems will parse the
// text. Penalties: very short documents, none of the core section words,
// and non-ASCII characters that trip older parsers.
func (a *Analyzer) ATSScore(text string) int {
	score := 100
	if utf8.RuneCountInString(text) < 100 {
		score -= 20
	}
	if !coreSectionWords.MatchString(strings.ToLower(text)) {
		score -= 15
	}
	if nonASCIIPattern.MatchString(text) {
		score -= 10
	}
	return clampScore(score)
}

// FormatScore is the lenient formatting check: blank-line section breaks
// and proper-case words are the two signals. This is the authoritative
// format number; FormatDetail carries the stricter advisory pass.
func (a *Analyzer) FormatScore(text string) int {
	score := 100
	if !doubleBreakPattern.MatchString(text) {
		score -= 10
	}
	if !properCasePattern.MatchString(text) {
		score -= 10
	}
	return clampScore(score)
}

// FormatDetail is the stricter formatting pass. Every deduction records a
// human-readable reason so callers can surface them next to suggestions.
func (a *Analyzer) FormatDetail(text string) types.FormatReport {
	lines := strings.Split(text, "\n")
	score := 100
	issues := make([]string, 0)

	if utf8.RuneCountInString(text) < 300 {
		score -= 30
		issues = append(issues, "Resume is too short")
	}
	if !anyUppercaseLine(lines) {
		score -= 20
		issues = append(issues, "No clear section headers found")
	}
	if !anyBulletLine(lines) {
		score -= 20
		issues = append(issues, "No bullet points found")
	}
	if hasConsecutiveBlankLines(lines) {
		score -= 15
		issues = append(issues, "Inconsistent spacing between sections")
	}
	if !anyContactMatch(text) {
		score -= 15
		issues = append(issues, "Missing or improperly formatted contact information")
	}

	return types.FormatReport{Score: clampScore(score), Issues: issues}
}

// SectionScore is the share of the five canonical sections with at least
// one keyword present anywhere in the text, scaled to [0,100].
func (a *Analyzer) SectionScore(text string) int {
	found := 0
	for _, label := range sectionOrder {
		if MatchesAny(text, a.lex.SectionKeywords(label)) {
			found++
		}
	}
	return found * 100 / len(sectionOrder)
}

// SectionDetail weighs keyword hit density per section instead of bare
// presence, 25 points per section at full density, clamped to [0,100].
func (a *Analyzer) SectionDetail(text string) int {
	lower := strings.ToLower(text)
	total := 0.0
	for _, label := range sectionOrder {
		keywords := a.lex.SectionKeywords(label)
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		total += float64(hits) / float64(len(keywords)) * 25
	}
	return clampScore(int(total))
}

// MatchKeywords tests each required skill for whole-word presence in the
// text, falling back to substring presence inside a period-delimited
// fragment ("Python" inside "Experienced in Python development"). Score is
// the found fraction scaled to [0,100]; an empty requirement list scores 0,
// uninformative rather than an error.
func (a *Analyzer) MatchKeywords(text string, req types.JobRequirements) types.KeywordMatch {
	match := types.KeywordMatch{
		FoundSkills:   make([]string, 0),
		MissingSkills: make([]string, 0),
	}
	if len(req.RequiredSkills) == 0 {
		return match
	}

	lower := strings.ToLower(text)
	fragments := strings.Split(lower, ".")

	for _, skill := range req.RequiredSkills {
		if skillPresent(lower, fragments, strings.ToLower(skill)) {
			match.FoundSkills = append(match.FoundSkills, skill)
		} else {
			match.MissingSkills = append(match.MissingSkills, skill)
		}
	}

	match.Score = len(match.FoundSkills) * 100 / len(req.RequiredSkills)
	return match
}

func skillPresent(lowerText string, fragments []string, lowerSkill string) bool {
	if lowerSkill == "" {
		return false
	}
	if pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(lowerSkill) + `\b`); err == nil {
		if pattern.MatchString(lowerText) {
			return true
		}
	}
	for _, fragment := range fragments {
		if strings.Contains(fragment, lowerSkill) {
			return true
		}
	}
	return false
}

// anyUppercaseLine reports whether some line has cased characters and all
// of them uppercase, the usual shape of a plain-text section header.
func anyUppercaseLine(lines []string) bool {
	for _, line := range lines {
		if isUpperLine(line) {
			return true
		}
	}
	return false
}

func isUpperLine(line string) bool {
	hasCased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func anyBulletLine(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") ||
			strings.HasPrefix(trimmed, "-") ||
			strings.HasPrefix(trimmed, "*") {
			return true
		}
	}
	return false
}

func hasConsecutiveBlankLines(lines []string) bool {
	for i := 0; i+1 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" && strings.TrimSpace(lines[i+1]) == "" {
			return true
		}
	}
	return false
}

func anyContactMatch(text string) bool {
	for _, pattern := range strictContactPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
