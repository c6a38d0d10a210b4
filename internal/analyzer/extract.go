package analyzer

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// ExtractPersonalInfo applies the contact patterns to the whole document.
// Contact details usually sit above any section heading, so matching is not
// block-scoped. Absent fields come back as empty strings.
func (a *Analyzer) ExtractPersonalInfo(text string) types.PersonalInfo {
	return types.PersonalInfo{
		Email:    a.lex.emailPattern.FindString(text),
		Phone:    strings.TrimSpace(a.lex.phonePattern.FindString(text)),
		LinkedIn: a.lex.linkedinPattern.FindString(text),
	}
}

// joinBlocks returns one entry per block carrying the label, each block's
// lines joined by single spaces, in document order.
func joinBlocks(blocks []SectionBlock, label SectionLabel) []string {
	entries := make([]string, 0)
	for _, b := range blocks {
		if b.Label != label || len(b.Lines) == 0 {
			continue
		}
		entries = append(entries, strings.Join(b.Lines, " "))
	}
	return entries
}

// ExtractEducation returns one entry per education block, in document order.
func (a *Analyzer) ExtractEducation(blocks []SectionBlock) []string {
	return joinBlocks(blocks, SectionEducation)
}

// ExtractExperience returns one entry per experience block, in document order.
func (a *Analyzer) ExtractExperience(blocks []SectionBlock) []string {
	return joinBlocks(blocks, SectionExperience)
}

// ExtractProjects returns one entry per projects block, in document order.
func (a *Analyzer) ExtractProjects(blocks []SectionBlock) []string {
	return joinBlocks(blocks, SectionProjects)
}

// ExtractSkills splits every skills-block line on commas and keeps trimmed
// tokens longer than two characters; shorter tokens are noise from stray
// separators. Duplicates collapse case-insensitively, first seen wins, so
// repeated calls produce identical output.
func (a *Analyzer) ExtractSkills(blocks []SectionBlock) []string {
	seen := make(map[string]bool)
	skills := make([]string, 0)
	for _, b := range blocks {
		if b.Label != SectionSkills {
			continue
		}
		for _, line := range b.Lines {
			for _, token := range strings.Split(line, ",") {
				token = strings.TrimSpace(token)
				if len(token) <= 2 {
					continue
				}
				key := strings.ToLower(token)
				if seen[key] {
					continue
				}
				seen[key] = true
				skills = append(skills, token)
			}
		}
	}
	return skills
}

// summaryStopWords are the cues that a top-of-document line already belongs
// to a real section rather than an implicit summary.
var summaryStopWords = []string{"experience", "education", "skills"}

// ExtractSummary prefers explicit summary blocks. Without one it falls back
// to the implicit-summary heuristic: of the first five document lines, keep
// the non-blank ones that carry no section cue, joined with single spaces.
func (a *Analyzer) ExtractSummary(text string, blocks []SectionBlock) string {
	if entries := joinBlocks(blocks, SectionSummary); len(entries) > 0 {
		return strings.Join(entries, " ")
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	var kept []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || MatchesAny(line, summaryStopWords) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}
