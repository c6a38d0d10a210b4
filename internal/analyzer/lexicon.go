// Package analyzer implements the rule-based resume segmentation and
// scoring engine: it splits extracted resume text into labeled sections,
// pulls structured entries out of them, and computes deterministic quality
// scores from signal detection. No I/O and no model inference happen here.
package analyzer

import (
	"regexp"
	"strings"
)

// SectionLabel identifies which canonical resume section a run of lines
// belongs to.
type SectionLabel string

// The closed set of section labels.
const (
	SectionEducation  SectionLabel = "education"
	SectionExperience SectionLabel = "experience"
	SectionSkills     SectionLabel = "skills"
	SectionProjects   SectionLabel = "projects"
	SectionSummary    SectionLabel = "summary"
	SectionUnknown    SectionLabel = "unknown"
)

// sectionOrder is the priority order used when a line matches keywords for
// more than one label. The order is part of the contract: segmentation must
// never depend on map iteration.
var sectionOrder = []SectionLabel{
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionSummary,
}

// Lexicon is the immutable signal vocabulary the engine matches against:
// per-section keyword lists, extended header synonyms for the segmenter,
// and contact-info patterns. Construct once, share freely; it is never
// mutated after NewLexicon.
type Lexicon struct {
	// keywords are the canonical per-section lists used by the scorers.
	keywords map[SectionLabel][]string
	// headers supersets keywords with the section-heading synonyms the
	// segmenter recognizes (e.g. "work history", "b.tech").
	headers map[SectionLabel][]string

	emailPattern    *regexp.Regexp
	phonePattern    *regexp.Regexp
	linkedinPattern *regexp.Regexp
}

// NewLexicon returns the default lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		keywords: map[SectionLabel][]string{
			SectionEducation:  {"education", "academic", "university", "college", "school"},
			SectionExperience: {"experience", "employment", "work", "job"},
			SectionSkills:     {"skills", "technical skills", "competencies", "expertise"},
			SectionProjects:   {"projects", "portfolio", "achievements"},
			SectionSummary:    {"summary", "profile", "objective", "about"},
		},
		headers: map[SectionLabel][]string{
			SectionEducation: {
				"education", "academic", "qualification", "degree", "university",
				"college", "school", "institute", "certification", "diploma",
				"bachelor", "master", "phd", "b.tech", "m.tech", "b.e", "m.e",
				"b.sc", "m.sc", "bca", "mca", "b.com", "m.com", "bba", "mba",
				"honors", "scholarship",
			},
			SectionExperience: {
				"experience", "employment", "work", "job", "work history",
				"professional experience", "work experience", "career history",
				"professional background", "employment history", "job history",
				"positions held", "job title", "job responsibilities",
			},
			SectionSkills: {
				"skills", "technical skills", "competencies", "expertise",
			},
			SectionProjects: {
				"projects", "portfolio", "achievements", "personal projects",
				"academic projects", "key projects", "major projects",
				"professional projects", "project experience", "featured projects",
			},
			SectionSummary: {
				"summary", "profile", "objective", "about",
			},
		},
		emailPattern:    regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),
		phonePattern:    regexp.MustCompile(`(\+\d{1,3}[-.]?)?\s*\(?\d{3}\)?[-.]?\s*\d{3}[-.]?\s*\d{4}`),
		linkedinPattern: regexp.MustCompile(`linkedin\.com/in/[\w-]+`),
	}
}

// SectionKeywords returns the canonical keyword list for a label, nil for
// labels without one (unknown).
func (l *Lexicon) SectionKeywords(label SectionLabel) []string {
	return l.keywords[label]
}

// MatchesAny reports whether the line contains any of the keywords,
// case-insensitively. Keyword order is irrelevant.
func MatchesAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchHeader returns the first label, in priority order, whose header
// vocabulary appears in the line. ok is false when no label matches.
func (l *Lexicon) matchHeader(line string) (SectionLabel, bool) {
	for _, label := range sectionOrder {
		if MatchesAny(line, l.headers[label]) {
			return label, true
		}
	}
	return SectionUnknown, false
}

// isPureHeader reports whether the trimmed line is an exact case-insensitive
// match of one of the label's header keywords, i.e. a heading that carries
// no data of its own.
func (l *Lexicon) isPureHeader(line string, label SectionLabel) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, kw := range l.headers[label] {
		if lower == kw {
			return true
		}
	}
	return false
}
