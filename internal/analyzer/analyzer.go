package analyzer

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Analyzer composes the segmenter, extractors, scorers, and suggestion
// rules around a shared lexicon. Instances are immutable and safe for
// concurrent use; every Analyze call works on its own data.
type Analyzer struct {
	lex *Lexicon
}

// New returns an Analyzer backed by the default lexicon.
func New() *Analyzer {
	return &Analyzer{lex: NewLexicon()}
}

// Analyze runs the full pipeline over raw resume text: segmentation plus
// structured extraction, every scorer, and the suggestion rules. The only
// error is EmptyInputError for empty or whitespace-only input; any other
// degenerate input degrades to low scores and empty entries.
func (a *Analyzer) Analyze(text string, req types.JobRequirements) (*types.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Message: "no text content found in resume"}
	}

	blocks := a.Segment(text)

	return &types.Report{
		ATSScore:     a.ATSScore(text),
		FormatScore:  a.FormatScore(text),
		SectionScore: a.SectionScore(text),
		KeywordMatch: a.MatchKeywords(text, req),
		Suggestions:  a.Suggestions(text),

		PersonalInfo: a.ExtractPersonalInfo(text),
		Education:    a.ExtractEducation(blocks),
		Experience:   a.ExtractExperience(blocks),
		Projects:     a.ExtractProjects(blocks),
		Skills:       a.ExtractSkills(blocks),
		Summary:      a.ExtractSummary(text, blocks),

		FormatDetail:  a.FormatDetail(text),
		SectionDetail: a.SectionDetail(text),
	}, nil
}
