// Package types provides type definitions for structured data used throughout the resume-insight system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordMatch reports how well a resume covers a set of required skills.
type KeywordMatch struct {
	Score         int      `json:"score"`
	FoundSkills   []string `json:"found_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// FormatReport carries the strict formatting assessment with one
// human-readable reason per deduction taken.
type FormatReport struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// PersonalInfo holds contact details located anywhere in the document.
// Fields are empty strings when no match was found.
type PersonalInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// Report is the complete output of one resume analysis: deterministic
// scores, improvement suggestions, and the structured extraction.
type Report struct {
	ATSScore     int          `json:"ats_score"`
	FormatScore  int          `json:"format_score"`
	SectionScore int          `json:"section_score"`
	KeywordMatch KeywordMatch `json:"keyword_match"`
	Suggestions  []string     `json:"suggestions"`

	PersonalInfo PersonalInfo `json:"personal_info"`
	Education    []string     `json:"education"`
	Experience   []string     `json:"experience"`
	Projects     []string     `json:"projects"`
	Skills       []string     `json:"skills"`
	Summary      string       `json:"summary"`

	// FormatDetail is the stricter formatting pass; its score is advisory
	// and never replaces FormatScore.
	FormatDetail FormatReport `json:"format_detail"`
	// SectionDetail is the hit-density section score, capped per section.
	SectionDetail int `json:"section_detail"`
}

// JobRequirements lists the skills a target role requires. The zero value
// (no skills) is valid and yields an uninformative keyword match of 0.
type JobRequirements struct {
	RequiredSkills []string `json:"required_skills"`
}

// AIAnalysis is the model-produced assessment returned by the llm collaborator.
type AIAnalysis struct {
	ResumeScore  int      `json:"resume_score"`
	ATSScore     int      `json:"ats_score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Suggestions  []string `json:"suggestions"`
	FullResponse string   `json:"full_response"`
	ModelUsed    string   `json:"model_used,omitempty"`
}
