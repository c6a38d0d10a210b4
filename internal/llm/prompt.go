package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxResumeChars caps how much resume text goes into the prompt. Resumes
// longer than this are truncated from the end, which keeps the contact block
// and earliest sections intact.
const maxResumeChars = 24000

// BuildAnalysisPrompt constructs the instruction for scoring a resume
// against a target role. The model is told to answer with a bare JSON object
// matching the bundled analysis schema.
func BuildAnalysisPrompt(resumeText, jobRole string) string {
	text := strings.TrimSpace(resumeText)
	if len(text) > maxResumeChars {
		// Back the cut up to a rune start so the prompt stays valid UTF-8.
		cut := maxResumeChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	role := strings.TrimSpace(jobRole)
	if role == "" {
		role = "an unspecified role"
	}

	var sb strings.Builder
	sb.WriteString("You are an experienced technical recruiter reviewing a resume for the role of ")
	sb.WriteString(role)
	sb.WriteString(".\n\n")
	sb.WriteString("Evaluate the resume and respond with a single JSON object, no prose, using exactly these fields:\n")
	sb.WriteString(`{
  "resume_score": <integer 0-100, overall fit for the role>,
  "ats_score": <integer 0-100, how well the resume parses in applicant tracking systems>,
  "strengths": [<3-5 short strings naming what the candidate does well>],
  "weaknesses": [<3-5 short strings naming gaps for this role>],
  "suggestions": [<3-5 short actionable improvements>]
}`)
	sb.WriteString("\n\nResume:\n")
	sb.WriteString(fmt.Sprintf("---\n%s\n---\n", text))
	return sb.String()
}
