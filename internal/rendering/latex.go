// Package rendering renders structured resume forms into LaTeX documents.
package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jonathan/resume-insight/internal/types"
)

//go:embed resume.tex.tmpl
var resumeTemplateText string

var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplateText))

// documentData is the display-ready payload passed to the resume
// template. Every string has already been through EscapeLaTeX.
type documentData struct {
	Name       string
	Contact    string
	Links      string
	Summary    string
	Experience []experienceSection
	Education  []educationSection
	Projects   []projectSection
	Skills     []skillLine
}

// experienceSection is one job entry.
type experienceSection struct {
	Heading     string
	Dates       string
	Description string
}

// educationSection is one school entry.
type educationSection struct {
	Heading string
	Detail  string
}

// projectSection is one project entry.
type projectSection struct {
	Name         string
	Technologies string
	Description  string
	Link         string
}

// skillLine is one labeled skill group, e.g. "Technical: Go, SQL".
type skillLine struct {
	Label string
	List  string
}

// RenderResume renders a resume form as a complete LaTeX document.
// The form must carry at least a full name; empty sections are omitted
// from the output rather than rendered as blank blocks.
func RenderResume(form types.ResumeForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", &RenderError{
			Message: "invalid resume form",
			Cause:   err,
		}
	}

	var doc strings.Builder
	if err := resumeTmpl.Execute(&doc, buildDocumentData(form)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}

	return doc.String(), nil
}

// buildDocumentData escapes the form fields and arranges them into the
// shape the template iterates over.
func buildDocumentData(form types.ResumeForm) *documentData {
	info := form.PersonalDetails
	data := &documentData{
		Name:    EscapeLaTeX(strings.ToUpper(info.FullName)),
		Contact: joinNonEmpty(" | ", EscapeLaTeX(info.Email), EscapeLaTeX(info.Phone), EscapeLaTeX(info.Location)),
		Links:   joinNonEmpty(" | ", EscapeLaTeX(info.LinkedIn), EscapeLaTeX(info.Portfolio)),
		Summary: EscapeLaTeX(form.Summary),
	}

	for _, exp := range form.Experience {
		data.Experience = append(data.Experience, experienceSection{
			Heading:     EscapeLaTeX(joinNonEmpty(" -- ", exp.Company, exp.Position)),
			Dates:       EscapeLaTeX(formatDateRange(exp.StartDate, exp.EndDate)),
			Description: EscapeLaTeX(exp.Description),
		})
	}

	for _, edu := range form.Education {
		detail := joinNonEmpty(" | ", edu.Field, edu.GraduationDate, gpaLabel(edu.GPA))
		data.Education = append(data.Education, educationSection{
			Heading: EscapeLaTeX(joinNonEmpty(" -- ", edu.School, edu.Degree)),
			Detail:  EscapeLaTeX(detail),
		})
	}

	for _, proj := range form.Projects {
		data.Projects = append(data.Projects, projectSection{
			Name:         EscapeLaTeX(proj.Name),
			Technologies: EscapeLaTeX(proj.Technologies),
			Description:  EscapeLaTeX(proj.Description),
			Link:         EscapeLaTeX(proj.Link),
		})
	}

	data.Skills = buildSkillLines(form.Skills)

	return data
}

// buildSkillLines renders each non-empty skill group as a labeled line,
// in the order the builder form collects them.
func buildSkillLines(groups types.SkillGroups) []skillLine {
	var lines []skillLine
	add := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		escaped := make([]string, len(items))
		for i, item := range items {
			escaped[i] = EscapeLaTeX(item)
		}
		lines = append(lines, skillLine{Label: label, List: strings.Join(escaped, ", ")})
	}

	add("Technical", groups.Technical)
	add("Soft", groups.Soft)
	add("Languages", groups.Languages)
	add("Tools", groups.Tools)

	return lines
}

// formatDateRange joins a start and end date for display, tolerating
// either side being empty.
func formatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " -- " + end
	}
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func gpaLabel(gpa string) string {
	if gpa == "" {
		return ""
	}
	return "GPA: " + gpa
}
