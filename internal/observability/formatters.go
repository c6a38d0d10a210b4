// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens a value to fit on one box line.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// appendList writes a titled bullet list capped at maxItemsToShow entries.
func appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", clip(items[i], 50)))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintReport outputs a human-readable summary of a deterministic analysis.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score:      %d/100\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("Format Score:   %d/100\n", report.FormatScore))
	sb.WriteString(fmt.Sprintf("Section Score:  %d/100\n", report.SectionScore))
	if len(report.KeywordMatch.FoundSkills)+len(report.KeywordMatch.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Keyword Score:  %d/100\n", report.KeywordMatch.Score))
	}

	if report.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("\nContact:  %s\n", clip(report.PersonalInfo.Email, 45)))
	}

	if len(report.KeywordMatch.FoundSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched:  %s\n", clip(strings.Join(report.KeywordMatch.FoundSkills, ", "), 45)))
	}
	if len(report.KeywordMatch.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", clip(strings.Join(report.KeywordMatch.MissingSkills, ", "), 45)))
	}

	appendList(&sb, "Suggestions", report.Suggestions)

	p.printBox("ANALYSIS REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormatIssues outputs the strict formatting pass, one line per issue.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFormatIssues(detail types.FormatReport) {
	if len(detail.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FORMAT ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strict format score: %d/100\n\n", detail.Score))
	for _, issue := range detail.Issues {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", clip(issue, 52)))
	}

	p.printBox("FORMAT ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAIAnalysis outputs the model-produced assessment.
func (p *Printer) PrintAIAnalysis(analysis *types.AIAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume Score:  %d/100\n", analysis.ResumeScore))
	sb.WriteString(fmt.Sprintf("ATS Score:     %d/100\n", analysis.ATSScore))
	if analysis.ModelUsed != "" {
		sb.WriteString(fmt.Sprintf("Model:         %s\n", clip(analysis.ModelUsed, 40)))
	}

	appendList(&sb, "Strengths", analysis.Strengths)
	appendList(&sb, "Weaknesses", analysis.Weaknesses)
	appendList(&sb, "Suggestions", analysis.Suggestions)

	p.printBox("AI ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs dashboard statistics with the most recent analyses.
func (p *Printer) PrintStats(stats *types.AIAnalysisStats, recent []types.RecentAnalysis) {
	if stats == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total analyses:  %d\n", stats.TotalAnalyses))
	sb.WriteString(fmt.Sprintf("Average score:   %.1f\n", stats.AverageScore))

	if len(stats.ModelUsage) > 0 {
		sb.WriteString("\nModel usage:\n")
		for _, model := range sortedKeys(stats.ModelUsage) {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", clip(model, 40), stats.ModelUsage[model]))
		}
	}

	if len(stats.JobRoles) > 0 {
		sb.WriteString("\nJob roles:\n")
		count := 0
		for _, role := range sortedKeys(stats.JobRoles) {
			if count == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.JobRoles)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  %s: %d\n", clip(role, 40), stats.JobRoles[role]))
			count++
		}
	}

	if len(recent) > 0 {
		sb.WriteString("\nRecent analyses:\n")
		count := min(len(recent), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := recent[i]
			sb.WriteString(fmt.Sprintf("  %s  %3d/100  %s\n",
				r.CreatedAt.Format("2006-01-02"), r.ResumeScore, clip(r.JobRole, 25)))
		}
	}

	p.printBox("DASHBOARD STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// sortedKeys returns map keys in stable order; box output must not depend
// on map iteration.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
