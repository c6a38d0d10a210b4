// Package schemas bundles the JSON Schemas shipped with the application so
// validation works without any files on disk.
package schemas

import _ "embed"

//go:embed ai_analysis.schema.json
var aiAnalysisSchema string

//go:embed resume_form.schema.json
var resumeFormSchema string

// AIAnalysis returns the schema for model-generated analysis payloads.
func AIAnalysis() string {
	return aiAnalysisSchema
}

// ResumeForm returns the schema for structured resume documents.
func ResumeForm() string {
	return resumeFormSchema
}
