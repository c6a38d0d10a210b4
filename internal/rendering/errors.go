package rendering

import "fmt"

// TemplateError reports a LaTeX template that failed to parse or execute.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string { return formatError("template error", e.Message, e.Cause) }

func (e *TemplateError) Unwrap() error { return e.Cause }

// RenderError reports a resume form the renderer refused, or any other
// failure producing the document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string { return formatError("render error", e.Message, e.Cause) }

func (e *RenderError) Unwrap() error { return e.Cause }

func formatError(kind, message string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", kind, message, cause)
	}
	return kind + ": " + message
}
