package analyzer

import "fmt"

// EmptyInputError indicates there was no text to analyze. It is the only
// failure the engine can produce; every other malformed input degrades to
// low scores or empty entries.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Message)
}
