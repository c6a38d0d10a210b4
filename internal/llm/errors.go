package llm

import "fmt"

// LLMError represents a failure while calling the model or interpreting its
// output.
type LLMError struct {
	Message string
	Cause   error
}

func (e *LLMError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LLMError) Unwrap() error {
	return e.Cause
}
