package extraction

import "fmt"

// UnsupportedFileTypeError indicates a file type the extractor cannot handle.
type UnsupportedFileTypeError struct {
	FileType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q (expected pdf or docx)", e.FileType)
}

// ExtractionError represents a failure while reading a supported document.
type ExtractionError struct {
	FileType string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.FileType, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.FileType)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
