package services

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when an uploaded file is neither a PDF
// nor a DOCX. The document is skipped and reported; the batch continues.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError wraps a corrupt or unreadable document.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// AnalysisErrorKind distinguishes the recoverable analyzer failures.
type AnalysisErrorKind string

const (
	// KindEmptyInput means the resume had no usable text after normalization;
	// the remote endpoint is never called in that case.
	KindEmptyInput AnalysisErrorKind = "empty_input"
	// KindRequestFailed means the completion endpoint call failed. Single
	// attempt, no retries; the caller moves on to the next document.
	KindRequestFailed AnalysisErrorKind = "request_failed"
)

// AnalysisError is a per-document analyzer failure.
type AnalysisError struct {
	Kind    AnalysisErrorKind
	Message string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed (%s): %s", e.Kind, e.Message)
}
