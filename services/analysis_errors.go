package services

import "fmt"

// AnalysisErrorKind distinguishes the analysis failure categories so the
// controller layer can map each one to its own HTTP status and user message.
type AnalysisErrorKind int

const (
	// AnalysisInvalidInput means the menu text was empty; no upstream call was made.
	AnalysisInvalidInput AnalysisErrorKind = iota
	// AnalysisUpstreamFailure means the generative service call itself failed.
	AnalysisUpstreamFailure
	// AnalysisSchemaViolation means the response parsed as JSON but violated the
	// required shape (wrong types, invalid enum, missing object).
	AnalysisSchemaViolation
	// AnalysisEmptyResult means parsing succeeded but zero valid items survived
	// validation. Kept distinct so the UI can say "no items found" instead of
	// "analysis broken".
	AnalysisEmptyResult
)

func (k AnalysisErrorKind) String() string {
	switch k {
	case AnalysisInvalidInput:
		return "invalid input"
	case AnalysisUpstreamFailure:
		return "upstream failure"
	case AnalysisSchemaViolation:
		return "schema violation"
	case AnalysisEmptyResult:
		return "empty result"
	default:
		return "unknown"
	}
}

// AnalysisError wraps a failure from the menu analysis pipeline. The original
// cause is preserved for logging, never swallowed.
type AnalysisError struct {
	Kind    AnalysisErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func newAnalysisError(kind AnalysisErrorKind, message string, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: message, Err: err}
}
