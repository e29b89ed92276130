// Package sliperror defines the typed errors produced by the slipscan
// pipeline.
package sliperror

import "fmt"

// ExtractionError wraps a failed model invocation for a single slip image.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ReplyParseError indicates the model reply could not be parsed as the
// expected JSON object.
type ReplyParseError struct {
	Filename string
	Snippet  string
	Err      error
}

func (e *ReplyParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("unparseable model reply for %s: %v. Reply snippet: '%s'",
			e.Filename, e.Err, e.Snippet)
	}
	return fmt.Sprintf("unparseable model reply for %s: %v", e.Filename, e.Err)
}

func (e *ReplyParseError) Unwrap() error {
	return e.Err
}

// MissingCredentialError blocks the pipeline before any image is processed.
type MissingCredentialError struct {
	Variable string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing API credential: set %s in the environment or .env file", e.Variable)
}
