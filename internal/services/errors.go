package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrTranscription     = errors.New("transcription failed")
	ErrExtraction        = errors.New("extraction failed")
	ErrIndexDisabled     = errors.New("vector index is not configured")
)

// ValidationError reports a missing or malformed required input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q (use PDF, DOCX or TXT)", e.Filename)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// TranscriptionError carries the speech-to-text provider's message.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() []error {
	return []error{ErrTranscription, e.Err}
}

// ExtractionError is returned next to the placeholder text produced for an
// unreadable PDF or DOCX file.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtraction, e.Err}
}
