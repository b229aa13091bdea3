package convert

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Input file not found: %s", e.Path)
}

// InvalidInputError is returned when the input path exists but is not a
// regular readable file.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// InvalidFormatError is returned when the requested or inferred output
// format is not in the registry.
type InvalidFormatError struct {
	Format    string
	Supported []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("Unsupported output format: %s. Supported formats: %s",
		e.Format, strings.Join(e.Supported, ", "))
}

// InvalidParameterError is returned for an out-of-range request parameter,
// detected before any engine call.
type InvalidParameterError struct {
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return e.Reason
}

// ConversionError wraps an engine failure during decode or export. The
// underlying cause is always preserved.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Error converting audio file: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ReadError wraps a decode failure during metadata extraction.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Error reading audio file info: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
