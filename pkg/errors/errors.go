package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnparseable is the sentinel wrapped by ParseError when a color string
// matches none of the supported notations.
var ErrUnparseable = stdErrors.New("unrecognized color notation")

// ParseError represents a failure to read a color string or a palette document.
// Path and Line are only set for documents.
type ParseError struct {
	Input   string
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError for a document at path.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

// NewColorParseError constructs a ParseError for an unparseable color string.
func NewColorParseError(input string) error {
	return &ParseError{Input: input, Message: ErrUnparseable.Error(), Err: ErrUnparseable}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ErrInvalidColor is the sentinel every InvalidColorError unwraps to.
var ErrInvalidColor = stdErrors.New("invalid color")

// InvalidColorError is returned when an operation that requires color values
// receives something else.
type InvalidColorError struct {
	Argument string
	Value    any
}

// NewInvalidColorError constructs an InvalidColorError for the named argument.
func NewInvalidColorError(argument string, value any) error {
	return &InvalidColorError{Argument: argument, Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color: %s must be a Color, got %T", e.Argument, e.Value)
}

// Unwrap returns ErrInvalidColor so callers can match with errors.Is.
func (e *InvalidColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidColor
}
