package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized reports a text that matches no notation.
	ErrUnrecognized = errors.New("unrecognized color notation")
	// ErrMalformed reports a text committed to one notation but invalid in it.
	ErrMalformed = errors.New("malformed color notation")
)

// NotationError describes a color text that could not be parsed. Err is
// ErrUnrecognized or ErrMalformed, possibly wrapping a cause.
type NotationError struct {
	Notation string
	Text     string
	Reason   string
	Err      error
}

// NewUnrecognizedError constructs a NotationError for a text no notation
// claims.
func NewUnrecognizedError(text string) error {
	return &NotationError{Text: text, Err: ErrUnrecognized}
}

// NewMalformedError constructs a NotationError for a text the notation
// claims but rejects.
func NewMalformedError(notation, text, reason string) error {
	return &NotationError{Notation: notation, Text: text, Reason: reason, Err: ErrMalformed}
}

func (e *NotationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%v: %q", e.Err, e.Text)
	if e.Notation != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Notation)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	return msg
}

// Unwrap exposes the sentinel.
func (e *NotationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a file decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
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

// RegistryError indicates an invalid or duplicate notation registration.
type RegistryError struct {
	Notation string
	Message  string
	Err      error
}

// NewRegistryError constructs a RegistryError for the given notation id.
func NewRegistryError(notation string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Notation: notation, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Notation != "" {
		return fmt.Sprintf("notation error [%s]: %s", e.Notation, e.Message)
	}
	return fmt.Sprintf("notation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConflictingPathError reports a non-directory entry where the palette store
// directory was expected. It is never swallowed.
type ConflictingPathError struct {
	Path string
	Err  error
}

// NewConflictingPathError constructs a ConflictingPathError.
func NewConflictingPathError(path string, err error) error {
	return &ConflictingPathError{Path: path, Err: err}
}

func (e *ConflictingPathError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("conflicting path: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("conflicting path: %s exists and is not a directory", e.Path)
}

// Unwrap exposes the underlying error.
func (e *ConflictingPathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BootstrapError describes a failed creation or seeding of the palette store.
type BootstrapError struct {
	Dir string
	Err error
}

// NewBootstrapError constructs a BootstrapError.
func NewBootstrapError(dir string, err error) error {
	return &BootstrapError{Dir: dir, Err: err}
}

func (e *BootstrapError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("bootstrap error on %s: %v", e.Dir, e.Err)
}

// Unwrap exposes the root error.
func (e *BootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
