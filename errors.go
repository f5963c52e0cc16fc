package cchook

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHook is the base of every error returned by this package. Match it with
// errors.Is to handle any library failure at once.
var ErrHook = errors.New("cchook")

// Kind sentinels. Each wraps ErrHook, and each typed error below matches
// exactly one of them with errors.Is.
var (
	ErrInputUnavailable = fmt.Errorf("%w: input unavailable", ErrHook)
	ErrMalformedInput   = fmt.Errorf("%w: malformed input", ErrHook)
	ErrInvalidDataShape = fmt.Errorf("%w: invalid data shape", ErrHook)
	ErrUnsupportedEvent = fmt.Errorf("%w: unsupported event", ErrHook)
	ErrInvalidCallback  = fmt.Errorf("%w: invalid callback", ErrHook)
	ErrCallbackFailed   = fmt.Errorf("%w: callback failed", ErrHook)
)

// InputUnavailableError is returned when no data can be obtained from the
// input: a nil source, an interactive terminal, a failed read, or an empty
// stream.
type InputUnavailableError struct {
	// Reason describes what was wrong with the source.
	Reason string

	// Err is the underlying read error, if any.
	Err error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("input unavailable: %s: piped or in-memory hook data is required", e.Reason)
}

func (e *InputUnavailableError) Unwrap() []error { return kindAnd(ErrInputUnavailable, e.Err) }

// Suggestion returns remediation text for the user.
func (e *InputUnavailableError) Suggestion() string {
	return "pipe the hook event JSON to stdin or pass an in-memory record"
}

// MalformedInputError is returned when a text source is not valid JSON.
// Line and Column are 1-based and derived from the decoder's byte offset.
type MalformedInputError struct {
	Offset int64
	Line   int
	Column int

	// Err is the decoder diagnostic, usually a *json.SyntaxError.
	Err error
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() []error { return kindAnd(ErrMalformedInput, e.Err) }

// Suggestion returns remediation text for the user.
func (e *MalformedInputError) Suggestion() string {
	return "ensure the input is a single valid JSON object"
}

// InvalidDataShapeError is returned when the input is well formed but is not
// a JSON object.
type InvalidDataShapeError struct {
	// Got names the type that was found: "array", "string", "number",
	// "boolean", "null", or a Go type for in-memory values.
	Got string

	Err error
}

func (e *InvalidDataShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid data shape: expected JSON object, got %s: %v", e.Got, e.Err)
	}
	return fmt.Sprintf("invalid data shape: expected JSON object, got %s", e.Got)
}

func (e *InvalidDataShapeError) Unwrap() []error { return kindAnd(ErrInvalidDataShape, e.Err) }

// Suggestion returns remediation text for the user.
func (e *InvalidDataShapeError) Suggestion() string {
	return fmt.Sprintf("expected a JSON object with a %q field, received %s", EventNameField, e.Got)
}

// UnsupportedEventError is returned when the target event is not one of the
// supported hook events.
type UnsupportedEventError struct {
	Event Event

	// Supported is the sorted supported set.
	Supported []Event
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("unsupported hook event %q", string(e.Event))
}

func (e *UnsupportedEventError) Unwrap() error { return ErrUnsupportedEvent }

// Suggestion returns remediation text for the user.
func (e *UnsupportedEventError) Suggestion() string {
	names := make([]string, len(e.Supported))
	for i, ev := range e.Supported {
		names[i] = string(ev)
	}
	return "use one of the supported events: " + strings.Join(names, ", ")
}

// InvalidCallbackError is returned when the callback cannot be invoked.
type InvalidCallbackError struct {
	// Type is the Go type of the callback argument.
	Type string
}

func (e *InvalidCallbackError) Error() string {
	return fmt.Sprintf("invalid callback: callback must be non-nil, got %s", e.Type)
}

func (e *InvalidCallbackError) Unwrap() error { return ErrInvalidCallback }

// Suggestion returns remediation text for the user.
func (e *InvalidCallbackError) Suggestion() string {
	return "pass a non-nil Callback or CallbackFunc that accepts the event record"
}

// CallbackError wraps a failure raised by the user's callback. Err is the
// original error, or a *PanicError when the callback panicked.
type CallbackError struct {
	Event Event
	Err   error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback failed for %s event: %v", string(e.Event), e.Err)
}

func (e *CallbackError) Unwrap() []error { return kindAnd(ErrCallbackFailed, e.Err) }

// Suggestion returns remediation text for the user.
func (e *CallbackError) Suggestion() string {
	return fmt.Sprintf("the callback for %s returned an error; address the original error: %v", string(e.Event), e.Err)
}

// PanicError records a panic recovered from a callback.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("callback panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func kindAnd(kind, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}
