package registry

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure that can leave the dispatch boundary.
type ErrorKind string

const (
	// KindUnknownScore means the requested identifier has no registered
	// calculator. Always a client error.
	KindUnknownScore ErrorKind = "UnknownScore"

	// KindInvalidParameters means the parameters passed schema validation but
	// violate a calculator-internal domain constraint.
	KindInvalidParameters ErrorKind = "InvalidParameters"

	// KindComputationFailure means a calculator failed in a way its contract
	// does not anticipate. Always a server error; details stay in the logs.
	KindComputationFailure ErrorKind = "ComputationFailure"
)

// DispatchError is the normalized error returned by the Dispatcher. Every
// failure inside Calculate is bucketed into exactly one kind; nothing escapes
// unclassified.
type DispatchError struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
	cause   error
}

func (e *DispatchError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DispatchError) Unwrap() error {
	return e.cause
}

// ParameterError reports a domain-constraint violation inside a calculator:
// the input decoded fine but is clinically or structurally invalid (value out
// of the supported range, mutually exclusive flags, missing field). The
// Dispatcher maps it to KindInvalidParameters and preserves the detail so the
// caller can correct the input.
type ParameterError struct {
	Field   string
	Message string
}

func (e *ParameterError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalidf builds a ParameterError for the given field.
func Invalidf(field, format string, args ...any) error {
	return &ParameterError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ErrDuplicateIdentifier is returned by Register when a score identifier is
// already taken. Bootstrap must treat it as fatal.
var ErrDuplicateIdentifier = errors.New("duplicate score identifier")

// ErrRegistryFrozen is returned by Register once the registry has been sealed.
var ErrRegistryFrozen = errors.New("registry is frozen")
