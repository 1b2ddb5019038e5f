package errors

import (
	"errors"
	"fmt"
)

// Kind classifies analysis errors so callers can map them to a transport
// status without string matching.
type Kind string

const (
	// KindInvalidParameter flags a caller mistake in the request parameters
	// (non-positive window, slow <= fast, bad timeframe).
	KindInvalidParameter Kind = "INVALID_PARAMETER"

	// KindInsufficientData flags a series shorter than the minimum required
	// length for the requested computation.
	KindInsufficientData Kind = "INSUFFICIENT_DATA"

	// KindUnsupportedIndicator flags an unknown indicator identifier.
	KindUnsupportedIndicator Kind = "UNSUPPORTED_INDICATOR"

	// KindUnsupportedPattern flags an unknown pattern identifier.
	KindUnsupportedPattern Kind = "UNSUPPORTED_PATTERN"
)

// AnalysisError is a categorized error with component and operation context.
type AnalysisError struct {
	Kind       Kind
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Kind, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Kind, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *AnalysisError) Unwrap() error {
	return e.Underlying
}

// New creates a categorized analysis error.
func New(kind Kind, component, operation, message string) *AnalysisError {
	return &AnalysisError{
		Kind:      kind,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Newf creates a categorized analysis error with a formatted message.
func Newf(kind Kind, component, operation, format string, args ...interface{}) *AnalysisError {
	return New(kind, component, operation, fmt.Sprintf(format, args...))
}

// Wrap attaches kind and context to an existing error.
func Wrap(err error, kind Kind, component, operation string) *AnalysisError {
	if err == nil {
		return nil
	}
	return &AnalysisError{
		Kind:       kind,
		Component:  component,
		Operation:  operation,
		Message:    err.Error(),
		Underlying: err,
	}
}

// InvalidParameter creates an InvalidParameter error.
func InvalidParameter(component, operation, format string, args ...interface{}) *AnalysisError {
	return Newf(KindInvalidParameter, component, operation, format, args...)
}

// InsufficientData creates an InsufficientData error.
func InsufficientData(component, operation, format string, args ...interface{}) *AnalysisError {
	return Newf(KindInsufficientData, component, operation, format, args...)
}

// UnsupportedIndicator creates an UnsupportedIndicator error.
func UnsupportedIndicator(component, name string) *AnalysisError {
	return Newf(KindUnsupportedIndicator, component, "dispatch", "unknown indicator %q", name)
}

// UnsupportedPattern creates an UnsupportedPattern error.
func UnsupportedPattern(component, name string) *AnalysisError {
	return Newf(KindUnsupportedPattern, component, "dispatch", "unknown pattern %q", name)
}

// IsKind reports whether err (or anything it wraps) is an AnalysisError of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// IsInvalidParameter reports whether err is an InvalidParameter error.
func IsInvalidParameter(err error) bool { return IsKind(err, KindInvalidParameter) }

// IsInsufficientData reports whether err is an InsufficientData error.
func IsInsufficientData(err error) bool { return IsKind(err, KindInsufficientData) }

// IsUnsupportedIndicator reports whether err is an UnsupportedIndicator error.
func IsUnsupportedIndicator(err error) bool { return IsKind(err, KindUnsupportedIndicator) }

// IsUnsupportedPattern reports whether err is an UnsupportedPattern error.
func IsUnsupportedPattern(err error) bool { return IsKind(err, KindUnsupportedPattern) }
