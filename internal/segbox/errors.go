package segbox

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a configuration or editing error
type ErrorType int

const (
	// ErrTypeEmptyTemplate indicates the template has no positions at all
	ErrTypeEmptyTemplate ErrorType = iota
	// ErrTypeAmbiguousMarkers indicates the editable and hidden markers are the same rune
	ErrTypeAmbiguousMarkers
	// ErrTypeNoEditablePositions indicates no template position matches the editable marker
	ErrTypeNoEditablePositions
	// ErrTypeInvalidMarker indicates a marker is not exactly one rune
	ErrTypeInvalidMarker
	// ErrTypeNotEditable indicates an edit or focus targeted a fixed or hidden cell
	ErrTypeNotEditable
	// ErrTypeIndexOutOfRange indicates an index outside [0, L)
	ErrTypeIndexOutOfRange
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeEmptyTemplate:
		return "Empty Template"
	case ErrTypeAmbiguousMarkers:
		return "Ambiguous Markers"
	case ErrTypeNoEditablePositions:
		return "No Editable Positions"
	case ErrTypeInvalidMarker:
		return "Invalid Marker"
	case ErrTypeNotEditable:
		return "Not Editable"
	case ErrTypeIndexOutOfRange:
		return "Index Out Of Range"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Sentinel errors for errors.Is checks
var (
	ErrEmptyTemplate       = errors.New("template is empty")
	ErrAmbiguousMarkers    = errors.New("editable and hidden markers must differ")
	ErrNoEditablePositions = errors.New("template has no editable positions")
	ErrInvalidMarker       = errors.New("marker must be exactly one character")
	ErrNotEditable         = errors.New("position is not editable")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

var sentinels = map[ErrorType]error{
	ErrTypeEmptyTemplate:       ErrEmptyTemplate,
	ErrTypeAmbiguousMarkers:    ErrAmbiguousMarkers,
	ErrTypeNoEditablePositions: ErrNoEditablePositions,
	ErrTypeInvalidMarker:       ErrInvalidMarker,
	ErrTypeNotEditable:         ErrNotEditable,
	ErrTypeIndexOutOfRange:     ErrIndexOutOfRange,
}

// ConfigError describes a rejected template or an edit the template forbids.
type ConfigError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable context (template, index, marker)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching this error's type.
func (e *ConfigError) Is(target error) bool {
	return sentinels[e.Type] == target
}

// NewConfigError creates a ConfigError of the given type.
func NewConfigError(typ ErrorType, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsConfigError checks if an error is a ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// ErrorTypeOf returns the ErrorType of err, or false if err is not a ConfigError.
func ErrorTypeOf(err error) (ErrorType, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Type, true
	}
	return 0, false
}
