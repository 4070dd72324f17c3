package icalgo

import "errors"

// Line and property level errors.
var (
	ErrMalformedProperty   = errors.New("malformed property line")
	ErrEmptyPropertyName   = errors.New("empty property name")
	ErrUnterminatedQuote   = errors.New("unterminated quoted parameter value")
	ErrParameterMissingEq  = errors.New("parameter without '=' separator")
	ErrInvalidCaretEscape  = errors.New("invalid RFC 6868 caret escape")
	ErrBadUTF8             = errors.New("invalid UTF-8 in input")
	ErrEncodingFailed      = errors.New("failed to re-encode value on output")
)

// Structural parse errors (Parser, §4.E).
var (
	ErrStrayProperty         = errors.New("property line outside any component")
	ErrMismatchedEnd         = errors.New("END kind does not match the open BEGIN kind")
	ErrUnterminatedComponent = errors.New("component was never closed with an END line")
	ErrUnsupportedComponent  = errors.New("unsupported component kind in strict mode")
	ErrNoComponent           = errors.New("no top-level component found in input")
)

// Value-codec errors (shared taxonomy referenced by icaldur/rrule too).
var (
	ErrInvalidPropertyValue = errors.New("invalid property value")
)

// Validator errors (§4.G); each is wrapped with the offending kind/property.
var (
	ErrMissingRequiredProperty = errors.New("missing required property")
	ErrInvalidStructure        = errors.New("invalid component structure")
)
