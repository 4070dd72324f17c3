package icalgo

import (
	"fmt"
	"io"
	"strings"
)

// KnownComponentKinds is the open, extensible registry of component kinds
// the Parser accepts in strict mode. Callers may add to it before parsing to
// recognize vendor (X-) or IANA-registered components beyond RFC 5545's base
// set, rather than the Parser hard-coding a closed switch.
var KnownComponentKinds = map[string]bool{
	"VCALENDAR":     true,
	"VEVENT":        true,
	"VTODO":         true,
	"VJOURNAL":      true,
	"VFREEBUSY":     true,
	"VALARM":        true,
	"VTIMEZONE":     true,
	"STANDARD":      true,
	"DAYLIGHT":      true,
	"VAVAILABILITY": true, // RFC 7953 §3
	"AVAILABLE":     true, // RFC 7953 §3.1
	"BUSY":          true, // RFC 9253 availability extension
	"PARTICIPANT":   true, // RFC 9073 §6.1
	"VVENUE":        true, // RFC 9073 §6.2
	"VLOCATION":     true, // RFC 9073 §6.3
	"VRESOURCE":     true, // RFC 9073 §6.4
}

// ParseOptions controls Parser behavior.
type ParseOptions struct {
	// Strict rejects BEGIN kinds outside KnownComponentKinds and any
	// structural error. In lenient mode, unknown kinds are kept as opaque
	// components and recoverable errors are swallowed rather than aborting
	// the whole parse.
	Strict bool
}

// Parser turns an unfolded iCalendar byte stream into one or more Component
// trees, driven by a small explicit state machine over BEGIN/PROPERTY/END
// lines: either Idle (no component open) or InComponent, tracking a stack of
// open component kinds so nesting (VALARM inside VEVENT, STANDARD/DAYLIGHT
// inside VTIMEZONE) is enforced structurally rather than left to the caller.
type Parser struct {
	Options ParseOptions
}

// NewParser returns a Parser with the given options.
func NewParser(opts ParseOptions) *Parser {
	return &Parser{Options: opts}
}

// Parse reads exactly one top-level component (typically a VCALENDAR) and
// returns it. If the stream contains more than one top-level component, only
// the first is returned; use ParseMultiple for concatenated streams.
func (p *Parser) Parse(r io.Reader) (*Component, error) {
	roots, err := p.ParseMultiple(r)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, ErrNoComponent
	}
	return roots[0], nil
}

// ParseMultiple reads every top-level component in the stream (some
// producers concatenate several VCALENDARs back to back) and returns them in
// document order.
func (p *Parser) ParseMultiple(r io.Reader) ([]*Component, error) {
	lines, err := UnfoldLines(r)
	if err != nil {
		return nil, err
	}

	var roots []*Component
	var stack []*Component

	for _, line := range lines {
		switch {
		case hasPrefixFold(line, "BEGIN:"):
			kind := strings.ToUpper(line[6:])
			if p.Options.Strict && !KnownComponentKinds[kind] {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedComponent, kind)
			}
			child := NewComponent(kind)
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.AddChild(child)
			} else {
				roots = append(roots, child)
			}
			stack = append(stack, child)

		case hasPrefixFold(line, "END:"):
			kind := strings.ToUpper(line[4:])
			if len(stack) == 0 {
				if p.Options.Strict {
					return nil, fmt.Errorf("%w: %s", ErrMismatchedEnd, kind)
				}
				continue
			}
			top := stack[len(stack)-1]
			if !strings.EqualFold(top.Kind, kind) {
				if p.Options.Strict {
					return nil, fmt.Errorf("%w: got END:%s, want END:%s", ErrMismatchedEnd, kind, top.Kind)
				}
			}
			stack = stack[:len(stack)-1]

		default:
			if len(stack) == 0 {
				if p.Options.Strict {
					return nil, fmt.Errorf("%w: %s", ErrStrayProperty, line)
				}
				continue
			}
			prop, err := ParsePropertyLine(line)
			if err != nil {
				if p.Options.Strict {
					return nil, err
				}
				continue
			}
			top := stack[len(stack)-1]
			top.AddProperty(prop)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnterminatedComponent, stack[len(stack)-1].Kind)
	}
	if len(roots) == 0 {
		return nil, ErrNoComponent
	}
	return roots, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
