package icalgo

import "fmt"

// ValidationResult collects the outcome of validating a Component tree.
// Warnings never change Success; only Errors do.
type ValidationResult struct {
	Success  bool
	Warnings []error
	Errors   []error
}

// Mixed reports whether the result carries both errors and warnings.
func (r ValidationResult) Mixed() bool {
	return len(r.Errors) > 0 && len(r.Warnings) > 0
}

// requiredProperties is the per-kind required-property table. VCALENDAR
// requires VERSION and PRODID; VEVENT, VTODO, VJOURNAL, and VFREEBUSY all
// require UID and DTSTAMP (the
// teacher's validateXxx functions across calendar.go/event.go/todo.go/
// journal.go/freebusy.go enforce this same set per kind).
var requiredProperties = map[string][]string{
	"VCALENDAR": {"VERSION", "PRODID"},
	"VEVENT":    {"UID", "DTSTAMP"},
	"VTODO":     {"UID", "DTSTAMP"},
	"VJOURNAL":  {"UID", "DTSTAMP"},
	"VFREEBUSY": {"UID", "DTSTAMP"},
	"VALARM":    {"ACTION", "TRIGGER"},
	"VTIMEZONE": {"TZID"},
}

// alarmRequiredByAction is the VALARM ACTION-specific required-property
// table, per RFC 5545 §3.6.6 and the RFC 9074 PROXIMITY extension.
var alarmRequiredByAction = map[string][]string{
	"DISPLAY":   {"DESCRIPTION"},
	"EMAIL":     {"DESCRIPTION", "SUMMARY"},
	"AUDIO":     {},
	"PROCEDURE": {"ATTACH"},
	"PROXIMITY": {"PROXIMITY"},
}

// Validator walks a Component tree checking structural invariants: the
// required-property table, VALARM action-specific rules, and that every
// TZID-qualified property references a VTIMEZONE actually present in the
// enclosing VCALENDAR.
type Validator struct {
	// AllowProcedureAction permits VALARM ACTION:PROCEDURE, which RFC 5545
	// deprecated for security reasons (it lets a calendar file launch an
	// arbitrary local program); off by default per the Design Notes.
	AllowProcedureAction bool
}

// Validate checks root (expected to be a VCALENDAR) and everything beneath
// it.
func (v *Validator) Validate(root *Component) ValidationResult {
	var res ValidationResult
	knownTZIDs := collectTZIDs(root)

	root.Walk(func(c *Component) {
		v.checkRequired(c, &res)
		if c.Kind == "VALARM" {
			v.checkAlarm(c, &res)
		}
		if c.Kind == "VTIMEZONE" {
			v.checkTimezone(c, &res)
		}
		if c.Kind == "VEVENT" || c.Kind == "VTODO" || c.Kind == "VJOURNAL" {
			v.checkTZIDReferences(c, knownTZIDs, &res)
		}
	})

	res.Success = len(res.Errors) == 0
	return res
}

func (v *Validator) checkRequired(c *Component, res *ValidationResult) {
	required, ok := requiredProperties[c.Kind]
	if !ok {
		return
	}
	for _, name := range required {
		if _, present := c.GetProperty(name); !present {
			res.Errors = append(res.Errors, fmt.Errorf("%w: %s missing %s", ErrMissingRequiredProperty, c.Kind, name))
		}
	}
}

func (v *Validator) checkAlarm(c *Component, res *ValidationResult) {
	action, ok := c.GetProperty("ACTION")
	if !ok {
		return
	}
	actionName := action.Value
	if actionName == "PROCEDURE" && !v.AllowProcedureAction {
		res.Errors = append(res.Errors, fmt.Errorf("%w: VALARM ACTION:PROCEDURE is disabled", ErrInvalidStructure))
		return
	}
	required, ok := alarmRequiredByAction[actionName]
	if !ok {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: VALARM unknown ACTION %q", ErrInvalidStructure, actionName))
		return
	}
	for _, name := range required {
		if _, present := c.GetProperty(name); !present {
			res.Errors = append(res.Errors, fmt.Errorf("%w: VALARM ACTION:%s missing %s", ErrMissingRequiredProperty, actionName, name))
		}
	}
	if actionName == "EMAIL" && len(c.GetProperties("ATTENDEE")) == 0 {
		res.Errors = append(res.Errors, fmt.Errorf("%w: VALARM ACTION:EMAIL requires at least one ATTENDEE", ErrMissingRequiredProperty))
	}
}

// checkTimezone enforces the RFC 5545 §3.6.5 rule that a VTIMEZONE must
// contain at least one STANDARD or DAYLIGHT child, which the flat
// requiredProperties table can't express since it only names properties,
// not children.
func (v *Validator) checkTimezone(c *Component, res *ValidationResult) {
	if len(c.ChildrenOf("STANDARD"))+len(c.ChildrenOf("DAYLIGHT")) == 0 {
		res.Errors = append(res.Errors, fmt.Errorf("%w: VTIMEZONE requires at least one STANDARD or DAYLIGHT child", ErrMissingRequiredProperty))
	}
	for _, child := range append(c.ChildrenOf("STANDARD"), c.ChildrenOf("DAYLIGHT")...) {
		for _, name := range []string{"DTSTART", "TZOFFSETFROM", "TZOFFSETTO"} {
			if _, ok := child.GetProperty(name); !ok {
				res.Errors = append(res.Errors, fmt.Errorf("%w: %s missing %s", ErrMissingRequiredProperty, child.Kind, name))
			}
		}
	}
}

// checkTZIDReferences enforces spec §4.G's rule that a TZID-qualified
// property on a VEVENT/VTODO/VJOURNAL must either equal UTC or name a
// VTIMEZONE child present in the enclosing VCALENDAR. It is only run for
// those three kinds (not, say, VALARM or VTIMEZONE's own STANDARD/DAYLIGHT
// children, which carry no TZID-qualified properties of their own).
func (v *Validator) checkTZIDReferences(c *Component, known map[string]bool, res *ValidationResult) {
	for _, p := range c.Properties {
		tzid, ok := p.Param("TZID")
		if !ok {
			continue
		}
		if tzid == "UTC" {
			continue
		}
		if !known[tzid] {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: %s references unknown TZID %q", ErrInvalidStructure, p.Name, tzid))
		}
	}
}

func collectTZIDs(root *Component) map[string]bool {
	out := map[string]bool{}
	root.Walk(func(c *Component) {
		if c.Kind != "VTIMEZONE" {
			return
		}
		if tzid, ok := c.GetProperty("TZID"); ok {
			out[tzid.Value] = true
		}
	})
	return out
}
