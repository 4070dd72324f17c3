package icalgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *Component {
	t.Helper()
	p := NewParser(ParseOptions{Strict: true})
	c, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return c
}

func TestValidateMinimalEventSucceeds(t *testing.T) {
	cal := mustParse(t, minimalEventCalendar)
	v := &Validator{}
	res := v.Validate(cal)
	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
}

func TestValidateMissingUIDFails(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nDTSTAMP:20240101T000000Z\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)
}

func TestValidateMissingDTSTAMPFails(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.False(t, res.Success)
}

func TestValidateMonotonicityRemovingRequiredPropertyNeverFixesSuccess(t *testing.T) {
	cal := mustParse(t, minimalEventCalendar)
	v := &Validator{}
	assert.True(t, v.Validate(cal).Success)

	cal.ChildrenOf("VEVENT")[0].RemoveProperty("UID")
	assert.False(t, v.Validate(cal).Success)
}

func TestValidateAlarmActionSpecificRules(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20240101T000000Z\r\n" +
		"BEGIN:VALARM\r\nACTION:EMAIL\r\nTRIGGER:-PT15M\r\nEND:VALARM\r\n" +
		"END:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.False(t, res.Success, "EMAIL action requires DESCRIPTION, SUMMARY and >=1 ATTENDEE")
}

func TestValidateProcedureActionDisabledByDefault(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20240101T000000Z\r\n" +
		"BEGIN:VALARM\r\nACTION:PROCEDURE\r\nTRIGGER:-PT15M\r\nATTACH:ftp://x/y\r\nEND:VALARM\r\n" +
		"END:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	assert.False(t, v.Validate(cal).Success)

	v.AllowProcedureAction = true
	assert.True(t, v.Validate(cal).Success)
}

func TestValidateUnknownTZIDReferenceIsWarningNotError(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20240101T000000Z\r\n" +
		"DTSTART;TZID=Nowhere/Imaginary:20240101T100000\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Warnings)
}

func TestValidateUTCTZIDReferenceIsNotWarned(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20240101T000000Z\r\n" +
		"DTSTART;TZID=UTC:20240101T100000\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.True(t, res.Success)
	assert.Empty(t, res.Warnings)
}

func TestValidateVTimezoneRequiresAnObservanceChild(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VTIMEZONE\r\nTZID:America/Chicago\r\nEND:VTIMEZONE\r\nEND:VCALENDAR\r\n"
	cal := mustParse(t, input)
	v := &Validator{}
	res := v.Validate(cal)
	assert.False(t, res.Success)
}
