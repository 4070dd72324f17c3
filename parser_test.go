package icalgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalEventCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//X//Y//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:abc\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART:20240101T100000Z\r\n" +
	"DTEND:20240101T110000Z\r\n" +
	"SUMMARY:Hello\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseMinimalEvent(t *testing.T) {
	p := NewParser(ParseOptions{Strict: true})
	cal, err := p.Parse(strings.NewReader(minimalEventCalendar))
	require.NoError(t, err)
	assert.Equal(t, "VCALENDAR", cal.Kind)

	events := cal.ChildrenOf("VEVENT")
	require.Len(t, events, 1)
	uid, ok := events[0].GetProperty("UID")
	require.True(t, ok)
	assert.Equal(t, "abc", uid.Value)

	summary, ok := events[0].GetProperty("SUMMARY")
	require.True(t, ok)
	assert.Equal(t, "Hello", summary.Value)
}

func TestParsePreservesPropertyOrder(t *testing.T) {
	p := NewParser(ParseOptions{Strict: true})
	cal, err := p.Parse(strings.NewReader(minimalEventCalendar))
	require.NoError(t, err)
	event := cal.ChildrenOf("VEVENT")[0]
	var names []string
	for _, prop := range event.Properties {
		names = append(names, prop.Name)
	}
	assert.Equal(t, []string{"UID", "DTSTAMP", "DTSTART", "DTEND", "SUMMARY"}, names)
}

func TestParseMismatchedEndStrict(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\nEND:VTODO\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: true})
	_, err := p.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMismatchedEnd)
}

func TestParseUnterminatedComponentStrict(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\nUID:1\r\n"
	p := NewParser(ParseOptions{Strict: true})
	_, err := p.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrUnterminatedComponent)
}

func TestParseStrayPropertyStrict(t *testing.T) {
	input := "SUMMARY:oops\r\nBEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: true})
	_, err := p.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrStrayProperty)
}

func TestParseStrayPropertyLenientIsIgnored(t *testing.T) {
	input := "SUMMARY:oops\r\nBEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: false})
	cal, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "VCALENDAR", cal.Kind)
}

func TestParseUnsupportedComponentStrict(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nBEGIN:VFROBNICATE\r\nEND:VFROBNICATE\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: true})
	_, err := p.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrUnsupportedComponent)
}

func TestParseUnsupportedComponentLenientIsKept(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nBEGIN:VFROBNICATE\r\nEND:VFROBNICATE\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: false})
	cal, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, cal.ChildrenOf("VFROBNICATE"), 1)
}

func TestParseMultipleConcatenatedCalendars(t *testing.T) {
	input := minimalEventCalendar + minimalEventCalendar
	p := NewParser(ParseOptions{Strict: true})
	roots, err := p.ParseMultiple(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, roots, 2)
}

func TestParseAllDayEvent(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//X//Y//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20240101T000000Z\r\n" +
		"DTSTART;VALUE=DATE:20240715\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	p := NewParser(ParseOptions{Strict: true})
	cal, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	dtstart, ok := cal.ChildrenOf("VEVENT")[0].GetProperty("DTSTART")
	require.True(t, ok)
	assert.Equal(t, "DATE", dtstart.Params["VALUE"])
	assert.NotContains(t, dtstart.Value, "T")
}

func TestParseNoComponentIsError(t *testing.T) {
	p := NewParser(ParseOptions{Strict: true})
	_, err := p.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoComponent)
}
