package icalgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	p := NewParser(ParseOptions{Strict: true})
	cal, err := p.Parse(strings.NewReader(minimalEventCalendar))
	require.NoError(t, err)

	s := NewSerializer(SerializeOptions{CRLF: true})
	out := s.Serialize(cal)

	reparsed, err := p.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, cal, reparsed)
}

func TestSerializeSortsPropertiesWhenConfigured(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "UID", Value: "1"})
	c.AddProperty(Property{Name: "DTSTAMP", Value: "20240101T000000Z"})

	s := NewSerializer(SerializeOptions{SortProperties: true, CRLF: true})
	out := s.Serialize(c)
	dtstampIdx := strings.Index(out, "DTSTAMP")
	uidIdx := strings.Index(out, "UID")
	assert.Less(t, dtstampIdx, uidIdx)
}

func TestSerializeFoldsLongLines(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "DESCRIPTION", Value: strings.Repeat("a", 200)})
	s := NewSerializer(SerializeOptions{LineLength: 75, CRLF: true})
	out := s.Serialize(c)
	for _, line := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(line), 75)
	}
}

func TestSerializeLFLineEndingOption(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "UID", Value: "1"})
	s := NewSerializer(SerializeOptions{CRLF: false})
	out := s.Serialize(c)
	assert.NotContains(t, out, "\r\n")
	assert.Contains(t, out, "\n")
}

func TestSerializeTimezonesFirst(t *testing.T) {
	root := NewComponent("VCALENDAR")
	event := NewComponent("VEVENT")
	event.AddProperty(Property{Name: "UID", Value: "1"})
	tz := NewComponent("VTIMEZONE")
	tz.AddProperty(Property{Name: "TZID", Value: "America/New_York"})
	root.AddChild(event)
	root.AddChild(tz)

	s := NewSerializer(SerializeOptions{TimezonesFirst: true, CRLF: true})
	out := s.Serialize(root)
	assert.Less(t, strings.Index(out, "BEGIN:VTIMEZONE"), strings.Index(out, "BEGIN:VEVENT"))
}

func TestSerializeDateValueKeepsValueDateParam(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "DTSTART", Value: "20240715", Params: map[string]string{"VALUE": "DATE"}})
	s := NewSerializer(SerializeOptions{CRLF: true})
	out := s.Serialize(c)
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240715")
}
