package icalgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyLineSimple(t *testing.T) {
	p, err := ParsePropertyLine("SUMMARY:Hello")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY", p.Name)
	assert.Equal(t, "Hello", p.Value)
	assert.Empty(t, p.Params)
}

func TestParsePropertyLineWithParameters(t *testing.T) {
	p, err := ParsePropertyLine(`DTSTART;TZID=America/New_York;VALUE=DATE-TIME:20240101T100000`)
	require.NoError(t, err)
	assert.Equal(t, "DTSTART", p.Name)
	assert.Equal(t, "America/New_York", p.Params["TZID"])
	assert.Equal(t, "DATE-TIME", p.Params["VALUE"])
}

func TestParsePropertyLineColonInsideQuotedParam(t *testing.T) {
	p, err := ParsePropertyLine(`ATTENDEE;CN="Doe, John: VP":mailto:j@x`)
	require.NoError(t, err)
	assert.Equal(t, "Doe, John: VP", p.Params["CN"])
	assert.Equal(t, "mailto:j@x", p.Value)
}

func TestParsePropertyLineMissingColonIsMalformed(t *testing.T) {
	_, err := ParsePropertyLine("SUMMARY")
	assert.ErrorIs(t, err, ErrMalformedProperty)
}

func TestParsePropertyLineParameterMissingEquals(t *testing.T) {
	_, err := ParsePropertyLine("DTSTART;TZID:20240101T100000")
	assert.ErrorIs(t, err, ErrParameterMissingEq)
}

func TestParamParameterEscaping(t *testing.T) {
	p, err := ParsePropertyLine(`ATTENDEE;CN="Doe^nJohn":mailto:j@x`)
	require.NoError(t, err)
	assert.Equal(t, "Doe\nJohn", p.Params["CN"])
}

func TestFormatPropertyRoundTrip(t *testing.T) {
	p := Property{Name: "SUMMARY", Value: "Hello", Params: map[string]string{"LANGUAGE": "en"}}
	line := FormatProperty(p, true)
	reparsed, err := ParsePropertyLine(line)
	require.NoError(t, err)
	assert.Equal(t, p.Name, reparsed.Name)
	assert.Equal(t, p.Value, reparsed.Value)
	assert.Equal(t, p.Params, reparsed.Params)
}

func TestEncodeParamValueQuotesWhenStructuralCharsPresent(t *testing.T) {
	assert.Equal(t, `"a:b"`, EncodeParamValue("a:b"))
	assert.Equal(t, "plain", EncodeParamValue("plain"))
}

func TestDecodeParamValueRejectsUnknownCaretEscape(t *testing.T) {
	_, err := DecodeParamValue("a^xb")
	assert.ErrorIs(t, err, ErrInvalidCaretEscape)
}

func TestRFC6868RoundTrip(t *testing.T) {
	for _, raw := range []string{"plain", "has^caret", "has\nnewline", `has"quote`} {
		encoded := EncodeParamValue(raw)
		// EncodeParamValue may wrap in quotes; DecodeParamValue only
		// reverses the caret-escaping, matching how ParsePropertyLine
		// strips outer quotes before decoding.
		unquoted := encoded
		if len(unquoted) >= 2 && unquoted[0] == '"' && unquoted[len(unquoted)-1] == '"' {
			unquoted = unquoted[1 : len(unquoted)-1]
		}
		decoded, err := DecodeParamValue(unquoted)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	}
}

func TestEscapeUnescapeTextRoundTrip(t *testing.T) {
	raw := "line one\nline two; with, comma\\backslash"
	escaped := EscapeText(raw)
	assert.Equal(t, raw, UnescapeText(escaped))
}

func TestUnescapeTextAcceptsUppercaseNSynonym(t *testing.T) {
	assert.Equal(t, "a\nb", UnescapeText(`a\Nb`))
}

func TestIsStructuredValue(t *testing.T) {
	assert.True(t, IsStructuredValue("rrule"))
	assert.True(t, IsStructuredValue("TRIGGER"))
	assert.False(t, IsStructuredValue("SUMMARY"))
}
