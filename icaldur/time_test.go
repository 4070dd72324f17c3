package icaldur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        DateTime
		expectError bool
	}{
		{name: "valid", input: "20250928", want: DateTime{Kind: KindDate, Year: 2025, Month: 9, Day: 28}},
		{name: "too short", input: "202509", expectError: true},
		{name: "bad month", input: "20251328", expectError: true},
		{name: "not digits", input: "2025092X", expectError: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseDate(test.input)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		tzid        string
		want        DateTime
		expectError bool
	}{
		{
			name:  "UTC",
			input: "20250928T183000Z",
			want:  DateTime{Kind: KindUTC, Year: 2025, Month: 9, Day: 28, Hour: 18, Minute: 30},
		},
		{
			name:  "floating",
			input: "20240101T000000",
			want:  DateTime{Kind: KindFloating, Year: 2024, Month: 1, Day: 1},
		},
		{
			name:  "zoned",
			input: "20231231T235959",
			tzid:  "America/New_York",
			want:  DateTime{Kind: KindZoned, Year: 2023, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, TZID: "America/New_York"},
		},
		{
			name:        "UTC and TZID both set is invalid",
			input:       "20250928T183000Z",
			tzid:        "America/New_York",
			expectError: true,
		},
		{
			name:        "invalid minute precision",
			input:       "20250928T1830Z",
			expectError: true,
		},
		{
			name:        "invalid separators",
			input:       "2025-09-28T18:30:00Z",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "hour out of range",
			input:       "20250928T243000",
			expectError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseDateTime(test.input, test.tzid)
			if test.expectError {
				assert.Error(t, err, "expected error for input: %s", test.input)
				return
			}
			assert.NoError(t, err, "unexpected error for input: %s", test.input)
			assert.Equal(t, test.want, got, "mismatch for input: %s", test.input)
		})
	}
}

func TestDateTimeStringRoundTrip(t *testing.T) {
	dt, err := ParseDateTime("20250928T183000Z", "")
	assert.NoError(t, err)
	assert.Equal(t, "20250928T183000Z", dt.String())

	d, err := ParseDate("20250928")
	assert.NoError(t, err)
	assert.Equal(t, "20250928", d.String())
}

func TestUTCOffset(t *testing.T) {
	tests := []struct {
		input       string
		want        int
		expectError bool
	}{
		{input: "+0000", want: 0},
		{input: "-0500", want: -5 * 3600},
		{input: "+0530", want: 5*3600 + 30*60},
		{input: "+013015", want: 1*3600 + 30*60 + 15},
		{input: "-0000", expectError: true},
		{input: "0500", expectError: true},
		{input: "+2500", expectError: true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseUTCOffset(test.input)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.input, FormatUTCOffset(got))
		})
	}
}

func BenchmarkParseDateTime(b *testing.B) {
	times := []string{
		"20250928T183000Z",
		"20240101T000000",
		"20231231T235959Z",
		"20000101T120000",
	}
	for b.Loop() {
		for _, s := range times {
			_, err := ParseDateTime(s, "")
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
