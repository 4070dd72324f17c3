package icaltz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeDSTZone(t *testing.T) {
	s := NewSynthesizer(SystemZoneDatabase{})
	s.ClearCache()

	tz, err := s.Get("America/New_York")
	require.NoError(t, err)
	require.NotNil(t, tz)

	tzid, ok := tz.GetProperty("TZID")
	require.True(t, ok)
	assert.Equal(t, "America/New_York", tzid.Value)

	standard := tz.ChildrenOf("STANDARD")
	daylight := tz.ChildrenOf("DAYLIGHT")
	require.Len(t, standard, 1)
	require.Len(t, daylight, 1)

	for _, kind := range []string{"STANDARD", "DAYLIGHT"} {
		children := tz.ChildrenOf(kind)
		require.Len(t, children, 1)
		obs := children[0]
		_, ok := obs.GetProperty("DTSTART")
		assert.True(t, ok, "%s missing DTSTART", kind)
		_, ok = obs.GetProperty("TZOFFSETFROM")
		assert.True(t, ok, "%s missing TZOFFSETFROM", kind)
		_, ok = obs.GetProperty("TZOFFSETTO")
		assert.True(t, ok, "%s missing TZOFFSETTO", kind)
		_, ok = obs.GetProperty("TZNAME")
		assert.True(t, ok, "%s missing TZNAME", kind)
	}

	dtstart, _ := standard[0].GetProperty("DTSTART")
	assert.NotContains(t, dtstart.Value, "Z", "VTIMEZONE onset times are floating, never UTC")
	_, hasTZID := dtstart.Param("TZID")
	assert.False(t, hasTZID, "VTIMEZONE onset times never carry TZID")
}

func TestSynthesizeNoDSTZone(t *testing.T) {
	s := NewSynthesizer(SystemZoneDatabase{})
	s.ClearCache()

	tz, err := s.Get("UTC")
	require.NoError(t, err)
	assert.Len(t, tz.ChildrenOf("STANDARD"), 1)
	assert.Len(t, tz.ChildrenOf("DAYLIGHT"), 0)
}

func TestSynthesizeUnknownZone(t *testing.T) {
	s := NewSynthesizer(SystemZoneDatabase{})
	_, err := s.Get("Not/AZone")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestGetIsMemoized(t *testing.T) {
	s := NewSynthesizer(SystemZoneDatabase{})
	s.ClearCache()

	first, err := s.Get("Europe/Paris")
	require.NoError(t, err)
	second, err := s.Get("Europe/Paris")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated Get for the same zone returns the memoized component")
}

func TestClearCacheForcesResynthesis(t *testing.T) {
	s := NewSynthesizer(SystemZoneDatabase{})
	s.ClearCache()

	first, err := s.Get("Europe/London")
	require.NoError(t, err)
	s.ClearCache()
	second, err := s.Get("Europe/London")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Properties, second.Properties)
}

func TestDefaultPackageSynthesizer(t *testing.T) {
	ClearCache()
	tz, err := Get("Australia/Sydney")
	require.NoError(t, err)
	assert.Equal(t, "VTIMEZONE", tz.Kind)
}
