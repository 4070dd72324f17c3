package icaltz

import "github.com/halvardcal/icalgo"

// defaultSynthesizer backs the package-level Get/ClearCache functions so
// callers who don't need a custom ZoneDatabase can use icaltz without
// constructing a Synthesizer themselves. Construct your own Synthesizer
// (optionally over a custom ZoneDatabase) when that shared default needs to
// be avoided, e.g. in tests that must not share state across parallel cases.
var defaultSynthesizer = NewSynthesizer(SystemZoneDatabase{})

// Get returns the VTIMEZONE component for zoneID using the package-default
// Synthesizer.
func Get(zoneID string) (*icalgo.Component, error) {
	return defaultSynthesizer.Get(zoneID)
}

// ClearCache resets the package-default Synthesizer's memo cache.
func ClearCache() {
	defaultSynthesizer.ClearCache()
}
