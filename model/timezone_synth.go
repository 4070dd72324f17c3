// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaltz"
)

// EnsureTimeZones walks root (expected to be a VCALENDAR) for every TZID
// parameter referenced by its properties, and appends a synthesized
// VTIMEZONE child for each zone identifier not already present among root's
// own VTIMEZONE children. "UTC" never needs a VTIMEZONE and is skipped.
//
// EnsureTimeZones mutates root by appending children; it does not touch
// existing VTIMEZONE components or reorder anything.
func EnsureTimeZones(root *icalgo.Component, synth *icaltz.Synthesizer) error {
	known := map[string]bool{}
	for _, tz := range root.ChildrenOf("VTIMEZONE") {
		if tzid, ok := tz.GetProperty("TZID"); ok {
			known[tzid.Value] = true
		}
	}

	var referenced []string
	seen := map[string]bool{}
	root.Walk(func(c *icalgo.Component) {
		for _, p := range c.Properties {
			tzid, ok := p.Param("TZID")
			if !ok || tzid == "UTC" || known[tzid] || seen[tzid] {
				continue
			}
			seen[tzid] = true
			referenced = append(referenced, tzid)
		}
	})

	for _, zoneID := range referenced {
		tz, err := synth.Get(zoneID)
		if err != nil {
			return err
		}
		root.AddChild(tz)
		known[zoneID] = true
	}
	return nil
}
