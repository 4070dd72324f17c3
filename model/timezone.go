// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
	"github.com/halvardcal/icalgo/rrule"
)

// TZObservanceKind distinguishes a VTIMEZONE sub-component as STANDARD or
// DAYLIGHT time.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TZObservanceKind string

const (
	TZObservanceStandard TZObservanceKind = "STANDARD"
	TZObservanceDaylight TZObservanceKind = "DAYLIGHT"
)

// TZObservance is one STANDARD or DAYLIGHT sub-component of a VTIMEZONE,
// describing a single onset rule for an offset transition.
type TZObservance struct {
	Kind TZObservanceKind

	// DTStart is the local time the observance first takes effect.
	DTStart icaldur.DateTime
	// TZOffsetFrom/TZOffsetTo are signed offset seconds from UTC.
	TZOffsetFrom int
	TZOffsetTo   int
	// TZName is the abbreviated name in effect during the observance, e.g. "PST".
	TZName string

	RRule          *rrule.RRule
	RecurrenceDate []icaldur.DateTime
}

// TimeZone represents a VTIMEZONE component in the iCalendar format.
// A grouping of component properties that defines a time zone.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	// Represented by TZID
	// The time zone identifier for the time zone used by the calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
	TimeZoneID string

	// LastModified, URL are optional VTIMEZONE properties.
	LastModified *icaldur.DateTime
	URL          string

	// Observances holds the STANDARD/DAYLIGHT sub-components in document
	// order.
	Observances []TZObservance
}

func tzObservanceFromComponent(c *icalgo.Component, kind TZObservanceKind) (TZObservance, error) {
	o := TZObservance{Kind: kind}

	if dt, err := optionalDateTime(c, "DTSTART"); err != nil {
		return TZObservance{}, err
	} else if dt != nil {
		o.DTStart = *dt
	}
	if from, ok := c.GetProperty("TZOFFSETFROM"); ok {
		secs, err := icaldur.ParseUTCOffset(from.Value)
		if err != nil {
			return TZObservance{}, err
		}
		o.TZOffsetFrom = secs
	}
	if to, ok := c.GetProperty("TZOFFSETTO"); ok {
		secs, err := icaldur.ParseUTCOffset(to.Value)
		if err != nil {
			return TZObservance{}, err
		}
		o.TZOffsetTo = secs
	}
	if name, ok := c.GetProperty("TZNAME"); ok {
		o.TZName = name.Value
	}
	if rr, ok := c.GetProperty("RRULE"); ok {
		r, err := rrule.ParseRRule(rr.Value)
		if err != nil {
			return TZObservance{}, err
		}
		o.RRule = r
	}
	for _, rd := range c.GetProperties("RDATE") {
		dts, err := parseMultiValuedDateTime(rd)
		if err != nil {
			return TZObservance{}, err
		}
		o.RecurrenceDate = append(o.RecurrenceDate, dts...)
	}

	return o, nil
}

// TimeZoneFromComponent builds a TimeZone view over a VTIMEZONE component.
func TimeZoneFromComponent(c *icalgo.Component) (TimeZone, error) {
	var tz TimeZone

	if tzid, ok := c.GetProperty("TZID"); ok {
		tz.TimeZoneID = tzid.Value
	}
	if u, ok := c.GetProperty("TZURL"); ok {
		tz.URL = u.Value
	}
	lm, err := optionalDateTime(c, "LAST-MODIFIED")
	if err != nil {
		return TimeZone{}, err
	}
	tz.LastModified = lm

	for _, child := range c.Children {
		switch child.Kind {
		case "STANDARD":
			o, err := tzObservanceFromComponent(child, TZObservanceStandard)
			if err != nil {
				return TimeZone{}, err
			}
			tz.Observances = append(tz.Observances, o)
		case "DAYLIGHT":
			o, err := tzObservanceFromComponent(child, TZObservanceDaylight)
			if err != nil {
				return TimeZone{}, err
			}
			tz.Observances = append(tz.Observances, o)
		}
	}

	return tz, nil
}
