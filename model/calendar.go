// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "github.com/halvardcal/icalgo"

// Calendar represents a VCALENDAR component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
// Documentation on the properties can be found here:
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7
type Calendar struct {
	// Specifies the identifier corresponding to the
	// highest version number or the minimum and maximum range of the
	// iCalendar specification that is required in order to interpret the
	// iCalendar object. This property is required.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.4
	Version string
	// Product Identifier.
	// This property specifies the identifier for the product that
	// created the iCalendar object.
	// This property is required.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.3
	ProdID string
	// CalScale specifies the calendar scale used by the calendar component.
	// This property is optional
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.1
	CalScale string
	// Method specifies the method used by the calendar component.
	// This property is optional.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.2
	Method string

	TimeZones []TimeZone

	// A grouping of component properties that describe an event.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
	Events []Event

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
	Todos []Todo

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
	Journals []Journal

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
	FreeBusys []FreeBusy
}

// CalendarFromComponent builds a Calendar view over a VCALENDAR component,
// recursing into every child component it recognizes.
func CalendarFromComponent(root *icalgo.Component) (Calendar, error) {
	var cal Calendar
	if root.Kind != "VCALENDAR" {
		return Calendar{}, icalgo.ErrInvalidStructure
	}

	if v, ok := root.GetProperty("VERSION"); ok {
		cal.Version = v.Value
	}
	if p, ok := root.GetProperty("PRODID"); ok {
		cal.ProdID = p.Value
	}
	if cs, ok := root.GetProperty("CALSCALE"); ok {
		cal.CalScale = cs.Value
	}
	if m, ok := root.GetProperty("METHOD"); ok {
		cal.Method = m.Value
	}

	for _, child := range root.Children {
		switch child.Kind {
		case "VTIMEZONE":
			tz, err := TimeZoneFromComponent(child)
			if err != nil {
				return Calendar{}, err
			}
			cal.TimeZones = append(cal.TimeZones, tz)
		case "VEVENT":
			ev, err := EventFromComponent(child)
			if err != nil {
				return Calendar{}, err
			}
			cal.Events = append(cal.Events, ev)
		case "VTODO":
			td, err := TodoFromComponent(child)
			if err != nil {
				return Calendar{}, err
			}
			cal.Todos = append(cal.Todos, td)
		case "VJOURNAL":
			j, err := JournalFromComponent(child)
			if err != nil {
				return Calendar{}, err
			}
			cal.Journals = append(cal.Journals, j)
		case "VFREEBUSY":
			fb, err := FreeBusyFromComponent(child)
			if err != nil {
				return Calendar{}, err
			}
			cal.FreeBusys = append(cal.FreeBusys, fb)
		}
	}

	return cal, nil
}
