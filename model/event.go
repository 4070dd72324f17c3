// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strconv"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
	"github.com/halvardcal/icalgo/rrule"
)

// EventStatus represents the possible values for a VEVENT's STATUS field;
// note VTODO's STATUS field accepts different values.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Event is a view over a VEVENT component.
// for more information see https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	UID     string
	DTStamp icaldur.DateTime

	// a short, one-line summary about the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string
	// Used to capture lengthy textual descriptions associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description string
	// dtstart in the ICAL format
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	Start *icaldur.DateTime
	// dtend in the ICAL format; mutually exclusive with Duration.
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	End *icaldur.DateTime
	// Duration is used instead of End when DTEND is absent.
	Duration *icaldur.Duration
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.7
	Location string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
	// defines the overall status or confirmation for the calendar component.
	Status    EventStatus
	Organizer *Organizer
	Attendees []Attendee

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
	Categories []string
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
	Geo *GEO
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
	RRule *rrule.RRule
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.1
	ExceptionDates []icaldur.DateTime
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.2
	RecurrenceDates []icaldur.DateTime

	Created      *icaldur.DateTime
	LastModified *icaldur.DateTime
	Sequence     int
	Transp       string

	// Sub-components: VALARM
	Alarms []Alarm
}

// EventFromComponent builds an Event view over a VEVENT component. It does
// not validate required-property invariants; pair with icalgo.Validator for
// that.
func EventFromComponent(c *icalgo.Component) (Event, error) {
	var e Event

	if uid, ok := c.GetProperty("UID"); ok {
		e.UID = uid.Value
	}
	if stamp, ok := c.GetProperty("DTSTAMP"); ok {
		dt, err := parseDateTimeProperty(stamp)
		if err != nil {
			return Event{}, err
		}
		e.DTStamp = dt
	}
	if s, ok := c.GetProperty("SUMMARY"); ok {
		e.Summary = icalgo.UnescapeText(s.Value)
	}
	if d, ok := c.GetProperty("DESCRIPTION"); ok {
		e.Description = icalgo.UnescapeText(d.Value)
	}
	if l, ok := c.GetProperty("LOCATION"); ok {
		e.Location = icalgo.UnescapeText(l.Value)
	}
	if s, ok := c.GetProperty("STATUS"); ok {
		e.Status = EventStatus(s.Value)
	}
	if t, ok := c.GetProperty("TRANSP"); ok {
		e.Transp = t.Value
	}

	var err error
	if e.Start, err = optionalDateTime(c, "DTSTART"); err != nil {
		return Event{}, err
	}
	if e.End, err = optionalDateTime(c, "DTEND"); err != nil {
		return Event{}, err
	}
	if e.Created, err = optionalDateTime(c, "CREATED"); err != nil {
		return Event{}, err
	}
	if e.LastModified, err = optionalDateTime(c, "LAST-MODIFIED"); err != nil {
		return Event{}, err
	}
	if dur, ok := c.GetProperty("DURATION"); ok {
		d, err := icaldur.ParseDuration(dur.Value)
		if err != nil {
			return Event{}, err
		}
		e.Duration = &d
	}
	if geo, ok := c.GetProperty("GEO"); ok {
		g, err := parseGeo(geo.Value)
		if err != nil {
			return Event{}, err
		}
		e.Geo = &g
	}
	if org, ok := c.GetProperty("ORGANIZER"); ok {
		o, err := parseOrganizer(org)
		if err != nil {
			return Event{}, err
		}
		e.Organizer = o
	}
	for _, a := range c.GetProperties("ATTENDEE") {
		att, err := parseAttendee(a)
		if err != nil {
			return Event{}, err
		}
		e.Attendees = append(e.Attendees, att)
	}
	for _, cat := range c.GetProperties("CATEGORIES") {
		e.Categories = append(e.Categories, icalgo.UnescapeText(cat.Value))
	}
	for _, cm := range c.GetProperties("COMMENT") {
		e.Comment = append(e.Comment, icalgo.UnescapeText(cm.Value))
	}
	if rr, ok := c.GetProperty("RRULE"); ok {
		r, err := rrule.ParseRRule(rr.Value)
		if err != nil {
			return Event{}, err
		}
		e.RRule = r
	}
	for _, ex := range c.GetProperties("EXDATE") {
		dts, err := parseMultiValuedDateTime(ex)
		if err != nil {
			return Event{}, err
		}
		e.ExceptionDates = append(e.ExceptionDates, dts...)
	}
	for _, rd := range c.GetProperties("RDATE") {
		dts, err := parseMultiValuedDateTime(rd)
		if err != nil {
			return Event{}, err
		}
		e.RecurrenceDates = append(e.RecurrenceDates, dts...)
	}
	if seq, ok := c.GetProperty("SEQUENCE"); ok {
		n, err := strconv.Atoi(seq.Value)
		if err != nil {
			return Event{}, err
		}
		e.Sequence = n
	}
	for _, alarmComp := range c.ChildrenOf("VALARM") {
		a, err := AlarmFromComponent(alarmComp)
		if err != nil {
			return Event{}, err
		}
		e.Alarms = append(e.Alarms, a)
	}

	return e, nil
}
