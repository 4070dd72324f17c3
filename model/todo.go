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

// TodoStatus represents the possible values for a VTODO's STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// Todo represents a VTODO component in the iCalendar format.
// A VTODO is a grouping of component properties that describe a to-do,
// appointment, or journal entry.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	// The unique identifier for the event.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	// Note: this is technically mandatory, however examples in the wild
	// omit it; enforcement is left to Validator rather than the parser.
	DTStamp icaldur.DateTime

	Summary     string
	Description string
	Status      TodoStatus
	// Priority ranges 0-9 (0 = undefined, 1 = highest, 9 = lowest).
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.9
	Priority int
	// PercentComplete ranges 0-100.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.8
	PercentComplete int

	// Start is DTSTART, and Due is mutually exclusive with Duration.
	Start    *icaldur.DateTime
	Due      *icaldur.DateTime
	Duration *icaldur.Duration

	Completed *icaldur.DateTime

	Location  string
	Organizer *Organizer
	Attendees []Attendee

	Categories []string
	Comment    []string
	Contacts   []string
	Geo        *GEO

	RRule           *rrule.RRule
	ExceptionDates  []icaldur.DateTime
	RecurrenceDates []icaldur.DateTime
	Related         []string
	RequestStatus   []string

	Created      *icaldur.DateTime
	LastModified *icaldur.DateTime
	Sequence     int

	Alarms []Alarm

	XProp    map[string]string
	IANAProp map[string]string
}

// TodoFromComponent builds a Todo view over a VTODO component.
func TodoFromComponent(c *icalgo.Component) (Todo, error) {
	var t Todo

	if uid, ok := c.GetProperty("UID"); ok {
		t.UID = uid.Value
	}
	if stamp, ok := c.GetProperty("DTSTAMP"); ok {
		dt, err := parseDateTimeProperty(stamp)
		if err != nil {
			return Todo{}, err
		}
		t.DTStamp = dt
	}
	if s, ok := c.GetProperty("SUMMARY"); ok {
		t.Summary = icalgo.UnescapeText(s.Value)
	}
	if d, ok := c.GetProperty("DESCRIPTION"); ok {
		t.Description = icalgo.UnescapeText(d.Value)
	}
	if s, ok := c.GetProperty("STATUS"); ok {
		t.Status = TodoStatus(s.Value)
	}
	if p, ok := c.GetProperty("PRIORITY"); ok {
		n, err := strconv.Atoi(p.Value)
		if err != nil {
			return Todo{}, err
		}
		t.Priority = n
	}
	if pc, ok := c.GetProperty("PERCENT-COMPLETE"); ok {
		n, err := strconv.Atoi(pc.Value)
		if err != nil {
			return Todo{}, err
		}
		t.PercentComplete = n
	}
	if l, ok := c.GetProperty("LOCATION"); ok {
		t.Location = icalgo.UnescapeText(l.Value)
	}

	var err error
	if t.Start, err = optionalDateTime(c, "DTSTART"); err != nil {
		return Todo{}, err
	}
	if t.Due, err = optionalDateTime(c, "DUE"); err != nil {
		return Todo{}, err
	}
	if t.Completed, err = optionalDateTime(c, "COMPLETED"); err != nil {
		return Todo{}, err
	}
	if t.Created, err = optionalDateTime(c, "CREATED"); err != nil {
		return Todo{}, err
	}
	if t.LastModified, err = optionalDateTime(c, "LAST-MODIFIED"); err != nil {
		return Todo{}, err
	}
	if dur, ok := c.GetProperty("DURATION"); ok {
		d, err := icaldur.ParseDuration(dur.Value)
		if err != nil {
			return Todo{}, err
		}
		t.Duration = &d
	}
	if geo, ok := c.GetProperty("GEO"); ok {
		g, err := parseGeo(geo.Value)
		if err != nil {
			return Todo{}, err
		}
		t.Geo = &g
	}
	if org, ok := c.GetProperty("ORGANIZER"); ok {
		o, err := parseOrganizer(org)
		if err != nil {
			return Todo{}, err
		}
		t.Organizer = o
	}
	for _, a := range c.GetProperties("ATTENDEE") {
		att, err := parseAttendee(a)
		if err != nil {
			return Todo{}, err
		}
		t.Attendees = append(t.Attendees, att)
	}
	for _, cat := range c.GetProperties("CATEGORIES") {
		t.Categories = append(t.Categories, icalgo.UnescapeText(cat.Value))
	}
	for _, cm := range c.GetProperties("COMMENT") {
		t.Comment = append(t.Comment, icalgo.UnescapeText(cm.Value))
	}
	for _, contact := range c.GetProperties("CONTACT") {
		t.Contacts = append(t.Contacts, icalgo.UnescapeText(contact.Value))
	}
	if rr, ok := c.GetProperty("RRULE"); ok {
		r, err := rrule.ParseRRule(rr.Value)
		if err != nil {
			return Todo{}, err
		}
		t.RRule = r
	}
	for _, ex := range c.GetProperties("EXDATE") {
		dts, err := parseMultiValuedDateTime(ex)
		if err != nil {
			return Todo{}, err
		}
		t.ExceptionDates = append(t.ExceptionDates, dts...)
	}
	for _, rd := range c.GetProperties("RDATE") {
		dts, err := parseMultiValuedDateTime(rd)
		if err != nil {
			return Todo{}, err
		}
		t.RecurrenceDates = append(t.RecurrenceDates, dts...)
	}
	for _, rel := range c.GetProperties("RELATED-TO") {
		t.Related = append(t.Related, rel.Value)
	}
	for _, rs := range c.GetProperties("REQUEST-STATUS") {
		t.RequestStatus = append(t.RequestStatus, rs.Value)
	}
	if seq, ok := c.GetProperty("SEQUENCE"); ok {
		n, err := strconv.Atoi(seq.Value)
		if err != nil {
			return Todo{}, err
		}
		t.Sequence = n
	}
	for _, alarmComp := range c.ChildrenOf("VALARM") {
		a, err := AlarmFromComponent(alarmComp)
		if err != nil {
			return Todo{}, err
		}
		t.Alarms = append(t.Alarms, a)
	}

	return t, nil
}
