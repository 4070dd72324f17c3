// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
)

// FreeBusyStatus represents the possible values for a VFREEBUSY's FREEBUSY property.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
type FreeBusyStatus string

const (
	FreeBusyStatusFree            FreeBusyStatus = "FREE"
	FreeBusyStatusBusy            FreeBusyStatus = "BUSY"
	FreeBusyStatusBusyTentative   FreeBusyStatus = "BUSY-TENTATIVE"
	FreeBusyStatusBusyUnavailable FreeBusyStatus = "BUSY-UNAVAILABLE"
)

// FreeBusy represents a VFREEBUSY component in the iCalendar format.
// A VFREEBUSY is a grouping of component properties that describe either a request for free/busy time,
// describe a response to a request for free/busy time, or describe a published set of busy time.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	// REQUIRED, MUST NOT occur more than once
	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp icaldur.DateTime

	// REQUIRED, MUST NOT occur more than once
	// The unique identifier for the free/busy component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the contact information for the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
	Contact string

	// OPTIONAL, MUST NOT occur more than once
	// Specifies when the calendar component begins.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.4
	DTStart *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// Specifies when the calendar component ends.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.2
	DTEnd *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// The organizer of the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
	Organizer *Organizer

	// OPTIONAL, MUST NOT occur more than once
	// Specifies a URL associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.6
	URL string

	// OPTIONAL, MAY occur more than once
	// Specifies the participants that are invited to the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
	Attendees []Attendee

	// OPTIONAL, MAY occur more than once
	// Specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string

	// OPTIONAL, MAY occur more than once
	// Specifies one or more free or busy time intervals.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
	FreeBusy []FreeBusyTime

	// OPTIONAL, MAY occur more than once
	// Specifies the status code returned for a scheduling request.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.3
	RequestStatus []string

	// OPTIONAL, MAY occur more than once
	// A Non-Standard Property. Can be represented by any name with a X-prefix.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.2
	XProp map[string]string

	// OPTIONAL, MAY occur more than once
	// An IANA registered property name.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.1
	IANAProp map[string]string
}

// FreeBusyTime represents a single free/busy time interval with its status.
// The interval's end is always resolved to an absolute DateTime even when
// the wire form used a DURATION (period = start "/" dur).
type FreeBusyTime struct {
	// The start time of the free/busy interval.
	Start icaldur.DateTime
	// The end time of the free/busy interval.
	End icaldur.DateTime
	// The status of the time interval (FREE, BUSY, BUSY-TENTATIVE, BUSY-UNAVAILABLE).
	Status FreeBusyStatus
}

// parseFreeBusyProperty parses a FREEBUSY property's comma-separated PERIOD
// list under its FBTYPE parameter (default BUSY).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.9
func parseFreeBusyProperty(p icalgo.Property) ([]FreeBusyTime, error) {
	status := FreeBusyStatusBusy
	if fb, ok := p.Param("FBTYPE"); ok {
		status = FreeBusyStatus(fb)
	}

	var out []FreeBusyTime
	for _, period := range strings.Split(p.Value, ",") {
		start, rest, ok := strings.Cut(period, "/")
		if !ok {
			return nil, icalgo.ErrInvalidPropertyValue
		}
		startDT, err := icaldur.ParseDateTime(start, "")
		if err != nil {
			return nil, err
		}
		var endDT icaldur.DateTime
		if strings.HasPrefix(rest, "P") || strings.HasPrefix(rest, "-P") {
			dur, err := icaldur.ParseDuration(rest)
			if err != nil {
				return nil, err
			}
			endDT = addDuration(startDT, dur)
		} else {
			endDT, err = icaldur.ParseDateTime(rest, "")
			if err != nil {
				return nil, err
			}
		}
		out = append(out, FreeBusyTime{Start: startDT, End: endDT, Status: status})
	}
	return out, nil
}

// FreeBusyFromComponent builds a FreeBusy view over a VFREEBUSY component.
func FreeBusyFromComponent(c *icalgo.Component) (FreeBusy, error) {
	var f FreeBusy

	if stamp, ok := c.GetProperty("DTSTAMP"); ok {
		dt, err := parseDateTimeProperty(stamp)
		if err != nil {
			return FreeBusy{}, err
		}
		f.DTStamp = dt
	}
	if uid, ok := c.GetProperty("UID"); ok {
		f.UID = uid.Value
	}
	if contact, ok := c.GetProperty("CONTACT"); ok {
		f.Contact = icalgo.UnescapeText(contact.Value)
	}
	if u, ok := c.GetProperty("URL"); ok {
		f.URL = u.Value
	}

	var err error
	if f.DTStart, err = optionalDateTime(c, "DTSTART"); err != nil {
		return FreeBusy{}, err
	}
	if f.DTEnd, err = optionalDateTime(c, "DTEND"); err != nil {
		return FreeBusy{}, err
	}
	if org, ok := c.GetProperty("ORGANIZER"); ok {
		o, err := parseOrganizer(org)
		if err != nil {
			return FreeBusy{}, err
		}
		f.Organizer = o
	}
	for _, a := range c.GetProperties("ATTENDEE") {
		att, err := parseAttendee(a)
		if err != nil {
			return FreeBusy{}, err
		}
		f.Attendees = append(f.Attendees, att)
	}
	for _, cm := range c.GetProperties("COMMENT") {
		f.Comment = append(f.Comment, icalgo.UnescapeText(cm.Value))
	}
	for _, fb := range c.GetProperties("FREEBUSY") {
		periods, err := parseFreeBusyProperty(fb)
		if err != nil {
			return FreeBusy{}, err
		}
		f.FreeBusy = append(f.FreeBusy, periods...)
	}
	for _, rs := range c.GetProperties("REQUEST-STATUS") {
		f.RequestStatus = append(f.RequestStatus, rs.Value)
	}

	return f, nil
}
