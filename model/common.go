// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
)

// addDuration adds a Duration to a DateTime, used to resolve a PERIOD's
// start/duration form (e.g. a FREEBUSY interval) to an absolute end time.
// Durations never carry month/year components, so plain Gregorian
// arithmetic in a fixed zone is exact regardless of dt's Kind.
func addDuration(dt icaldur.DateTime, d icaldur.Duration) icaldur.DateTime {
	t := time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
	offset := time.Duration(d.TotalSeconds()) * time.Second
	t = t.Add(offset)
	return icaldur.DateTime{
		Kind:   dt.Kind,
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		TZID:   dt.TZID,
	}
}

// parseDateTimeProperty resolves a DATE or DATE-TIME-valued property,
// honoring a VALUE=DATE parameter and a TZID parameter the same way DTSTART,
// DTEND, DUE, RECURRENCE-ID, CREATED, and LAST-MODIFIED all do.
func parseDateTimeProperty(p icalgo.Property) (icaldur.DateTime, error) {
	if v, ok := p.Param("VALUE"); ok && strings.EqualFold(v, "DATE") {
		return icaldur.ParseDate(p.Value)
	}
	tzid, _ := p.Param("TZID")
	return icaldur.ParseDateTime(p.Value, tzid)
}

func optionalDateTime(c *icalgo.Component, name string) (*icaldur.DateTime, error) {
	p, ok := c.GetProperty(name)
	if !ok {
		return nil, nil
	}
	dt, err := parseDateTimeProperty(p)
	if err != nil {
		return nil, err
	}
	return &dt, nil
}

// parseMultiValuedDateTime resolves an EXDATE or RDATE property, which may
// carry a comma-separated list of DATE or DATE-TIME values sharing a single
// VALUE/TZID parameter pair. RDATE's PERIOD form is not supported.
func parseMultiValuedDateTime(p icalgo.Property) ([]icaldur.DateTime, error) {
	isDate := false
	if v, ok := p.Param("VALUE"); ok && strings.EqualFold(v, "DATE") {
		isDate = true
	}
	tzid, _ := p.Param("TZID")

	values := strings.Split(p.Value, ",")
	out := make([]icaldur.DateTime, 0, len(values))
	for _, v := range values {
		var dt icaldur.DateTime
		var err error
		if isDate {
			dt, err = icaldur.ParseDate(v)
		} else {
			dt, err = icaldur.ParseDateTime(v, tzid)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, dt)
	}
	return out, nil
}

// Organizer represents an ORGANIZER property, used in VEVENT, VTODO,
// VJOURNAL, and VFREEBUSY.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	// denoted by the CN= parameter
	CommonName string
	// Note: Any Valid URI
	// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.3
	CalAddress *url.URL
	// denoted by the DIR= parameter
	Directory string
	// denoted by the SENT-BY= parameter: the calendar user acting on the
	// organizer's behalf.
	SentBy string
}

// ParticipationStatus is an ATTENDEE's PARTSTAT parameter value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.2.12
type ParticipationStatus string

const (
	PartStatNeedsAction ParticipationStatus = "NEEDS-ACTION"
	PartStatAccepted    ParticipationStatus = "ACCEPTED"
	PartStatDeclined    ParticipationStatus = "DECLINED"
	PartStatTentative   ParticipationStatus = "TENTATIVE"
	PartStatDelegated   ParticipationStatus = "DELEGATED"
	PartStatCompleted   ParticipationStatus = "COMPLETED"
	PartStatInProcess   ParticipationStatus = "IN-PROCESS"
)

// AttendeeRole is an ATTENDEE's ROLE parameter value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.2.16
type AttendeeRole string

const (
	RoleChair          AttendeeRole = "CHAIR"
	RoleReqParticipant AttendeeRole = "REQ-PARTICIPANT"
	RoleOptParticipant AttendeeRole = "OPT-PARTICIPANT"
	RoleNonParticipant AttendeeRole = "NON-PARTICIPANT"
)

// CalendarUserType is an ATTENDEE's CUTYPE parameter value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.2.3
type CalendarUserType string

const (
	CUTypeIndividual CalendarUserType = "INDIVIDUAL"
	CUTypeGroup      CalendarUserType = "GROUP"
	CUTypeResource   CalendarUserType = "RESOURCE"
	CUTypeRoom       CalendarUserType = "ROOM"
	CUTypeUnknown    CalendarUserType = "UNKNOWN"
)

// Attendee represents an ATTENDEE property: a mailto: calendar address plus
// its scheduling parameters.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
type Attendee struct {
	CalAddress    *url.URL
	CommonName    string
	Role          AttendeeRole
	PartStat      ParticipationStatus
	CUType        CalendarUserType
	RSVP          bool
	DelegatedFrom []string
	DelegatedTo   []string
	SentBy        string
	Directory     string
	Member        []string
}

// GEO represents a GEO property: the latitude/longitude of a component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
type GEO struct {
	Latitude  float64
	Longitude float64
}

// parseCalAddress parses a "mailto:user@example.com"-style CAL-ADDRESS value.
// RFC 5545 permits any URI scheme; mailto is overwhelmingly the common case,
// but whatever scheme is present is preserved.
func parseCalAddress(value string) (*url.URL, error) {
	return url.Parse(icalgo.UnescapeText(value))
}

// parseOrganizer builds an Organizer from an ORGANIZER property.
func parseOrganizer(p icalgo.Property) (*Organizer, error) {
	addr, err := parseCalAddress(p.Value)
	if err != nil {
		return nil, err
	}
	o := &Organizer{CalAddress: addr}
	if cn, ok := p.Param("CN"); ok {
		o.CommonName = cn
	}
	if dir, ok := p.Param("DIR"); ok {
		o.Directory = dir
	}
	if sentBy, ok := p.Param("SENT-BY"); ok {
		o.SentBy = sentBy
	}
	return o, nil
}

// parseAttendee builds an Attendee from an ATTENDEE property.
func parseAttendee(p icalgo.Property) (Attendee, error) {
	addr, err := parseCalAddress(p.Value)
	if err != nil {
		return Attendee{}, err
	}
	a := Attendee{CalAddress: addr}
	if cn, ok := p.Param("CN"); ok {
		a.CommonName = cn
	}
	if role, ok := p.Param("ROLE"); ok {
		a.Role = AttendeeRole(role)
	}
	if ps, ok := p.Param("PARTSTAT"); ok {
		a.PartStat = ParticipationStatus(ps)
	}
	if cu, ok := p.Param("CUTYPE"); ok {
		a.CUType = CalendarUserType(cu)
	}
	if rsvp, ok := p.Param("RSVP"); ok {
		a.RSVP = strings.EqualFold(rsvp, "TRUE")
	}
	if from, ok := p.Param("DELEGATED-FROM"); ok {
		a.DelegatedFrom = splitMailtoList(from)
	}
	if to, ok := p.Param("DELEGATED-TO"); ok {
		a.DelegatedTo = splitMailtoList(to)
	}
	if sentBy, ok := p.Param("SENT-BY"); ok {
		a.SentBy = sentBy
	}
	if dir, ok := p.Param("DIR"); ok {
		a.Directory = dir
	}
	if member, ok := p.Param("MEMBER"); ok {
		a.Member = splitMailtoList(member)
	}
	return a, nil
}

// splitMailtoList splits a comma-separated, RFC-6868-quoted list of
// CAL-ADDRESS values, used by DELEGATED-FROM/DELEGATED-TO/MEMBER.
func splitMailtoList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, `"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseGeo parses a GEO property value: "lat;lon".
func parseGeo(value string) (GEO, error) {
	lat, lon, ok := strings.Cut(value, ";")
	if !ok {
		return GEO{}, icalgo.ErrInvalidPropertyValue
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return GEO{}, err
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return GEO{}, err
	}
	return GEO{Latitude: latF, Longitude: lonF}, nil
}
