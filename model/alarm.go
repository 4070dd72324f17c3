// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strconv"
	"strings"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
)

// AlarmAction represents the possible values for a VALARM's ACTION field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio     AlarmAction = "AUDIO"
	AlarmActionDisplay   AlarmAction = "DISPLAY"
	AlarmActionEmail     AlarmAction = "EMAIL"
	AlarmActionProcedure AlarmAction = "PROCEDURE"
	AlarmActionProximity AlarmAction = "PROXIMITY"
)

// TriggerRelation is a TRIGGER property's RELATED parameter value.
type TriggerRelation string

const (
	TriggerRelatedStart TriggerRelation = "START"
	TriggerRelatedEnd   TriggerRelation = "END"
)

// Trigger represents a TRIGGER property, which is either a signed duration
// relative to DTSTART/DTEND (the common case) or an absolute DATE-TIME when
// VALUE=DATE-TIME is present.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
type Trigger struct {
	// Offset is set when TRIGGER carries a DURATION value.
	Offset *icaldur.Duration
	// Related tells whether Offset is relative to DTSTART or DTEND; defaults
	// to START when empty.
	Related TriggerRelation
	// Absolute is set when VALUE=DATE-TIME makes TRIGGER an absolute instant.
	Absolute *icaldur.DateTime
}

func parseTrigger(p icalgo.Property) (Trigger, error) {
	var t Trigger
	if related, ok := p.Param("RELATED"); ok {
		t.Related = TriggerRelation(related)
	}
	if v, ok := p.Param("VALUE"); ok && strings.EqualFold(v, "DATE-TIME") {
		dt, err := icaldur.ParseDateTime(p.Value, "")
		if err != nil {
			return Trigger{}, err
		}
		t.Absolute = &dt
		return t, nil
	}
	d, err := icaldur.ParseDuration(p.Value)
	if err != nil {
		return Trigger{}, err
	}
	t.Offset = &d
	return t, nil
}

// Alarm represents a VALARM component in the iCalendar format.
// A VALARM is a grouping of component properties that defines an alarm.
// VALARM components are sub-components of VEVENT, VTODO, or VJOURNAL.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	// REQUIRED, MUST NOT occur more than once
	// Defines the action to be invoked when an alarm is triggered.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
	Action AlarmAction

	// REQUIRED, MUST NOT occur more than once
	// Specifies when an alarm will trigger.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
	Trigger Trigger

	// OPTIONAL, MUST NOT occur more than once (for AUDIO and EMAIL actions)
	// Provides the capability to associate a document object with an alarm.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.1
	Attach []string

	// OPTIONAL, MUST NOT occur more than once (for AUDIO and EMAIL actions)
	// Specifies a positive duration of time for repeating alarms.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.5
	Duration *icaldur.Duration

	// OPTIONAL, MUST NOT occur more than once (for DISPLAY and EMAIL actions)
	// Provides a more complete description of the alarm than that provided by the SUMMARY property.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description string

	// OPTIONAL, MUST NOT occur more than once (for AUDIO and EMAIL actions)
	// Defines the number of times the alarm should be repeated.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.4
	Repeat int

	// OPTIONAL, MUST NOT occur more than once (for EMAIL action)
	// Defines a short summary or subject for the alarm.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string

	// OPTIONAL, MAY occur more than once (for EMAIL action, at least one required)
	// Specifies the participants that are invited to the alarm.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
	Attendees []Attendee

	// UID uniquely identifies the alarm, per RFC 9074 §6.1. Optional, but
	// needed to snooze or acknowledge an individual alarm.
	UID string
	// Acknowledged records when the user last dismissed the alarm, per
	// RFC 9074 §6.2.
	Acknowledged *icaldur.DateTime
	// Proximity constrains the alarm to trigger on a location event
	// (ARRIVE/DEPART/CONNECT/DISCONNECT), per RFC 9074 §8.1.
	Proximity string
	// RelatedTo links this alarm to another alarm it supersedes or is
	// related to, per RFC 9074 §8.2.
	RelatedTo string

	// OPTIONAL, MAY occur more than once
	// A Non-Standard Property. Can be represented by any name with a X-prefix.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.2
	XProp map[string]string

	// OPTIONAL, MAY occur more than once
	// An IANA registered property name.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.1
	IANAProp map[string]string
}

// AlarmFromComponent builds an Alarm view over a VALARM component.
func AlarmFromComponent(c *icalgo.Component) (Alarm, error) {
	var a Alarm

	if action, ok := c.GetProperty("ACTION"); ok {
		a.Action = AlarmAction(action.Value)
	}
	if trig, ok := c.GetProperty("TRIGGER"); ok {
		t, err := parseTrigger(trig)
		if err != nil {
			return Alarm{}, err
		}
		a.Trigger = t
	}
	for _, attach := range c.GetProperties("ATTACH") {
		a.Attach = append(a.Attach, attach.Value)
	}
	if dur, ok := c.GetProperty("DURATION"); ok {
		d, err := icaldur.ParseDuration(dur.Value)
		if err != nil {
			return Alarm{}, err
		}
		a.Duration = &d
	}
	if d, ok := c.GetProperty("DESCRIPTION"); ok {
		a.Description = icalgo.UnescapeText(d.Value)
	}
	if rep, ok := c.GetProperty("REPEAT"); ok {
		n, err := strconv.Atoi(rep.Value)
		if err != nil {
			return Alarm{}, err
		}
		a.Repeat = n
	}
	if s, ok := c.GetProperty("SUMMARY"); ok {
		a.Summary = icalgo.UnescapeText(s.Value)
	}
	for _, att := range c.GetProperties("ATTENDEE") {
		attendee, err := parseAttendee(att)
		if err != nil {
			return Alarm{}, err
		}
		a.Attendees = append(a.Attendees, attendee)
	}
	if uid, ok := c.GetProperty("UID"); ok {
		a.UID = uid.Value
	}
	if ack, ok := c.GetProperty("ACKNOWLEDGED"); ok {
		dt, err := parseDateTimeProperty(ack)
		if err != nil {
			return Alarm{}, err
		}
		a.Acknowledged = &dt
	}
	if prox, ok := c.GetProperty("PROXIMITY"); ok {
		a.Proximity = prox.Value
	}
	if rel, ok := c.GetProperty("RELATED-TO"); ok {
		a.RelatedTo = rel.Value
	}

	a.XProp = make(map[string]string)
	a.IANAProp = make(map[string]string)
	for _, p := range c.Properties {
		switch {
		case strings.HasPrefix(p.Name, "X-"):
			a.XProp[p.Name] = p.Value
		}
	}

	return a, nil
}
