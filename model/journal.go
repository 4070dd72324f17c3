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

// JournalStatus represents the possible values for a VJOURNAL's STATUS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type JournalStatus string

const (
	JournalStatusDraft     JournalStatus = "DRAFT"
	JournalStatusFinal     JournalStatus = "FINAL"
	JournalStatusCancelled JournalStatus = "CANCELLED"
)

// JournalClass represents the possible values for a VJOURNAL's CLASS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
type JournalClass string

const (
	JournalClassPublic       JournalClass = "PUBLIC"
	JournalClassPrivate      JournalClass = "PRIVATE"
	JournalClassConfidential JournalClass = "CONFIDENTIAL"
)

// Journal represents a VJOURNAL component in the iCalendar format.
// A VJOURNAL is a grouping of component properties that describe a journal entry.
// Does not take up time on a calendar.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	// REQUIRED, MUST NOT occur more than once
	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp icaldur.DateTime

	// REQUIRED, MUST NOT occur more than once
	// The unique identifier for the journal entry.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// OPTIONAL, MUST NOT occur more than once
	// Access Classification for the calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
	Class JournalClass

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the date and time that the calendar information was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.1
	Created *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// Specifies when the calendar component begins.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.4
	DTStart *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the date and time that the information associated with the calendar component was last revised.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.3
	LastModified *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// The organizer of the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
	Organizer *Organizer

	// OPTIONAL, MUST NOT occur more than once
	// Identifies the recurrence instance this journal entry modifies.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.4
	RecurrenceID *icaldur.DateTime

	// OPTIONAL, MUST NOT occur more than once
	// Specifies the revision sequence number of the calendar component within a sequence of revisions.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
	Sequence int

	// OPTIONAL, MUST NOT occur more than once
	// Defines the overall status or confirmation for the calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
	Status JournalStatus

	// OPTIONAL, MUST NOT occur more than once
	// A short, one-line summary about the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string

	// OPTIONAL, MUST NOT occur more than once
	// Specifies a URL associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.6
	URL string

	// OPTIONAL, SHOULD NOT occur more than once
	RRule *rrule.RRule

	// OPTIONAL, MAY occur more than once
	// Provides the capability to associate a document object with a calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.1
	Attach []string

	// OPTIONAL, MAY occur more than once
	// Specifies the participants that are invited to the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
	Attendees []Attendee

	// OPTIONAL, MAY occur more than once
	// Specifies the categories that the calendar component belongs to.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
	Categories []string

	// OPTIONAL, MAY occur more than once
	// Specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string

	// OPTIONAL, MAY occur more than once
	// Specifies the contact information for the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
	Contacts []string

	// OPTIONAL, MAY occur more than once
	// Used to capture lengthy textual descriptions associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description []string

	// OPTIONAL, MAY occur more than once
	// Specifies the list of date/time exceptions for a recurring calendar component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.1
	ExceptionDates []icaldur.DateTime

	// OPTIONAL, MAY occur more than once
	// Specifies a relationship or reference between one calendar component and another.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.5
	Related []string

	// OPTIONAL, MAY occur more than once
	// Specifies the list of date/time values for recurring activities.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.2
	Rdate []icaldur.DateTime

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

	// OPTIONAL, MAY occur more than once
	// Sub-components: VALARM
	Alarms []Alarm
}

// JournalFromComponent builds a Journal view over a VJOURNAL component.
func JournalFromComponent(c *icalgo.Component) (Journal, error) {
	var j Journal

	if stamp, ok := c.GetProperty("DTSTAMP"); ok {
		dt, err := parseDateTimeProperty(stamp)
		if err != nil {
			return Journal{}, err
		}
		j.DTStamp = dt
	}
	if uid, ok := c.GetProperty("UID"); ok {
		j.UID = uid.Value
	}
	if class, ok := c.GetProperty("CLASS"); ok {
		j.Class = JournalClass(class.Value)
	}
	if status, ok := c.GetProperty("STATUS"); ok {
		j.Status = JournalStatus(status.Value)
	}
	if s, ok := c.GetProperty("SUMMARY"); ok {
		j.Summary = icalgo.UnescapeText(s.Value)
	}
	if u, ok := c.GetProperty("URL"); ok {
		j.URL = u.Value
	}

	var err error
	if j.Created, err = optionalDateTime(c, "CREATED"); err != nil {
		return Journal{}, err
	}
	if j.DTStart, err = optionalDateTime(c, "DTSTART"); err != nil {
		return Journal{}, err
	}
	if j.LastModified, err = optionalDateTime(c, "LAST-MODIFIED"); err != nil {
		return Journal{}, err
	}
	if j.RecurrenceID, err = optionalDateTime(c, "RECURRENCE-ID"); err != nil {
		return Journal{}, err
	}
	if org, ok := c.GetProperty("ORGANIZER"); ok {
		o, err := parseOrganizer(org)
		if err != nil {
			return Journal{}, err
		}
		j.Organizer = o
	}
	if seq, ok := c.GetProperty("SEQUENCE"); ok {
		n, err := strconv.Atoi(seq.Value)
		if err != nil {
			return Journal{}, err
		}
		j.Sequence = n
	}
	if rr, ok := c.GetProperty("RRULE"); ok {
		r, err := rrule.ParseRRule(rr.Value)
		if err != nil {
			return Journal{}, err
		}
		j.RRule = r
	}
	for _, attach := range c.GetProperties("ATTACH") {
		j.Attach = append(j.Attach, attach.Value)
	}
	for _, a := range c.GetProperties("ATTENDEE") {
		att, err := parseAttendee(a)
		if err != nil {
			return Journal{}, err
		}
		j.Attendees = append(j.Attendees, att)
	}
	for _, cat := range c.GetProperties("CATEGORIES") {
		j.Categories = append(j.Categories, icalgo.UnescapeText(cat.Value))
	}
	for _, cm := range c.GetProperties("COMMENT") {
		j.Comment = append(j.Comment, icalgo.UnescapeText(cm.Value))
	}
	for _, contact := range c.GetProperties("CONTACT") {
		j.Contacts = append(j.Contacts, icalgo.UnescapeText(contact.Value))
	}
	for _, d := range c.GetProperties("DESCRIPTION") {
		j.Description = append(j.Description, icalgo.UnescapeText(d.Value))
	}
	for _, ex := range c.GetProperties("EXDATE") {
		dts, err := parseMultiValuedDateTime(ex)
		if err != nil {
			return Journal{}, err
		}
		j.ExceptionDates = append(j.ExceptionDates, dts...)
	}
	for _, rel := range c.GetProperties("RELATED-TO") {
		j.Related = append(j.Related, rel.Value)
	}
	for _, rd := range c.GetProperties("RDATE") {
		dts, err := parseMultiValuedDateTime(rd)
		if err != nil {
			return Journal{}, err
		}
		j.Rdate = append(j.Rdate, dts...)
	}
	for _, rs := range c.GetProperties("REQUEST-STATUS") {
		j.RequestStatus = append(j.RequestStatus, rs.Value)
	}
	for _, alarmComp := range c.ChildrenOf("VALARM") {
		a, err := AlarmFromComponent(alarmComp)
		if err != nil {
			return Journal{}, err
		}
		j.Alarms = append(j.Alarms, a)
	}

	return j, nil
}
