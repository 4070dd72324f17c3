// Package icalgo implements the core of an iCalendar (RFC 5545) processing
// pipeline: line folding/unfolding, the property-line grammar, a generic
// BEGIN/END component tree, a strict/lenient parser, a serializer, and a
// structural validator.
//
// Value codecs for DATE, DATE-TIME, DURATION, UTC-OFFSET and RRULE live in
// the icaldur and rrule packages. Typed read views over the generic tree
// (Event, Todo, Journal, FreeBusy, Alarm, Attendee) live in the model
// package. VTIMEZONE synthesis from an IANA zone database lives in icaltz.
package icalgo
