// Package icaltz synthesizes VTIMEZONE components on demand from a
// general-purpose timezone database rather than shipping a static table of
// pre-baked zone files. Given an IANA zone identifier such as
// "America/New_York", it samples the zone's UTC offsets across a reference
// year, derives STANDARD/DAYLIGHT sub-components and their RRULEs, and
// returns the result as an *icalgo.Component ready to hang under a
// VCALENDAR. Results are memoized per zone identifier behind a
// process-wide, concurrency-safe cache.
package icaltz
