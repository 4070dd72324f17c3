package icaltz

import "errors"

var (
	// ErrUnknownZone is returned when the requested IANA zone identifier is
	// not recognized by the underlying ZoneDatabase.
	ErrUnknownZone = errors.New("icaltz: unknown timezone identifier")

	// ErrNoTransitionFound is returned when the synthesizer cannot locate an
	// offset transition inside the scan window it expected one in. This
	// signals a zone database that disagrees with the DST sample taken in
	// step 2 of the synthesis algorithm, not a caller error.
	ErrNoTransitionFound = errors.New("icaltz: could not locate DST transition day")
)
