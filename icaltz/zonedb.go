package icaltz

import "time"

// ZoneDatabase is the collaborator a Synthesizer consults for offsets,
// DST status, and short names for a given IANA zone identifier. The
// synthesizer depends only on this interface, never on a concrete zone
// source, so a host application can substitute its own (e.g. a vendored
// tzdata snapshot for reproducible builds) without touching icaltz.
type ZoneDatabase interface {
	// Offset returns the UTC offset, in seconds, in effect for zoneID at
	// instant.
	Offset(zoneID string, instant time.Time) (int, error)
	// IsDST reports whether instant falls within a daylight-saving
	// observance for zoneID.
	IsDST(zoneID string, instant time.Time) (bool, error)
	// ShortName returns the abbreviated zone name in effect at instant
	// (e.g. "EST", "BST"). locale is advisory; see SystemZoneDatabase for
	// how the default implementation resolves it.
	ShortName(zoneID string, instant time.Time, locale string) (string, error)
	// KnownZone reports whether zoneID is recognized at all.
	KnownZone(zoneID string) bool
}

// SystemZoneDatabase implements ZoneDatabase over the Go runtime's embedded
// IANA tzdata via time.LoadLocation. This is the library's default
// collaborator. It never consults time.Local: every lookup is keyed
// explicitly by zoneID, so results don't depend on the host's configured
// system timezone.
type SystemZoneDatabase struct{}

// Offset implements ZoneDatabase.
func (SystemZoneDatabase) Offset(zoneID string, instant time.Time) (int, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return 0, ErrUnknownZone
	}
	_, offset := instant.In(loc).Zone()
	return offset, nil
}

// IsDST implements ZoneDatabase. A zone is considered to be observing DST at
// instant when its offset there differs from the offset at the start of
// January of the same year, the cheapest stable "standard time" anchor
// available without a full transition table.
func (SystemZoneDatabase) IsDST(zoneID string, instant time.Time) (bool, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return false, ErrUnknownZone
	}
	_, instantOffset := instant.In(loc).Zone()
	jan := time.Date(instant.Year(), time.January, 1, 12, 0, 0, 0, loc)
	_, janOffset := jan.Zone()
	return instantOffset != janOffset, nil
}

// ShortName implements ZoneDatabase. locale is currently unused: Go's
// embedded tzdata already encodes the locale-correct abbreviation per zone
// (e.g. "BST" rather than a generic "DST+1" for Europe/London), so there is
// no separate locale table to consult.
func (SystemZoneDatabase) ShortName(zoneID string, instant time.Time, _ string) (string, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return "", ErrUnknownZone
	}
	name, _ := instant.In(loc).Zone()
	return name, nil
}

// KnownZone implements ZoneDatabase.
func (SystemZoneDatabase) KnownZone(zoneID string) bool {
	_, err := time.LoadLocation(zoneID)
	return err == nil
}

func (SystemZoneDatabase) location(zoneID string) (*time.Location, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, ErrUnknownZone
	}
	return loc, nil
}
