package icaltz

import (
	"fmt"
	"time"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/icaldur"
	"github.com/halvardcal/icalgo/rrule"
)

// DefaultTZURLTemplate is the zone-info URL template used when a Synthesizer
// is constructed without one, matching the convention legacy consumers
// (notably Outlook) expect on a TZURL property.
const DefaultTZURLTemplate = "http://tzurl.org/zoneinfo-outlook/%s"

// referenceYear anchors the DTSTART date search to a historical onset day.
// Real-world VTIMEZONE producers (Google, Microsoft) do the same thing:
// DTSTART sits on a historical epoch-era date while RRULE describes the
// modern recurrence, so a consumer resolving a concrete instant always
// re-derives it from RRULE rather than trusting DTSTART literally.
const referenceYear = 1970

// sampleYear is the year used to determine whether a zone currently
// observes DST at all, and to anchor the BYDAY/BYMONTH/BYSETPOS pattern
// search (a window of patternSpan years around it). Unlike referenceYear,
// this must be recent: DST rules have changed within some zones' history
// (e.g. the US's 1987 and 2007 Uniform Time Act amendments), so sampling
// 1970 itself would risk detecting a pattern no longer in force.
const sampleYear = 2024

// patternSpan is how many years on either side of sampleYear are sampled
// when looking for a stable BYDAY/BYMONTH/BYSETPOS pattern.
const patternSpan = 3

// fallTransitionWindow and springTransitionWindow bound the day-by-day scan
// for the standard-time and daylight-time onset respectively. This assumes a
// Northern-Hemisphere transition calendar (fall back in Sept-Dec, spring
// forward in Feb-May); findTransitionDay only accepts an offset change in
// the direction of the onset it looks for, and falls back to a full-year
// scan when nothing turns up in the expected half, which recovers
// Southern-Hemisphere zones (e.g. Australia/Sydney) that invert the two
// halves.
var (
	fallTransitionWindow   = [2]time.Month{time.September, time.December}
	springTransitionWindow = [2]time.Month{time.February, time.May}
)

// Synthesizer derives VTIMEZONE components from a ZoneDatabase on demand and
// memoizes them per zone identifier. The zero value is not usable; build one
// with NewSynthesizer.
type Synthesizer struct {
	db            ZoneDatabase
	TZURLTemplate string

	cache *memoCache
}

// NewSynthesizer returns a Synthesizer backed by db. Pass SystemZoneDatabase{}
// for the default, tzdata-backed behavior.
func NewSynthesizer(db ZoneDatabase) *Synthesizer {
	return &Synthesizer{
		db:            db,
		TZURLTemplate: DefaultTZURLTemplate,
		cache:         newMemoCache(),
	}
}

// Get returns the VTIMEZONE component for zoneID, synthesizing and
// memoizing it on first request. Concurrent callers requesting the same
// zoneID for the first time collapse onto a single synthesis (see cache.go).
func (s *Synthesizer) Get(zoneID string) (*icalgo.Component, error) {
	return s.cache.get(zoneID, func() (*icalgo.Component, error) {
		return s.synthesize(zoneID)
	})
}

// ClearCache discards every memoized VTIMEZONE, forcing the next Get call
// per zone to re-synthesize.
func (s *Synthesizer) ClearCache() {
	s.cache.clear()
}

func (s *Synthesizer) synthesize(zoneID string) (*icalgo.Component, error) {
	if !s.db.KnownZone(zoneID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, zoneID)
	}

	janInstant := time.Date(sampleYear, time.January, 15, 12, 0, 0, 0, time.UTC)
	julInstant := time.Date(sampleYear, time.July, 15, 12, 0, 0, 0, time.UTC)

	janOffset, err := s.db.Offset(zoneID, janInstant)
	if err != nil {
		return nil, err
	}
	julOffset, err := s.db.Offset(zoneID, julInstant)
	if err != nil {
		return nil, err
	}

	tz := icalgo.NewComponent("VTIMEZONE")
	tz.AddProperty(icalgo.Property{Name: "TZID", Value: zoneID, Params: map[string]string{}})
	tz.AddProperty(icalgo.Property{Name: "TZURL", Value: fmt.Sprintf(s.tzurlTemplate(), zoneID), Params: map[string]string{}})
	tz.AddProperty(icalgo.Property{Name: "X-LIC-LOCATION", Value: zoneID, Params: map[string]string{}})

	if janOffset == julOffset {
		name, err := s.db.ShortName(zoneID, janInstant, localeFor(zoneID))
		if err != nil {
			return nil, err
		}
		standard, err := s.buildObservance(zoneID, "STANDARD", janOffset, janOffset, name, nil)
		if err != nil {
			return nil, err
		}
		tz.AddChild(standard)
		return tz, nil
	}

	standardOffset, daylightOffset := janOffset, julOffset
	standardInstant, daylightInstant := janInstant, julInstant
	if standardOffset > daylightOffset {
		standardOffset, daylightOffset = daylightOffset, standardOffset
		standardInstant, daylightInstant = daylightInstant, standardInstant
	}

	standardName, err := s.db.ShortName(zoneID, standardInstant, localeFor(zoneID))
	if err != nil {
		return nil, err
	}
	daylightName, err := s.db.ShortName(zoneID, daylightInstant, localeFor(zoneID))
	if err != nil {
		return nil, err
	}

	standardRule, err := s.detectPattern(zoneID, fallTransitionWindow)
	if err != nil {
		return nil, err
	}
	daylightRule, err := s.detectPattern(zoneID, springTransitionWindow)
	if err != nil {
		return nil, err
	}

	standard, err := s.buildObservance(zoneID, "STANDARD", daylightOffset, standardOffset, standardName, standardRule)
	if err != nil {
		return nil, err
	}
	daylight, err := s.buildObservance(zoneID, "DAYLIGHT", standardOffset, daylightOffset, daylightName, daylightRule)
	if err != nil {
		return nil, err
	}
	tz.AddChild(standard)
	tz.AddChild(daylight)
	return tz, nil
}

func (s *Synthesizer) tzurlTemplate() string {
	if s.TZURLTemplate == "" {
		return DefaultTZURLTemplate
	}
	return s.TZURLTemplate
}

// buildObservance constructs a STANDARD or DAYLIGHT sub-component. When rule
// is nil, the observance has no discoverable recurrence and is emitted
// without an RRULE.
func (s *Synthesizer) buildObservance(zoneID, kind string, offsetFrom, offsetTo int, tzname string, rule *rrule.RRule) (*icalgo.Component, error) {
	obs := icalgo.NewComponent(kind)

	dtstart, err := s.onsetDate(zoneID, kind)
	if err != nil {
		return nil, err
	}
	obs.AddProperty(icalgo.Property{Name: "DTSTART", Value: dtstart, Params: map[string]string{}})
	obs.AddProperty(icalgo.Property{Name: "TZOFFSETFROM", Value: icaldur.FormatUTCOffset(offsetFrom), Params: map[string]string{}})
	obs.AddProperty(icalgo.Property{Name: "TZOFFSETTO", Value: icaldur.FormatUTCOffset(offsetTo), Params: map[string]string{}})
	obs.AddProperty(icalgo.Property{Name: "TZNAME", Value: tzname, Params: map[string]string{}})
	if rule != nil {
		obs.AddProperty(icalgo.Property{Name: "RRULE", Value: rule.String(), Params: map[string]string{}})
	}
	return obs, nil
}

// onsetDate locates the day-of-year the named observance (STANDARD or
// DAYLIGHT) began in referenceYear and renders it as a floating DATE-TIME at
// 02:00:00. A zone with no discoverable transition at all in that epoch year
// (e.g. one whose zone rules didn't exist yet) falls back to Jan 1 of
// referenceYear as a safe default rather than failing synthesis outright.
func (s *Synthesizer) onsetDate(zoneID, kind string) (string, error) {
	window := fallTransitionWindow
	if kind == "DAYLIGHT" {
		window = springTransitionWindow
	}
	day, _, _, err := s.findTransitionDay(zoneID, referenceYear, window)
	if err != nil {
		return fmt.Sprintf("%04d%02d%02dT020000", referenceYear, 1, 1), nil
	}
	return fmt.Sprintf("%04d%02d%02dT020000", day.Year(), int(day.Month()), day.Day()), nil
}

// findTransitionDay scans zoneID's offset day-by-day (sampled at noon UTC)
// across the given month window of year, returning the first day whose
// offset moves away from the prior day's in the onset's direction: upward
// for springTransitionWindow (daylight onset), downward for any other window
// (standard onset). If nothing is found in the window it retries across the
// full year, recovering Southern-Hemisphere zones whose transition months
// fall in the other half.
func (s *Synthesizer) findTransitionDay(zoneID string, year int, window [2]time.Month) (time.Time, int, int, error) {
	increase := window == springTransitionWindow
	day, from, to, err := s.scanWindow(zoneID, year, window[0], window[1], increase)
	if err == nil {
		return day, from, to, nil
	}
	return s.scanWindow(zoneID, year, time.January, time.December, increase)
}

func (s *Synthesizer) scanWindow(zoneID string, year int, startMonth, endMonth time.Month, increase bool) (time.Time, int, int, error) {
	start := time.Date(year, startMonth, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(year, endMonth+1, 1, 12, 0, 0, 0, time.UTC)

	prevOffset, err := s.db.Offset(zoneID, start.AddDate(0, 0, -1))
	if err != nil {
		return time.Time{}, 0, 0, err
	}
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		offset, err := s.db.Offset(zoneID, cur)
		if err != nil {
			return time.Time{}, 0, 0, err
		}
		if offset != prevOffset && (offset > prevOffset) == increase {
			return cur, prevOffset, offset, nil
		}
		prevOffset = offset
	}
	return time.Time{}, 0, 0, ErrNoTransitionFound
}

// detectPattern samples the transition day across patternSpan years on
// either side of sampleYear, looking for a stable weekday-in-month pattern
// to express as FREQ=YEARLY;BYDAY=<WD>;BYMONTH=<M>;BYSETPOS=<n>. It returns a
// nil rule (no error) when no stable pattern exists.
func (s *Synthesizer) detectPattern(zoneID string, window [2]time.Month) (*rrule.RRule, error) {
	var weekday time.Weekday
	var month time.Month
	var ordinal int
	first := true

	for y := sampleYear - patternSpan; y <= sampleYear+patternSpan; y++ {
		day, _, _, err := s.findTransitionDay(zoneID, y, window)
		if err != nil {
			return nil, nil
		}
		ord := ordinalInMonth(day)
		if first {
			weekday, month, ordinal = day.Weekday(), day.Month(), ord
			first = false
			continue
		}
		if day.Weekday() != weekday || day.Month() != month || ord != ordinal {
			return nil, nil
		}
	}
	if first {
		return nil, nil
	}

	wd, ok := rruleWeekday(weekday)
	if !ok {
		return nil, nil
	}
	return &rrule.RRule{
		Frequency: rrule.FrequencyYearly,
		Interval:  1,
		Month:     []int{int(month)},
		Weekday:   []rrule.ByDay{{Weekday: wd, Interval: 1}},
		SetPos:    []int{ordinal},
	}, nil
}

// ordinalInMonth returns the signed ordinal-in-month BYSETPOS value for t's
// weekday: 1 for "1st such weekday", up to 4, or -1 when t falls in the
// month's final occurrence of that weekday (its day-of-month plus 7 exceeds
// the month's length).
func ordinalInMonth(t time.Time) int {
	daysInMonth := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if t.Day()+7 > daysInMonth {
		return -1
	}
	return (t.Day()-1)/7 + 1
}

func rruleWeekday(wd time.Weekday) (rrule.Weekday, bool) {
	switch wd {
	case time.Sunday:
		return rrule.WeekdaySunday, true
	case time.Monday:
		return rrule.WeekdayMonday, true
	case time.Tuesday:
		return rrule.WeekdayTuesday, true
	case time.Wednesday:
		return rrule.WeekdayWednesday, true
	case time.Thursday:
		return rrule.WeekdayThursday, true
	case time.Friday:
		return rrule.WeekdayFriday, true
	case time.Saturday:
		return rrule.WeekdaySaturday, true
	default:
		return "", false
	}
}

// localeFor picks a short-name locale hint from the zone identifier's
// continent prefix: European zones get the GB locale (for names like BST),
// North American zones get US, Australian zones get AU, everything else
// gets no hint. SystemZoneDatabase.ShortName ignores this hint (see its doc
// comment) but the parameter is threaded through so a caller-supplied
// ZoneDatabase with a real locale table can use it.
func localeFor(zoneID string) string {
	switch {
	case hasPrefix(zoneID, "Europe/"):
		return "GB"
	case hasPrefix(zoneID, "America/"):
		return "US"
	case hasPrefix(zoneID, "Australia/"):
		return "AU"
	default:
		return ""
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
