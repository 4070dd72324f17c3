// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
// and the RSCALE extension of RFC 7529.
package rrule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halvardcal/icalgo/icaldur"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

type ByDay struct {
	// The day of the week that the event occurs on
	Weekday Weekday
	// The signed ordinal within the frequency's period.
	// eg: If Weekday is Tuesday, and Interval is 2, then the event occurs on the 2nd Tuesday of the period.
	Interval int
}

// RRule is the parsed form of an RFC 5545 RECUR value. String() emits it
// back to wire form in the canonical key order: FREQ, INTERVAL (always),
// COUNT/UNTIL, BYSECOND, BYMINUTE, BYHOUR, BYDAY, BYMONTHDAY, BYYEARDAY,
// BYWEEKNO, BYMONTH, BYSETPOS, WKST (always), RSCALE (last, non-Gregorian
// rules only).
type RRule struct {
	// The frequency of the event. This MUST be specified.
	Frequency Frequency
	// The interval between occurrences of the event.
	// eg: an interval of 2 for a daily rule means the event will happen every other day.
	// Not mandatory, but treated as 1 if not present.
	Interval int
	// The number of occurrences of the event.
	// Cannot occur with Until. DTSTART always counts as the first occurrence.
	Count *int
	// The date and time until the rule ends, inclusive. Cannot occur with Count.
	Until *icaldur.DateTime

	// RScale is the non-Gregorian calendar scale (RFC 7529), e.g. "CHINESE".
	// Empty means the Gregorian calendar.
	RScale string
	// WeekStart is the day the week is considered to start on (WKST);
	// RFC 5545 defaults to Monday when unset.
	WeekStart Weekday

	Second   []int
	Minute   []int
	Hour     []int
	Weekday  []ByDay
	Monthday []int
	YearDay  []int
	WeekNo   []int
	Month    []int
	SetPos   []int
}

// ParseRRule takes an iCal recurrence rule string and parses it into an RRule.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
// Example for an event that happens daily for 10 days:
// Input:  FREQ=DAILY;INTERVAL=1;COUNT=10
// Output: RRule{Frequency: FrequencyDaily, Interval: 1, Count: &10, WeekStart: WeekdayMonday}
func ParseRRule(rruleString string) (*RRule, error) {
	r := &RRule{
		// Default to 1 if not present
		Interval: 1,
		// RFC 5545 §3.3.10: WKST defaults to MO when absent.
		WeekStart: WeekdayMonday,
	}
	for part := range strings.SplitSeq(rruleString, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, ErrInvalidRRuleString
		}
		var err error
		switch tag {
		case "RSCALE":
			r.RScale = value
		case "FREQ":
			r.Frequency = Frequency(value)
		case "INTERVAL":
			r.Interval, err = strconv.Atoi(value)
		case "COUNT":
			var count int
			count, err = strconv.Atoi(value)
			r.Count = &count
		case "UNTIL":
			var until icaldur.DateTime
			until, err = icaldur.ParseDateTime(value, "")
			r.Until = &until
		case "WKST":
			if !isValidWeekday(Weekday(value)) {
				return nil, ErrInvalidByDayString
			}
			r.WeekStart = Weekday(value)
		case "BYSECOND":
			r.Second, err = parseIntList(value)
		case "BYMINUTE":
			r.Minute, err = parseIntList(value)
		case "BYHOUR":
			r.Hour, err = parseIntList(value)
		case "BYDAY":
			r.Weekday, err = parseByDayList(value)
		case "BYMONTHDAY":
			r.Monthday, err = parseIntList(value)
		case "BYYEARDAY":
			r.YearDay, err = parseIntList(value)
		case "BYWEEKNO":
			r.WeekNo, err = parseIntList(value)
		case "BYMONTH":
			r.Month, err = parseIntList(value)
		case "BYSETPOS":
			r.SetPos, err = parseIntList(value)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := validateRRule(r); err != nil {
		return nil, err
	}
	return r, nil
}

func parseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseByDayList(value string) ([]ByDay, error) {
	parts := strings.Split(value, ",")
	out := make([]ByDay, 0, len(parts))
	for _, part := range parts {
		interval, weekday, err := ParseByDay(part)
		if err != nil {
			return nil, err
		}
		out = append(out, ByDay{Weekday: weekday, Interval: interval})
	}
	return out, nil
}

func validateRRule(r *RRule) error {
	if r.Frequency == "" {
		return ErrFrequencyRequired
	}
	if !isValidFrequency(r.Frequency) {
		return fmt.Errorf("%w: %s", errInvalidFrequency, r.Frequency)
	}
	if r.RScale != "" && !strings.EqualFold(r.RScale, "GREGORIAN") {
		return fmt.Errorf("%w: %s", ErrUnsupportedRScale, r.RScale)
	}
	if len(r.SetPos) > 0 && len(r.Second) == 0 && len(r.Minute) == 0 && len(r.Hour) == 0 &&
		len(r.Weekday) == 0 && len(r.Monthday) == 0 && len(r.YearDay) == 0 && len(r.WeekNo) == 0 && len(r.Month) == 0 {
		return ErrBySetPosRequiresOtherByRule
	}
	if r.Count != nil && r.Until != nil {
		return ErrCountAndUntilBothSet
	}
	if r.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

func isValidFrequency(f Frequency) bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// String renders r back to its canonical RFC 5545 RECUR value: FREQ,
// INTERVAL (always, even when 1, per spec §4.B), COUNT or UNTIL, the BY*
// rules in canonical order, WKST (always, defaulting to MO), then RSCALE
// last when the rule is non-Gregorian.
func (r RRule) String() string {
	var parts []string
	parts = append(parts, "FREQ="+string(r.Frequency))
	parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	if r.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*r.Count))
	}
	if r.Until != nil {
		parts = append(parts, "UNTIL="+r.Until.String())
	}
	if len(r.Second) > 0 {
		parts = append(parts, "BYSECOND="+joinInts(r.Second))
	}
	if len(r.Minute) > 0 {
		parts = append(parts, "BYMINUTE="+joinInts(r.Minute))
	}
	if len(r.Hour) > 0 {
		parts = append(parts, "BYHOUR="+joinInts(r.Hour))
	}
	if len(r.Weekday) > 0 {
		parts = append(parts, "BYDAY="+joinByDay(r.Weekday))
	}
	if len(r.Monthday) > 0 {
		parts = append(parts, "BYMONTHDAY="+joinInts(r.Monthday))
	}
	if len(r.YearDay) > 0 {
		parts = append(parts, "BYYEARDAY="+joinInts(r.YearDay))
	}
	if len(r.WeekNo) > 0 {
		parts = append(parts, "BYWEEKNO="+joinInts(r.WeekNo))
	}
	if len(r.Month) > 0 {
		parts = append(parts, "BYMONTH="+joinInts(r.Month))
	}
	if len(r.SetPos) > 0 {
		parts = append(parts, "BYSETPOS="+joinInts(r.SetPos))
	}
	weekStart := r.WeekStart
	if weekStart == "" {
		weekStart = WeekdayMonday
	}
	parts = append(parts, "WKST="+string(weekStart))
	if r.RScale != "" {
		parts = append(parts, "RSCALE="+r.RScale)
	}
	return strings.Join(parts, ";")
}

func joinInts(vals []int) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

func joinByDay(days []ByDay) string {
	strs := make([]string, len(days))
	for i, d := range days {
		if d.Interval == 1 {
			strs[i] = string(d.Weekday)
			continue
		}
		strs[i] = strconv.Itoa(d.Interval) + string(d.Weekday)
	}
	return strings.Join(strs, ",")
}

// ParseByDay parses a BYDAY value string and returns the ordinal and
// weekday. The string can be in the format "20MO" (ordinal + weekday) or
// just "MO" (weekday only, ordinal defaults to 1). Valid weekdays are: MO,
// TU, WE, TH, FR, SA, SU.
func ParseByDay(byDayString string) (int, Weekday, error) {
	if byDayString == "" {
		return 0, "", ErrInvalidByDayString
	}

	if byDayString[0] >= '0' && byDayString[0] <= '9' || byDayString[0] == '-' {
		digitEnd := 0
		for i, char := range byDayString {
			if char < '0' || char > '9' {
				if char == '-' && i == 0 {
					continue
				}
				digitEnd = i
				break
			}
			digitEnd = i + 1
		}

		intervalStr := byDayString[:digitEnd]
		weekday := Weekday(byDayString[digitEnd:])

		if !isValidWeekday(weekday) {
			return 0, "", ErrInvalidByDayString
		}

		interval, err := strconv.Atoi(intervalStr)
		if err != nil {
			return 0, "", ErrInvalidByDayString
		}

		return interval, weekday, nil
	}

	if !isValidWeekday(Weekday(byDayString)) {
		return 0, "", ErrInvalidByDayString
	}

	return 1, Weekday(byDayString), nil
}

// isValidWeekday checks if the string is a valid weekday abbreviation.
func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}
