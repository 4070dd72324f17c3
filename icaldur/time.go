package icaldur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadDate         = errors.New("malformed DATE value")
	ErrBadDateTime     = errors.New("malformed DATE-TIME value")
	ErrBadUTCOffset    = errors.New("malformed UTC-OFFSET value")
	ErrNegativeZeroUTC = errors.New("UTC-OFFSET -0000 is not permitted")
)

// Kind distinguishes the four DATE-TIME forms RFC 5545 §3.3.5 allows. A
// DateTime never pre-applies a zone offset to its wall-clock fields: a
// ZonedDateTime keeps TZID and the naive YYYYMMDDTHHMMSS fields separate, so
// resolving to an absolute instant is left to a caller holding a zone
// database (see icaltz), not baked in at parse time.
type Kind int

const (
	// KindDate is a bare DATE value (VALUE=DATE): no time-of-day component.
	KindDate Kind = iota
	// KindFloating is a DATE-TIME with no trailing Z and no TZID parameter:
	// "floats" and is interpreted in whatever zone the consumer chooses.
	KindFloating
	// KindUTC is a DATE-TIME with a trailing Z: an absolute instant.
	KindUTC
	// KindZoned is a DATE-TIME with a TZID parameter.
	KindZoned
)

// DateTime is the parsed form of a DATE or DATE-TIME value.
type DateTime struct {
	Kind                 Kind
	Year, Month, Day     int
	Hour, Minute, Second int
	TZID                 string
}

const (
	dateLayoutDigits     = 8  // YYYYMMDD
	dateTimeLayoutDigits = 15 // YYYYMMDDTHHMMSS
)

// ParseDate parses a bare DATE value: YYYYMMDD.
func ParseDate(value string) (DateTime, error) {
	if len(value) != dateLayoutDigits || !allDigits(value) {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDate, value)
	}
	y, mo, d, err := splitYMD(value)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDate, value)
	}
	return DateTime{Kind: KindDate, Year: y, Month: mo, Day: d}, nil
}

// ParseDateTime parses a DATE-TIME value: YYYYMMDDTHHMMSS, optionally
// suffixed with Z for UTC. If tzid is non-empty, the value is treated as
// zoned (a DATE-TIME whose property carried a TZID parameter); tzid and a
// trailing Z are mutually exclusive per RFC 5545.
func ParseDateTime(value string, tzid string) (DateTime, error) {
	utc := strings.HasSuffix(value, "Z")
	body := value
	if utc {
		body = value[:len(value)-1]
	}
	if len(body) != dateTimeLayoutDigits || body[8] != 'T' {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDateTime, value)
	}
	if utc && tzid != "" {
		return DateTime{}, fmt.Errorf("%w: %s has both TZID and trailing Z", ErrBadDateTime, value)
	}

	datePart := body[:8]
	timePart := body[9:]
	if !allDigits(datePart) || !allDigits(timePart) || len(timePart) != 6 {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDateTime, value)
	}

	y, mo, d, err := splitYMD(datePart)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDateTime, value)
	}
	hh, _ := strconv.Atoi(timePart[0:2])
	mm, _ := strconv.Atoi(timePart[2:4])
	ss, _ := strconv.Atoi(timePart[4:6])
	if hh > 23 || mm > 59 || ss > 60 {
		return DateTime{}, fmt.Errorf("%w: %s", ErrBadDateTime, value)
	}

	dt := DateTime{Year: y, Month: mo, Day: d, Hour: hh, Minute: mm, Second: ss}
	switch {
	case utc:
		dt.Kind = KindUTC
	case tzid != "":
		dt.Kind = KindZoned
		dt.TZID = tzid
	default:
		dt.Kind = KindFloating
	}
	return dt, nil
}

// String renders dt back to its wire form (without re-emitting a TZID
// parameter, which belongs on the property, not the value).
func (dt DateTime) String() string {
	date := fmt.Sprintf("%04d%02d%02d", dt.Year, dt.Month, dt.Day)
	if dt.Kind == KindDate {
		return date
	}
	s := fmt.Sprintf("%sT%02d%02d%02d", date, dt.Hour, dt.Minute, dt.Second)
	if dt.Kind == KindUTC {
		s += "Z"
	}
	return s
}

func splitYMD(digits8 string) (int, int, int, error) {
	y, err := strconv.Atoi(digits8[0:4])
	if err != nil {
		return 0, 0, 0, err
	}
	mo, err := strconv.Atoi(digits8[4:6])
	if err != nil {
		return 0, 0, 0, err
	}
	d, err := strconv.Atoi(digits8[6:8])
	if err != nil {
		return 0, 0, 0, err
	}
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return 0, 0, 0, fmt.Errorf("%w: month/day out of range", ErrBadDate)
	}
	return y, mo, d, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseUTCOffset parses an RFC 5545 §3.3.14 UTC-OFFSET value: a sign
// followed by HHMM or HHMMSS. "-0000" is rejected ("negative zero" has no
// meaningful offset and RFC 5545 explicitly disallows it); use "+0000".
func ParseUTCOffset(value string) (int, error) {
	if len(value) != 5 && len(value) != 7 {
		return 0, fmt.Errorf("%w: %s", ErrBadUTCOffset, value)
	}
	var sign int
	switch value[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadUTCOffset, value)
	}
	digits := value[1:]
	if !allDigits(digits) {
		return 0, fmt.Errorf("%w: %s", ErrBadUTCOffset, value)
	}
	hh, _ := strconv.Atoi(digits[0:2])
	mm, _ := strconv.Atoi(digits[2:4])
	ss := 0
	if len(digits) == 6 {
		ss, _ = strconv.Atoi(digits[4:6])
	}
	if hh > 23 || mm > 59 || ss > 59 {
		return 0, fmt.Errorf("%w: %s", ErrBadUTCOffset, value)
	}
	total := sign * (hh*3600 + mm*60 + ss)
	if total == 0 && sign < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeZeroUTC, value)
	}
	return total, nil
}

// FormatUTCOffset renders a signed offset-in-seconds back to HHMM[SS] form,
// including seconds only when non-zero.
func FormatUTCOffset(totalSeconds int) string {
	sign := "+"
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}
	hh := totalSeconds / 3600
	mm := (totalSeconds % 3600) / 60
	ss := totalSeconds % 60
	if ss != 0 {
		return fmt.Sprintf("%s%02d%02d%02d", sign, hh, mm, ss)
	}
	return fmt.Sprintf("%s%02d%02d", sign, hh, mm)
}
