package guide

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampKind tags the outcome of parsing an XMLTV timestamp.
type TimestampKind int

const (
	// TimestampInvalid means the value could not be parsed at all.
	TimestampInvalid TimestampKind = iota
	// TimestampWithOffset means the value carried an explicit UTC offset.
	TimestampWithOffset
	// TimestampLocal means the value had no offset and was interpreted in the
	// reference timezone.
	TimestampLocal
)

// XMLTV time format: 14 digits, optionally followed by a UTC offset that may
// be space separated ("20240801060000 +1000") or concatenated
// ("20240801060000+1000").
var xmltvTimeRegex = regexp.MustCompile(`^(\d{14})(?:\s*([+-]\d{4}))?$`)

// ParseTimestamp parses an XMLTV timestamp. Values with an explicit offset
// are converted into loc; values without one are interpreted as already being
// in loc. The returned time is always in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, TimestampKind) {
	matches := xmltvTimeRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return time.Time{}, TimestampInvalid
	}

	dateStr := matches[1]
	tzStr := matches[2]

	if tzStr == "" {
		t, err := time.ParseInLocation("20060102150405", dateStr, loc)
		if err != nil {
			return time.Time{}, TimestampInvalid
		}
		return t, TimestampLocal
	}

	sign := 1
	if tzStr[0] == '-' {
		sign = -1
	}
	hours, err := strconv.Atoi(tzStr[1:3])
	if err != nil {
		return time.Time{}, TimestampInvalid
	}
	minutes, err := strconv.Atoi(tzStr[3:5])
	if err != nil {
		return time.Time{}, TimestampInvalid
	}
	offset := sign * (hours*3600 + minutes*60)

	t, err := time.ParseInLocation("20060102150405", dateStr, time.FixedZone(tzStr, offset))
	if err != nil {
		return time.Time{}, TimestampInvalid
	}
	return t.In(loc), TimestampWithOffset
}
