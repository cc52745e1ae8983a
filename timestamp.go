package movebank

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// movebankLayout is the layout used by Movebank CSV exports. Go accepts fractional seconds after
// the seconds field when parsing even if the layout does not include them, so "2017-05-01 04:00:00.000"
// is matched as well.
const movebankLayout = "2006-01-02 15:04:05"

// Layouts used to encode timestamps, with and without microseconds.
const (
	isoLayout         = "2006-01-02T15:04:05"
	isoFractionLayout = "2006-01-02T15:04:05.000000"
)

// ParseTimestamp parses str as a timestamp. Values in the Movebank layout are parsed directly, anything
// else is handed to araddon/dateparse (which handles non-padded, US-style slash and zone-suffixed values,
// among others). Values without a zone are interpreted as UTC; values with one are converted to UTC.
// The boolean is false if str is empty or can not be parsed.
func ParseTimestamp(str string) (time.Time, bool) {

	str = strings.TrimSpace(str)

	if str == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(movebankLayout, str)

	if err == nil {
		return t, true
	}

	t, err = dateparse.ParseIn(str, time.UTC)

	if err != nil {
		return time.Time{}, false
	}

	return t.UTC(), true
}

// FormatTimestamp encodes t as an ISO-8601 string with no zone designator. Microseconds are
// included only when t has a fractional second.
func FormatTimestamp(t time.Time) string {

	t = t.UTC()

	if t.Nanosecond() == 0 {
		return t.Format(isoLayout)
	}

	return t.Format(isoFractionLayout)
}

// ParseCoordinate parses a longitude or latitude value, returning NaN if str is empty or
// not a number.
func ParseCoordinate(str string) float64 {

	str = strings.TrimSpace(str)

	if str == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(str, 64)

	if err != nil {
		return math.NaN()
	}

	return f
}
