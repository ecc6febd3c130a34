package leave

import (
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for all leave dates.
	DateLayout = "2006-01-02"
	// DisplayLayout is the fixed human-readable rendering used by the
	// range picker. Locale-fixed on purpose so formatted ranges round-trip
	// through ParseRangeString regardless of the user's locale.
	DisplayLayout = "2 January 2006"
	// pickerLayout is the short form the range picker emits ("14 Dec, 2025").
	pickerLayout = "2 Jan, 2006"

	rangeSeparator = " to "
)

// MalformedRangeError indicates a range string that could not be split into
// two dates, typically because the user selected only one endpoint.
type MalformedRangeError struct {
	Input string
}

func (e *MalformedRangeError) Error() string {
	return "malformed date range: " + e.Input
}

// ToLocalDateString renders t as YYYY-MM-DD using its local calendar fields.
// Callers must ensure t already represents the intended local day; no
// timezone conversion happens here.
func ToLocalDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate accepts the wire format, the display format, and the picker's
// short format.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(DisplayLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(pickerLayout, value)
}

// Duration returns the inclusive day count between two YYYY-MM-DD dates.
// The result is >= 1 whenever end >= start. Ranges with end < start are not
// sanitized here; callers validate ordering before relying on the result.
func Duration(startISO, endISO string) (int, error) {
	start, err := ParseDate(startISO)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endISO)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// FormatDisplay renders a YYYY-MM-DD date as "2 January 2006". Unparseable
// input is returned unchanged so a bad value stays visible instead of
// disappearing.
func FormatDisplay(dateISO string) string {
	parsed, err := time.Parse(DateLayout, dateISO)
	if err != nil {
		return dateISO
	}
	return parsed.Format(DisplayLayout)
}

// ParseRangeString splits a picker range string on the literal " to "
// separator and returns both endpoints as YYYY-MM-DD. A missing separator or
// an unparseable endpoint yields a MalformedRangeError.
func ParseRangeString(s string) (startISO, endISO string, err error) {
	left, right, found := strings.Cut(s, rangeSeparator)
	if !found {
		return "", "", &MalformedRangeError{Input: s}
	}
	start, err := ParseDate(left)
	if err != nil {
		return "", "", &MalformedRangeError{Input: s}
	}
	end, err := ParseDate(right)
	if err != nil {
		return "", "", &MalformedRangeError{Input: s}
	}
	return start.Format(DateLayout), end.Format(DateLayout), nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(dateISO string, n int) (string, error) {
	parsed, err := time.Parse(DateLayout, dateISO)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 0, n).Format(DateLayout), nil
}
