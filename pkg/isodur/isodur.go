package isodur

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches the day/time designators the video platform emits. Year,
// month and week designators never appear in video durations.
var durationRE = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Seconds parses an ISO-8601 duration such as "PT1H5M9S" into total
// whole seconds. Fractional seconds are truncated, not rounded.
func Seconds(iso string) (int64, error) {
	m := durationRE.FindStringSubmatch(iso)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "" && m[4] == "") {
		return 0, fmt.Errorf("malformed duration %q", iso)
	}

	var total int64
	for i, unit := range []int64{86400, 3600, 60, 1} {
		part := m[i+1]
		if part == "" {
			continue
		}
		if dot := strings.IndexByte(part, '.'); dot >= 0 {
			part = part[:dot]
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed duration %q: %w", iso, err)
		}
		total += n * unit
	}
	return total, nil
}

// Display renders an ISO-8601 duration as "M:SS": minutes without a
// leading zero and two-digit zero-padded seconds. Durations of an hour
// or more keep accumulating minutes, there is no hour rollover.
func Display(iso string) (string, error) {
	total, err := Seconds(iso)
	if err != nil {
		return "", err
	}
	return Format(total), nil
}

// Format renders a whole-second total in the "M:SS" display form.
func Format(totalSeconds int64) string {
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// ParseDisplay converts an "M:SS" display string back into total
// seconds, the inverse of Display for whole-second durations.
func ParseDisplay(display string) (int64, error) {
	mm, ss, ok := strings.Cut(display, ":")
	if !ok {
		return 0, fmt.Errorf("malformed display duration %q", display)
	}
	minutes, err := strconv.ParseInt(mm, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed display duration %q: %w", display, err)
	}
	seconds, err := strconv.ParseInt(ss, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed display duration %q: %w", display, err)
	}
	return minutes*60 + seconds, nil
}
