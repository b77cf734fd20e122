package domain

import "time"

// TimeLayout is the timestamp format used in the data files.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders a timestamp in the data-file format, in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a data-file timestamp. Unparsable values return the
// zero time and false, which makes them sort as oldest.
func ParseTime(s string) (time.Time, bool) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
