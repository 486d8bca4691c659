package event

import "time"

// dateLayouts are tried in order by ParseDate. Layouts without a zone
// produce UTC instants.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2 Jan 2006 15:04 -07:00",
	"2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04",
	"2 Jan 2006",
	"2 January 2006 15:04",
	"2 January 2006",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"02.01.2006 15:04",
	"02.01.2006",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseDate attempts to parse a published date string into a time.Time.
// Returns the zero time when no layout matches. Supports RFC 3339 with
// offsets ("2026-05-01T19:00:00+01:00") and fixture-style strings
// ("11 Jan 2026 12:00 +00:00") among others.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
