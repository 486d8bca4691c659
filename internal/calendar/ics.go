package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorillacarts/stadium-calendars/internal/event"
)

const (
	prodID = "-//Gorilla Carts & Kiosks//Stadium Calendars//EN"

	// Outlook renders UTC instants in the viewer's local time; the hint
	// only names the home zone of the venues.
	timezoneHint = "Europe/London"
)

// BuildICS renders one calendar document. Events are emitted in the order
// given; generatedAt stamps every DTSTAMP line. The output uses CRLF line
// terminators throughout, including after the final END:VCALENDAR.
func BuildICS(calendarName string, events []*event.Event, generatedAt time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:" + prodID + "\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	fmt.Fprintf(&ics, "X-WR-CALNAME:%s\r\n", escapeICS(calendarName))
	ics.WriteString("X-WR-TIMEZONE:" + timezoneHint + "\r\n")

	stamp := formatICSTime(generatedAt)
	for _, evt := range events {
		ics.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&ics, "UID:%s\r\n", evt.UID())
		fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&ics, "DTSTART:%s\r\n", formatICSTime(evt.Start))
		if !evt.End.IsZero() {
			fmt.Fprintf(&ics, "DTEND:%s\r\n", formatICSTime(evt.End))
		}
		fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICS(evt.Title))
		fmt.Fprintf(&ics, "LOCATION:%s\r\n", escapeICS(evt.Location))
		if evt.URL != "" {
			fmt.Fprintf(&ics, "URL:%s\r\n", escapeICS(evt.URL))
			fmt.Fprintf(&ics, "DESCRIPTION:%s\r\n", escapeICS(evt.URL))
		}
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// formatICSTime renders an instant in UTC with the literal Z marker.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes free text per RFC 5545. The backslash must go first so
// later replacements are not double-escaped.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}
