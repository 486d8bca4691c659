package event

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// uidDomain suffixes every UID so identifiers from this feed never collide
// with another calendar producer.
const uidDomain = "gorilla-stadium-calendars"

// Event represents one calendar entry recovered from a source page.
// End is the zero time when the page publishes no end instant.
type Event struct {
	Title    string
	Start    time.Time
	End      time.Time
	Location string
	URL      string
}

// UID returns a deterministic identifier for the event. Two events with
// identical title, start, location and URL always yield the same UID;
// changing any of those fields yields a new identity.
func (e *Event) UID() string {
	base := e.Title + "|" + e.Start.Format(time.RFC3339) + "|" + e.Location + "|" + e.URL
	h := sha1.New()
	h.Write([]byte(base))
	return fmt.Sprintf("%x@%s", h.Sum(nil), uidDomain)
}
