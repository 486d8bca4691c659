package extract

import (
	"strings"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// Extractor recovers events from one fetched page.
type Extractor interface {
	Extract(html string, src feed.Source) []*event.Event
}

// ForSource selects the extraction strategy for a source. fixtur.es pages
// render fixtures as plain text with no structured metadata; every other
// configured site embeds JSON-LD.
func ForSource(src feed.Source) Extractor {
	if strings.Contains(src.URL, "fixtur.es") {
		return Fixtures{}
	}
	return JSONLD{}
}
