package extract

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// JSONLD extracts events from script[type="application/ld+json"] blocks.
type JSONLD struct{}

// Extract returns every schema.org Event found in the page's JSON-LD
// blocks. Blocks that fail to decode are skipped; candidates without a
// parseable startDate are dropped. Output order follows document order but
// carries no meaning, the assembler sorts later.
func (JSONLD) Extract(html string, src feed.Source) []*event.Event {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	events := make([]*event.Event, 0)
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var payload interface{}
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return
		}
		for _, obj := range candidates(payload) {
			if evt := eventFromObject(obj, src.Location); evt != nil {
				events = append(events, evt)
			}
		}
	})
	return events
}

// candidates flattens a decoded JSON-LD payload into a list of objects.
// A block can be a single object, a list of objects, or a container with a
// nested @graph list.
func candidates(payload interface{}) []map[string]interface{} {
	switch v := payload.(type) {
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]interface{}:
		if graph, ok := v["@graph"].([]interface{}); ok {
			out := make([]map[string]interface{}, 0, len(graph))
			for _, item := range graph {
				if m, ok := item.(map[string]interface{}); ok {
					out = append(out, m)
				}
			}
			return out
		}
		return []map[string]interface{}{v}
	}
	return nil
}

func eventFromObject(obj map[string]interface{}, fallbackLocation string) *event.Event {
	if !isEventType(obj["@type"]) {
		return nil
	}

	name := strings.TrimSpace(stringValue(obj["name"]))
	if name == "" {
		name = "Event"
	}

	start := event.ParseDate(stringValue(obj["startDate"]))
	if start.IsZero() {
		return nil
	}

	// An unparseable endDate drops only the field, not the event.
	var end time.Time
	if raw := stringValue(obj["endDate"]); raw != "" {
		end = event.ParseDate(raw)
	}

	loc := fallbackLocation
	if locObj, ok := obj["location"].(map[string]interface{}); ok {
		if n := strings.TrimSpace(stringValue(locObj["name"])); n != "" {
			loc = n
		}
	}

	return &event.Event{
		Title:    name,
		Start:    start,
		End:      end,
		Location: loc,
		URL:      strings.TrimSpace(stringValue(obj["url"])),
	}
}

// isEventType reports whether a @type value declares an Event, either as a
// plain string or as one entry of a type list.
func isEventType(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == "Event"
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Event" {
				return true
			}
		}
	}
	return false
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}
