package calendar

import (
	"sort"
	"strings"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// placeholderTitle marks the synthetic event some feeds carry before any
// real data exists. Matched as a case-insensitive substring so it survives
// classification prefixing.
const placeholderTitle = "calendar generated (no events parsed yet)"

// SourceEvents pairs a source with the events extracted from it.
type SourceEvents struct {
	Source feed.Source
	Events []*event.Event
}

// Buckets maps venue tags to their ordered event lists.
type Buckets map[string][]*event.Event

// Assemble groups events by venue tag. Events missing a location inherit
// their source's display location. Once a bucket holds any real event its
// placeholder sentinels are removed; a bucket with only sentinels keeps
// them so the calendar is never empty by accident. Every venue in cfg gets
// a bucket, even when it ends up with no events, and each bucket is sorted
// ascending by start instant (stable, so extraction order breaks ties).
func Assemble(cfg feed.Config, extracted []SourceEvents) Buckets {
	buckets := make(Buckets, len(cfg.Venues))
	for _, v := range cfg.Venues {
		buckets[v.Tag] = []*event.Event{}
	}

	for _, se := range extracted {
		evs, ok := buckets[se.Source.VenueTag]
		if !ok {
			continue
		}
		for _, evt := range se.Events {
			if evt.Location == "" {
				evt.Location = se.Source.Location
			}
			evs = append(evs, evt)
		}
		buckets[se.Source.VenueTag] = evs
	}

	for tag, evs := range buckets {
		evs = stripPlaceholders(evs)
		sort.SliceStable(evs, func(a, b int) bool {
			return evs[a].Start.Before(evs[b].Start)
		})
		buckets[tag] = evs
	}
	return buckets
}

func stripPlaceholders(evs []*event.Event) []*event.Event {
	real := false
	for _, evt := range evs {
		if !isPlaceholder(evt) {
			real = true
			break
		}
	}
	if !real {
		return evs
	}

	kept := make([]*event.Event, 0, len(evs))
	for _, evt := range evs {
		if isPlaceholder(evt) {
			continue
		}
		kept = append(kept, evt)
	}
	return kept
}

func isPlaceholder(evt *event.Event) bool {
	return strings.Contains(strings.ToLower(evt.Title), placeholderTitle)
}
