// Package filter drops fixtures that are not played at the modelled venue.
//
// Some fixture sources list every home game of a club, but certain
// competition rounds are hosted at a different ground. For sources flagged
// accordingly, any event whose title carries one of the excluded competition
// tags is removed. All other sources pass their events through unchanged.
package filter

import (
	"strings"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// AwayCompetitions are the competitions whose rounds are hosted away from
// the main ground for flagged sources. Fixed lookup data.
var AwayCompetitions = []string{"Champions League", "League Cup"}

// Apply returns the events that belong at the source's venue. Events whose
// titles were never competition-tagged always pass; that is a known
// limitation of the upstream tagging heuristic, not of the filter.
func Apply(src feed.Source, events []*event.Event) []*event.Event {
	if !src.FilterAwayCompetitions {
		return events
	}

	kept := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if taggedAway(evt.Title) {
			continue
		}
		kept = append(kept, evt)
	}
	return kept
}

func taggedAway(title string) bool {
	for _, comp := range AwayCompetitions {
		if strings.Contains(title, comp) {
			return true
		}
	}
	return false
}
