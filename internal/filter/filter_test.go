package filter

import (
	"testing"
	"time"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

func fixtureEvent(title string) *event.Event {
	return &event.Event{
		Title: title,
		Start: time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC),
	}
}

func TestApply_FlaggedSource(t *testing.T) {
	src := feed.Source{
		Name:                   "Arsenal Women (Home) – Emirates",
		VenueTag:               "emirates",
		Kind:                   feed.KindWomens,
		FilterAwayCompetitions: true,
	}

	events := []*event.Event{
		fixtureEvent("(F) Arsenal - Bayern Munich (Champions League)"),
		fixtureEvent("(F) Arsenal - Chelsea (League Cup)"),
		fixtureEvent("(F) Arsenal - Chelsea"),
		fixtureEvent("(F) Arsenal - Spurs (FA Cup)"),
	}

	kept := Apply(src, events)
	if len(kept) != 2 {
		t.Fatalf("expected 2 events kept, got %d", len(kept))
	}
	if kept[0].Title != "(F) Arsenal - Chelsea" {
		t.Errorf("untagged event should be retained, got %q", kept[0].Title)
	}
	if kept[1].Title != "(F) Arsenal - Spurs (FA Cup)" {
		t.Errorf("FA Cup is not an away competition, got %q", kept[1].Title)
	}
}

func TestApply_UnflaggedSourcePassesEverything(t *testing.T) {
	src := feed.Source{
		Name:     "Arsenal Men (Home) – Emirates",
		VenueTag: "emirates",
		Kind:     feed.KindMens,
	}

	events := []*event.Event{
		fixtureEvent("(M) Arsenal - Bayern Munich (Champions League)"),
		fixtureEvent("(M) Arsenal - Chelsea"),
	}

	kept := Apply(src, events)
	if len(kept) != 2 {
		t.Fatalf("unflagged source should pass all events, got %d of 2", len(kept))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	src := feed.Source{FilterAwayCompetitions: true}
	if kept := Apply(src, nil); len(kept) != 0 {
		t.Errorf("expected empty result, got %d", len(kept))
	}
}
