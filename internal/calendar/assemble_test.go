package calendar

import (
	"testing"
	"time"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

var testConfig = feed.Config{
	Venues: []feed.Venue{
		{Tag: "wembley", CalendarName: "Wembley", OutputFile: "wembley.ics"},
		{Tag: "emirates", CalendarName: "Emirates", OutputFile: "emirates.ics"},
	},
	Sources: []feed.Source{
		{Name: "Wembley Events", VenueTag: "wembley", Location: "Wembley Stadium, London"},
		{Name: "Arsenal Men", VenueTag: "emirates", Location: "Emirates Stadium, London"},
	},
}

func at(hour int) time.Time {
	return time.Date(2026, 5, 1, hour, 0, 0, 0, time.UTC)
}

func TestAssemble_GroupsByVenueTag(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{{Title: "(C) Gig", Start: at(20), Location: "Wembley Stadium, London"}},
		},
		{
			Source: testConfig.Sources[1],
			Events: []*event.Event{{Title: "(M) Arsenal - Chelsea", Start: at(12), Location: "Emirates Stadium, London"}},
		},
	}

	buckets := Assemble(testConfig, extracted)
	if len(buckets["wembley"]) != 1 || len(buckets["emirates"]) != 1 {
		t.Fatalf("unexpected bucket sizes: wembley=%d emirates=%d",
			len(buckets["wembley"]), len(buckets["emirates"]))
	}
}

func TestAssemble_BackfillsLocation(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{
				{Title: "(O) No Location", Start: at(18)},
				{Title: "(O) Has Location", Start: at(19), Location: "OVO Arena Wembley"},
			},
		},
	}

	buckets := Assemble(testConfig, extracted)
	evs := buckets["wembley"]
	if evs[0].Location != "Wembley Stadium, London" {
		t.Errorf("missing location should be backfilled, got %q", evs[0].Location)
	}
	if evs[1].Location != "OVO Arena Wembley" {
		t.Errorf("existing location should be kept, got %q", evs[1].Location)
	}
}

func TestAssemble_SortsByStart(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{
				{Title: "(O) Later", Start: at(21)},
				{Title: "(O) Earlier", Start: at(9)},
				{Title: "(O) Middle", Start: at(15)},
			},
		},
	}

	buckets := Assemble(testConfig, extracted)
	got := make([]string, 0, 3)
	for _, evt := range buckets["wembley"] {
		got = append(got, evt.Title)
	}
	want := []string{"(O) Earlier", "(O) Middle", "(O) Later"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestAssemble_TieBreakIsInsertionStable(t *testing.T) {
	same := at(12)
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{
				{Title: "(O) First In", Start: same},
				{Title: "(O) Second In", Start: same},
			},
		},
	}

	buckets := Assemble(testConfig, extracted)
	evs := buckets["wembley"]
	if evs[0].Title != "(O) First In" || evs[1].Title != "(O) Second In" {
		t.Errorf("equal starts should keep insertion order, got %q then %q", evs[0].Title, evs[1].Title)
	}
}

func TestAssemble_PlaceholderRemovedOnceRealEventsExist(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{
				{Title: "(O) Calendar generated (no events parsed yet)", Start: at(0)},
				{Title: "(C) Real Gig", Start: at(20)},
			},
		},
	}

	buckets := Assemble(testConfig, extracted)
	evs := buckets["wembley"]
	if len(evs) != 1 || evs[0].Title != "(C) Real Gig" {
		t.Fatalf("placeholder should be stripped, got %+v", titles(evs))
	}
}

func TestAssemble_PlaceholderKeptWhenBucketHasNoRealEvents(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: testConfig.Sources[0],
			Events: []*event.Event{
				{Title: "(O) Calendar generated (no events parsed yet)", Start: at(0)},
			},
		},
	}

	buckets := Assemble(testConfig, extracted)
	if len(buckets["wembley"]) != 1 {
		t.Fatalf("sentinel-only bucket should keep its sentinel, got %d events", len(buckets["wembley"]))
	}
}

func TestAssemble_EmptyVenueStillHasBucket(t *testing.T) {
	buckets := Assemble(testConfig, nil)
	for _, v := range testConfig.Venues {
		evs, ok := buckets[v.Tag]
		if !ok {
			t.Errorf("venue %s missing from buckets", v.Tag)
		}
		if len(evs) != 0 {
			t.Errorf("venue %s should be empty, got %d events", v.Tag, len(evs))
		}
	}
}

func TestAssemble_UnknownVenueTagDropped(t *testing.T) {
	extracted := []SourceEvents{
		{
			Source: feed.Source{Name: "Stray", VenueTag: "unknown"},
			Events: []*event.Event{{Title: "(O) Stray", Start: at(12)}},
		},
	}

	buckets := Assemble(testConfig, extracted)
	if _, ok := buckets["unknown"]; ok {
		t.Error("unconfigured venue tag should not create a bucket")
	}
}

func titles(evs []*event.Event) []string {
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Title)
	}
	return out
}
