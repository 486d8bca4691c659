// Package pipeline runs one end-to-end calendar build: fetch every
// configured source, extract and classify its events, filter away-venue
// fixtures, assemble venue buckets and write one iCalendar document per
// venue.
//
// Sources are processed strictly one at a time. A fetch or parse failure
// for one source degrades to zero events for that source and never aborts
// the others; the only fatal condition is a failed write to the output
// sink.
package pipeline

import (
	"fmt"
	"time"

	"github.com/gorillacarts/stadium-calendars/internal/calendar"
	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/extract"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
	"github.com/gorillacarts/stadium-calendars/internal/fetch"
	"github.com/gorillacarts/stadium-calendars/internal/filter"
	"github.com/gorillacarts/stadium-calendars/internal/logger"
	"github.com/gorillacarts/stadium-calendars/internal/storage"
)

// PageFetcher retrieves raw page text for a URL, returning the empty
// string on failure.
type PageFetcher interface {
	Page(url string) string
}

// Sink receives one rendered calendar document per venue.
type Sink interface {
	WriteCalendar(filename, ics string) error
}

// Builder runs calendar builds for one configuration.
type Builder struct {
	cfg     feed.Config
	fetcher PageFetcher
	sink    Sink
	now     func() time.Time
}

// New creates a Builder with the default HTTP fetcher.
func New(cfg feed.Config, sink *storage.Storage) *Builder {
	return &Builder{
		cfg:     cfg,
		fetcher: fetch.New(),
		sink:    sink,
		now:     time.Now,
	}
}

// NewWithFetcher creates a Builder with a custom fetcher and clock.
// Passing a nil clock keeps time.Now.
func NewWithFetcher(cfg feed.Config, fetcher PageFetcher, sink Sink, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		cfg:     cfg,
		fetcher: fetcher,
		sink:    sink,
		now:     now,
	}
}

// Run executes one build. It returns an error only when a calendar cannot
// be written; every per-source failure is logged and degrades to zero
// events for that source.
func (b *Builder) Run() error {
	extracted := make([]calendar.SourceEvents, 0, len(b.cfg.Sources))
	for _, src := range b.cfg.Sources {
		extracted = append(extracted, calendar.SourceEvents{
			Source: src,
			Events: b.processSource(src),
		})
	}

	buckets := calendar.Assemble(b.cfg, extracted)

	generatedAt := b.now().UTC()
	for _, v := range b.cfg.Venues {
		ics := calendar.BuildICS(v.CalendarName, buckets[v.Tag], generatedAt)
		if err := b.sink.WriteCalendar(v.OutputFile, ics); err != nil {
			return fmt.Errorf("venue %s: %w", v.Tag, err)
		}
		logger.Info("calendar written", logger.Fields{
			"venue":  v.Tag,
			"file":   v.OutputFile,
			"events": len(buckets[v.Tag]),
		})
	}
	return nil
}

func (b *Builder) processSource(src feed.Source) []*event.Event {
	started := time.Now()
	page := b.fetcher.Page(src.URL)
	logger.RecordTiming("fetch."+src.VenueTag, time.Since(started))

	events := []*event.Event{}
	if page != "" {
		events = extract.ForSource(src).Extract(page, src)
	}

	for _, evt := range events {
		evt.Title = event.Classify(src.Kind, evt.Title)
	}
	events = filter.Apply(src, events)

	logger.IncrCounter("sources.processed")
	logger.AddCounter("events.extracted", int64(len(events)))
	logger.Debug("source processed", logger.Fields{
		"source": src.Name,
		"events": len(events),
	})
	return events
}
