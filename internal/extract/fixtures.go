package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gorillacarts/stadium-calendars/internal/event"
	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// fixtureDateRE matches fixture kick-off lines like "11 Jan 2026 12:00 +00:00".
var fixtureDateRE = regexp.MustCompile(`^\d{1,2}\s+[A-Za-z]{3}\s+\d{4}\s+\d{1,2}:\d{2}\s+[+-]\d{2}:\d{2}$`)

// fixtureDuration is assumed for every fixture; the pages publish no end time.
const fixtureDuration = 2*time.Hour + 30*time.Minute

// competitions are the competition names we recognise near a fixture line.
// A missed or mis-tagged competition silently defeats the away-venue filter
// downstream; that is an accepted limitation of the heuristic.
var competitions = []string{"Champions League", "League Cup", "FA Cup"}

// Fixtures extracts fixtures from fixtur.es team pages. The pages render as
// a repeating text block, so the most robust approach is a single forward
// scan over the rendered lines: a kick-off line anchors a fixture, the next
// line containing " - " names the two teams, and nearby lines or image alt
// text hint at the competition.
type Fixtures struct{}

// Extract scans the page text once, forward only. An anchor with no
// following game line is discarded. The cursor always moves past consumed
// lines, so the scan is O(n) over the line count and cannot loop.
func (Fixtures) Extract(pageHTML string, src feed.Source) []*event.Event {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil
	}

	lines := textLines(doc)
	alts := imageAlts(doc)

	events := make([]*event.Event, 0)
	i := 0
	for i < len(lines) {
		if !fixtureDateRE.MatchString(lines[i]) {
			i++
			continue
		}

		// Nearest following line with " - " is the game.
		game := ""
		j := i + 1
		for j < len(lines) {
			if strings.Contains(lines[j], " - ") {
				game = lines[j]
				break
			}
			j++
		}
		if game == "" {
			// No game line before end of page; resume after the last
			// line inspected.
			i = j
			continue
		}

		if start := event.ParseDate(lines[i]); !start.IsZero() {
			title := game
			if comp := competitionNear(lines, i, alts); comp != "" {
				title = fmt.Sprintf("%s (%s)", game, comp)
			}
			events = append(events, &event.Event{
				Title:    title,
				Start:    start,
				End:      start.Add(fixtureDuration),
				Location: src.Location,
				URL:      src.URL,
			})
		}
		i = j + 1
	}
	return events
}

// competitionNear looks for a known competition in a window of two lines
// either side of the anchor, then falls back to an exact match against the
// page's image alt texts.
func competitionNear(lines []string, anchor int, alts []string) string {
	lo := anchor - 2
	if lo < 0 {
		lo = 0
	}
	hi := anchor + 3
	if hi > len(lines) {
		hi = len(lines)
	}
	window := strings.ToLower(strings.Join(lines[lo:hi], " "))
	for _, comp := range competitions {
		if strings.Contains(window, strings.ToLower(comp)) {
			return comp
		}
	}

	for _, alt := range alts {
		for _, comp := range competitions {
			if strings.EqualFold(alt, comp) {
				return alt
			}
		}
	}
	return ""
}

// textLines flattens the document into its ordered non-empty text lines,
// skipping script and style contents.
func textLines(doc *goquery.Document) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			for _, ln := range strings.Split(n.Data, "\n") {
				if s := strings.TrimSpace(ln); s != "" {
					out = append(out, s)
				}
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return out
}

// imageAlts collects non-empty img alt texts in document order. Competition
// badges on fixtur.es carry their name as alt text.
func imageAlts(doc *goquery.Document) []string {
	var alts []string
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt := strings.TrimSpace(s.AttrOr("alt", "")); alt != "" {
			alts = append(alts, alt)
		}
	})
	return alts
}
