package event

import (
	"strings"

	"github.com/gorillacarts/stadium-calendars/internal/feed"
)

// Keyword tables for the concert/other heuristic. Best-effort by intent;
// fixed lookup data, not tunable logic.
var (
	concertKeywords = []string{"tour", "live", "concert", "festival", "gig"}
	sportKeywords   = []string{"match", "vs", " v ", "fixture", "cup", "league", "nfl", "boxing", "rugby"}
)

// Classify rewrites a title with its category prefix:
//
//	(M) men's fixtures
//	(F) women's fixtures
//	(C) concerts (heuristic)
//	(O) everything else
//
// Venue listings are labelled (C) only when the lowercased title contains a
// concert keyword and no sport keyword.
func Classify(kind feed.Kind, title string) string {
	switch kind {
	case feed.KindMens:
		return "(M) " + title
	case feed.KindWomens:
		return "(F) " + title
	}

	t := strings.ToLower(title)
	if containsAny(t, concertKeywords) && !containsAny(t, sportKeywords) {
		return "(C) " + title
	}
	return "(O) " + title
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
