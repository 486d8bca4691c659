package feed

// Kind classifies what a source publishes. It drives title prefixing:
// men's fixtures get "(M)", women's "(F)", venue event listings are
// labelled "(C)" or "(O)" by a content heuristic.
type Kind string

const (
	KindMens   Kind = "mens"
	KindWomens Kind = "womens"
	KindVenue  Kind = "venue"
)

// Source describes one page to scrape. Many sources can share a VenueTag;
// their events end up in the same calendar.
type Source struct {
	Name     string
	URL      string
	Location string
	VenueTag string
	Kind     Kind

	// FilterAwayCompetitions drops fixtures tagged with a competition
	// whose rounds are hosted away from the venue this source models.
	FilterAwayCompetitions bool
}

// Venue is one destination calendar.
type Venue struct {
	Tag          string
	CalendarName string
	OutputFile   string
}

// Config is the full immutable configuration for a calendar build.
// Construct it once and pass it into the pipeline.
type Config struct {
	Venues  []Venue
	Sources []Source
}

// Venue looks up a venue by tag.
func (c Config) Venue(tag string) (Venue, bool) {
	for _, v := range c.Venues {
		if v.Tag == tag {
			return v, true
		}
	}
	return Venue{}, false
}

// DefaultConfig returns the built-in venue and source list.
func DefaultConfig() Config {
	return Config{
		Venues: []Venue{
			{
				Tag:          "wembley",
				CalendarName: "Wembley Stadium – All Events (Gorilla)",
				OutputFile:   "wembley.ics",
			},
			{
				Tag:          "emirates",
				CalendarName: "Emirates Stadium – All Events (Gorilla)",
				OutputFile:   "emirates.ics",
			},
			{
				Tag:          "london-stadium",
				CalendarName: "London Stadium – All Events (Gorilla)",
				OutputFile:   "london-stadium.ics",
			},
		},
		Sources: []Source{
			{
				Name:     "Wembley Stadium Events",
				URL:      "https://www.wembleystadium.com/experiences/events",
				Location: "Wembley Stadium, London",
				VenueTag: "wembley",
				Kind:     KindVenue,
			},
			{
				Name:     "Arsenal Men (Home) – Emirates",
				URL:      "https://fixtur.es/en/team/arsenal/home",
				Location: "Emirates Stadium, London",
				VenueTag: "emirates",
				Kind:     KindMens,
			},
			{
				Name:                   "Arsenal Women (Home) – Emirates",
				URL:                    "https://fixtur.es/en/team/arsenal-women/home",
				Location:               "Emirates Stadium, London",
				VenueTag:               "emirates",
				Kind:                   KindWomens,
				FilterAwayCompetitions: true,
			},
			{
				Name:     "Emirates Stadium Events",
				URL:      "https://www.arsenal.com/emirates-stadium/events",
				Location: "Emirates Stadium, London",
				VenueTag: "emirates",
				Kind:     KindVenue,
			},
			{
				Name:     "West Ham Men (Home) – London Stadium",
				URL:      "https://fixtur.es/en/team/west-ham-united/home",
				Location: "London Stadium, London",
				VenueTag: "london-stadium",
				Kind:     KindMens,
			},
			{
				Name:                   "West Ham Women (Home) – London Stadium",
				URL:                    "https://fixtur.es/en/team/west-ham-united-women/home",
				Location:               "London Stadium, London",
				VenueTag:               "london-stadium",
				Kind:                   KindWomens,
				FilterAwayCompetitions: true,
			},
			{
				Name:     "London Stadium Events",
				URL:      "https://www.london-stadium.com/events/index.html",
				Location: "London Stadium, London",
				VenueTag: "london-stadium",
				Kind:     KindVenue,
			},
		},
	}
}
