package feed

import "testing"

func TestDefaultConfig_SourcesReferenceConfiguredVenues(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Venues) != 3 {
		t.Fatalf("expected 3 venues, got %d", len(cfg.Venues))
	}
	if len(cfg.Sources) != 7 {
		t.Fatalf("expected 7 sources, got %d", len(cfg.Sources))
	}

	for _, src := range cfg.Sources {
		if _, ok := cfg.Venue(src.VenueTag); !ok {
			t.Errorf("source %q references unknown venue %q", src.Name, src.VenueTag)
		}
		if src.URL == "" || src.Location == "" {
			t.Errorf("source %q is missing URL or location", src.Name)
		}
	}
}

func TestDefaultConfig_VenueOutputFilesAreUnique(t *testing.T) {
	cfg := DefaultConfig()
	seen := make(map[string]string)
	for _, v := range cfg.Venues {
		if prev, dup := seen[v.OutputFile]; dup {
			t.Errorf("venues %q and %q share output file %q", prev, v.Tag, v.OutputFile)
		}
		seen[v.OutputFile] = v.Tag
	}
}

func TestDefaultConfig_OnlyWomensSourcesAreFiltered(t *testing.T) {
	for _, src := range DefaultConfig().Sources {
		if src.FilterAwayCompetitions && src.Kind != KindWomens {
			t.Errorf("source %q is flagged for away filtering but is not a women's feed", src.Name)
		}
	}
}

func TestVenue_UnknownTag(t *testing.T) {
	if _, ok := DefaultConfig().Venue("old-trafford"); ok {
		t.Error("unknown tag should not resolve")
	}
}
