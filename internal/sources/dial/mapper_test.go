package dial

import (
	"testing"
)

func TestMapperMapSeeds(t *testing.T) {
	config := Config{
		{
			Name: "Work",
			Entries: []Entry{
				{Title: "CI", URL: "https://ci.example.com"},
				{Title: "Wiki", URL: "https://wiki.example.com"},
			},
		},
		{
			Name: "Home",
			Entries: []Entry{
				{URL: "https://news.example.com"},
			},
		},
	}

	seeds, err := NewMapper().MapSeeds(config)
	if err != nil {
		t.Fatalf("MapSeeds() error = %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("MapSeeds() returned %d categories, want 2", len(seeds))
	}
	if len(seeds["Work"]) != 2 {
		t.Errorf("Work seeds = %d, want 2", len(seeds["Work"]))
	}
	if seeds["Home"][0].URL != "https://news.example.com" {
		t.Errorf("Home seed URL = %q, want https://news.example.com", seeds["Home"][0].URL)
	}
}

func TestMapperSkipsInvalidEntries(t *testing.T) {
	config := Config{
		{
			Name: "Work",
			Entries: []Entry{
				{Title: "No URL"},
				{Title: "Kept", URL: "https://kept.example.com"},
			},
		},
		{
			// Nameless category is dropped entirely.
			Entries: []Entry{
				{URL: "https://lost.example.com"},
			},
		},
	}

	seeds, err := NewMapper().MapSeeds(config)
	if err != nil {
		t.Fatalf("MapSeeds() error = %v", err)
	}
	if len(seeds) != 1 {
		t.Fatalf("MapSeeds() returned %d categories, want 1", len(seeds))
	}
	if len(seeds["Work"]) != 1 || seeds["Work"][0].URL != "https://kept.example.com" {
		t.Errorf("Work seeds = %+v, want only the entry with a URL", seeds["Work"])
	}
}

func TestMapperEmptyConfig(t *testing.T) {
	seeds, err := NewMapper().MapSeeds(Config{})
	if err == nil {
		t.Error("MapSeeds() with empty config should return error")
	}
	if seeds != nil {
		t.Errorf("MapSeeds() with empty config should return nil seeds, got %v", seeds)
	}
}
