package feed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

var kc = team.Config{
	Name:      "Karmine Corp",
	Slug:      "Karmine_Corp",
	ShortName: "KC",
	Emoji:     "🇪🇺",
	Game:      "leagueoflegends",
}

func sampleMatches() []match.Match {
	return []match.Match{
		{
			Timestamp:  1736964000,
			Opponent:   "G2 Esports",
			Tournament: "LEC 2025 Winter",
			Team:       kc,
			Score:      "2:1",
		},
		{
			Timestamp:  1738360800,
			Opponent:   "Fnatic",
			Tournament: "LEC 2025 Spring",
			URL:        "https://liquipedia.net/leagueoflegends/LEC/2025/Spring",
			Team:       kc,
			IsUpcoming: true,
		},
	}
}

func TestGenerateAtomEmpty(t *testing.T) {
	atom := GenerateAtom(kc, nil, "https://example.org/feeds")

	if !strings.Contains(atom, `<feed xmlns="http://www.w3.org/2005/Atom">`) {
		t.Error("missing Atom feed element")
	}
	if strings.Contains(atom, "<entry>") {
		t.Error("empty match list must produce zero entries")
	}
	if !strings.Contains(atom, "<title>Karmine Corp Match Schedule</title>") {
		t.Error("missing feed title")
	}
}

func TestGenerateAtomOrdering(t *testing.T) {
	atom := GenerateAtom(kc, sampleMatches(), "https://example.org/feeds")

	fnatic := strings.Index(atom, "vs Fnatic")
	g2 := strings.Index(atom, "vs G2 Esports")
	if fnatic < 0 || g2 < 0 {
		t.Fatalf("expected both entries, got:\n%s", atom)
	}
	// Newest match first.
	if fnatic > g2 {
		t.Error("entries not sorted newest first")
	}
	if !strings.Contains(atom, "urn:esports-calendar:karmine_corp-1738360800-fnatic") {
		t.Error("missing stable entry id")
	}
	if !strings.Contains(atom, "https://example.org/feeds/karmine_corp.xml") {
		t.Error("missing self link derived from base URL")
	}
}

func TestGenerateAtomEscapesMarkup(t *testing.T) {
	matches := []match.Match{{
		Timestamp:  1738360800,
		Opponent:   "A&B <Gaming>",
		Tournament: "Cup",
		Team:       kc,
		IsUpcoming: true,
	}}

	atom := GenerateAtom(kc, matches, "")
	if strings.Contains(atom, "<Gaming>") {
		t.Error("opponent name not escaped")
	}
	if !strings.Contains(atom, "A&amp;B &lt;Gaming&gt;") {
		t.Error("expected escaped opponent name")
	}
}

func TestGenerateJSONFeed(t *testing.T) {
	f := GenerateJSONFeed(kc, sampleMatches(), "https://example.org/feeds")

	if f.Version != "https://jsonfeed.org/version/1.1" {
		t.Errorf("unexpected version %q", f.Version)
	}
	if len(f.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(f.Items))
	}
	if f.Items[0].ID != "karmine_corp-1738360800-fnatic" {
		t.Errorf("first item = %q, want the newest match", f.Items[0].ID)
	}
	if f.Items[0].Tags[0] != "upcoming" {
		t.Errorf("unexpected tags on upcoming item: %v", f.Items[0].Tags)
	}
	if f.Items[1].Tags[0] != "completed" {
		t.Errorf("unexpected tags on completed item: %v", f.Items[1].Tags)
	}
	// Completed match has no URL of its own, so the team page fills in.
	if f.Items[1].URL != kc.PageURL() {
		t.Errorf("item URL = %q, want team page fallback", f.Items[1].URL)
	}
	if f.FeedURL != "https://example.org/feeds/karmine_corp.json" {
		t.Errorf("unexpected feed URL %q", f.FeedURL)
	}
}

func TestGenerateJSONFeedNoBaseURL(t *testing.T) {
	f := GenerateJSONFeed(kc, nil, "")
	if f.HomePageURL != kc.PageURL() {
		t.Errorf("home page = %q, want team page", f.HomePageURL)
	}
	if f.FeedURL != "" {
		t.Errorf("feed URL = %q, want empty without a base URL", f.FeedURL)
	}
	if f.Items == nil || len(f.Items) != 0 {
		t.Errorf("items = %v, want empty non-nil slice", f.Items)
	}
}

func TestMarshalJSONFeedRoundTrip(t *testing.T) {
	data, err := MarshalJSONFeed(GenerateJSONFeed(kc, sampleMatches(), ""))
	if err != nil {
		t.Fatalf("MarshalJSONFeed failed: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("output missing trailing newline")
	}

	var decoded JSONFeed
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Items) != 2 {
		t.Errorf("expected 2 items after round trip, got %d", len(decoded.Items))
	}
}
