package cli

import (
	"testing"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/storage"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

var kc = team.Config{
	Name:      "Karmine Corp",
	Slug:      "Karmine_Corp",
	ShortName: "KC",
	Emoji:     "🇪🇺",
	Game:      "leagueoflegends",
}

func TestCachedMatches(t *testing.T) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	doc := `{
  "team": {"name": "Karmine Corp", "slug": "Karmine_Corp", "short_name": "KC", "emoji": "🇪🇺", "game": "leagueoflegends"},
  "matches": [
    {"timestamp": 1738360800, "opponent": "Fnatic", "tournament": "LEC 2025 Spring", "url": "", "is_upcoming": true},
    {"timestamp": 1736964000, "opponent": "G2 Esports", "tournament": "LEC 2025 Winter", "url": "", "is_upcoming": false}
  ],
  "generated_utc": "2025-02-01T00:00:00Z"
}`
	if err := store.SaveData(kc.Slug, []byte(doc)); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	matches, ok := cachedMatches(store, kc)
	if !ok {
		t.Fatal("expected cached matches to load")
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Opponent != "Fnatic" || !matches[0].IsUpcoming {
		t.Errorf("unexpected first match: %+v", matches[0])
	}
	if matches[1].Opponent != "G2 Esports" || matches[1].IsUpcoming {
		t.Errorf("unexpected second match: %+v", matches[1])
	}
	// The back-reference is restored from the registry entry, not the cache.
	if matches[0].Team.Slug != kc.Slug {
		t.Errorf("match not bound to its team: %+v", matches[0].Team)
	}
}

func TestCachedMatchesMissingCache(t *testing.T) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	if _, ok := cachedMatches(store, kc); ok {
		t.Error("expected no cached matches for an empty cache")
	}
}

func TestCachedMatchesCorruptCache(t *testing.T) {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := store.SaveData(kc.Slug, []byte("not json{")); err != nil {
		t.Fatal(err)
	}

	if _, ok := cachedMatches(store, kc); ok {
		t.Error("corrupt cached data must not hydrate the index section")
	}
}
