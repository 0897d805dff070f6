package web

import (
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

func TestRenderIndex(t *testing.T) {
	sections := []TeamSection{{
		Team: kc,
		Upcoming: []match.Match{{
			Timestamp:  1738360800,
			Opponent:   "Fnatic",
			Tournament: "LEC 2025 Spring",
			URL:        "https://liquipedia.net/leagueoflegends/LEC/2025/Spring",
			IsUpcoming: true,
		}},
		Past: []match.Match{{
			Timestamp:  1736964000,
			Opponent:   "G2 Esports",
			Tournament: "LEC 2025 Winter",
			Score:      "2:1",
		}},
	}}

	html, err := RenderIndex(NewPage(sections, "https://example.org/calendars"))
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}

	for _, want := range []string{
		"Karmine Corp",
		"vs Fnatic",
		"2025-01-31 22:00 UTC",
		"vs G2 Esports",
		"2:1",
		`href="karmine_corp.ics"`,
		`href="karmine_corp.xml"`,
		`href="karmine_corp.json"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "cached data") {
		t.Error("cached badge shown for a live section")
	}
}

func TestRenderIndexSubscribeLinks(t *testing.T) {
	page := NewPage([]TeamSection{{Team: kc}}, "https://example.org/calendars")

	html, err := RenderIndex(page)
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}

	if !strings.Contains(html, `href="webcal://example.org/calendars/karmine_corp.ics"`) {
		t.Error("missing webcal subscribe link")
	}
	if !strings.Contains(html,
		`href="https://calendar.google.com/calendar/r?cid=https%3A%2F%2Fexample.org%2Fcalendars%2Fkarmine_corp.ics"`) {
		t.Error("missing Google Calendar subscribe link")
	}
}

func TestRenderIndexNoBaseURL(t *testing.T) {
	html, err := RenderIndex(NewPage([]TeamSection{{Team: kc}}, ""))
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}

	// Absolute-URL subscribe links need a base URL; relative ones stay.
	if strings.Contains(html, "webcal:") || strings.Contains(html, "calendar.google.com") {
		t.Error("absolute subscribe links rendered without a base URL")
	}
	if !strings.Contains(html, `href="karmine_corp.ics"`) {
		t.Error("relative calendar link missing")
	}
}

func TestRenderIndexCachedBadge(t *testing.T) {
	html, err := RenderIndex(NewPage([]TeamSection{{Team: kc, Cached: true}}, ""))
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}
	if !strings.Contains(html, "cached data") {
		t.Error("expected cached badge for a section served from cache")
	}
}

func TestRenderIndexEmpty(t *testing.T) {
	html, err := RenderIndex(NewPage(nil, ""))
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}
	if !strings.Contains(html, "Esports Match Calendar") {
		t.Error("missing page title")
	}
	if strings.Contains(html, "team-section\">") && strings.Contains(html, "class=\"name\"") {
		t.Error("empty page must not render team sections")
	}
}

func TestRenderIndexEscapesTeamName(t *testing.T) {
	evil := kc
	evil.Name = `<script>alert(1)</script>`

	html, err := RenderIndex(NewPage([]TeamSection{{Team: evil}}, ""))
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("team name not HTML-escaped")
	}
}
