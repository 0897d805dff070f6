package calendar

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

func TestGenerateICSEmptyMatchList(t *testing.T) {
	ics := string(GenerateICS(kc, nil))

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR") {
		t.Error("calendar must start with BEGIN:VCALENDAR")
	}
	if !strings.Contains(ics, "END:VCALENDAR") {
		t.Error("calendar must contain END:VCALENDAR")
	}
	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("empty match list must produce zero VEVENT blocks")
	}
	if !Validate([]byte(ics)) {
		t.Error("empty calendar must still validate")
	}
}

func TestGenerateICSEvents(t *testing.T) {
	matches := []match.Match{
		{
			Timestamp:  1738360800, // 2025-01-31 22:00 UTC
			Opponent:   "Fnatic",
			Tournament: "LEC 2025 Spring",
			URL:        "https://liquipedia.net/leagueoflegends/LEC/2025/Spring",
			Team:       kc,
			IsUpcoming: true,
		},
		{
			Timestamp:  1736964000,
			Opponent:   "G2 Esports",
			Tournament: "LEC 2025 Winter",
			Team:       kc,
			IsUpcoming: false,
			Score:      "2:1",
		},
	}

	ics := string(GenerateICS(kc, matches))

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 VEVENT blocks, got %d", got)
	}
	if !strings.Contains(ics, "UID:karmine_corp-1738360800-fnatic@liquipedia.net") {
		t.Error("missing stable UID for upcoming match")
	}
	if !strings.Contains(ics, "DTSTART:20250131T220000Z") {
		t.Error("missing UTC DTSTART for upcoming match")
	}
	if !strings.Contains(ics, "DTEND:20250201T000000Z") {
		t.Error("missing two-hour DTEND for upcoming match")
	}
	if !strings.Contains(ics, "X-WR-CALNAME:Karmine Corp Matches") {
		t.Error("missing calendar name header")
	}

	// Only the upcoming match carries a reminder.
	if got := strings.Count(ics, "BEGIN:VALARM"); got != 1 {
		t.Errorf("expected 1 VALARM, got %d", got)
	}
	// Past matches are marked transparent so they don't block time.
	if got := strings.Count(ics, "TRANSP:TRANSPARENT"); got != 1 {
		t.Errorf("expected 1 TRANSP:TRANSPARENT, got %d", got)
	}
}

func TestGenerateICSEscaping(t *testing.T) {
	matches := []match.Match{{
		Timestamp:  1738360800,
		Opponent:   "Fnatic",
		Tournament: "Worlds; Play-In, Group A",
		Team:       kc,
		IsUpcoming: true,
	}}

	ics := string(GenerateICS(kc, matches))
	if !strings.Contains(ics, `Worlds\; Play-In\, Group A`) {
		t.Error("special characters in tournament name not escaped")
	}
}

func TestValidate(t *testing.T) {
	if Validate([]byte("hello world")) {
		t.Error("junk must not validate")
	}
	if Validate([]byte("END:VCALENDAR\nBEGIN:VCALENDAR")) {
		t.Error("calendar not starting with BEGIN:VCALENDAR must not validate")
	}
}
