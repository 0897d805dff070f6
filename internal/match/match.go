// Package match defines the normalized match record emitted by the
// scraper and consumed by the calendar, feed, and HTML generators.
package match

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// Match is one scheduled or completed contest for a tracked team.
// Timestamp is always UTC epoch seconds. Score is empty for upcoming
// matches and for past matches whose score cell could not be trusted.
type Match struct {
	Timestamp  int64       `json:"timestamp"`
	Opponent   string      `json:"opponent"`
	Tournament string      `json:"tournament"`
	URL        string      `json:"url"`
	Team       team.Config `json:"-"`
	IsUpcoming bool        `json:"is_upcoming"`
	Score      string      `json:"score,omitempty"`
}

var scorePattern = regexp.MustCompile(`^\d+\s*[:|\-]\s*\d+$`)

// ValidScore reports whether text looks like a real score ("2:1", "3 - 0").
// Anything else (walkover markers, "W", empty cells) is rejected.
func ValidScore(text string) bool {
	return scorePattern.MatchString(text)
}

// ID returns a stable identifier for the match, used as calendar UID and
// feed entry ID.
func (m Match) ID() string {
	opp := strings.ToLower(m.Opponent)
	opp = strings.ReplaceAll(opp, " ", "-")
	opp = strings.ReplaceAll(opp, "_", "-")
	return m.Team.FileSlug() + "-" + strconv.FormatInt(m.Timestamp, 10) + "-" + opp
}

// Split partitions matches into upcoming and past, preserving order.
func Split(matches []Match) (upcoming, past []Match) {
	for _, m := range matches {
		if m.IsUpcoming {
			upcoming = append(upcoming, m)
		} else {
			past = append(past, m)
		}
	}
	return upcoming, past
}

// SortedNewestFirst returns a copy sorted by descending timestamp.
func SortedNewestFirst(matches []Match) []Match {
	out := make([]Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
