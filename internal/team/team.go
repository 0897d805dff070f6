package team

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BaseWikiURL is the root of the wiki all team and tournament pages live under.
const BaseWikiURL = "https://liquipedia.net"

// Config identifies a tracked team and carries its display metadata.
type Config struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ShortName string `json:"short_name"`
	Emoji     string `json:"emoji"`
	Game      string `json:"game"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// PageURL returns the team's wiki page URL.
func (c Config) PageURL() string {
	return fmt.Sprintf("%s/%s/%s", BaseWikiURL, c.Game, c.Slug)
}

// FileSlug returns the lower-cased slug used for output and cache file names.
func (c Config) FileSlug() string {
	return strings.ToLower(c.Slug)
}

// League describes one league page to discover teams from.
type League struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	URL    string `json:"url"`
	Game   string `json:"game"`
}

// Slug returns the league's wiki page slug (last path segment of its URL).
func (l League) Slug() string {
	trimmed := strings.TrimRight(l.URL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}

// ShortName resolves a display name to an abbreviation. Known names come
// from the overrides table; otherwise initials of up to the first three
// words, or the first three characters uppercased as a last resort.
func ShortName(name string, overrides map[string]string) string {
	if short, ok := overrides[name]; ok {
		return short
	}
	words := strings.Fields(name)
	if len(words) >= 2 {
		if len(words) > 3 {
			words = words[:3]
		}
		var b strings.Builder
		for _, w := range words {
			r, _ := utf8.DecodeRuneInString(w)
			b.WriteString(strings.ToUpper(string(r)))
		}
		return b.String()
	}
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}
