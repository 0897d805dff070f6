// Package feed generates Atom and JSON Feed documents for a team's
// matches, newest first.
package feed

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// GenerateAtom builds an Atom feed for a team's matches. An empty match
// list yields a valid feed with zero entries.
func GenerateAtom(t team.Config, matches []match.Match, baseURL string) string {
	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var entries strings.Builder
	for _, m := range match.SortedNewestFirst(matches) {
		date := time.Unix(m.Timestamp, 0).UTC().Format("2006-01-02T15:04:05Z")
		status := "Completed"
		if m.IsUpcoming {
			status = "Upcoming"
		}
		title := xmlEscape(fmt.Sprintf("%s %s vs %s", t.Emoji, t.ShortName, m.Opponent))

		entries.WriteString("  <entry>\n")
		entries.WriteString(fmt.Sprintf("    <id>urn:esports-calendar:%s</id>\n", m.ID()))
		entries.WriteString(fmt.Sprintf("    <title>%s</title>\n", title))
		entries.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", date))
		entries.WriteString(fmt.Sprintf("    <summary>%s — %s</summary>\n", status, xmlEscape(m.Tournament)))
		entries.WriteString(fmt.Sprintf("    <link href=\"%s\" rel=\"alternate\"/>\n", xmlEscape(m.URL)))
		entries.WriteString(fmt.Sprintf("    <category term=\"%s\"/>\n", strings.ToLower(status)))
		entries.WriteString("  </entry>\n")
	}

	feedURL := ""
	icsURL := ""
	if baseURL != "" {
		feedURL = fmt.Sprintf("%s/%s.xml", baseURL, t.FileSlug())
		icsURL = fmt.Sprintf("%s/%s.ics", baseURL, t.FileSlug())
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>urn:esports-calendar:%s</id>
  <title>%s Match Schedule</title>
  <subtitle>Upcoming and recent matches for %s</subtitle>
  <updated>%s</updated>
  <link href="%s" rel="self" type="application/atom+xml"/>
  <link href="%s" rel="alternate" type="text/calendar"/>
  <generator>esports-calendar</generator>
%s</feed>
`, t.FileSlug(), xmlEscape(t.Name), xmlEscape(t.Name), now, feedURL, icsURL, entries.String())
}

// JSONFeed is a JSON Feed v1.1 document.
type JSONFeed struct {
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	HomePageURL string     `json:"home_page_url"`
	FeedURL     string     `json:"feed_url"`
	Description string     `json:"description"`
	Items       []FeedItem `json:"items"`
}

// FeedItem is one entry of a JSON Feed.
type FeedItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DatePublished string   `json:"date_published"`
	URL           string   `json:"url"`
	Tags          []string `json:"tags"`
	ContentText   string   `json:"content_text"`
}

// GenerateJSONFeed builds a JSON Feed v1.1 for a team's matches.
func GenerateJSONFeed(t team.Config, matches []match.Match, baseURL string) JSONFeed {
	items := make([]FeedItem, 0, len(matches))
	for _, m := range match.SortedNewestFirst(matches) {
		status := "Completed"
		if m.IsUpcoming {
			status = "Upcoming"
		}
		url := m.URL
		if url == "" {
			url = t.PageURL()
		}
		items = append(items, FeedItem{
			ID:            m.ID(),
			Title:         fmt.Sprintf("%s %s vs %s", t.Emoji, t.ShortName, m.Opponent),
			DatePublished: time.Unix(m.Timestamp, 0).UTC().Format("2006-01-02T15:04:05Z"),
			URL:           url,
			Tags:          []string{strings.ToLower(status), m.Tournament},
			ContentText:   fmt.Sprintf("%s — %s", status, m.Tournament),
		})
	}

	homeURL := t.PageURL()
	feedURL := ""
	if baseURL != "" {
		homeURL = baseURL
		feedURL = fmt.Sprintf("%s/%s.json", baseURL, t.FileSlug())
	}

	return JSONFeed{
		Version:     "https://jsonfeed.org/version/1.1",
		Title:       fmt.Sprintf("%s Match Schedule", t.Name),
		HomePageURL: homeURL,
		FeedURL:     feedURL,
		Description: fmt.Sprintf("Upcoming and recent matches for %s", t.Name),
		Items:       items,
	}
}

// MarshalJSONFeed renders a JSON Feed as indented JSON.
func MarshalJSONFeed(f JSONFeed) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON feed: %w", err)
	}
	return append(data, '\n'), nil
}

func xmlEscape(text string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(text)
}
