// Package web renders the static index page listing every tracked team
// with its upcoming and recent matches, subscribe links, and feed links.
package web

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// TeamSection is the per-team data rendered on the index page.
type TeamSection struct {
	Team     team.Config
	Upcoming []match.Match
	Past     []match.Match
	Cached   bool // true when the section was filled from cache after a failed scrape
}

// Page is the full index page model. BaseURL is the public location the
// artifacts are served from; when empty, the subscribe links that need an
// absolute calendar URL (webcal, Google Calendar) are omitted.
type Page struct {
	Sections     []TeamSection
	BaseURL      string
	GeneratedUTC string
}

// NewPage builds a page model with the generation timestamp set to now.
func NewPage(sections []TeamSection, baseURL string) Page {
	return Page{
		Sections:     sections,
		BaseURL:      strings.TrimRight(baseURL, "/"),
		GeneratedUTC: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func calendarURL(baseURL string, t team.Config) string {
	return baseURL + "/" + t.FileSlug() + ".ics"
}

var funcs = template.FuncMap{
	"utcTime": func(ts int64) string {
		return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04 UTC")
	},
	"fileSlug": func(t team.Config) string {
		return t.FileSlug()
	},
	// template.URL keeps the href filter from rejecting the webcal scheme.
	"webcalURL": func(baseURL string, t team.Config) template.URL {
		ics := calendarURL(baseURL, t)
		ics = strings.TrimPrefix(ics, "https:")
		ics = strings.TrimPrefix(ics, "http:")
		return template.URL("webcal:" + ics)
	},
	"googleURL": func(baseURL string, t team.Config) string {
		return "https://calendar.google.com/calendar/r?cid=" + url.QueryEscape(calendarURL(baseURL, t))
	},
}

var indexTemplate = template.Must(template.New("index").Funcs(funcs).Parse(indexHTML))

// RenderIndex renders the index page as HTML.
func RenderIndex(p Page) (string, error) {
	var b strings.Builder
	if err := indexTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("rendering index page: %w", err)
	}
	return b.String(), nil
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Esports Match Calendar</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 900px;
            margin: 0 auto;
            padding: 1.5rem;
            background: #0f0f1a;
            color: #e0e0e0;
            line-height: 1.6;
        }
        h1 { color: #fff; margin-bottom: 0.5rem; font-size: 1.75rem; }
        h2 { color: #ccc; margin: 1.5rem 0 0.75rem; font-size: 1.25rem; }
        a { color: #7dd3fc; text-decoration: none; }
        a:hover { text-decoration: underline; }
        .team-section {
            background: #1a1a2e;
            border: 2px solid #2a2a4a;
            border-radius: 8px;
            padding: 1rem 1.25rem;
            margin: 1rem 0;
        }
        .team-section .emoji { font-size: 1.5rem; margin-right: 0.5rem; }
        .team-section .name { font-weight: 600; font-size: 1.2rem; }
        .cached-badge {
            color: #fbbf24;
            font-size: 0.8rem;
            margin-left: 0.5rem;
        }
        .match-list { list-style: none; margin: 0.5rem 0; }
        .match-list li { padding: 0.25rem 0; }
        .match-time { color: #9ca3af; font-family: monospace; margin-right: 0.5rem; }
        .score { color: #fbbf24; margin-left: 0.5rem; }
        .subscribe-links {
            display: flex;
            flex-wrap: wrap;
            gap: 0.75rem;
            margin-top: 0.75rem;
            font-size: 0.875rem;
        }
        footer { margin-top: 2rem; color: #6b7280; font-size: 0.8rem; }
    </style>
</head>
<body>
    <h1>🎮 Esports Match Calendar</h1>
    <p>Subscribe to upcoming matches for your favorite teams.</p>
{{range .Sections}}
    <section class="team-section">
        <div>
            <span class="emoji">{{.Team.Emoji}}</span><span class="name">{{.Team.Name}}</span>
            {{- if .Cached}}<span class="cached-badge">cached data</span>{{end}}
        </div>
{{- if .Upcoming}}
        <h2>Upcoming</h2>
        <ul class="match-list">
{{- range .Upcoming}}
            <li><span class="match-time">{{utcTime .Timestamp}}</span>vs {{.Opponent}} · {{if .URL}}<a href="{{.URL}}">{{.Tournament}}</a>{{else}}{{.Tournament}}{{end}}</li>
{{- end}}
        </ul>
{{- end}}
{{- if .Past}}
        <h2>Recent results</h2>
        <ul class="match-list">
{{- range .Past}}
            <li><span class="match-time">{{utcTime .Timestamp}}</span>vs {{.Opponent}} · {{.Tournament}}{{if .Score}}<span class="score">{{.Score}}</span>{{end}}</li>
{{- end}}
        </ul>
{{- end}}
        <div class="subscribe-links">
            <a href="{{fileSlug .Team}}.ics">📅 iCal</a>
{{- if $.BaseURL}}
            <a href="{{webcalURL $.BaseURL .Team}}">🔔 webcal://</a>
            <a href="{{googleURL $.BaseURL .Team}}">🗓️ Google Calendar</a>
{{- end}}
            <a href="{{fileSlug .Team}}.xml">📰 Atom</a>
            <a href="{{fileSlug .Team}}.json">🧾 JSON Feed</a>
        </div>
    </section>
{{end}}
    <footer>Generated {{.GeneratedUTC}} · Data from liquipedia.net</footer>
</body>
</html>
`
