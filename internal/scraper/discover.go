package scraper

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// maxTournamentCandidates bounds how many tournament pages are tried per
// league before giving up.
const maxTournamentCandidates = 5

// Discovered is one team found on a tournament page.
type Discovered struct {
	Slug string
	Name string
}

// excludedSlugPrefixes reject league codes, navigational namespaces, and
// special-event pages that share link markup with team pages.
var excludedSlugPrefixes = []string{
	"LEC", "LCK", "LPL", "LCS", "PCS", "VCS", "CBLOL", "LLA", "LJL",
	"LTA", "LFL", "ERL", "TCL", "NLC", "LVP",
	"Portal:", "Category:", "Template:", "Season_", "Patch_",
	"All-Star", "All_Star", "Mid-Season", "World_Championship",
	"Rift_Rivals", "Worlds", "MSI", "index.php",
}

var yearSlugPattern = regexp.MustCompile(`^\d{4}`)

// DiscoverLeagueTeams finds the teams currently playing in a league. It
// locates candidate tournament pages on the league's main page, then tries
// them in recency order until one yields teams. A 404 moves on to the next
// candidate; any other fetch error aborts discovery for this league.
func (s *Scraper) DiscoverLeagueTeams(ctx context.Context, league team.League) ([]Discovered, error) {
	doc, err := s.Fetch(ctx, league.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching league page: %w", err)
	}

	candidates := FindTournamentCandidates(doc, league.Game, league.Slug())
	if len(candidates) == 0 {
		logger.Warn("no tournament pages found for league", logger.Fields{
			"league": league.Name,
		})
		return nil, nil
	}
	if len(candidates) > maxTournamentCandidates {
		candidates = candidates[:maxTournamentCandidates]
	}

	for _, url := range candidates {
		logger.Debug("trying tournament page", logger.Fields{
			"league": league.Name,
			"url":    url,
		})

		tournamentDoc, err := s.Fetch(ctx, url)
		if err != nil {
			if IsNotFound(err) {
				logger.Warn("tournament page missing, trying next candidate", logger.Fields{
					"league": league.Name,
					"url":    url,
				})
				continue
			}
			return nil, fmt.Errorf("fetching tournament page: %w", err)
		}

		if teams := ExtractTeams(tournamentDoc, league.Game); len(teams) > 0 {
			return teams, nil
		}
	}

	return nil, nil
}

// FindTournamentCandidates collects internal links of the form
// /<game>/<league-slug>/<year>... from a league main page and ranks them
// by recency. Ranking is a descending sort of the literal URL strings:
// higher years first, and within a year later split names first
// ("Summer" sorts after "Spring"). An approximation, but one that avoids
// date-parsing tournament names.
func FindTournamentCandidates(doc *goquery.Document, game, leagueSlug string) []string {
	pattern := regexp.MustCompile(
		`(?i)^/` + regexp.QuoteMeta(game) + `/` + regexp.QuoteMeta(leagueSlug) + `/202[4-9]`,
	)

	seen := make(map[string]bool)
	var candidates []string
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		href, _, _ = strings.Cut(href, "#")
		if pattern.MatchString(href) && !seen[href] {
			seen[href] = true
			candidates = append(candidates, href)
		}
	})

	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))

	urls := make([]string, len(candidates))
	for i, c := range candidates {
		urls[i] = team.BaseWikiURL + c
	}
	return urls
}

// ExtractTeams extracts team slug/name pairs from a tournament page using
// three strategies. Strategies 1 and 2 always run and merge their results;
// strategy 3 (heading scan) only runs when the first two found nothing.
// The first occurrence of a slug wins.
func ExtractTeams(doc *goquery.Document, game string) []Discovered {
	found := make(map[string]bool)
	var teams []Discovered

	add := func(slug, name string) {
		if slug == "" || name == "" || found[slug] || IsExcludedSlug(slug) {
			return
		}
		found[slug] = true
		teams = append(teams, Discovered{Slug: slug, Name: name})
	}

	// Strategy 1: team card elements. Team pages conventionally start with
	// an uppercase slug segment, which filters out most non-team links.
	uppercaseTeamLink := regexp.MustCompile(`/` + regexp.QuoteMeta(game) + `/[A-Z]`)
	doc.Find(`div[class*="teamcard"], span[class*="teamcard"]`).Each(func(_ int, card *goquery.Selection) {
		card.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, exists := link.Attr("href")
			if !exists || !uppercaseTeamLink.MatchString(href) {
				return true
			}
			add(slugFirstSegment(href, game), linkName(link))
			return false
		})
	})

	// Strategy 2: team template text elements.
	doc.Find(`[class*="team-template-text"]`).Each(func(_ int, el *goquery.Selection) {
		link := el.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}
		href, _ := link.Attr("href")
		if !strings.Contains(href, "/"+game+"/") {
			return
		}
		add(slugFirstSegment(href, game), linkName(link))
	})

	// Strategy 3: links under a Participants/Teams heading, only when the
	// structured strategies found nothing.
	if len(teams) == 0 {
		doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
			text := strings.ToLower(cleanText(heading))
			if !strings.Contains(text, "participant") && !strings.Contains(text, "teams") {
				return
			}
			for sibling := heading.Next(); sibling.Length() > 0; sibling = sibling.Next() {
				name := goquery.NodeName(sibling)
				if name == "h2" || name == "h3" {
					break
				}
				sibling.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
					href, _ := link.Attr("href")
					if !strings.Contains(href, "/"+game+"/") {
						return
					}
					slug := slugTail(href, game)
					if strings.Contains(slug, "/") {
						return // sub-page, not a team page
					}
					linkText := linkName(link)
					if utf8.RuneCountInString(linkText) > 1 {
						add(slug, linkText)
					}
				})
			}
		})
	}

	return teams
}

// IsExcludedSlug rejects slugs that share link markup with team pages but
// are not teams: league codes, wiki namespaces, season/event pages,
// edit/redlink artifacts, encoded or sub-page paths, and short
// abbreviation false-positives.
func IsExcludedSlug(slug string) bool {
	for _, prefix := range excludedSlugPrefixes {
		if strings.HasPrefix(slug, prefix) {
			return true
		}
	}
	if strings.Contains(slug, "redlink") || strings.Contains(slug, "action=edit") || strings.Contains(slug, "index.php") {
		return true
	}
	// Percent-encoded slugs are broken links, except encodings of
	// non-ASCII letters (%C3... sequences).
	if strings.Contains(slug, "%") && !strings.Contains(strings.ToUpper(slug), "%C") {
		return true
	}
	if yearSlugPattern.MatchString(slug) {
		return true
	}
	if strings.Contains(slug, "/") {
		return true
	}
	if utf8.RuneCountInString(slug) <= 2 {
		return true
	}
	return false
}

// slugTail returns everything after the last /<game>/ segment of an href.
func slugTail(href, game string) string {
	marker := "/" + game + "/"
	idx := strings.LastIndex(href, marker)
	if idx < 0 {
		return href
	}
	return href[idx+len(marker):]
}

// slugFirstSegment returns the path segment immediately after /<game>/.
func slugFirstSegment(href, game string) string {
	tail := slugTail(href, game)
	segment, _, _ := strings.Cut(tail, "/")
	return segment
}
