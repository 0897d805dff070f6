package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// placeholderTournament is used when a match element carries no readable
// tournament name.
const placeholderTournament = "Match"

// placeholderOpponent is used when an opponent cell has no link and no text.
const placeholderOpponent = "TBD"

// opponentKeywords identify the column that distinguishes a match-history
// table from a tournament-results table (placements only, no opponents).
var opponentKeywords = []string{"opponent", "vs.", "vs. opponent", "vs"}

// ExtractMatches extracts all recognizable matches from a parsed team page:
// upcoming matches first (document order), then past matches. Elements that
// cannot be fully parsed are skipped; a page with no match data yields an
// empty slice, which is a valid outcome for an inactive team.
func ExtractMatches(doc *goquery.Document, t team.Config) []match.Match {
	matches := extractUpcoming(doc, t)
	matches = append(matches, extractPast(doc, t)...)
	return matches
}

// extractUpcoming parses the upcoming-match carousel widget.
func extractUpcoming(doc *goquery.Document, t team.Config) []match.Match {
	var matches []match.Match
	doc.Find("div.carousel-item").Each(func(_ int, item *goquery.Selection) {
		if m, ok := parseCarouselItem(item, t); ok {
			matches = append(matches, m)
		}
	})
	return matches
}

// parseCarouselItem parses one carousel card. The card must carry a timer
// element with a machine-readable timestamp and an identifiable opponent;
// otherwise it is skipped.
func parseCarouselItem(item *goquery.Selection, t team.Config) (match.Match, bool) {
	ts, ok := timerTimestamp(item.Find("span.timer-object").First())
	if !ok {
		return match.Match{}, false
	}

	tournament := placeholderTournament
	tournamentURL := ""
	if span := item.Find("span.match-info-tournament-name").First(); span.Length() > 0 {
		if text := cleanText(span); text != "" {
			tournament = text
		}
		if link := span.Find("a").First(); link.Length() > 0 {
			if href, exists := link.Attr("href"); exists {
				tournamentURL = absoluteURL(href)
			}
		}
	}

	opponent, ok := opponentFromRows(item, t)
	if !ok {
		return match.Match{}, false
	}

	return match.Match{
		Timestamp:  ts,
		Opponent:   opponent,
		Tournament: tournament,
		URL:        tournamentURL,
		Team:       t,
		IsUpcoming: true,
	}, true
}

// opponentFromRows scans opponent rows for the first link into the game
// namespace that does not point at the tracked team. The page renders both
// participants without labeling which one is "us", so the tracked team's
// own slug is the only way to tell them apart.
func opponentFromRows(item *goquery.Selection, t team.Config) (string, bool) {
	var name string
	found := false
	item.Find("div.match-info-opponent-row").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		row.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, exists := link.Attr("href")
			if !exists {
				return true
			}
			if strings.Contains(href, "/"+t.Game+"/") && !strings.Contains(href, t.Slug) {
				name = linkName(link)
				found = true
				return false
			}
			return true
		})
		return !found
	})
	if !found || name == "" {
		return "", false
	}
	return name, true
}

// extractPast parses past matches with a tiered fallback: a match-history
// table if one can be found, then result panel boxes, then nothing.
func extractPast(doc *goquery.Document, t team.Config) []match.Match {
	if table := findMatchHistoryTable(doc); table != nil {
		if matches := parseResultsTable(table, t); len(matches) > 0 {
			return matches
		}
	}
	return parsePanelMatches(doc, t)
}

// findMatchHistoryTable locates the table holding match-by-match data.
// Team pages typically carry both a tournament-results table (Date, Place,
// Tier, Tournament, Prize) and a match-history table (Date, Tournament,
// Score, vs. Opponent); only the latter has an opponent column.
func findMatchHistoryTable(doc *goquery.Document) *goquery.Selection {
	// First pass: any wikitable with an opponent column.
	var found *goquery.Selection
	doc.Find("table.wikitable").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if hasOpponentColumn(headerTexts(table)) {
			found = table
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	// Second pass: qualifying tables under Results/Recent/Data/Match
	// headings, scanning forward through siblings until the next heading.
	doc.Find("h2, h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.ToLower(cleanText(heading))
		if !containsAny(text, []string{"results", "recent", "data", "match"}) {
			return true
		}
		for sibling := heading.Next(); sibling.Length() > 0; sibling = sibling.Next() {
			name := goquery.NodeName(sibling)
			if name == "h2" || name == "h3" {
				break
			}
			var tables []*goquery.Selection
			switch name {
			case "table":
				tables = append(tables, sibling)
			case "div":
				sibling.Find("table").Each(func(_ int, nested *goquery.Selection) {
					tables = append(tables, nested)
				})
			}
			for _, table := range tables {
				if hasOpponentColumn(headerTexts(table)) {
					found = table
					return false
				}
			}
		}
		return true
	})
	if found != nil {
		return found
	}

	// Third pass: any table with both a date and an opponent-like column.
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		headers := headerTexts(table)
		if containsAnyHeader(headers, []string{"date"}) && hasOpponentColumn(headers) {
			found = table
			return false
		}
		return true
	})
	return found
}

// parseResultsTable parses a match-history wikitable into match records.
// Rows that cannot be fully parsed are skipped, never partially emitted.
func parseResultsTable(table *goquery.Selection, t team.Config) []match.Match {
	var headers []string
	if headerRow := table.Find("tr").First(); headerRow.Length() > 0 {
		headers = headerRow.Find("th").Map(func(_ int, th *goquery.Selection) string {
			return strings.ToLower(cleanText(th))
		})
	}

	dateIdx := findColIndex(headers, []string{"date"})
	tournamentIdx := findColIndex(headers, []string{"tournament", "event"})
	opponentIdx := findColIndex(headers, opponentKeywords)
	scoreIdx := findColIndex(headers, []string{"score", "result"})

	minCells := maxIndex(dateIdx, tournamentIdx, opponentIdx) + 1
	selfRef := strings.ToLower(strings.ReplaceAll(t.Slug, "_", " "))

	var matches []match.Match
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td, th")
		if cells.Length() < minCells {
			return
		}

		ts, ok := parseTimestampCell(cells, dateIdx)
		if !ok {
			return
		}

		tournament := placeholderTournament
		tournamentURL := ""
		if tournamentIdx >= 0 && tournamentIdx < cells.Length() {
			cell := cells.Eq(tournamentIdx)
			if text := cleanText(cell); text != "" {
				tournament = text
			}
			if link := cell.Find("a").First(); link.Length() > 0 {
				if href, exists := link.Attr("href"); exists {
					tournamentURL = absoluteURL(href)
				}
			}
		}

		opponent := placeholderOpponent
		if opponentIdx >= 0 && opponentIdx < cells.Length() {
			cell := cells.Eq(opponentIdx)
			if link := cell.Find("a").First(); link.Length() > 0 {
				opponent = linkName(link)
			} else if text := cleanText(cell); text != "" {
				opponent = text
			}
		}

		score := ""
		if scoreIdx >= 0 && scoreIdx < cells.Length() {
			if text := cleanText(cells.Eq(scoreIdx)); match.ValidScore(text) {
				score = text
			}
		}

		// A row whose opponent resolves to the tracked team itself is a
		// parsing confusion, not a real match.
		if strings.Contains(strings.ToLower(opponent), selfRef) {
			return
		}

		matches = append(matches, match.Match{
			Timestamp:  ts,
			Opponent:   opponent,
			Tournament: tournament,
			URL:        tournamentURL,
			Team:       t,
			IsUpcoming: false,
			Score:      score,
		})
	})

	return matches
}

// parsePanelMatches is the fallback for pages without a qualifying table:
// result panel boxes whose entries carry the same timer convention as the
// upcoming-match carousel.
func parsePanelMatches(doc *goquery.Document, t team.Config) []match.Match {
	var matches []match.Match

	doc.Find("div.panel-box").Each(func(_ int, panel *goquery.Selection) {
		heading := panel.Find(".panel-box-heading").First()
		if heading.Length() == 0 || !strings.Contains(strings.ToLower(cleanText(heading)), "result") {
			return
		}
		body := panel.Find(".panel-box-body").First()
		if body.Length() == 0 {
			return
		}

		body.ChildrenFiltered("div").Each(func(_ int, entry *goquery.Selection) {
			ts, ok := timerTimestamp(entry.Find("span.timer-object").First())
			if !ok {
				return
			}

			opponent, ok := opponentFromRows(entry, t)
			if !ok {
				// Broaden to any link into the game namespace that is not
				// the tracked team.
				entry.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
					href, exists := link.Attr("href")
					if exists && strings.Contains(href, "/"+t.Game+"/") && !strings.Contains(href, t.Slug) {
						opponent = linkName(link)
						return false
					}
					return true
				})
			}
			if opponent == "" {
				return
			}

			tournament := placeholderTournament
			if span := entry.Find("span.match-info-tournament-name").First(); span.Length() > 0 {
				if text := cleanText(span); text != "" {
					tournament = text
				}
			}

			matches = append(matches, match.Match{
				Timestamp:  ts,
				Opponent:   opponent,
				Tournament: tournament,
				URL:        "",
				Team:       t,
				IsUpcoming: false,
			})
		})
	})

	return matches
}

// headerTexts returns the lower-cased text of every header cell in a table.
func headerTexts(table *goquery.Selection) []string {
	return table.Find("th").Map(func(_ int, th *goquery.Selection) string {
		return strings.ToLower(cleanText(th))
	})
}

func hasOpponentColumn(headers []string) bool {
	return containsAnyHeader(headers, opponentKeywords)
}

func containsAnyHeader(headers, keywords []string) bool {
	for _, h := range headers {
		if containsAny(h, keywords) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// findColIndex returns the index of the first header containing any of the
// candidate keywords, or -1 if no header matches.
func findColIndex(headers []string, candidates []string) int {
	for i, h := range headers {
		if containsAny(h, candidates) {
			return i
		}
	}
	return -1
}

func maxIndex(indices ...int) int {
	max := 0
	for _, idx := range indices {
		if idx > max {
			max = idx
		}
	}
	return max
}

// linkName prefers a link's title attribute over its visible text.
func linkName(link *goquery.Selection) string {
	if title, exists := link.Attr("title"); exists && title != "" {
		return title
	}
	return cleanText(link)
}

// cleanText returns an element's text with all whitespace runs collapsed.
func cleanText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// absoluteURL resolves a wiki-relative href against the wiki root.
func absoluteURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return team.BaseWikiURL + href
}
