package scraper

import (
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// tzSuffix matches a trailing timezone abbreviation on free-text dates.
// The token is stripped and the remainder is read as UTC; the page's own
// timer elements are the authoritative source when present.
var tzSuffix = regexp.MustCompile(`\s+(CET|CEST|UTC|EST|PST|GMT)\s*$`)

// dateLayouts are tried in order against free-text date cells.
var dateLayouts = []string{
	"January 2, 2006 - 15:04",
	"2006-01-02 15:04",
	"Jan 2, 2006 - 15:04",
	"2006-01-02",
	"January 2, 2006",
}

// timerTimestamp reads the machine-readable epoch attribute off a timer
// element. Returns false when the element or attribute is missing.
func timerTimestamp(timer *goquery.Selection) (int64, bool) {
	if timer == nil || timer.Length() == 0 {
		return 0, false
	}
	raw, exists := timer.Attr("data-timestamp")
	if !exists {
		return 0, false
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

// parseTimestampCell converts a date cell into UTC epoch seconds. An
// embedded timer element is trusted verbatim; otherwise the cell text is
// tried against the known date formats. Returns false when nothing parses,
// in which case the caller must skip the row.
func parseTimestampCell(cells *goquery.Selection, dateIdx int) (int64, bool) {
	if dateIdx < 0 || dateIdx >= cells.Length() {
		return 0, false
	}
	cell := cells.Eq(dateIdx)

	if ts, ok := timerTimestamp(cell.Find("span.timer-object").First()); ok {
		return ts, true
	}

	text := tzSuffix.ReplaceAllString(cleanText(cell), "")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t.Unix(), true
		}
	}

	return 0, false
}
