// Package scraper fetches team and tournament pages from Liquipedia and
// extracts normalized match records and team identities.
//
// The wiki has no stable schema, so extraction is layered: upcoming
// matches come from carousel cards with machine-readable timers, past
// matches from a match-history table found by header keywords (with a
// panel-box fallback), and team discovery merges three independent link
// strategies behind an exclusion filter. Anything that cannot be fully
// parsed is skipped rather than surfaced as an error; an empty result is
// a valid outcome.
package scraper
