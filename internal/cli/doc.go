// Package cli wires the scraper, generators, cache, and notifier into the
// esports-calendar command: generate (calendars, feeds, index page), data
// (per-team JSON documents), and discover (team registry updates). Each
// team and league is processed independently; a failure falls back to
// cached artifacts where possible and is reported at the end of the run.
package cli
