package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/calendar"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/feed"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/scraper"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/storage"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/web"
)

func newGenerateCmd() *cobra.Command {
	var (
		flagTeams   string
		flagOutput  string
		flagCache   string
		flagBaseURL string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ICS calendars, feeds, and the index page for all teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flagTeams, flagOutput, flagCache, flagBaseURL)
		},
	}

	cmd.Flags().StringVar(&flagTeams, "teams", "teams.json", "Team registry file")
	cmd.Flags().StringVar(&flagOutput, "output", "public", "Output directory for generated artifacts")
	cmd.Flags().StringVar(&flagCache, "cache", "cache", "Cache directory for last-known-good artifacts")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Public base URL used in feed self-links")

	return cmd
}

func runGenerate(cmd *cobra.Command, teamsPath, outputDir, cacheDir, baseURL string) error {
	reg, err := team.LoadRegistry(teamsPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	store, err := storage.New(cacheDir)
	if err != nil {
		return err
	}

	sc := scraper.New()
	notify := newNotifier()
	ctx := cmd.Context()

	var sections []web.TeamSection
	var errs []string

	for _, t := range reg.Teams {
		logger.Info("fetching team matches", logger.Fields{
			"team": t.Name,
			"url":  t.PageURL(),
		})

		matches, err := sc.FetchTeamMatches(ctx, t)
		if err == nil {
			var ics []byte
			ics, err = buildCalendar(t, matches)
			if err == nil {
				err = writeTeamArtifacts(outputDir, baseURL, t, matches, ics, store)
			}
		}

		if err != nil {
			errMsg := fmt.Sprintf("Failed to generate %s: %v", t.Name, err)
			logger.Error("team generation failed", logger.Fields{"team": t.Name}, err)
			errs = append(errs, errMsg)

			cached, cacheErr := store.LoadCalendar(t.Slug)
			if cacheErr == nil && cached != nil {
				logger.Info("using cached calendar", logger.Fields{"team": t.Name})
				icsPath := filepath.Join(outputDir, t.FileSlug()+".ics")
				if writeErr := os.WriteFile(icsPath, cached, 0644); writeErr != nil {
					logger.Error("writing cached calendar failed", logger.Fields{"team": t.Name}, writeErr)
				}
				section := web.TeamSection{Team: t, Cached: true}
				if matches, ok := cachedMatches(store, t); ok {
					section.Upcoming, section.Past = match.Split(matches)
				}
				sections = append(sections, section)
			} else {
				if alertErr := notify.Notify("Calendar Generator Error",
					errMsg+"\n\nNo cached data available — calendar will be empty."); alertErr != nil {
					logger.Warn("failed to send notification", logger.Fields{"team": t.Name})
				}
			}
			continue
		}

		upcoming, past := match.Split(matches)
		logger.Info("matches found", logger.Fields{
			"team":     t.Name,
			"upcoming": len(upcoming),
			"past":     len(past),
		})
		if len(matches) == 0 {
			logger.Warn("no matches found (page structure may have changed)", logger.Fields{
				"team": t.Name,
			})
		}

		sections = append(sections, web.TeamSection{
			Team:     t,
			Upcoming: upcoming,
			Past:     past,
		})
	}

	page := web.NewPage(sections, baseURL)
	html, err := web.RenderIndex(page)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing index page: %w", err)
	}

	logger.Info("generation complete", logger.Fields{
		"teams":  len(sections),
		"errors": len(errs),
	})

	if len(errs) > 0 {
		if alertErr := notify.Notify("Calendar Generator Error",
			fmt.Sprintf("Calendar generation completed with %d error(s):\n\n- %s",
				len(errs), strings.Join(errs, "\n- "))); alertErr != nil {
			logger.Warn("failed to send summary notification", nil)
		}
		return fmt.Errorf("generation completed with %d error(s)", len(errs))
	}

	return nil
}

// cachedMatches rebuilds a team's match list from the cached data
// document so the index page still shows last-known matches after a
// failed scrape.
func cachedMatches(store *storage.Store, t team.Config) ([]match.Match, bool) {
	data, err := store.LoadData(t.Slug)
	if err != nil || data == nil {
		return nil, false
	}

	var doc dataDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("cached data unreadable", logger.Fields{"team": t.Name})
		return nil, false
	}

	matches := make([]match.Match, 0, len(doc.Matches))
	for _, m := range doc.Matches {
		matches = append(matches, match.Match{
			Timestamp:  m.Timestamp,
			Opponent:   m.Opponent,
			Tournament: m.Tournament,
			URL:        m.URL,
			Team:       t,
			IsUpcoming: m.IsUpcoming,
		})
	}
	return matches, true
}

// buildCalendar generates and validates a team's ICS document.
func buildCalendar(t team.Config, matches []match.Match) ([]byte, error) {
	ics := calendar.GenerateICS(t, matches)
	if !calendar.Validate(ics) {
		return nil, fmt.Errorf("generated ICS failed validation")
	}
	return ics, nil
}

// writeTeamArtifacts writes a team's calendar and feeds to the output
// directory and caches the calendar for fallback on future failures.
func writeTeamArtifacts(outputDir, baseURL string, t team.Config, matches []match.Match, ics []byte, store *storage.Store) error {
	slug := t.FileSlug()

	if err := os.WriteFile(filepath.Join(outputDir, slug+".ics"), ics, 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := store.SaveCalendar(t.Slug, ics); err != nil {
		return err
	}

	atom := feed.GenerateAtom(t, matches, baseURL)
	if err := os.WriteFile(filepath.Join(outputDir, slug+".xml"), []byte(atom), 0644); err != nil {
		return fmt.Errorf("writing atom feed: %w", err)
	}

	jsonFeed, err := feed.MarshalJSONFeed(feed.GenerateJSONFeed(t, matches, baseURL))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, slug+".json"), jsonFeed, 0644); err != nil {
		return fmt.Errorf("writing JSON feed: %w", err)
	}

	return nil
}
