package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/scraper"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/storage"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

func newDataCmd() *cobra.Command {
	var (
		flagTeams  string
		flagOutput string
		flagCache  string
	)

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Generate per-team JSON data files and a team manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runData(cmd, flagTeams, flagOutput, flagCache)
		},
	}

	cmd.Flags().StringVar(&flagTeams, "teams", "teams.json", "Team registry file")
	cmd.Flags().StringVar(&flagOutput, "output", filepath.Join("public", "data"), "Output directory for data files")
	cmd.Flags().StringVar(&flagCache, "cache", "cache", "Cache directory for last-known-good data")

	return cmd
}

// matchDoc is the JSON shape of one match in the data files.
type matchDoc struct {
	Timestamp  int64  `json:"timestamp"`
	Opponent   string `json:"opponent"`
	Tournament string `json:"tournament"`
	URL        string `json:"url"`
	IsUpcoming bool   `json:"is_upcoming"`
}

// teamDoc is the JSON shape of a team entry in data files and the manifest.
type teamDoc struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ShortName     string `json:"short_name"`
	Emoji         string `json:"emoji"`
	Game          string `json:"game"`
	LiquipediaURL string `json:"liquipedia_url,omitempty"`
}

// dataDoc is the per-team JSON data document.
type dataDoc struct {
	Team         teamDoc    `json:"team"`
	Matches      []matchDoc `json:"matches"`
	GeneratedUTC string     `json:"generated_utc"`
}

// manifestDoc lists all teams that have data files.
type manifestDoc struct {
	Teams        []teamDoc `json:"teams"`
	GeneratedUTC string    `json:"generated_utc"`
}

func runData(cmd *cobra.Command, teamsPath, outputDir, cacheDir string) error {
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
	generatedUTC := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var manifest []teamDoc
	var errs []string

	for _, t := range reg.Teams {
		logger.Info("fetching team matches", logger.Fields{
			"team": t.Name,
			"url":  t.PageURL(),
		})

		matches, err := sc.FetchTeamMatches(ctx, t)
		if err != nil {
			errMsg := fmt.Sprintf("Failed to fetch %s: %v", t.Name, err)
			logger.Error("team fetch failed", logger.Fields{"team": t.Name}, err)
			errs = append(errs, errMsg)

			if writeCachedData(store, outputDir, t) {
				manifest = append(manifest, manifestEntry(t))
			} else if alertErr := notify.Notify("Data Generator Error",
				errMsg+"\n\nNo cached data available — team will be missing."); alertErr != nil {
				logger.Warn("failed to send notification", logger.Fields{"team": t.Name})
			}
			continue
		}

		upcoming, past := match.Split(matches)
		logger.Info("matches found", logger.Fields{
			"team":     t.Name,
			"upcoming": len(upcoming),
			"past":     len(past),
		})

		// Don't overwrite good data with an empty scrape; prefer the cache.
		if len(matches) == 0 {
			logger.Warn("no matches found (page structure may have changed)", logger.Fields{
				"team": t.Name,
			})
			if writeCachedData(store, outputDir, t) {
				logger.Info("using cached data instead of empty scrape", logger.Fields{"team": t.Name})
				manifest = append(manifest, manifestEntry(t))
				continue
			}
		}

		docs := make([]matchDoc, 0, len(matches))
		for _, m := range matches {
			docs = append(docs, matchDoc{
				Timestamp:  m.Timestamp,
				Opponent:   m.Opponent,
				Tournament: m.Tournament,
				URL:        m.URL,
				IsUpcoming: m.IsUpcoming,
			})
		}

		doc := dataDoc{
			Team: teamDoc{
				Name:          t.Name,
				Slug:          t.Slug,
				ShortName:     t.ShortName,
				Emoji:         t.Emoji,
				Game:          t.Game,
				LiquipediaURL: t.PageURL(),
			},
			Matches:      docs,
			GeneratedUTC: generatedUTC,
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding team data: %w", err)
		}
		data = append(data, '\n')

		outPath := filepath.Join(outputDir, t.FileSlug()+".json")
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing team data: %w", err)
		}
		if err := store.SaveData(t.Slug, data); err != nil {
			return err
		}

		manifest = append(manifest, manifestEntry(t))

		for _, m := range upcoming {
			logger.Debug("upcoming match", logger.Fields{
				"team":     t.Name,
				"start":    time.Unix(m.Timestamp, 0).UTC().Format("2006-01-02 15:04 UTC"),
				"opponent": m.Opponent,
			})
		}
	}

	manifestData, err := json.MarshalIndent(manifestDoc{
		Teams:        manifest,
		GeneratedUTC: generatedUTC,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	manifestData = append(manifestData, '\n')

	manifestPath := filepath.Join(outputDir, "teams.json")
	if err := os.WriteFile(manifestPath, manifestData, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	logger.Info("data generation complete", logger.Fields{
		"teams":  len(manifest),
		"errors": len(errs),
	})

	if len(errs) > 0 {
		if alertErr := notify.Notify("Data Generator Error",
			fmt.Sprintf("Data generation completed with %d error(s):\n\n- %s",
				len(errs), strings.Join(errs, "\n- "))); alertErr != nil {
			logger.Warn("failed to send summary notification", nil)
		}
		return fmt.Errorf("data generation completed with %d error(s)", len(errs))
	}

	return nil
}

// writeCachedData copies a team's cached data file to the output directory.
// Returns false when no cache exists.
func writeCachedData(store *storage.Store, outputDir string, t team.Config) bool {
	cached, err := store.LoadData(t.Slug)
	if err != nil || cached == nil {
		return false
	}
	outPath := filepath.Join(outputDir, t.FileSlug()+".json")
	if err := os.WriteFile(outPath, cached, 0644); err != nil {
		logger.Error("writing cached data failed", logger.Fields{"team": t.Name}, err)
		return false
	}
	return true
}

func manifestEntry(t team.Config) teamDoc {
	return teamDoc{
		Name:      t.Name,
		Slug:      t.Slug,
		ShortName: t.ShortName,
		Emoji:     t.Emoji,
		Game:      t.Game,
	}
}
