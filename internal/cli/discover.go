package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/scraper"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

func newDiscoverCmd() *cobra.Command {
	var (
		flagLeagues string
		flagTeams   string
		flagDryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover active teams from league pages and update the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd, flagLeagues, flagTeams, flagDryRun)
		},
	}

	cmd.Flags().StringVar(&flagLeagues, "leagues", "leagues.json", "League list file")
	cmd.Flags().StringVar(&flagTeams, "teams", "teams.json", "Team registry file to update")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print discovered teams without writing the registry")

	return cmd
}

func runDiscover(cmd *cobra.Command, leaguesPath, teamsPath string, dryRun bool) error {
	leagues, err := team.LoadLeagues(leaguesPath)
	if err != nil {
		return err
	}

	logger.Info("scanning leagues for teams", logger.Fields{
		"leagues": len(leagues.Leagues),
	})

	sc := scraper.New()
	ctx := cmd.Context()

	seen := make(map[string]bool)
	var discovered []team.Config

	for _, league := range leagues.Leagues {
		logger.Info("fetching league", logger.Fields{
			"league": league.Name,
			"region": league.Region,
		})

		teams, err := sc.DiscoverLeagueTeams(ctx, league)
		if err != nil {
			// One broken league must not abort the whole discovery run.
			logger.Error("league discovery failed", logger.Fields{
				"league": league.Name,
			}, err)
			continue
		}
		if len(teams) == 0 {
			logger.Warn("no teams found for league", logger.Fields{
				"league": league.Name,
			})
			continue
		}
		logger.Info("teams found", logger.Fields{
			"league": league.Name,
			"count":  len(teams),
		})

		emoji, ok := team.DefaultRegionEmoji[league.Region]
		if !ok {
			emoji = team.FallbackEmoji
		}

		for _, d := range teams {
			if seen[d.Slug] {
				continue
			}
			seen[d.Slug] = true
			discovered = append(discovered, team.Config{
				Name:      d.Name,
				Slug:      d.Slug,
				ShortName: team.ShortName(d.Name, team.DefaultShortNames),
				Emoji:     emoji,
				Game:      league.Game,
			})
		}
	}

	logger.Info("discovery complete", logger.Fields{
		"teams":   len(discovered),
		"leagues": len(leagues.Leagues),
	})

	if dryRun {
		for _, t := range discovered {
			fmt.Printf("  %s %5s  %s (%s)\n", t.Emoji, t.ShortName, t.Name, t.Slug)
		}
		fmt.Println("\n[Dry run — registry not written]")
		return nil
	}

	// Merge with the existing registry so manually curated short names and
	// emoji survive, and teams from a league whose discovery failed are
	// not dropped.
	reg := &team.Registry{}
	if _, statErr := os.Stat(teamsPath); statErr == nil {
		reg, err = team.LoadRegistry(teamsPath)
		if err != nil {
			return err
		}
	}
	reg.Merge(discovered)

	if err := reg.Save(teamsPath); err != nil {
		return err
	}

	logger.Info("registry written", logger.Fields{
		"path":  teamsPath,
		"teams": len(reg.Teams),
	})

	return nil
}
