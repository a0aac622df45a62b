package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelID, _ := cmd.Flags().GetInt("level")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load levels: %w", err)
		}
		if levelID != 0 {
			if _, err := catalog.Get(levelID); err != nil {
				return err
			}
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		return printStats(cmd, st.EventRepo(), catalog, store.QueryOpts{Limit: limit, LevelID: levelID})
	},
}

func printStats(cmd *cobra.Command, repo store.EventRepo, catalog *levels.Catalog, opts store.QueryOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	completed, err := repo.CompletedLevels(ctx)
	if err != nil {
		return fmt.Errorf("query completed levels: %w", err)
	}
	answers, err := repo.AnswerStats(ctx, opts)
	if err != nil {
		return fmt.Errorf("query answers: %w", err)
	}
	sessions, err := repo.QuerySessionSummaries(ctx, opts)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}

	fmt.Fprintln(out, "Levels")
	for _, l := range catalog.All() {
		if opts.LevelID != 0 && l.ID != opts.LevelID {
			continue
		}
		fmt.Fprintf(out, "  %-12s  completed %d times\n", l.Name, completed[l.ID])
	}

	fmt.Fprintf(out, "\nAnswers:   %d (%d correct, %.0f%%)\n",
		answers.Total, answers.Correct, answers.Accuracy()*100)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "\nNo sessions recorded.")
		return nil
	}

	fmt.Fprintf(out, "\n%-19s  %-5s  %-10s  %5s  %8s  %8s\n",
		"Started", "Level", "Outcome", "Score", "Attempts", "Duration")
	fmt.Fprintln(out, strings.Repeat("─", 64))
	for _, s := range sessions {
		outcome := s.Outcome
		if !s.Finished() {
			outcome = "-"
		}
		fmt.Fprintf(out, "%-19s  %-5d  %-10s  %5s  %8d  %8s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.LevelID, outcome,
			fmt.Sprintf("%d/%d", s.Score, s.Target),
			s.Attempts, s.Duration.Round(time.Second))
	}
	fmt.Fprintf(out, "\n%d sessions\n", len(sessions))
	return nil
}

func init() {
	statsCmd.Flags().Int("level", 0, "Only show this level")
	statsCmd.Flags().Int("limit", 20, "Maximum number of sessions to list (0 = all)")
}
