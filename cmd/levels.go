package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/newton/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load levels: %w", err)
		}
		printLevels(cmd, catalog)
		return nil
	},
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML level catalog without starting the game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := levels.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d levels OK\n", args[0], len(catalog.All()))
		return nil
	},
}

func printLevels(cmd *cobra.Command, catalog *levels.Catalog) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-4s  %-12s  %-34s  %7s  %6s  %s\n",
		"ID", "Name", "Description", "Max sum", "Target", "Status")
	fmt.Fprintln(out, strings.Repeat("─", 80))

	for _, l := range catalog.All() {
		status := "playable"
		if !l.Available {
			status = "locked"
		}
		desc := l.Description
		if len(desc) > 34 {
			desc = desc[:31] + "..."
		}
		fmt.Fprintf(out, "%-4d  %-12s  %-34s  %7d  %6d  %s\n",
			l.ID, l.Name, desc, l.MaxSum, l.TargetScore, status)
	}
}

func init() {
	levelsCmd.AddCommand(levelsValidateCmd)
}
