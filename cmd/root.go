package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/newton/internal/config"
	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "newton",
	Short: "Space-themed sums game for kids",
	Long:  "Newton is a terminal game where children practise adding and subtracting small numbers, one level at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEWTON_DB env var)")
	rootCmd.PersistentFlags().String("locale", "", "Language for feedback phrases, e.g. en or nl (overrides NEWTON_LOCALE)")
	rootCmd.PersistentFlags().String("levels", "", "YAML level catalog to use instead of the built-in one (overrides NEWTON_LEVELS_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		cfg.Locale = l
	}
	if f, _ := cmd.Flags().GetString("levels"); f != "" {
		cfg.LevelsFile = f
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag or NEWTON_DB
// (already merged into cfg), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadCatalog returns the configured level catalog, or the built-in one.
func loadCatalog(cfg config.Config) (*levels.Catalog, error) {
	if cfg.LevelsFile == "" {
		return levels.Default(), nil
	}
	return levels.Load(cfg.LevelsFile)
}

// openStore resolves the DB path and opens the store.
func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
