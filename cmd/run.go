package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/newton/internal/app"
	"github.com/abhisek/newton/internal/logging"
	"github.com/abhisek/newton/internal/phrases"
	"github.com/abhisek/newton/internal/problemgen"
	"github.com/abhisek/newton/internal/session"
)

// runApp loads configuration, opens the store, builds dependencies, and
// launches the TUI. A non-zero startLevel opens that level directly.
func runApp(cmd *cobra.Command, startLevel int) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	logger.Info("level catalog loaded", "levels", len(catalog.All()), "file", cfg.LevelsFile)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Catalog:   catalog,
		EventRepo: st.EventRepo(),
		Env: session.Env{
			Generator: problemgen.NewSeeded(),
			Phrases:   phrases.ForLocale(cfg.Locale),
			Rand:      problemgen.NewRand(),
			Delays:    cfg.Delays(),
		},
		Logger:     logger,
		StartLevel: startLevel,
	}
	return app.Run(opts)
}
