package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/sankalan/internal/app"
	"github.com/abhisek/sankalan/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads content, opens the export history and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, logger, tree, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	var repo store.ExportRepo
	st, err := openHistory(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Export history unavailable:", err)
		logger.Warn("export history unavailable", "error", err)
	} else {
		defer st.Close()
		repo = st.ExportRepo()
		pruneHistory(ctx, repo, cfg.Export.KeepHistory, logger)
	}

	exportOpts, err := exportOptions(cfg.Export, repo, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "categories", len(tree.Categories()))
	return app.Run(app.Options{
		Tree:          tree,
		ExportOptions: exportOpts,
		Events:        eventsClient(cfg.Events),
		Logger:        logger,
	})
}
