package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/export"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/screens/roadmap"
	"github.com/abhisek/sankalan/internal/store"
	"github.com/spf13/cobra"
)

// headlessHeight is tall enough for any roadmap; trailing blank lines are
// dropped from the exported region.
const headlessHeight = 500

var exportCmd = &cobra.Command{
	Use:   "export <category> <roadmap>",
	Short: "Export a roadmap view without starting the TUI",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topicID, _ := cmd.Flags().GetString("topic")
		width, _ := cmd.Flags().GetInt("width")

		cfg, logger, tree, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		if v, _ := cmd.Flags().GetString("format"); v != "" {
			cfg.Export.Format = v
		}
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			cfg.Export.Dir = v
		}

		var repo store.ExportRepo
		if st, err := openHistory(cfg); err != nil {
			logger.Warn("export history unavailable", "error", err)
		} else {
			defer st.Close()
			repo = st.ExportRepo()
		}

		opts, err := exportOptions(cfg.Export, repo, logger)
		if err != nil {
			return err
		}
		path, err := exportRoadmap(ctx, tree, logger, opts, args[0], args[1], topicID, width)
		if err != nil {
			return err
		}
		if repo != nil {
			pruneHistory(ctx, repo, cfg.Export.KeepHistory, logger)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// exportRoadmap drives a navigator to the roadmap (and optional topic),
// renders the visualization once and exports it.
func exportRoadmap(ctx context.Context, tree *content.Tree, logger *slog.Logger, opts []export.Option,
	categoryID, roadmapID, topicID string, width int) (string, error) {
	c, ok := tree.FindCategory(categoryID)
	if !ok {
		return "", fmt.Errorf("no category %q", categoryID)
	}
	r, ok := c.Roadmap(roadmapID)
	if !ok {
		return "", fmt.Errorf("no roadmap %q in category %q", roadmapID, categoryID)
	}

	nav := navigator.New(tree, navigator.WithLogger(logger))
	if err := nav.SelectCategory(c); err != nil {
		return "", err
	}
	if err := nav.SelectRoadmap(r); err != nil {
		return "", err
	}
	if topicID != "" {
		t, ok := r.Topic(topicID)
		if !ok {
			return "", fmt.Errorf("no topic %q in roadmap %q", topicID, roadmapID)
		}
		if err := nav.SelectTopic(t); err != nil {
			return "", err
		}
	}

	scr := roadmap.New(nav, nil, r)
	scr.View(width, headlessHeight)
	return export.New(nav, opts...).ExportCurrentView(ctx, scr.Region())
}

func init() {
	exportCmd.Flags().String("topic", "", "Open this topic's detail panel before exporting")
	exportCmd.Flags().String("format", "", "Output format: pdf, png or svg (default from config)")
	exportCmd.Flags().String("out", "", "Output directory (default from config)")
	exportCmd.Flags().Int("width", 120, "Render width in terminal cells")
}
