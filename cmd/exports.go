package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sankalan/internal/store"
	"github.com/spf13/cobra"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List past exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		roadmapID, _ := cmd.Flags().GetString("roadmap")
		prune, _ := cmd.Flags().GetInt("prune")

		cfg, _, _, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		st, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		repo := st.ExportRepo()

		out := cmd.OutOrStdout()
		if cmd.Flags().Changed("prune") {
			if prune < 1 {
				return fmt.Errorf("--prune must be at least 1")
			}
			n, err := repo.Prune(ctx, prune)
			if err != nil {
				return fmt.Errorf("prune exports: %w", err)
			}
			fmt.Fprintf(out, "Removed %d export records.\n", n)
			return nil
		}

		records, err := repo.List(ctx, store.QueryOpts{Limit: limit, RoadmapID: roadmapID})
		if err != nil {
			return fmt.Errorf("query exports: %w", err)
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No exports found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-18s  %-4s  %s\n",
			"Seq", "Timestamp", "Category", "Roadmap", "Fmt", "Path")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, r := range records {
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-18s  %-4s  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.CategoryID,
				r.RoadmapID,
				r.Format,
				r.Path,
			)
		}
		return nil
	},
}

func init() {
	exportsCmd.Flags().Int("limit", 20, "Maximum records to show")
	exportsCmd.Flags().String("roadmap", "", "Only show exports of this roadmap")
	exportsCmd.Flags().Int("prune", 0, "Delete all but the newest N records")
}
