package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/ui/layout"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Browse roadmaps without the TUI",
}

type roadmapSummary struct {
	Category string        `json:"category"`
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Level    content.Level `json:"level"`
	Topics   int           `json:"topics"`
	Duration string        `json:"duration"`
	Basics   bool          `json:"basics"`
}

func summarize(categories []*content.Category) []roadmapSummary {
	var out []roadmapSummary
	for _, c := range categories {
		groups := content.PartitionRoadmaps(c)
		for _, r := range groups.Basics {
			out = append(out, roadmapSummary{c.ID, r.ID, r.Title, r.Level, r.TotalTopics(), r.Duration, true})
		}
		for _, r := range groups.Main {
			out = append(out, roadmapSummary{c.ID, r.ID, r.Title, r.Level, r.TotalTopics(), r.Duration, false})
		}
	}
	return out
}

var roadmapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roadmaps (optionally for one category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")

		_, _, tree, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		categories := tree.Categories()
		if categoryID != "" {
			c, ok := tree.FindCategory(categoryID)
			if !ok {
				return fmt.Errorf("no category %q", categoryID)
			}
			categories = []*content.Category{c}
		}

		rows := summarize(categories)
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, rows)
		}

		fmt.Fprintf(out, "%-10s  %-18s  %-32s  %-12s  %6s  %s\n",
			"Category", "ID", "Title", "Level", "Topics", "Duration")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, r := range rows {
			title := r.Title
			if r.Basics {
				title = "★ " + title
			}
			fmt.Fprintf(out, "%-10s  %-18s  %s  %-12s  %6d  %s\n",
				r.Category, r.ID, layout.PadRight(title, 32), r.Level, r.Topics, r.Duration)
		}
		fmt.Fprintf(out, "\n%d roadmaps\n", len(rows))
		return nil
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show <category> <roadmap>",
	Short: "Show the phases and topics of a roadmap",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		_, _, tree, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		r, ok := tree.FindRoadmap(args[0], args[1])
		if !ok {
			return fmt.Errorf("no roadmap %q in category %q", args[1], args[0])
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, r)
		}

		fmt.Fprintf(out, "%s %s  [%s · %s · %d topics]\n", r.Icon, r.Title, r.Level, r.Duration, r.TotalTopics())
		if r.Description != "" {
			fmt.Fprintln(out, r.Description)
		}
		for _, p := range r.Phases {
			fmt.Fprintf(out, "\nPhase %d: %s\n", p.Number, p.Name)
			for _, t := range p.Topics {
				fmt.Fprintf(out, "  %s %-20s  %-12s  %5.1fh  %s\n",
					t.Difficulty.Icon(), t.ID, t.Difficulty, t.EstimatedHours, t.Title)
			}
		}
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	roadmapListCmd.Flags().String("category", "", "Only list roadmaps of this category")
	roadmapListCmd.Flags().Bool("json", false, "Print JSON")
	roadmapShowCmd.Flags().Bool("json", false, "Print JSON")

	roadmapCmd.AddCommand(roadmapListCmd)
	roadmapCmd.AddCommand(roadmapShowCmd)
}
