package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sankalan/internal/detail"
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Inspect topics",
}

var topicShowCmd = &cobra.Command{
	Use:   "show <roadmap> <topic>",
	Short: "Show the detail panel of a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		_, _, tree, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		t, ok := tree.FindTopic(args[0], args[1])
		if !ok {
			return fmt.Errorf("no topic %q in roadmap %q", args[1], args[0])
		}
		v := detail.Project(t)

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, v)
		}

		fmt.Fprintf(out, "[%s] %s\n", v.BadgeLabel, v.Title)
		fmt.Fprintf(out, "%s %s · %.1f hours · %d key points\n",
			v.Difficulty.Icon(), v.Difficulty, v.Hours, v.KeyPointCount)
		if v.Description != "" {
			fmt.Fprintf(out, "\n%s\n", v.Description)
		}
		if len(v.KeyPoints) > 0 {
			fmt.Fprintln(out, "\nKey points")
			for _, kp := range v.KeyPoints {
				fmt.Fprintf(out, "  • %s\n", kp)
			}
		}
		for _, sec := range v.Sections() {
			fmt.Fprintf(out, "\n%s\n", sec.Title)
			for _, item := range sec.Items {
				fmt.Fprintf(out, "  · %s\n", item)
			}
		}
		if v.Resources != nil {
			fmt.Fprintf(out, "\n%s\n", v.Resources.Title)
			for _, r := range v.Resources.Resources {
				line := fmt.Sprintf("  [%s] %s", r.Type, r.Title)
				if r.Duration != "" {
					line += " (" + r.Duration + ")"
				}
				if r.URL != "" {
					line += "  " + r.URL
				}
				fmt.Fprintln(out, line)
			}
		}
		if prereqs := tree.Prerequisites(t); len(prereqs) > 0 {
			names := make([]string, len(prereqs))
			for i, p := range prereqs {
				names[i] = p.Name
			}
			fmt.Fprintf(out, "\nRequires: %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var topicSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search topics across all roadmaps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		_, _, tree, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		results := tree.Search(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No matching topics.")
			return nil
		}
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		fmt.Fprintf(out, "%-10s  %-18s  %-18s  %s\n", "Category", "Roadmap", "Topic", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, r := range results {
			t := r.Topic
			fmt.Fprintf(out, "%-10s  %-18s  %-18s  %s\n", t.CategoryID, t.RoadmapID, t.ID, t.Title)
		}
		return nil
	},
}

func init() {
	topicShowCmd.Flags().Bool("json", false, "Print JSON")
	topicSearchCmd.Flags().Int("limit", 10, "Maximum results (0 = all)")

	topicCmd.AddCommand(topicShowCmd)
	topicCmd.AddCommand(topicSearchCmd)
}
