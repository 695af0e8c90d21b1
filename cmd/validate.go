package cmd

import (
	"fmt"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content document against the schema and integrity rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tree   *content.Tree
			err    error
			source = "built-in content"
		)
		if len(args) == 1 {
			source = args[0]
			tree, err = content.LoadFile(args[0])
		} else {
			tree, err = content.Default()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}

		roadmaps := 0
		for _, c := range tree.Categories() {
			roadmaps += len(c.Roadmaps)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d categories, %d roadmaps, %d topics)\n",
			source, len(tree.Categories()), roadmaps, tree.TopicCount())
		return nil
	},
}
