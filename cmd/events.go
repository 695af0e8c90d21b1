package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/sankalan/internal/events"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show upcoming portal events",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		cfg, logger, _, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		if v, _ := cmd.Flags().GetString("url"); v != "" {
			cfg.Events.URL = v
		}
		client := eventsClient(cfg.Events)
		if client == nil {
			return events.ErrNoURL
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		list, err := client.Fetch(ctx)
		if err != nil {
			logger.Warn("fetch events failed", "url", cfg.Events.URL, "error", err)
			return fmt.Errorf("fetch events: %w", err)
		}
		if !all {
			list = events.Upcoming(list, time.Now())
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No upcoming events.")
			return nil
		}
		fmt.Fprintf(out, "%-10s  %-16s  %s\n", "Date", "Type", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, e := range list {
			fmt.Fprintf(out, "%-10s  %-16s  %s\n", e.Date.Format(time.DateOnly), e.Type, e.Title)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().String("url", "", "Event feed URL (overrides config)")
	eventsCmd.Flags().Bool("all", false, "Include past events")
}
