package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abhisek/sankalan/internal/config"
	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/events"
	"github.com/abhisek/sankalan/internal/export"
	"github.com/abhisek/sankalan/internal/logging"
	"github.com/abhisek/sankalan/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sankalan",
	Short: "Browse learning roadmaps in the terminal",
	Long: "Sankalan: drill down from categories to roadmaps to topics, read topic notes\n" +
		"and practice questions, and export any roadmap view as a PDF.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/sankalan/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite export history (overrides SANKALAN_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a content document (YAML or JSON) instead of the built-in roadmaps")
	rootCmd.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig layers defaults, the config file, SANKALAN_* env vars and
// finally persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DB = v
	}
	if v, _ := cmd.Flags().GetString("content"); v != "" {
		cfg.Content = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from config (flag or env
// already applied), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// loadTree returns the configured content tree, or the built-in one.
func loadTree(cfg config.Config) (*content.Tree, error) {
	if cfg.Content == "" {
		return content.Default()
	}
	return content.LoadFile(cfg.Content)
}

// setup loads config, logger and content for a command. The closer must
// be closed when the command is done.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, *content.Tree, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	tree, err := loadTree(cfg)
	if err != nil {
		closer.Close()
		return cfg, nil, nil, nil, fmt.Errorf("load content: %w", err)
	}
	logger.Debug("content loaded", "source", cfg.Content, "topics", tree.TopicCount())
	return cfg, logger, tree, closer, nil
}

// exportOptions translates the export config into exporter options.
func exportOptions(cfg config.ExportConfig, repo store.ExportRepo, logger *slog.Logger) ([]export.Option, error) {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	renderer, err := export.RendererFor(format)
	if err != nil {
		return nil, err
	}
	opts := []export.Option{
		export.WithRenderer(renderer),
		export.WithDir(cfg.Dir),
		export.WithPrefix(cfg.Prefix),
		export.WithLogger(logger),
	}
	if repo != nil {
		opts = append(opts, export.WithRepo(repo))
	}
	return opts, nil
}

// openHistory opens the export history store. Callers treat a failure as
// "no history" rather than fatal.
func openHistory(cfg config.Config) (*store.Store, error) {
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

// pruneHistory trims the export log to keep entries when keep > 0.
func pruneHistory(ctx context.Context, repo store.ExportRepo, keep int, logger *slog.Logger) {
	if keep <= 0 {
		return
	}
	n, err := repo.Prune(ctx, keep)
	if err != nil {
		logger.Warn("prune export history failed", "error", err)
		return
	}
	if n > 0 {
		logger.Info("pruned export history", "removed", n, "kept", keep)
	}
}

// eventsClient returns a client for cfg, or nil when no URL is set.
func eventsClient(cfg config.EventsConfig) *events.Client {
	if cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return events.NewClient(cfg.URL, events.WithTimeout(timeout))
}
