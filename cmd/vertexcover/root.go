package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/internal/config"
	"github.com/katalvlaran/vertexcover/internal/ctxlog"
	"github.com/katalvlaran/vertexcover/internal/ui"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOutput bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vertexcover",
		Short: "Benchmark exact and approximate vertex cover algorithms",
		Long: `vertexcover computes a vertex cover of an undirected graph dataset.

The exact algorithm is a branch-and-bound search; the approximations are a
naive edge scan, a maximal-matching 2-approximation and a max-degree greedy
H(max degree)-approximation. "run" times one algorithm, "all" compares them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file (default $"+config.EnvConfig+" or the user config dir)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddGroup(
		&cobra.Group{ID: "bench", Title: "Benchmarks:"},
		&cobra.Group{ID: "data", Title: "Datasets:"},
	)
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newAllCmd(a))
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newAlgorithmsCmd(a))

	return root
}

// setup loads the config, lets explicitly set flags win, and installs the
// logger on the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("json") {
		cfg.JSON = a.jsonOutput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetColor(!a.noColor && ui.ShouldUseColor())

	a.logger = ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if cfg.Source != "" {
		a.logger.Debug("Config loaded", "path", cfg.Source)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, a.logger))

	return nil
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	if err := ui.JSON(cmd.OutOrStdout(), v); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}
