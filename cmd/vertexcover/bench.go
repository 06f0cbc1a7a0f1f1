package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/dataset"
	"github.com/katalvlaran/vertexcover/render"
	"github.com/katalvlaran/vertexcover/runner"
)

// benchFlags are shared by "run" and "all".
type benchFlags struct {
	dataset    string
	format     string
	lenient    bool
	visualize  bool
	plotPath   string
	plotFormat string
	timeLimit  time.Duration
	verify     bool
}

func (f *benchFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.dataset, "dataset", "d", "", "path to the dataset file")
	fl.StringVar(&f.format, "format", "", "dataset format: edgelist, dimacs, json or hcl (default by extension)")
	fl.BoolVar(&f.lenient, "lenient", false, "skip duplicate edges instead of rejecting the dataset")
	fl.BoolVar(&f.visualize, "visualize", false, "render each computed cover")
	fl.StringVar(&f.plotPath, "plot-path", ".", "directory in which to save the visualization plots")
	fl.StringVar(&f.plotFormat, "plot-format", "svg", "plot format: svg or dot")
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "abort the exact search after this long (0 = no limit)")
	fl.BoolVar(&f.verify, "verify", false, "check that every cover covers all edges")
}

// request merges the config with explicitly set flags and builds the runner.
func (a *app) request(cmd *cobra.Command, f *benchFlags) (*runner.Runner, runner.Request, error) {
	cfg := *a.cfg
	fl := cmd.Flags()
	if fl.Changed("dataset") {
		cfg.Dataset = f.dataset
	}
	if fl.Changed("plot-path") {
		cfg.PlotPath = f.plotPath
	}
	if fl.Changed("plot-format") {
		cfg.PlotFormat = f.plotFormat
	}
	if fl.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fl.Changed("verify") {
		cfg.Verify = f.verify
	}
	if err := cfg.Validate(); err != nil {
		return nil, runner.Request{}, err
	}
	if strings.TrimSpace(cfg.Dataset) == "" {
		return nil, runner.Request{}, fmt.Errorf("required flag \"dataset\" not set")
	}

	var lopts []dataset.Option
	if f.format != "" {
		format, err := dataset.ParseFormat(f.format)
		if err != nil {
			return nil, runner.Request{}, err
		}
		lopts = append(lopts, dataset.WithFormat(format))
	}
	if f.lenient {
		lopts = append(lopts, dataset.WithLenientDuplicates())
	}

	var rend render.Renderer
	if f.visualize {
		var err error
		if rend, err = render.New(cfg.PlotFormat); err != nil {
			return nil, runner.Request{}, err
		}
	}

	r, err := runner.New(dataset.NewLoader(lopts...), rend)
	if err != nil {
		return nil, runner.Request{}, err
	}

	return r, runner.Request{
		Dataset:   cfg.Dataset,
		Visualize: f.visualize,
		PlotPath:  cfg.PlotPath,
		TimeLimit: cfg.TimeLimit,
		Verify:    cfg.Verify,
	}, nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		f    benchFlags
		algo string
	)
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"specific"},
		Short:   "Run a specific algorithm on a dataset",
		GroupID: "bench",
		Example: `  vertexcover run -d graph.txt
  vertexcover run -d queen8_8.col -a greedy-2 --visualize --plot-path plots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := cover.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			r, req, err := a.request(cmd, &f)
			if err != nil {
				return err
			}
			req.Algorithm = alg

			rep, err := r.RunOne(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				return a.printJSON(cmd, rep)
			}
			return printOne(cmd.OutOrStdout(), rep)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&algo, "algorithm", "a", cover.Exact.Code(),
		"algorithm: "+strings.Join(cover.Codes(), ", "))

	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	var (
		f            benchFlags
		excludeExact bool
	)
	cmd := &cobra.Command{
		Use:     "all",
		Short:   "Run all algorithms on a dataset and compare them",
		GroupID: "bench",
		Example: `  vertexcover all -d graph.txt
  vertexcover all -d big.col --exclude-exact --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, req, err := a.request(cmd, &f)
			if err != nil {
				return err
			}
			req.ExcludeExact = a.cfg.ExcludeExact
			if cmd.Flags().Changed("exclude-exact") {
				req.ExcludeExact = excludeExact
			}

			rep, err := r.RunAll(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				return a.printJSON(cmd, rep)
			}
			return printAll(cmd.OutOrStdout(), rep)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&excludeExact, "exclude-exact", false, "skip the exact algorithm")

	return cmd
}
