package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/ui"
)

type algorithmInfo struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Guarantee string `json:"guarantee"`
}

func algorithmInfos() []algorithmInfo {
	guarantees := map[cover.Algorithm]string{
		cover.Exact:            "optimal",
		cover.NaiveApprox:      "none",
		cover.GreedyLogNApprox: "H(max degree) x optimal",
		cover.Greedy2Approx:    "2 x optimal",
	}
	out := make([]algorithmInfo, 0, len(cover.Algorithms()))
	for _, alg := range cover.Algorithms() {
		out = append(out, algorithmInfo{
			Code:      alg.Code(),
			Label:     alg.Label(),
			Guarantee: guarantees[alg],
		})
	}
	return out
}

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := algorithmInfos()
			if a.cfg.JSON {
				return a.printJSON(cmd, infos)
			}
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.Code, info.Label, info.Guarantee})
			}
			if err := ui.Table(cmd.OutOrStdout(), []string{"Code", "Algorithm", "Guarantee"}, rows); err != nil {
				return fmt.Errorf("print: %w", err)
			}
			return nil
		},
	}
}
