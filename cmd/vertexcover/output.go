package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/vertexcover/internal/ui"
	"github.com/katalvlaran/vertexcover/runner"
)

func printOne(w io.Writer, rep *runner.Report) error {
	for _, row := range rep.Rows {
		if _, err := fmt.Fprintf(w,
			"Computed vertex cover for the graph specified in '%s' consists of %d nodes. Running time is %s seconds.\n",
			rep.Dataset, row.CoverSize, seconds(row.Seconds)); err != nil {
			return err
		}
		printPlot(w, row)
	}
	return nil
}

func printAll(w io.Writer, rep *runner.Report) error {
	rows := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		rows = append(rows, []string{row.Label, strconv.Itoa(row.CoverSize), seconds(row.Seconds)})
	}
	if err := ui.Table(w, []string{"Algorithm", "Computed Vertex Cover Size", "Running Time (seconds)"}, rows); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		printPlot(w, row)
	}
	return nil
}

func printPlot(w io.Writer, row runner.Row) {
	if row.PlotFile != "" {
		fmt.Fprintln(w, ui.RenderMuted(fmt.Sprintf("%s plot saved to %s", row.Label, row.PlotFile)))
	}
}

// seconds formats s rounded to four decimals.
func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 4, 64)
}
