// Command vertexcover computes vertex covers of graph datasets with an exact
// branch-and-bound search and three approximation heuristics, and compares
// their cover sizes and running times.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/vertexcover/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderBad("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
