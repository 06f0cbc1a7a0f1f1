package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ctxPollLines is how many lines the line readers parse between context checks.
const ctxPollLines = 4096

// readEdgeList parses "u v" lines. Nodes are implicit; a lone token declares
// an isolated node and any other token count is ErrParse.
func readEdgeList(ctx context.Context, r io.Reader, a *assembler) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if line%ctxPollLines == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		fields := strings.Fields(stripComment(sc.Text()))
		at := fmt.Sprintf("line %d", line)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if !a.g.HasVertex(fields[0]) {
				if err := a.node(fields[0], at); err != nil {
					return err
				}
			}
		case 2:
			if err := a.edge(fields[0], fields[1], at); err != nil {
				return err
			}
		default:
			return parsef("%s: %s: want \"u v\", got %q", a.name, at, strings.Join(fields, " "))
		}
	}
	if err := sc.Err(); err != nil {
		return parsef("%s: line %d: %v", a.name, line+1, err)
	}

	return nil
}

// stripComment cuts s at the first '#' or '%'.
func stripComment(s string) string {
	if i := strings.IndexAny(s, "#%"); i >= 0 {
		return s[:i]
	}
	return s
}
