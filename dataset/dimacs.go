package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// idComment prefixes the DIMACS comment lines Write uses to keep original
// node IDs: "c id <number> <original>".
const idComment = "id"

// readDIMACS parses the DIMACS graph format.
func readDIMACS(ctx context.Context, r io.Reader, a *assembler) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		line      int
		n, m      int
		seenP     bool
		edges     int
		originals = map[string]string{}
	)
	// name maps a DIMACS number to the node ID, honouring "c id" comments.
	name := func(num string) string {
		if id, ok := originals[num]; ok {
			return id
		}
		return num
	}

	for sc.Scan() {
		line++
		if line%ctxPollLines == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c":
			if len(fields) == 4 && fields[1] == idComment {
				if seenP {
					return parsef("%s: line %d: id comment after problem line", a.name, line)
				}
				originals[fields[2]] = fields[3]
			}
		case "p":
			if seenP {
				return parsef("%s: line %d: second problem line", a.name, line)
			}
			if len(fields) != 4 || (fields[1] != "edge" && fields[1] != "col") {
				return parsef("%s: line %d: want \"p edge N M\", got %q", a.name, line, sc.Text())
			}
			var err error
			if n, err = strconv.Atoi(fields[2]); err != nil || n < 0 {
				return parsef("%s: line %d: bad node count %q", a.name, line, fields[2])
			}
			if m, err = strconv.Atoi(fields[3]); err != nil || m < 0 {
				return parsef("%s: line %d: bad edge count %q", a.name, line, fields[3])
			}
			seenP = true
			at := fmt.Sprintf("line %d", line)
			for i := 1; i <= n; i++ {
				if err := a.node(name(strconv.Itoa(i)), at); err != nil {
					return err
				}
			}
			a.declared = true
		case "e":
			if !seenP {
				return parsef("%s: line %d: edge before problem line", a.name, line)
			}
			if len(fields) < 3 {
				return parsef("%s: line %d: want \"e u v\", got %q", a.name, line, sc.Text())
			}
			for _, f := range fields[1:3] {
				if k, err := strconv.Atoi(f); err != nil || k < 1 || k > n {
					return invalidf("%s: line %d: node %q outside 1..%d", a.name, line, f, n)
				}
			}
			edges++
			if err := a.edge(name(fields[1]), name(fields[2]), fmt.Sprintf("line %d", line)); err != nil {
				return err
			}
		default:
			// "n" (node weights) and other DIMACS descriptors carry nothing we use.
		}
	}
	if err := sc.Err(); err != nil {
		return parsef("%s: line %d: %v", a.name, line+1, err)
	}
	if !seenP {
		return parsef("%s: missing problem line", a.name)
	}
	if edges != m {
		return parsef("%s: problem line declares %d edges, found %d", a.name, m, edges)
	}

	return nil
}
