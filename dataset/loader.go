package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/internal/ctxlog"
)

// Loader turns a dataset path into a graph.
type Loader interface {
	Load(ctx context.Context, path string) (*core.Graph, error)
}

// FileLoader reads graphs from the local filesystem.
type FileLoader struct {
	// Format forces a format; empty picks one by extension.
	Format Format
	// Lenient skips duplicate edges instead of rejecting the file.
	Lenient bool
}

// Option configures a FileLoader.
type Option func(*FileLoader)

// WithFormat forces the input format instead of detecting it by extension.
func WithFormat(f Format) Option {
	return func(l *FileLoader) { l.Format = f }
}

// WithLenientDuplicates makes the loader skip repeated edges. Many published
// DIMACS instances list every edge in both orientations.
func WithLenientDuplicates() Option {
	return func(l *FileLoader) { l.Lenient = true }
}

// NewLoader returns a FileLoader.
func NewLoader(opts ...Option) *FileLoader {
	l := &FileLoader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load opens path and decodes it.
func (l *FileLoader) Load(ctx context.Context, path string) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	format := l.Format
	if format == "" {
		format = FormatFromPath(path)
	}
	logger.Debug("Loading dataset", "path", path, "format", format)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := decode(ctx, f, filepath.Base(path), format, l.Lenient)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dataset loaded", "path", path, "nodes", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// Decode reads a graph in the given format from r; name appears in errors.
func Decode(ctx context.Context, r io.Reader, name string, format Format) (*core.Graph, error) {
	return decode(ctx, r, name, format, false)
}

func decode(ctx context.Context, r io.Reader, name string, format Format, lenient bool) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := newAssembler(name, lenient)

	var err error
	switch format {
	case EdgeList:
		err = readEdgeList(ctx, r, a)
	case DIMACS:
		err = readDIMACS(ctx, r, a)
	case JSON:
		err = readJSON(r, a)
	case HCL:
		err = readHCL(r, a)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if a.skipped > 0 {
		ctxlog.FromContext(ctx).Warn("Skipped duplicate edges", "file", name, "count", a.skipped)
	}

	return a.g, nil
}
