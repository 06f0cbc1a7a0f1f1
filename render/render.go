// SPDX-License-Identifier: MIT
// Package: vertexcover/render
//
// render.go - Renderer contract, format selection, options and file plumbing.

package render

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/ctxlog"
)

var (
	// ErrUnknownFormat is returned by New for an unsupported renderer name.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrNilGraph is returned when Render is called without a graph.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Renderer draws g with the cover in res into dir and returns the file path.
type Renderer interface {
	Render(ctx context.Context, g *core.Graph, res cover.Result, dir string) (string, error)
}

// Format names a renderer.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatDOT Format = "dot"
)

// Formats returns every supported renderer name.
func Formats() []Format { return []Format{FormatSVG, FormatDOT} }

// Default palette.
const (
	DefaultCoverColor = "#e4572e"
	DefaultPlainColor = "#f4f4f4"
	DefaultEdgeColor  = "#9a9a9a"
	DefaultAlertColor = "#c00000"
	DefaultWidth      = 800
	DefaultHeight     = 800
)

// Option configures a renderer.
type Option func(*style)

type style struct {
	coverColor string
	plainColor string
	edgeColor  string
	alertColor string
	width      int
	height     int
	labels     bool
	err        error
}

func defaultStyle() style {
	return style{
		coverColor: DefaultCoverColor,
		plainColor: DefaultPlainColor,
		edgeColor:  DefaultEdgeColor,
		alertColor: DefaultAlertColor,
		width:      DefaultWidth,
		height:     DefaultHeight,
		labels:     true,
	}
}

// WithCoverColor sets the fill of cover nodes and the stroke of edges they cover.
func WithCoverColor(c string) Option {
	return func(s *style) {
		if strings.TrimSpace(c) == "" {
			s.err = fmt.Errorf("%w: empty cover color", ErrOptionViolation)
			return
		}
		s.coverColor = c
	}
}

// WithCanvas sets the SVG viewport in pixels. Both sides must be at least 64.
func WithCanvas(width, height int) Option {
	return func(s *style) {
		if width < 64 || height < 64 {
			s.err = fmt.Errorf("%w: canvas %dx%d smaller than 64x64", ErrOptionViolation, width, height)
			return
		}
		s.width, s.height = width, height
	}
}

// WithoutLabels hides node IDs.
func WithoutLabels() Option {
	return func(s *style) { s.labels = false }
}

// New returns the renderer for name ("svg" or "dot", case-insensitive).
func New(name string, opts ...Option) (Renderer, error) {
	st := defaultStyle()
	for _, opt := range opts {
		if opt != nil {
			opt(&st)
		}
	}
	if st.err != nil {
		return nil, st.err
	}

	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatSVG:
		return &SVG{style: st}, nil
	case FormatDOT:
		return &DOT{style: st}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, name, Formats())
	}
}

// writeFile creates dir if needed and streams body into <dir>/<code><ext>.
func writeFile(ctx context.Context, dir string, res cover.Result, ext string, body func(w *bufio.Writer) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("render: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, res.Algorithm.Code()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := body(bw); err != nil {
		f.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("render: close %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Rendered cover", "path", path, "algorithm", res.Algorithm.Code())

	return path, nil
}

// edgeClass is how many endpoints of an edge the cover holds.
type edgeClass int

const (
	edgeUncovered edgeClass = iota
	edgeSingle
	edgeDouble
)

func classify(e *core.Edge, in map[string]struct{}) edgeClass {
	_, a := in[e.From]
	_, b := in[e.To]
	switch {
	case a && b:
		return edgeDouble
	case a || b:
		return edgeSingle
	default:
		return edgeUncovered
	}
}

func caption(g *core.Graph, res cover.Result) string {
	return fmt.Sprintf("%s: %d of %d nodes", res.Algorithm.Label(), res.Size(), g.VertexCount())
}
