package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vertexcover/cover"
)

var (
	// ErrParse is returned for malformed input: bad tokens, missing headers,
	// wrong counts.
	ErrParse = errors.New("dataset: parse error")

	// ErrUnknownFormat is returned for an unrecognised format name.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrInvalidGraph is returned when the input is well-formed but is not a
	// simple undirected graph. errors.Is also matches cover.ErrInvalidGraph.
	ErrInvalidGraph = errors.New("dataset: invalid graph")
)

// invalidGraphError carries both the dataset and the cover sentinel.
type invalidGraphError struct{ msg string }

func (e *invalidGraphError) Error() string { return ErrInvalidGraph.Error() + ": " + e.msg }

func (e *invalidGraphError) Unwrap() []error {
	return []error{ErrInvalidGraph, cover.ErrInvalidGraph}
}

func invalidf(format string, args ...any) error {
	return &invalidGraphError{msg: fmt.Sprintf(format, args...)}
}

func parsef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)
}
