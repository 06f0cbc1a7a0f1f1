package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a dataset file format.
type Format string

// Supported formats.
const (
	EdgeList Format = "edgelist"
	DIMACS   Format = "dimacs"
	JSON     Format = "json"
	HCL      Format = "hcl"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{EdgeList, DIMACS, JSON, HCL}
}

var extensions = map[string]Format{
	".txt":    EdgeList,
	".edges":  EdgeList,
	".el":     EdgeList,
	".col":    DIMACS,
	".dimacs": DIMACS,
	".clq":    DIMACS,
	".json":   JSON,
	".hcl":    HCL,
}

// FormatFromPath picks the format by file extension; unknown extensions
// are read as edge lists.
func FormatFromPath(path string) Format {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return EdgeList
}

// ParseFormat maps a name ("edgelist", "dimacs", "json", "hcl", or the
// aliases "txt", "el", "col") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edgelist", "edge-list", "txt", "el", "edges":
		return EdgeList, nil
	case "dimacs", "col":
		return DIMACS, nil
	case "json":
		return JSON, nil
	case "hcl":
		return HCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the canonical file extension for f.
func (f Format) Ext() string {
	switch f {
	case DIMACS:
		return ".col"
	case JSON:
		return ".json"
	case HCL:
		return ".hcl"
	default:
		return ".txt"
	}
}
