package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jsonDoc is the accepted JSON shape; Nodes is a pointer so that an absent
// key and an empty list can be told apart.
type jsonDoc struct {
	Directed bool               `json:"directed"`
	Nodes    *[]json.RawMessage `json:"nodes"`
	Edges    []json.RawMessage  `json:"edges"`
	Links    []json.RawMessage  `json:"links"`
}

type jsonNode struct {
	ID    json.RawMessage `json:"id"`
	X     *float64        `json:"x"`
	Y     *float64        `json:"y"`
	Label *string         `json:"label"`
}

type jsonEdge struct {
	Source json.RawMessage `json:"source"`
	Target json.RawMessage `json:"target"`
}

func readJSON(r io.Reader, a *assembler) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc jsonDoc
	if err := dec.Decode(&doc); err != nil {
		return parsef("%s: %v", a.name, err)
	}
	if doc.Directed {
		return invalidf("%s: directed graphs are not supported", a.name)
	}

	if doc.Nodes != nil {
		for i, raw := range *doc.Nodes {
			if err := a.jsonNode(raw, fmt.Sprintf("nodes[%d]", i)); err != nil {
				return err
			}
		}
		a.declared = true
	}

	if len(doc.Edges) > 0 && len(doc.Links) > 0 {
		return parsef("%s: both \"edges\" and \"links\" are set", a.name)
	}
	edges, key := doc.Edges, "edges"
	if len(doc.Links) > 0 {
		edges, key = doc.Links, "links"
	}
	for i, raw := range edges {
		at := fmt.Sprintf("%s[%d]", key, i)
		u, v, err := jsonEndpoints(raw)
		if err != nil {
			return parsef("%s: %s: %v", a.name, at, err)
		}
		if err := a.edge(u, v, at); err != nil {
			return err
		}
	}

	return nil
}

func (a *assembler) jsonNode(raw json.RawMessage, at string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		id, err := jsonID(raw)
		if err != nil {
			return parsef("%s: %s: %v", a.name, at, err)
		}
		return a.node(id, at)
	}

	var n jsonNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return parsef("%s: %s: %v", a.name, at, err)
	}
	id, err := jsonID(n.ID)
	if err != nil {
		return parsef("%s: %s.id: %v", a.name, at, err)
	}
	if err := a.node(id, at); err != nil {
		return err
	}
	if n.X != nil {
		if err := a.attr(id, "x", *n.X); err != nil {
			return err
		}
	}
	if n.Y != nil {
		if err := a.attr(id, "y", *n.Y); err != nil {
			return err
		}
	}
	if n.Label != nil {
		if err := a.attr(id, "label", *n.Label); err != nil {
			return err
		}
	}

	return nil
}

// jsonEndpoints reads [u, v] or {"source": u, "target": v}.
func jsonEndpoints(raw json.RawMessage) (string, string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var e jsonEdge
		if err := json.Unmarshal(raw, &e); err != nil {
			return "", "", err
		}
		u, err := jsonID(e.Source)
		if err != nil {
			return "", "", fmt.Errorf("source: %w", err)
		}
		v, err := jsonID(e.Target)
		if err != nil {
			return "", "", fmt.Errorf("target: %w", err)
		}
		return u, v, nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return "", "", err
	}
	if len(pair) != 2 {
		return "", "", fmt.Errorf("want a pair, got %d elements", len(pair))
	}
	u, err := jsonID(pair[0])
	if err != nil {
		return "", "", err
	}
	v, err := jsonID(pair[1])
	if err != nil {
		return "", "", err
	}
	return u, v, nil
}

// jsonID accepts a JSON string or number as a node ID.
func jsonID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing node ID")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("node ID must be a string or a number, got %s", raw)
	}
}
