package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// FromDocument rebuilds a tree from its flat form.
//
// The first node is the root and must have parent -1; every later node must
// name a parent that appears before it. Ids must match array positions.
func FromDocument(doc Document) (*rect.Tree, error) {
	if len(doc.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no nodes")
	}

	ids := make([]rect.NodeID, len(doc.Nodes))
	var t *rect.Tree
	for i, n := range doc.Nodes {
		if n.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %d: id %d out of sequence", i, n.ID)
		}
		node := rect.Node{Name: n.Name, X: n.X, Y: n.Y, W: n.W, H: n.H, Color: n.Color, Label: n.Label}
		if node.Color != "" {
			if _, err := csscolorparser.Parse(node.Color); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %d: color %q", i, node.Color)
			}
		}
		if i == 0 {
			if n.Parent != -1 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "root must have parent -1, got %d", n.Parent)
			}
			t = rect.New(node)
			ids[0] = rect.RootID
			continue
		}
		if n.Parent < 0 || n.Parent >= i {
			return nil, errors.New(errors.ErrCodeUnknownNode, "node %d: parent %d not declared before it", i, n.Parent)
		}
		id, err := t.Add(ids[n.Parent], node)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		ids[i] = id
	}
	return t, nil
}

// ReadJSON decodes a [Document] from r into a tree.
//
// The input must be an object with a "nodes" array:
//
//	{
//	  "width": 100, "height": 50,
//	  "nodes": [
//	    {"id": 0, "parent": -1, "x": 0, "y": 0, "w": 100, "h": 50},
//	    {"id": 1, "parent": 0, "name": "a", "x": 10, "y": 10, "w": 20, "h": 20}
//	  ]
//	}
//
// The top-level width and height are informational; the root node's own
// size wins. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*rect.Tree, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	return FromDocument(doc)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
func ImportJSON(path string) (*rect.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
