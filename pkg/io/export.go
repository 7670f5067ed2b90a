package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/raylayout/pkg/rect"
)

// Document is the flat JSON form of a tree. Nodes appear parents first, and
// each refers to its parent by position in the array.
type Document struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Nodes  []Node  `json:"nodes"`
}

// Node is one entry of a [Document].
type Node struct {
	ID     int     `json:"id"`
	Parent int     `json:"parent"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Color  string  `json:"color,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// ToDocument flattens t in depth-first order. The root gets id 0 and
// parent -1.
func ToDocument(t *rect.Tree) Document {
	root := t.MustNode(rect.RootID)
	doc := Document{Width: root.W, Height: root.H, Nodes: make([]Node, 0, t.Len())}

	index := make(map[rect.NodeID]int, t.Len())
	t.Walk(func(id rect.NodeID) bool {
		n := t.MustNode(id)
		parent := -1
		if p, err := t.Parent(id); err == nil {
			parent = index[p]
		}
		index[id] = len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, Node{
			ID:     len(doc.Nodes),
			Parent: parent,
			Name:   n.Name,
			X:      n.X,
			Y:      n.Y,
			W:      n.W,
			H:      n.H,
			Color:  n.Color,
			Label:  n.Label,
		})
		return true
	})
	return doc
}

// WriteJSON encodes a tree as an indented [Document] and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(t *rect.Tree, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
func ExportJSON(t *rect.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
