package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/layout"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// Format is the encoding of a scene file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name. The empty string means TOML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown scene format %q (want toml or json)", s)
}

// FormatFromPath picks the format from a file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// NodeSpec is one node as written in a scene file.
type NodeSpec struct {
	Name     string     `toml:"name" json:"name,omitempty"`
	X        float64    `toml:"x" json:"x,omitempty"`
	Y        float64    `toml:"y" json:"y,omitempty"`
	Width    *float64   `toml:"width" json:"width,omitempty"`
	Height   *float64   `toml:"height" json:"height,omitempty"`
	Color    string     `toml:"color" json:"color,omitempty"`
	Label    string     `toml:"label" json:"label,omitempty"`
	Ops      []string   `toml:"ops" json:"ops,omitempty"`
	Children []NodeSpec `toml:"children" json:"children,omitempty"`
}

// Scene is a built tree plus the pipelines still to run on it.
type Scene struct {
	Tree *rect.Tree
	Ops  map[rect.NodeID][]layout.Op
}

// Parse decodes and builds a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	var root NodeSpec
	switch format {
	case FormatTOML, "":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&root)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", extra[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&root); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown scene format %q", format)
	}
	return Build(root)
}

// Load reads a scene file, choosing the format from its extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build turns a decoded root spec into a scene.
func Build(root NodeSpec) (*Scene, error) {
	if root.Width == nil || root.Height == nil {
		return nil, errors.New(errors.ErrCodeInvalidScene, "root must set width and height")
	}
	rn, err := toNode(root, "root")
	if err != nil {
		return nil, err
	}

	s := &Scene{Tree: rect.New(rn), Ops: make(map[rect.NodeID][]layout.Op)}
	if err := s.addOps(rect.RootID, root, "root"); err != nil {
		return nil, err
	}
	if err := s.addChildren(rect.RootID, root.Children, "root"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) addChildren(parent rect.NodeID, specs []NodeSpec, path string) error {
	for i, spec := range specs {
		where := fmt.Sprintf("%s.children[%d]", path, i)
		if spec.Name != "" {
			where = spec.Name
		}
		n, err := toNode(spec, where)
		if err != nil {
			return err
		}
		id, err := s.Tree.Add(parent, n)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if err := s.addOps(id, spec, where); err != nil {
			return err
		}
		if err := s.addChildren(id, spec.Children, where); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) addOps(id rect.NodeID, spec NodeSpec, where string) error {
	if len(spec.Ops) == 0 {
		return nil
	}
	ops, err := layout.ParseOps(spec.Ops)
	if err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	s.Ops[id] = ops
	return nil
}

func toNode(spec NodeSpec, where string) (rect.Node, error) {
	n := rect.Node{
		Name:  spec.Name,
		X:     spec.X,
		Y:     spec.Y,
		W:     1,
		H:     1,
		Color: spec.Color,
		Label: spec.Label,
	}
	if spec.Width != nil {
		n.W = *spec.Width
	}
	if spec.Height != nil {
		n.H = *spec.Height
	}
	if n.W < 0 || n.H < 0 {
		return n, errors.New(errors.ErrCodeInvalidScene, "%s: negative size %gx%g", where, n.W, n.H)
	}
	if n.Color != "" {
		if _, err := csscolorparser.Parse(n.Color); err != nil {
			return n, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s: color %q", where, n.Color)
		}
	}
	return n, nil
}

// Apply runs every pipeline against e, which must wrap s.Tree. Nodes run
// children first; the first failing pipeline stops the run.
func (s *Scene) Apply(e *layout.Engine) error {
	var err error
	e.Tree.WalkPost(func(id rect.NodeID) bool {
		ops := s.Ops[id]
		if len(ops) == 0 {
			return true
		}
		if err = e.Node(id).Apply(ops...).Err(); err != nil {
			err = fmt.Errorf("%s: %w", describe(e.Tree, id), err)
			return false
		}
		return true
	})
	return err
}

// Layout runs the scene on a copy of its tree and returns the result,
// leaving s reusable.
func (s *Scene) Layout(opts ...layout.Option) (*rect.Tree, error) {
	t := s.Tree.Clone()
	if err := s.Apply(layout.NewEngine(t, opts...)); err != nil {
		return nil, err
	}
	return t, nil
}

// OpCount returns the number of queued operations across all nodes.
func (s *Scene) OpCount() int {
	total := 0
	for _, ops := range s.Ops {
		total += len(ops)
	}
	return total
}

func describe(t *rect.Tree, id rect.NodeID) string {
	if n, ok := t.Node(id); ok && n.Name != "" {
		return fmt.Sprintf("node %q", n.Name)
	}
	return fmt.Sprintf("node %d", id)
}
