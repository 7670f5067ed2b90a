package pipeline

import (
	"bytes"

	rlio "github.com/matzehuels/raylayout/pkg/io"
	"github.com/matzehuels/raylayout/pkg/rect"
	"github.com/matzehuels/raylayout/pkg/scene"
)

// Loaded is the output of the load stage.
type Loaded struct {
	// Scene holds the pipelines to run. It is nil for tree documents.
	Scene *scene.Scene

	// Tree is the tree as loaded, before any operation has run.
	Tree *rect.Tree
}

// OpCount returns the number of operations the layout stage will run.
func (l *Loaded) OpCount() int {
	if l.Scene == nil {
		return 0
	}
	return l.Scene.OpCount()
}

// Load parses opts.Input according to opts.InputKind.
func Load(opts Options) (*Loaded, error) {
	switch opts.InputKind {
	case InputTree:
		t, err := rlio.ReadJSON(bytes.NewReader(opts.Input))
		if err != nil {
			return nil, err
		}
		return &Loaded{Tree: t}, nil
	default:
		format := scene.FormatTOML
		if opts.InputKind == InputJSON {
			format = scene.FormatJSON
		}
		s, err := scene.Parse(opts.Input, format)
		if err != nil {
			return nil, err
		}
		return &Loaded{Scene: s, Tree: s.Tree}, nil
	}
}
