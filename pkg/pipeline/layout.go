package pipeline

import (
	"github.com/matzehuels/raylayout/pkg/layout"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// ComputeLayout runs the loaded scene's pipelines on a copy of its tree.
// Tree documents are already laid out and come back unchanged.
func ComputeLayout(l *Loaded, opts Options) (*rect.Tree, error) {
	if l.Scene == nil {
		return l.Tree, nil
	}
	return l.Scene.Layout(
		layout.WithMeasurer(opts.NewMeasurer()),
		layout.WithLogger(opts.Logger),
	)
}
