package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/measure"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// Engine runs directional operations against one tree. Like the tree itself,
// it must not be used from several goroutines at once.
type Engine struct {
	Tree     *rect.Tree
	Measurer measure.Measurer
	Logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMeasurer sets the measurement collaborator used by StretchToChildren.
func WithMeasurer(m measure.Measurer) Option {
	return func(e *Engine) { e.Measurer = m }
}

// WithLogger sets the logger that records committed operations at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.Logger = l }
}

// NewEngine creates an engine for t. Without options it measures text with
// [measure.Default] and logs nowhere.
func NewEngine(t *rect.Tree, opts ...Option) *Engine {
	e := &Engine{Tree: t}
	for _, opt := range opts {
		opt(e)
	}
	if e.Measurer == nil {
		e.Measurer = measure.Default()
	}
	if e.Logger == nil {
		e.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return e
}

// Node returns a handle on id. An unknown id yields a handle whose Err is
// UNKNOWN_NODE.
func (e *Engine) Node(id rect.NodeID) Handle {
	h := Handle{e: e, id: id}
	if !e.Tree.Has(id) {
		h.err = errors.New(errors.ErrCodeUnknownNode, "node %d does not exist", id)
	}
	return h
}

// Lookup returns a handle on the node with the given name.
func (e *Engine) Lookup(name string) Handle {
	id, ok := e.Tree.Lookup(name)
	if !ok {
		return Handle{e: e, id: rect.NoNode, err: errors.New(errors.ErrCodeUnknownNode, "no node named %q", name)}
	}
	return Handle{e: e, id: id}
}
