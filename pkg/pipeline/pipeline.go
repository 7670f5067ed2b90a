// Package pipeline provides the load → layout → render pipeline for raylayout.
//
// This package runs the same stages for the CLI and the HTTP API, so both
// entry points cache, log and validate identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse a scene (TOML or JSON) or a laid-out tree document
//  2. Layout: Run every node's operation pipeline, children first
//  3. Render: Generate output in various formats (SVG, PNG, JSON, DOT)
//
// Layouts and artifacts are cached by content hash, so re-rendering an
// unchanged scene in another format skips the layout stage.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   data,
//	    Source:  "card.toml",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/raylayout/pkg/cache"
	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/measure"
	"github.com/matzehuels/raylayout/pkg/render"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultMeasurer measures labels with the built-in 7x13 face.
	DefaultMeasurer = MeasurerText
)

// Measurer names.
const (
	MeasurerText  = "text"
	MeasurerBoxes = "boxes"
)

// Input kinds.
const (
	InputTOML = "toml" // TOML scene
	InputJSON = "json" // JSON scene
	InputTree = "tree" // Laid-out tree document; the layout stage is a no-op
)

// Format constants for output formats.
const (
	FormatSVG      = render.FormatSVG
	FormatPNG      = render.FormatPNG
	FormatJSON     = render.FormatJSON
	FormatDOT      = render.FormatDOT
	FormatNodelink = render.FormatNodelink
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
}

// ValidInputs is the set of supported input kinds.
var ValidInputs = map[string]bool{
	InputTOML: true,
	InputJSON: true,
	InputTree: true,
}

// ValidMeasurers is the set of supported measurer names.
var ValidMeasurers = map[string]bool{
	MeasurerText:  true,
	MeasurerBoxes: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input     []byte `json:"-"`                    // Raw scene or tree document
	InputKind string `json:"input_kind,omitempty"` // toml, json or tree (detected when empty)
	Source    string `json:"source,omitempty"`     // Display name, usually the file path

	// Layout options
	Measurer string `json:"measurer,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Labels     bool     `json:"labels,omitempty"`
	Outlines   bool     `json:"outlines,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // Geometry in nodelink labels
	Background string   `json:"background,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the laid-out tree.
	Tree *rect.Tree

	// InputHash is the content hash of the input.
	InputHash string

	// LayoutHash is the content hash of the laid-out tree document.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	OpCount    int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the laid-out tree came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(render.Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputKind checks that an input kind is valid.
func ValidateInputKind(kind string) error {
	if !ValidInputs[kind] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid input: %q (must be one of: toml, json, tree)", kind)
	}
	return nil
}

// ValidateMeasurer checks that a measurer name is valid.
func ValidateMeasurer(name string) error {
	if !ValidMeasurers[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid measurer: %q (must be one of: text, boxes)", name)
	}
	return nil
}

// DetectInputKind guesses the kind of data named path. A .toml extension
// means a TOML scene; JSON with a top-level "nodes" array is a tree
// document and any other JSON is a scene. Data that is not JSON is treated
// as TOML.
func DetectInputKind(path string, data []byte) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return InputTOML
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return InputTOML
	}
	if _, ok := probe["nodes"]; ok {
		return InputTree
	}
	return InputJSON
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the input and detects its kind.
func (o *Options) ValidateForLoad() error {
	if len(o.Input) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.InputKind == "" {
		o.InputKind = DetectInputKind(o.Source, o.Input)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateInputKind(o.InputKind)
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateMeasurer(o.Measurer)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// IsTree reports whether the input is an already laid-out tree.
func (o *Options) IsTree() bool {
	return o.InputKind == InputTree
}

// NewMeasurer returns the measurer named by o.Measurer.
func (o *Options) NewMeasurer() measure.Measurer {
	if o.Measurer == MeasurerBoxes {
		return measure.Boxes{}
	}
	return measure.Default()
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Measurer: o.Measurer}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Options that cannot change the given format are left out, so toggling
// labels does not invalidate a cached DOT file.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
		fallthrough
	case FormatSVG:
		k.Labels = o.Labels
		k.Outlines = o.Outlines
		k.Background = o.Background
	case FormatDOT, FormatNodelink:
		k.Detailed = o.Detailed
	}
	return k
}

func (o *Options) source() string {
	if o.Source == "" {
		return fmt.Sprintf("<%s input>", o.InputKind)
	}
	return o.Source
}
