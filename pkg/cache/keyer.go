package cache

// LayoutKeyOpts holds everything besides the scene that changes a layout.
type LayoutKeyOpts struct {
	Measurer string `json:"measurer,omitempty"` // Name of the text measurer
}

// ArtifactKeyOpts holds everything besides the layout that changes an
// artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Labels     bool    `json:"labels,omitempty"`
	Outlines   bool    `json:"outlines,omitempty"`
	Detailed   bool    `json:"detailed,omitempty"`
	Background string  `json:"background,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys the laid-out tree of a scene with the given hash.
	LayoutKey(sceneHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys one rendered output of a layout with the given hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<hash>" and "artifact:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return stageKey("layout", sceneHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return stageKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
