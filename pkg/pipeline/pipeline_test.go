package pipeline

import (
	"testing"

	"github.com/matzehuels/raylayout/pkg/cache"
	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/measure"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"dot", false},
		{"nodelink", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateMeasurer(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"text", false},
		{"boxes", false},
		{"freetype", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateMeasurer(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMeasurer(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestDetectInputKind(t *testing.T) {
	tests := []struct {
		path string
		data string
		want string
	}{
		{"card.toml", `{"nodes": []}`, InputTOML},
		{"card.json", `{"width": 10, "height": 10}`, InputJSON},
		{"tree.json", `{"width": 10, "height": 10, "nodes": []}`, InputTree},
		{"", "width = 10\nheight = 10", InputTOML},
		{"-", `{"nodes": [{"id": 0, "parent": -1}]}`, InputTree},
	}

	for _, tt := range tests {
		if got := DetectInputKind(tt.path, []byte(tt.data)); got != tt.want {
			t.Errorf("DetectInputKind(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	// Missing input
	opts := Options{}
	if err := opts.ValidateForLoad(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Missing input error = %v, want INVALID_INPUT", err)
	}

	// Kind is detected
	opts = Options{Input: []byte(`{"width": 1, "height": 1}`)}
	if err := opts.ValidateForLoad(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if opts.InputKind != InputJSON {
		t.Errorf("InputKind = %q, want json", opts.InputKind)
	}
	if opts.Logger == nil {
		t.Error("Logger default not set")
	}

	// Unknown explicit kind
	opts = Options{Input: []byte("x"), InputKind: "yaml"}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Unknown input kind should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Input: []byte("width = 1\nheight = 1")}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalKind := opts.InputKind
	originalMeasurer := opts.Measurer
	originalFormats := opts.Formats

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.InputKind != originalKind {
		t.Error("InputKind changed on second call")
	}
	if opts.Measurer != originalMeasurer {
		t.Error("Measurer changed on second call")
	}
	if len(opts.Formats) != len(originalFormats) {
		t.Error("Formats changed on second call")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Measurer != DefaultMeasurer {
		t.Errorf("Measurer should be %s, got %s", DefaultMeasurer, opts.Measurer)
	}
	if _, ok := opts.NewMeasurer().(*measure.Text); !ok {
		t.Errorf("default measurer is %T, want *measure.Text", opts.NewMeasurer())
	}

	opts.Measurer = MeasurerBoxes
	if _, ok := opts.NewMeasurer().(measure.Boxes); !ok {
		t.Errorf("boxes measurer is %T, want measure.Boxes", opts.NewMeasurer())
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %g, got %g", DefaultScale, opts.Scale)
	}
}

func TestValidateForRenderRejectsNegativeScale(t *testing.T) {
	opts := Options{Scale: -1}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("negative scale accepted")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Scale: 3, Labels: true, Detailed: true, Background: "white"}

	png := opts.ArtifactKeyOpts(FormatPNG)
	if png.Scale != 3 || !png.Labels || png.Background != "white" || png.Detailed {
		t.Errorf("png key opts = %+v", png)
	}
	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.Scale != 0 || !svg.Labels {
		t.Errorf("svg key opts = %+v", svg)
	}
	dot := opts.ArtifactKeyOpts(FormatDOT)
	if dot.Labels || !dot.Detailed {
		t.Errorf("dot key opts = %+v", dot)
	}
	if js := opts.ArtifactKeyOpts(FormatJSON); js != (cache.ArtifactKeyOpts{Format: FormatJSON}) {
		t.Errorf("json key opts = %+v", js)
	}
}
