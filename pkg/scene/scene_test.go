package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/layout"
	"github.com/matzehuels/raylayout/pkg/rect"
)

const cardTOML = `
name = "stage"
width = 200
height = 100

[[children]]
name = "card"
color = "steelblue"
ops = ["stretchToChildren", "centerXParent", "moveDown"]

  [[children.children]]
  name = "title"
  label = "hello"
  ops = ["stretchToChildren"]
`

const cardJSON = `{
  "name": "stage",
  "width": 200,
  "height": 100,
  "children": [{
    "name": "card",
    "color": "steelblue",
    "ops": ["stretchToChildren", "centerXParent", "moveDown"],
    "children": [{"name": "title", "label": "hello", "ops": ["stretchToChildren"]}]
  }]
}`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"toml", cardTOML, FormatTOML},
		{"json", cardJSON, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if s.Tree.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", s.Tree.Len())
			}
			root := s.Tree.MustNode(rect.RootID)
			if root.W != 200 || root.H != 100 || root.Name != "stage" {
				t.Errorf("root = %+v", *root)
			}
			id, ok := s.Tree.Lookup("card")
			if !ok {
				t.Fatal("card not found")
			}
			card := s.Tree.MustNode(id)
			if card.W != 1 || card.H != 1 || card.Color != "steelblue" {
				t.Errorf("card defaults = %+v, want 1x1 steelblue", *card)
			}
			if got := s.Ops[id]; len(got) != 3 || got[0] != layout.OpStretchToChildren {
				t.Errorf("card ops = %v", got)
			}
			if s.OpCount() != 4 {
				t.Errorf("OpCount() = %d, want 4", s.OpCount())
			}
		})
	}
}

func TestLayoutRunsChildrenFirst(t *testing.T) {
	s, err := Parse([]byte(cardTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := s.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	title, _ := out.Lookup("title")
	if got, want := out.WorldRect(title), (rect.Rect{Right: 35, Bottom: 13}); got != want {
		t.Errorf("title = %v, want %v", got, want)
	}
	card, _ := out.Lookup("card")
	if got, want := out.WorldRect(card), (rect.Rect{Left: 82.5, Top: 87, Right: 117.5, Bottom: 100}); got != want {
		t.Errorf("card = %v, want %v", got, want)
	}

	// The scene's own tree is untouched.
	if n := s.Tree.MustNode(card); n.W != 1 || n.X != 0 {
		t.Errorf("Layout mutated the scene tree: %+v", *n)
	}
}

func TestApplySiblingsInDocumentOrder(t *testing.T) {
	data := `
width = 100
height = 100

[[children]]
name = "a"
width = 10
height = 10
ops = ["moveRight"]

[[children]]
name = "b"
width = 10
height = 10
ops = ["moveRight"]
`
	s, err := Parse([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := s.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	a, _ := out.Lookup("a")
	b, _ := out.Lookup("b")
	if got := out.MustNode(a).X; got != 90 {
		t.Errorf("a.x = %v, want 90", got)
	}
	if got := out.MustNode(b).X; got != 80 {
		t.Errorf("b.x = %v, want 80 (stopped by a)", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   errors.Code
	}{
		{"root without size", `name = "x"`, FormatTOML, errors.ErrCodeInvalidScene},
		{"malformed toml", `width = `, FormatTOML, errors.ErrCodeInvalidScene},
		{"malformed json", `{"width": }`, FormatJSON, errors.ErrCodeInvalidScene},
		{"unknown toml key", "width = 1\nheight = 1\nwdith = 3", FormatTOML, errors.ErrCodeInvalidScene},
		{"unknown json key", `{"width": 1, "height": 1, "colour": "red"}`, FormatJSON, errors.ErrCodeInvalidScene},
		{"negative size", "width = 1\nheight = 1\n[[children]]\nwidth = -2", FormatTOML, errors.ErrCodeInvalidScene},
		{"bad op", "width = 1\nheight = 1\n[[children]]\nops = [\"teleport\"]", FormatTOML, errors.ErrCodeInvalidOp},
		{"bad colour", "width = 1\nheight = 1\n[[children]]\ncolor = \"blurple\"", FormatTOML, errors.ErrCodeInvalidScene},
		{"duplicate name", "width = 1\nheight = 1\n[[children]]\nname = \"a\"\n[[children]]\nname = \"a\"", FormatTOML, errors.ErrCodeInvalidInput},
		{"unknown format", `{}`, Format("yaml"), errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestApplyRootOpFails(t *testing.T) {
	s, err := Parse([]byte("width = 10\nheight = 10\nops = [\"moveUp\"]"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.Layout(); !errors.Is(err, errors.ErrCodeInvalidOperation) {
		t.Errorf("Layout error = %v, want INVALID_OPERATION", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTOML, false},
		{"TOML", FormatTOML, false},
		{"json", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}

	if FormatFromPath("a/b.JSON") != FormatJSON || FormatFromPath("scene.toml") != FormatTOML || FormatFromPath("noext") != FormatTOML {
		t.Error("FormatFromPath picked the wrong format")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.json")
	if err := os.WriteFile(path, []byte(cardJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := s.Tree.Lookup("title"); !ok {
		t.Error("title missing after Load")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scenes", "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example scenes")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if _, err := s.Layout(); err != nil {
				t.Fatalf("Layout: %v", err)
			}
		})
	}
}

func TestWindowSceneMenuPacking(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "examples", "scenes", "window.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tree, err := s.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	tests := []struct {
		name string
		want rect.Rect
	}{
		{"file", rect.Rect{Left: 0, Top: 5.5, Right: 28, Bottom: 18.5}},
		{"edit", rect.Rect{Left: 28, Top: 5.5, Right: 56, Bottom: 18.5}},
		{"view", rect.Rect{Left: 56, Top: 5.5, Right: 84, Bottom: 18.5}},
		{"status", rect.Rect{Left: 0, Top: 100, Right: 320, Bottom: 120}},
		{"panel", rect.Rect{Left: 0, Top: 24, Right: 320, Bottom: 100}},
	}
	for _, tt := range tests {
		id, ok := tree.Lookup(tt.name)
		if !ok {
			t.Fatalf("%s missing", tt.name)
		}
		if got := tree.WorldRect(id); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHeaderSceneChildrenFirst(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "examples", "scenes", "header.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tree, err := s.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	tests := []struct {
		name string
		want rect.Rect
	}{
		{"header", rect.Rect{Left: 0, Top: 0, Right: 500, Bottom: 13}},
		{"first", rect.Rect{Left: 0, Top: -6, Right: 98, Bottom: 7}},
		{"second", rect.Rect{Left: 0, Top: -6, Right: 98, Bottom: 7}},
	}
	for _, tt := range tests {
		id, ok := tree.Lookup(tt.name)
		if !ok {
			t.Fatalf("%s missing", tt.name)
		}
		if got := tree.WorldRect(id); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}
