package flexui

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDocument = `
[window]
title = "Demo"
width = 320
height = 240
resizable = true
clear = "#101010"

[root]
id = "root"

[root.layout]
width = "100%"
height = "100%"
direction = "horizontal"
align_primary = "space-between"
align_secondary = "center"
padding = 8

[root.style]
fill = [255, 255, 255]
border = [0, 0, 0, 128]
border_width = 2
corner_radius = [4, 4, "10%", 0]
shadow_color = "#00000040"
shadow_offset = [2, 3.5]
shadow_radius = 4

[[root.children]]
kind = "label"
id = "title"
text = "Hello"
font_size = 20
color = "#ff0000"

[[root.children]]
kind = "button"
id = "ok"
text = "OK"
tooltip = "Confirm"

[[root.children]]
kind = "slider"
id = "volume"
value = 0.5

[[root.children]]
id = "box"
hidden = true

[root.children.layout]
x = 10
y = "50%"
margin = [1, 2, 3, 4]
`

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if doc.Window.Title != "Demo" || doc.Window.Width != 320 || doc.Window.Height != 240 {
		t.Errorf("window = %+v", doc.Window)
	}

	root := doc.Root.Base()
	if root.ID != "root" || root.NumChildren() != 4 {
		t.Fatalf("root %q with %d children", root.ID, root.NumChildren())
	}
	l := root.Layout
	if l.Direction != DirectionHorizontal || l.AlignPrimary != AlignPrimarySpaceBetween || l.AlignSecondary != AlignSecondaryCenter {
		t.Errorf("enums = %v %v %v", l.Direction, l.AlignPrimary, l.AlignSecondary)
	}
	if l.Width != Pct(100) || l.Padding != Uniform(Px(8)) {
		t.Errorf("width %v padding %v", l.Width, l.Padding)
	}
	st := root.Style
	if st.FillColor != RGB(255, 255, 255) || st.BorderColor != RGBA(0, 0, 0, 128) {
		t.Errorf("colors = %v %v", st.FillColor, st.BorderColor)
	}
	if st.BorderWidth != Px(2) || st.ShadowRadius != 4 || st.ShadowOffset != (Vec2{X: 2, Y: 3.5}) {
		t.Errorf("border %v shadow %v %v", st.BorderWidth, st.ShadowRadius, st.ShadowOffset)
	}
	if want := Sides(Px(4), Px(4), Pct(10), Px(0)); st.CornerRadius != want {
		t.Errorf("corner radius = %v, want %v", st.CornerRadius, want)
	}

	label, ok := root.ChildAt(0).(*Label)
	if !ok || label.Text != "Hello" || label.Color != Hex("#ff0000") {
		t.Errorf("label = %+v", root.ChildAt(0))
	} else if f, ok := label.Font.(*TTFFont); !ok || f.Size() != 20 {
		t.Errorf("label font = %v", label.Font)
	}
	btn, ok := root.ChildAt(1).(*Button)
	if !ok || btn.Text != "OK" || btn.Tooltip != "Confirm" {
		t.Errorf("button = %+v", root.ChildAt(1))
	}
	sl, ok := root.ChildAt(2).(*Slider)
	if !ok || sl.Min != 0 || sl.Max != 1 || sl.Value() != 0.5 {
		t.Errorf("slider = %+v", root.ChildAt(2))
	}
	n := root.ChildAt(3).Base()
	if !n.Hidden || n.Layout.X != At(Px(10)) || n.Layout.Y != At(Pct(50)) {
		t.Errorf("box = hidden %v x %v y %v", n.Hidden, n.Layout.X, n.Layout.Y)
	}
	if want := Sides(Px(1), Px(2), Px(3), Px(4)); n.Layout.Margin != want {
		t.Errorf("margin = %v, want %v", n.Layout.Margin, want)
	}
}

func TestDocumentRunConfig(t *testing.T) {
	doc, err := LoadDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatal(err)
	}
	cfg := doc.RunConfig()
	if cfg.Title != "Demo" || cfg.Width != 320 || cfg.Height != 240 || !cfg.Resizable {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.ClearColor != (color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}) {
		t.Errorf("clear = %v", cfg.ClearColor)
	}

	bare, err := LoadDocument([]byte("[root]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if bare.RunConfig().ClearColor != nil {
		t.Error("clear color should be nil when unset")
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing root", "[window]\ntitle = \"x\"\n", "missing [root]"},
		{"unknown key", "[root]\nbogus = 1\n", "parse document"},
		{"unknown kind", "[root]\n[[root.children]]\nkind = \"spinner\"\n", `root.children[0]: unknown kind "spinner"`},
		{"bad color", "[root]\n[root.style]\nfill = true\n", "root.style: fill"},
		{"short color", "[root]\n[root.style]\nfill = [1, 2]\n", "want 3 or 4 components"},
		{"bad quad", "[root]\n[root.layout]\npadding = [1, 2]\n", "root.layout: padding"},
		{"bad number", "[root]\nkind = \"slider\"\nmax = \"lots\"\n", "root.max"},
		{"bad offset", "[root]\n[root.style]\nshadow_offset = [1]\n", "shadow_offset"},
		{"bad clear", "[window]\nclear = 3\n[root]\n", "window.clear"},
		{"syntax", "[root\n", "parse document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadDocumentUnknownEnumFailsClosed(t *testing.T) {
	doc, err := LoadDocument([]byte("[root]\n[root.layout]\ndirection = \"diagonal\"\nalign_primary = \"spread\"\nwidth = \"wide\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	l := doc.Root.Base().Layout
	if l.Direction != DirectionVertical || l.AlignPrimary != AlignPrimaryStart {
		t.Errorf("enums = %v %v, want defaults", l.Direction, l.AlignPrimary)
	}
	if got := ResolveDimension(100, l.Width); got != 0 {
		t.Errorf("malformed width resolves to %v, want 0", got)
	}
}

func TestLoadDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.toml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadDocumentFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root.Base().ID != "root" {
		t.Errorf("root id = %q", doc.Root.Base().ID)
	}
	if _, err := LoadDocumentFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDocumentSharesFontsPerSize(t *testing.T) {
	doc, err := LoadDocument([]byte(`
[root]
[[root.children]]
kind = "label"
text = "a"
[[root.children]]
kind = "label"
text = "b"
font_size = 16
`))
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Root.Base().ChildAt(0).(*Label)
	b := doc.Root.Base().ChildAt(1).(*Label)
	if a.Font != b.Font {
		t.Error("labels with the default size should share a font")
	}
}
