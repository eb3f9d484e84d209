package flexui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig is the [window] section of a document.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	Clear     any    `toml:"clear"`
}

type layoutDoc struct {
	Direction      string `toml:"direction"`
	AlignPrimary   string `toml:"align_primary"`
	AlignSecondary string `toml:"align_secondary"`
	Width          any    `toml:"width"`
	Height         any    `toml:"height"`
	Padding        any    `toml:"padding"`
	Margin         any    `toml:"margin"`
	X              any    `toml:"x"`
	Y              any    `toml:"y"`
}

type styleDoc struct {
	Fill         any   `toml:"fill"`
	Border       any   `toml:"border"`
	BorderWidth  any   `toml:"border_width"`
	CornerRadius any   `toml:"corner_radius"`
	ShadowColor  any   `toml:"shadow_color"`
	ShadowOffset []any `toml:"shadow_offset"`
	ShadowRadius any   `toml:"shadow_radius"`
}

type nodeDoc struct {
	Kind     string    `toml:"kind"`
	ID       string    `toml:"id"`
	Hidden   bool      `toml:"hidden"`
	Text     string    `toml:"text"`
	Tooltip  string    `toml:"tooltip"`
	FontSize any       `toml:"font_size"`
	Color    any       `toml:"color"`
	Source   string    `toml:"source"`
	Min      any       `toml:"min"`
	Max      any       `toml:"max"`
	Value    any       `toml:"value"`
	Layout   layoutDoc `toml:"layout"`
	Style    styleDoc  `toml:"style"`
	Children []nodeDoc `toml:"children"`
}

type documentFile struct {
	Window WindowConfig `toml:"window"`
	Root   *nodeDoc     `toml:"root"`
}

// Document is a widget tree loaded from TOML together with its window
// settings.
type Document struct {
	Window     WindowConfig
	ClearColor Color
	Root       Widget
}

// RunConfig returns the window settings as a RunConfig.
func (d *Document) RunConfig() RunConfig {
	cfg := RunConfig{
		Title:     d.Window.Title,
		Width:     d.Window.Width,
		Height:    d.Window.Height,
		Resizable: d.Window.Resizable,
	}
	if d.ClearColor.IsSet() {
		cfg.ClearColor = ResolveColor(d.ClearColor)
	}
	return cfg
}

// LoadDocumentFile reads and parses a TOML document from disk.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flexui: read document: %w", err)
	}
	return LoadDocument(data)
}

// LoadDocument parses a TOML document. Unknown keys and unknown node kinds
// are errors; unknown enum keywords and malformed values inside a well-typed
// key fail closed to their defaults like every other resolved value.
func LoadDocument(data []byte) (*Document, error) {
	var f documentFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("flexui: parse document: %w", err)
	}
	if f.Root == nil {
		return nil, fmt.Errorf("flexui: parse document: missing [root]")
	}
	doc := &Document{Window: f.Window}
	if f.Window.Clear != nil {
		c, err := colorValue(f.Window.Clear)
		if err != nil {
			return nil, fmt.Errorf("flexui: parse document: window.clear: %w", err)
		}
		doc.ClearColor = c
	}
	b := documentBuilder{fonts: map[float64]Font{}}
	root, err := b.build(f.Root, "root")
	if err != nil {
		return nil, fmt.Errorf("flexui: parse document: %w", err)
	}
	doc.Root = root
	return doc, nil
}

type documentBuilder struct {
	fonts map[float64]Font
}

func (b *documentBuilder) font(size float64) Font {
	if size <= 0 {
		size = 16
	}
	f, ok := b.fonts[size]
	if !ok {
		f = DefaultFont(size)
		b.fonts[size] = f
	}
	return f
}

func (b *documentBuilder) build(d *nodeDoc, path string) (Widget, error) {
	var nums [4]float64
	for i, f := range []struct {
		name string
		v    any
	}{{"font_size", d.FontSize}, {"min", d.Min}, {"max", d.Max}, {"value", d.Value}} {
		n, err := numberValue(f.v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", path, f.name, err)
		}
		nums[i] = n
	}
	fontSize, lo, hi, value := nums[0], nums[1], nums[2], nums[3]

	var w Widget
	switch d.Kind {
	case "", "container":
		w = NewContainer(d.ID)
	case "label":
		l := NewLabel(d.ID, d.Text, b.font(fontSize))
		if d.Color != nil {
			c, err := colorValue(d.Color)
			if err != nil {
				return nil, fmt.Errorf("%s.color: %w", path, err)
			}
			l.Color = c
		}
		w = l
	case "button":
		btn := NewButton(d.ID, d.Text, b.font(fontSize))
		btn.Tooltip = d.Tooltip
		if d.Color != nil {
			c, err := colorValue(d.Color)
			if err != nil {
				return nil, fmt.Errorf("%s.color: %w", path, err)
			}
			btn.Color = c
		}
		w = btn
	case "image":
		w = NewImage(d.ID, d.Source)
	case "slider":
		if lo == 0 && hi == 0 {
			hi = 1
		}
		w = NewSlider(d.ID, lo, hi, value)
	default:
		return nil, fmt.Errorf("%s: unknown kind %q", path, d.Kind)
	}

	n := w.Base()
	n.Hidden = d.Hidden
	if err := applyLayout(&n.Layout, &d.Layout); err != nil {
		return nil, fmt.Errorf("%s.layout: %w", path, err)
	}
	if err := applyStyle(&n.Style, &d.Style); err != nil {
		return nil, fmt.Errorf("%s.style: %w", path, err)
	}
	for i := range d.Children {
		child, err := b.build(&d.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return w, nil
}

func applyLayout(l *LayoutSpec, d *layoutDoc) error {
	if d.Direction != "" {
		l.Direction = ParseDirection(d.Direction)
	}
	if d.AlignPrimary != "" {
		l.AlignPrimary = ParseAlignPrimary(d.AlignPrimary)
	}
	if d.AlignSecondary != "" {
		l.AlignSecondary = ParseAlignSecondary(d.AlignSecondary)
	}
	dims := []struct {
		name string
		v    any
		dst  *Dimension
	}{
		{"width", d.Width, &l.Width},
		{"height", d.Height, &l.Height},
	}
	for _, dim := range dims {
		if dim.v == nil {
			continue
		}
		v, err := dimensionValue(dim.v)
		if err != nil {
			return fmt.Errorf("%s: %w", dim.name, err)
		}
		*dim.dst = v
	}
	coords := []struct {
		name string
		v    any
		dst  *Coord
	}{
		{"x", d.X, &l.X},
		{"y", d.Y, &l.Y},
	}
	for _, c := range coords {
		if c.v == nil {
			continue
		}
		v, err := dimensionValue(c.v)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = At(v)
	}
	quads := []struct {
		name string
		v    any
		dst  *UniQuad
	}{
		{"padding", d.Padding, &l.Padding},
		{"margin", d.Margin, &l.Margin},
	}
	for _, q := range quads {
		if q.v == nil {
			continue
		}
		v, err := uniQuadValue(q.v)
		if err != nil {
			return fmt.Errorf("%s: %w", q.name, err)
		}
		*q.dst = v
	}
	return nil
}

func applyStyle(s *StyleSpec, d *styleDoc) error {
	colors := []struct {
		name string
		v    any
		dst  *Color
	}{
		{"fill", d.Fill, &s.FillColor},
		{"border", d.Border, &s.BorderColor},
		{"shadow_color", d.ShadowColor, &s.ShadowFillColor},
	}
	for _, c := range colors {
		if c.v == nil {
			continue
		}
		v, err := colorValue(c.v)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = v
	}
	if d.BorderWidth != nil {
		v, err := dimensionValue(d.BorderWidth)
		if err != nil {
			return fmt.Errorf("border_width: %w", err)
		}
		s.BorderWidth = v
	}
	if d.CornerRadius != nil {
		v, err := uniQuadValue(d.CornerRadius)
		if err != nil {
			return fmt.Errorf("corner_radius: %w", err)
		}
		s.CornerRadius = v
	}
	switch len(d.ShadowOffset) {
	case 0:
	case 2:
		x, err := numberValue(d.ShadowOffset[0])
		if err != nil {
			return fmt.Errorf("shadow_offset[0]: %w", err)
		}
		y, err := numberValue(d.ShadowOffset[1])
		if err != nil {
			return fmt.Errorf("shadow_offset[1]: %w", err)
		}
		s.ShadowOffset = Vec2{X: x, Y: y}
	default:
		return fmt.Errorf("shadow_offset: want 2 numbers, got %d", len(d.ShadowOffset))
	}
	if d.ShadowRadius != nil {
		r, err := numberValue(d.ShadowRadius)
		if err != nil {
			return fmt.Errorf("shadow_radius: %w", err)
		}
		s.ShadowRadius = r
	}
	return nil
}

// numberValue converts a decoded TOML integer or float. A missing value is 0.
func numberValue(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	}
	return 0, fmt.Errorf("want number, got %T", v)
}

// dimensionValue converts a decoded TOML value: numbers are absolute pixels,
// strings go through ParseDimension.
func dimensionValue(v any) (Dimension, error) {
	switch t := v.(type) {
	case int64:
		return Px(float64(t)), nil
	case float64:
		return Px(t), nil
	case string:
		return ParseDimension(t), nil
	}
	return Dimension{}, fmt.Errorf("want number or string, got %T", v)
}

// uniQuadValue accepts a single dimension or an array of four.
func uniQuadValue(v any) (UniQuad, error) {
	arr, ok := v.([]any)
	if !ok {
		d, err := dimensionValue(v)
		if err != nil {
			return UniQuad{}, err
		}
		return Uniform(d), nil
	}
	if len(arr) != 4 {
		return UniQuad{}, fmt.Errorf("want 4 values, got %d", len(arr))
	}
	var sides [4]Dimension
	for i, e := range arr {
		d, err := dimensionValue(e)
		if err != nil {
			return UniQuad{}, fmt.Errorf("[%d]: %w", i, err)
		}
		sides[i] = d
	}
	return Sides(sides[0], sides[1], sides[2], sides[3]), nil
}

// colorValue accepts a hex string or an [r, g, b] / [r, g, b, a] byte array.
func colorValue(v any) (Color, error) {
	switch t := v.(type) {
	case string:
		return Hex(t), nil
	case []any:
		if len(t) != 3 && len(t) != 4 {
			return Color{}, fmt.Errorf("want 3 or 4 components, got %d", len(t))
		}
		var c [4]uint8
		c[3] = 255
		for i, e := range t {
			n, ok := e.(int64)
			if !ok {
				return Color{}, fmt.Errorf("[%d]: want integer, got %T", i, e)
			}
			c[i] = uint8(clamp(float64(n), 0, 255))
		}
		if len(t) == 3 {
			return RGB(c[0], c[1], c[2]), nil
		}
		return RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return Color{}, fmt.Errorf("want hex string or array, got %T", v)
}
