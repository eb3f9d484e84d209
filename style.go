package flexui

import "image/color"

// Shadow radius bounds. The radius doubles as the shadow layer count.
const (
	minShadowRadius = 1
	maxShadowRadius = 20
)

// StyleSpec is the user-authored visual description of a node.
type StyleSpec struct {
	BorderWidth     Dimension
	CornerRadius    UniQuad
	FillColor       Color
	BorderColor     Color
	ShadowOffset    Vec2
	ShadowRadius    float64
	ShadowFillColor Color
}

// ComputedStyle is the resolved form of a StyleSpec for one node size.
type ComputedStyle struct {
	BorderWidth     float64
	CornerRadius    Quad // indexed by CornerTopLeft..CornerBottomLeft
	FillColor       color.NRGBA
	BorderColor     color.NRGBA
	ShadowOffset    Vec2
	ShadowRadius    float64
	ShadowFillColor color.NRGBA
}

// ShadowLayers returns the number of inset layers the shadow is drawn with.
func (s ComputedStyle) ShadowLayers() int {
	return int(s.ShadowRadius)
}

// resolveStyle resolves spec against a node of the given size. Border width
// and corner radii never exceed half the shorter side.
func resolveStyle(size Vec2, spec StyleSpec) ComputedStyle {
	return ComputedStyle{
		BorderWidth:     resolveHalfClamped(size.Min(), spec.BorderWidth),
		CornerRadius:    ResolveUniQuad(size, spec.CornerRadius),
		FillColor:       ResolveColor(spec.FillColor),
		BorderColor:     ResolveColor(spec.BorderColor),
		ShadowOffset:    spec.ShadowOffset,
		ShadowRadius:    clamp(spec.ShadowRadius, minShadowRadius, maxShadowRadius),
		ShadowFillColor: ResolveColor(spec.ShadowFillColor),
	}
}
