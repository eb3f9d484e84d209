package flexui

import (
	"image"
	"math"
)

// Wheel fling tuning: initial velocity per wheel notch as a fraction of the
// value range per second, and the per-frame deceleration at 60 Hz.
const (
	sliderFlingScale = 0.6
	sliderFlingDecel = 0.9
)

// Slider selects a value in [Min, Max] along a horizontal track. The track
// segments on either side of the thumb and the thumb itself are private
// sub-components. The thumb follows the value with a spring; turning the
// wheel over the slider flings the value with a decay animation.
type Slider struct {
	Node
	Min, Max float64
	OnChange func(float64)

	TrackColor  Color
	ActiveColor Color
	ThumbColor  Color

	value    float64
	dragging bool

	before *Node
	after  *Node
	thumb  *Node

	thumbPos *Animation // normalized thumb position
	fling    *Animation // value
}

// NewSlider creates a 200x24 slider.
func NewSlider(id string, min, max, value float64) *Slider {
	s := &Slider{
		Min:         min,
		Max:         max,
		TrackColor:  Hex("#d1d5db"),
		ActiveColor: Hex("#3b82f6"),
		ThumbColor:  Hex("#ffffff"),
	}
	s.ID = id
	s.Layout.Width = Px(200)
	s.Layout.Height = Px(24)

	s.before = NewContainer(id + ".before")
	s.after = NewContainer(id + ".after")
	s.thumb = NewContainer(id + ".thumb")
	s.before.Style.CornerRadius = Uniform(Percent("50%"))
	s.after.Style.CornerRadius = Uniform(Percent("50%"))
	s.thumb.Style.CornerRadius = Uniform(Percent("50%"))
	s.thumb.Style.BorderWidth = Px(1)
	s.thumb.Style.BorderColor = Hex("#9ca3af")
	s.thumb.Style.ShadowFillColor = RGBA(0, 0, 0, 40)
	s.thumb.Style.ShadowOffset = Vec2{Y: 1}
	s.thumb.Style.ShadowRadius = 3

	s.value = s.clampValue(value)
	s.thumbPos = s.Animate(Spring(s.normalized(), s.normalized(), DefaultSpringConfig()))
	s.fling = s.Animate(Decay(s.value, DefaultDecayConfig(0)))
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Dragging reports whether the thumb is being dragged.
func (s *Slider) Dragging() bool { return s.dragging }

// ThumbPosition returns the animated normalized thumb position.
func (s *Slider) ThumbPosition() float64 { return s.thumbPos.Value() }

// SetValue clamps v into range, springs the thumb toward it and calls
// OnChange when the value changed.
func (s *Slider) SetValue(v float64) {
	v = s.clampValue(v)
	if v == s.value {
		return
	}
	s.value = v
	s.thumbPos.Retarget(s.normalized())
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) clampValue(v float64) float64 {
	lo, hi := math.Min(s.Min, s.Max), math.Max(s.Min, s.Max)
	if math.IsNaN(v) {
		return lo
	}
	return clamp(v, lo, hi)
}

func (s *Slider) normalized() float64 {
	span := s.Max - s.Min
	if span == 0 {
		return 0
	}
	return (s.value - s.Min) / span
}

// thumbSize is the diameter of the thumb for the current content box.
func (s *Slider) thumbSize() float64 {
	return s.ContentBox().Height
}

// valueAt maps a pointer x coordinate linearly onto [Min, Max].
func (s *Slider) valueAt(x float64) float64 {
	cb := s.ContentBox()
	th := s.thumbSize()
	travel := cb.Width - th
	if travel <= 0 {
		return s.Min
	}
	t := clamp((x-cb.X-th/2)/travel, 0, 1)
	return s.Min + t*(s.Max-s.Min)
}

// HandleEvent implements press-to-jump, dragging and wheel flings.
func (s *Slider) HandleEvent(ev Event) {
	switch ev.Type {
	case EventMouseDown:
		if ev.Button == MouseButtonLeft && s.Contains(ev.X, ev.Y) {
			s.dragging = true
			s.fling.Terminate()
			s.SetValue(s.valueAt(ev.X))
		}
	case EventMouseMove:
		if s.dragging {
			s.SetValue(s.valueAt(ev.X))
		}
	case EventMouseUp:
		if ev.Button == MouseButtonLeft {
			s.dragging = false
		}
	case EventMouseWheel:
		if s.dragging || !s.Contains(ev.X, ev.Y) || ev.WheelY == 0 {
			break
		}
		v := ev.WheelY * (s.Max - s.Min) * sliderFlingScale
		s.fling.Config = Decay(s.value, DecayConfig{Velocity: v, Deceleration: sliderFlingDecel})
		s.fling.Start()
	}
	s.Node.HandleEvent(ev)
}

// PreUpdate snapshots the slider and its sub-components.
func (s *Slider) PreUpdate() {
	s.Node.PreUpdate()
	s.before.PreUpdate()
	s.after.PreUpdate()
	s.thumb.PreUpdate()
}

// Update applies the fling, lays out the slider and positions the track
// segments and thumb from the animated thumb position.
func (s *Slider) Update(target Vec2) {
	if s.fling.IsAnimating() {
		v := s.fling.Value()
		cv := s.clampValue(v)
		if cv != v {
			s.fling.Terminate()
		}
		s.SetValue(cv)
	}

	s.Node.Update(target)

	cb := s.ContentBox()
	th := s.thumbSize()
	t := clamp(s.thumbPos.Value(), 0, 1)
	cx := cb.X + th/2 + t*math.Max(0, cb.Width-th)
	trackH := math.Max(2, cb.Height/4)
	ty := cb.Y + (cb.Height-trackH)/2

	s.before.Style.FillColor = s.ActiveColor
	s.after.Style.FillColor = s.TrackColor
	s.thumb.Style.FillColor = s.ThumbColor

	s.before.UpdateChildFromParent(ChildLayoutSlot{
		Size:     Vec2{X: cx - cb.X, Y: trackH},
		Position: image.Pt(roundPx(cb.X), roundPx(ty)),
	})
	s.after.UpdateChildFromParent(ChildLayoutSlot{
		Size:     Vec2{X: cb.X + cb.Width - cx, Y: trackH},
		Position: image.Pt(roundPx(cx), roundPx(ty)),
	})
	s.thumb.UpdateChildFromParent(ChildLayoutSlot{
		Size:     Vec2{X: th, Y: th},
		Position: image.Pt(roundPx(cx-th/2), roundPx(cb.Y)),
	})
	s.before.Update(target)
	s.after.Update(target)
	s.thumb.Update(target)
}

// Draw draws the slider box, the two track segments and the thumb.
func (s *Slider) Draw(dc *DrawContext) {
	s.Node.Draw(dc)
	s.before.Draw(dc)
	s.after.Draw(dc)
	s.thumb.Draw(dc)
}
