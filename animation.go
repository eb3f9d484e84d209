package flexui

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationType selects the numeric model driving an Animation.
type AnimationType uint8

const (
	AnimationTiming AnimationType = iota // eased interpolation over a fixed duration
	AnimationSpring                      // damped spring toward EndValue
	AnimationDecay                       // exponentially decelerating velocity
)

// Easing names one of the curves available to timing animations.
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseOutBounce
	EaseOutBack // overshoot constant 1.70158
)

var easingFuncs = [...]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
	EaseOutBounce:  ease.OutBounce,
	EaseOutBack:    ease.OutBack,
}

var easingNames = [...]string{
	"linear",
	"in-quad", "out-quad", "in-out-quad",
	"in-cubic", "out-cubic", "in-out-cubic",
	"in-sine", "out-sine", "in-out-sine",
	"out-bounce", "out-back",
}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return easingNames[0]
}

// ParseEasing maps a curve name to an Easing. Unknown names fall back to
// EaseLinear.
func ParseEasing(s string) Easing {
	for i, name := range easingNames {
		if name == s {
			return Easing(i)
		}
	}
	return EaseLinear
}

// Func returns the gween curve for e.
func (e Easing) Func() ease.TweenFunc {
	if int(e) < len(easingFuncs) {
		return easingFuncs[e]
	}
	return ease.Linear
}

// TimingConfig configures a timing animation. Duration is in seconds.
type TimingConfig struct {
	Duration float64
	Easing   Easing
}

// SpringConfig configures a spring animation. Velocity is the initial
// velocity in units per second.
//
// With FixedStep zero the spring integrates over the wall-clock delta
// between Update calls, so its trajectory depends on the frame rate. A
// positive FixedStep (seconds) sub-steps the integration at that rate for
// deterministic results.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	Velocity  float64
	FixedStep float64
}

// DecayConfig configures a decay animation. Deceleration is the per-frame
// velocity factor at a 60 Hz reference rate (0.998 is a gentle fling).
type DecayConfig struct {
	Velocity     float64
	Deceleration float64
}

// AnimationConfig is the immutable description of an Animation. Exactly one
// of Timing, Spring or Decay is consulted, selected by Type.
type AnimationConfig struct {
	Type           AnimationType
	StartValue     float64
	EndValue       float64
	DelayStartTime float64 // seconds, re-applied at the start of every loop
	LoopCount      int     // values below 1 run once

	Timing TimingConfig
	Spring SpringConfig
	Decay  DecayConfig
}

// Timing returns a timing animation config.
func Timing(start, end, duration float64, easing Easing) AnimationConfig {
	return AnimationConfig{
		Type:       AnimationTiming,
		StartValue: start,
		EndValue:   end,
		LoopCount:  1,
		Timing:     TimingConfig{Duration: duration, Easing: easing},
	}
}

// Spring returns a spring animation config.
func Spring(start, end float64, sc SpringConfig) AnimationConfig {
	return AnimationConfig{
		Type:       AnimationSpring,
		StartValue: start,
		EndValue:   end,
		LoopCount:  1,
		Spring:     sc,
	}
}

// Decay returns a decay animation config. Decay has no end value; it runs
// until the velocity dies out.
func Decay(start float64, dc DecayConfig) AnimationConfig {
	return AnimationConfig{
		Type:       AnimationDecay,
		StartValue: start,
		EndValue:   start,
		LoopCount:  1,
		Decay:      dc,
	}
}

// DefaultSpringConfig returns a slightly underdamped spring.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: 170, Damping: 26, Mass: 1}
}

// DefaultDecayConfig returns a decay starting at velocity with the
// conventional 0.998 deceleration.
func DefaultDecayConfig(velocity float64) DecayConfig {
	return DecayConfig{Velocity: velocity, Deceleration: 0.998}
}

// AnimationState is the lifecycle state of an Animation.
type AnimationState uint8

const (
	AnimationIdle AnimationState = iota
	AnimationRunning
	AnimationPaused
	AnimationComplete
)

var animationStateNames = [...]string{"idle", "running", "paused", "complete"}

func (s AnimationState) String() string {
	if int(s) < len(animationStateNames) {
		return animationStateNames[s]
	}
	return "unknown"
}

// animationEpsilon is the rest threshold for spring and decay models.
const animationEpsilon = 1e-4

// Clock supplies wall-clock time to animations. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// stopwatch accumulates running time across stop/resume cycles.
type stopwatch struct {
	start       time.Time
	accumulated time.Duration
	running     bool
}

func (w *stopwatch) restart(now time.Time) {
	w.start = now
	w.accumulated = 0
	w.running = true
}

func (w *stopwatch) stop(now time.Time) {
	if !w.running {
		return
	}
	w.accumulated += now.Sub(w.start)
	w.running = false
}

func (w *stopwatch) resume(now time.Time) {
	if w.running {
		return
	}
	w.start = now
	w.running = true
}

func (w *stopwatch) elapsed(now time.Time) time.Duration {
	if !w.running {
		return w.accumulated
	}
	return w.accumulated + now.Sub(w.start)
}

// Animation drives a single scalar value with one of three models. It is
// advanced by calling Update once per frame; nodes that own animations have
// them updated by the scene automatically.
//
// Two clocks are kept: the primary clock measures time since the current
// loop started and the frame clock measures time since the previous Update.
type Animation struct {
	Config AnimationConfig

	// OnComplete is called once when the final loop finishes. It is not
	// called by Terminate.
	OnComplete func()

	clock   Clock
	primary stopwatch
	frame   stopwatch
	state   AnimationState

	value    float64
	velocity float64
	loop     int
	carry    float64 // unconsumed time for fixed-step springs
	tween    *gween.Tween
}

// NewAnimation creates an idle animation. Call Start to run it.
func NewAnimation(cfg AnimationConfig) *Animation {
	return &Animation{
		Config: cfg,
		clock:  SystemClock,
		value:  cfg.StartValue,
	}
}

// SetClock replaces the time source. A nil clock restores SystemClock.
func (a *Animation) SetClock(c Clock) {
	if c == nil {
		c = SystemClock
	}
	a.clock = c
}

// Start resets the value and velocity and restarts both clocks.
func (a *Animation) Start() {
	now := a.clock.Now()
	a.loop = 0
	a.resetLoop(now)
	a.state = AnimationRunning
}

// Retarget restarts the animation from its current value toward end. Spring
// animations keep their current velocity so the motion stays continuous.
func (a *Animation) Retarget(end float64) {
	v := a.velocity
	running := a.state == AnimationRunning
	a.Config.StartValue = a.value
	a.Config.EndValue = end
	a.Start()
	if running && a.Config.Type == AnimationSpring {
		a.velocity = v
	}
}

// Pause stops both clocks without touching the value.
func (a *Animation) Pause() {
	if a.state != AnimationRunning {
		return
	}
	now := a.clock.Now()
	a.primary.stop(now)
	a.frame.stop(now)
	a.state = AnimationPaused
}

// Resume continues a paused animation from where it stopped.
func (a *Animation) Resume() {
	if a.state != AnimationPaused {
		return
	}
	now := a.clock.Now()
	a.primary.resume(now)
	a.frame.resume(now)
	a.state = AnimationRunning
}

// Terminate forces the animation to Complete and stops both clocks. The
// value is left where it is.
func (a *Animation) Terminate() {
	now := a.clock.Now()
	a.primary.stop(now)
	a.frame.stop(now)
	a.state = AnimationComplete
}

// Value returns the current animated value.
func (a *Animation) Value() float64 { return a.value }

// Velocity returns the current velocity of spring and decay models.
func (a *Animation) Velocity() float64 { return a.velocity }

// State returns the lifecycle state.
func (a *Animation) State() AnimationState { return a.state }

// IsAnimating reports whether the animation is running.
func (a *Animation) IsAnimating() bool { return a.state == AnimationRunning }

// IsComplete reports whether the animation has finished or was terminated.
func (a *Animation) IsComplete() bool { return a.state == AnimationComplete }

// Loop returns the zero-based index of the current loop.
func (a *Animation) Loop() int { return a.loop }

// Update advances the model. It is a no-op unless the animation is running
// and the start delay has elapsed.
func (a *Animation) Update() {
	if a.state != AnimationRunning {
		return
	}
	now := a.clock.Now()
	elapsed := a.primary.elapsed(now).Seconds()
	delay := a.Config.DelayStartTime
	if elapsed < delay {
		a.frame.restart(now)
		return
	}
	dt := a.frame.elapsed(now).Seconds()
	a.frame.restart(now)

	var done bool
	switch a.Config.Type {
	case AnimationTiming:
		done = a.stepTiming(elapsed - delay)
	case AnimationSpring:
		done = a.stepSpring(dt)
	case AnimationDecay:
		done = a.stepDecay(dt)
	}
	if done {
		a.finishLoop(now)
	}
}

func (a *Animation) resetLoop(now time.Time) {
	a.primary.restart(now)
	a.frame.restart(now)
	a.value = a.Config.StartValue
	a.carry = 0
	switch a.Config.Type {
	case AnimationSpring:
		a.velocity = a.Config.Spring.Velocity
	case AnimationDecay:
		a.velocity = a.Config.Decay.Velocity
	default:
		a.velocity = 0
		a.tween = gween.New(0, 1, float32(a.Config.Timing.Duration), a.Config.Timing.Easing.Func())
	}
}

func (a *Animation) finishLoop(now time.Time) {
	loops := a.Config.LoopCount
	if loops < 1 {
		loops = 1
	}
	if a.loop+1 < loops {
		a.loop++
		a.resetLoop(now)
		return
	}
	a.primary.stop(now)
	a.frame.stop(now)
	a.state = AnimationComplete
	if a.OnComplete != nil {
		a.OnComplete()
	}
}

// stepTiming evaluates the easing curve at t seconds into the loop.
func (a *Animation) stepTiming(t float64) bool {
	start, end := a.Config.StartValue, a.Config.EndValue
	if a.Config.Timing.Duration <= 0 || t >= a.Config.Timing.Duration {
		a.value = end
		return true
	}
	if t < 0 {
		t = 0
	}
	progress, _ := a.tween.Set(float32(t))
	a.value = start + (end-start)*float64(progress)
	return false
}

// stepSpring integrates with semi-implicit Euler.
func (a *Animation) stepSpring(dt float64) bool {
	sc := a.Config.Spring
	if sc.FixedStep > 0 {
		a.carry += dt
		for a.carry >= sc.FixedStep {
			a.carry -= sc.FixedStep
			a.integrateSpring(sc, sc.FixedStep)
		}
	} else {
		a.integrateSpring(sc, dt)
	}
	end := a.Config.EndValue
	if math.Abs(a.velocity) < animationEpsilon && math.Abs(a.value-end) < animationEpsilon {
		a.value = end
		a.velocity = 0
		return true
	}
	return false
}

func (a *Animation) integrateSpring(sc SpringConfig, dt float64) {
	mass := sc.Mass
	if mass <= 0 {
		mass = 1
	}
	displacement := a.value - a.Config.EndValue
	force := -sc.Stiffness*displacement - sc.Damping*a.velocity
	a.velocity += force / mass * dt
	a.value += a.velocity * dt
}

// stepDecay scales velocity by the deceleration normalized to 60 Hz.
func (a *Animation) stepDecay(dt float64) bool {
	decel := clamp(a.Config.Decay.Deceleration, 0, 1)
	a.velocity *= math.Pow(decel, dt*60)
	a.value += a.velocity * dt
	if math.Abs(a.velocity) < animationEpsilon {
		a.velocity = 0
		return true
	}
	return false
}
