// pkg/style/transition.go
package style

import "math"

// TimingFunction maps elapsed-fraction to eased-progress-fraction, both in
// [0, 1]. Implementations must be pure and stateless.
type TimingFunction interface {
	Eval(t float32) float32
}

// TimingFunc adapts an ordinary function to the TimingFunction interface,
// allowing custom easings.
type TimingFunc func(t float32) float32

// Eval implements TimingFunction.
func (f TimingFunc) Eval(t float32) float32 { return f(t) }

type timingLinear struct{}
type timingEaseIn struct{}
type timingEaseOut struct{}
type timingEaseInOut struct{}

func (timingLinear) Eval(t float32) float32 { return t }
func (timingEaseIn) Eval(t float32) float32 { return t * t * t }
func (timingEaseOut) Eval(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
func (timingEaseInOut) Eval(t float32) float32 {
	return -(float32(math.Cos(math.Pi*float64(t))) - 1) / 2
}

// Built-in timing functions.
var (
	Linear    TimingFunction = timingLinear{}
	EaseIn    TimingFunction = timingEaseIn{}
	EaseOut   TimingFunction = timingEaseOut{}
	EaseInOut TimingFunction = timingEaseInOut{}
)

// TransitionProperty identifies which property a transition animates.
type TransitionProperty uint8

const (
	// TransitionTransform animates the element's transform.
	TransitionTransform TransitionProperty = iota
	// TransitionBackgroundColor animates the element's background color.
	TransitionBackgroundColor
	// TransitionBorderColor animates the element's border color.
	TransitionBorderColor
	// TransitionLeft animates the left inset.
	TransitionLeft
	// TransitionTop animates the top inset.
	TransitionTop
	// TransitionBottom animates the bottom inset.
	TransitionBottom
	// TransitionRight animates the right inset.
	TransitionRight
	// TransitionHeight animates the height.
	TransitionHeight
	// TransitionWidth animates the width.
	TransitionWidth
	// TransitionBorderLeft animates the left border width.
	TransitionBorderLeft
	// TransitionBorderTop animates the top border width.
	TransitionBorderTop
	// TransitionBorderRight animates the right border width.
	TransitionBorderRight
	// TransitionBorderBottom animates the bottom border width.
	TransitionBorderBottom
)

// IsLayout reports whether the property is a numeric layout length, the only
// kind the layout animator may drive.
func (p TransitionProperty) IsLayout() bool {
	switch p {
	case TransitionTransform, TransitionBackgroundColor, TransitionBorderColor:
		return false
	}
	return true
}

// Transition declares a CSS-like animated transition for one property.
type Transition struct {
	// Property selects what is animated.
	Property TransitionProperty

	// Delay before the animation starts, in seconds.
	Delay float32

	// Duration of the animation, in seconds.
	Duration float32

	// Timing is the easing function; nil means linear.
	Timing TimingFunction
}

func (tr Transition) timing() TimingFunction {
	if tr.Timing == nil {
		return Linear
	}
	return tr.Timing
}

// TransitionState tracks the progress of one running transition. Clock is
// the fraction of the duration elapsed, pre-easing, clamped to [0, 1].
type TransitionState struct {
	Transition Transition
	Clock      float32
}

// Advance moves the clock forward by delta seconds. A zero duration snaps
// the clock to completion immediately.
func (ts *TransitionState) Advance(delta float32) {
	if ts.Transition.Duration > 0 {
		ts.Clock = clamp01(ts.Clock + delta/ts.Transition.Duration)
	} else {
		ts.Clock = 1
	}
}

// T returns the eased progress value for the current clock.
func (ts *TransitionState) T() float32 {
	return ts.Transition.timing().Eval(ts.Clock)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
