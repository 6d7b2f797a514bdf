// pkg/style/transition_test.go
package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimingFunctions(t *testing.T) {
	for _, timing := range []TimingFunction{Linear, EaseIn, EaseOut, EaseInOut} {
		assert.InDelta(t, 0, timing.Eval(0), 1e-5)
		assert.InDelta(t, 1, timing.Eval(1), 1e-5)
	}

	assert.InDelta(t, 0.5, Linear.Eval(0.5), 1e-5)
	assert.InDelta(t, 0.125, EaseIn.Eval(0.5), 1e-5)
	assert.InDelta(t, 0.875, EaseOut.Eval(0.5), 1e-5)
	assert.InDelta(t, 0.5, EaseInOut.Eval(0.5), 1e-5)

	// Ease-in starts slow, ease-out starts fast.
	assert.Less(t, EaseIn.Eval(0.25), Linear.Eval(0.25))
	assert.Greater(t, EaseOut.Eval(0.25), Linear.Eval(0.25))
}

func TestTransitionStateAdvance(t *testing.T) {
	t.Run("advances by delta over duration", func(t *testing.T) {
		state := TransitionState{Transition: Transition{Property: TransitionWidth, Duration: 2}}
		state.Advance(0.5)
		assert.InDelta(t, 0.25, state.Clock, 1e-5)
		state.Advance(0.5)
		assert.InDelta(t, 0.5, state.Clock, 1e-5)
	})

	t.Run("clamps at one", func(t *testing.T) {
		state := TransitionState{Transition: Transition{Property: TransitionWidth, Duration: 1}}
		state.Advance(5)
		assert.Equal(t, float32(1), state.Clock)
	})

	t.Run("zero duration completes immediately", func(t *testing.T) {
		state := TransitionState{Transition: Transition{Property: TransitionWidth}}
		state.Advance(0.001)
		assert.Equal(t, float32(1), state.Clock)
	})

	t.Run("nil timing is linear", func(t *testing.T) {
		state := TransitionState{Transition: Transition{Property: TransitionWidth, Duration: 1}}
		state.Advance(0.25)
		assert.InDelta(t, 0.25, state.T(), 1e-5)
	})

	t.Run("timing shapes the eased value", func(t *testing.T) {
		state := TransitionState{
			Transition: Transition{Property: TransitionWidth, Duration: 1, Timing: EaseIn},
		}
		state.Advance(0.5)
		assert.InDelta(t, 0.5, state.Clock, 1e-5)
		assert.InDelta(t, 0.125, state.T(), 1e-5)
	})
}

func TestTransitionPropertyIsLayout(t *testing.T) {
	layout := []TransitionProperty{
		TransitionLeft, TransitionTop, TransitionRight, TransitionBottom,
		TransitionWidth, TransitionHeight,
		TransitionBorderLeft, TransitionBorderTop, TransitionBorderRight, TransitionBorderBottom,
	}
	for _, prop := range layout {
		assert.True(t, prop.IsLayout(), "%v", prop)
	}
	for _, prop := range []TransitionProperty{TransitionTransform, TransitionBackgroundColor, TransitionBorderColor} {
		assert.False(t, prop.IsLayout(), "%v", prop)
	}
}
