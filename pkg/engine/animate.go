// pkg/engine/animate.go
package engine

import (
	"fmt"

	"github.com/xkilldash9x/peacock/pkg/style"
)

// animatedLayoutProp interpolates one layout length between two pixel
// endpoints. Percent or viewport endpoints cannot be mixed, so a retarget
// only engages when both sides are pixel values.
type animatedLayoutProp struct {
	state  style.TransitionState
	origin style.Val
	target style.Val
}

// update advances the clock by delta and writes the interpolated value when
// the eased position moved, or unconditionally when force is set.
func (a *animatedLayoutProp) update(prop style.TransitionProperty, out *style.LayoutStyle, delta float32, force bool) {
	tOld := a.state.Clock
	a.state.Advance(delta)
	t := a.state.T()
	if t != tOld || force {
		v := style.Px(a.target.Value*t + a.origin.Value*(1-t))
		setLayoutField(out, prop, v)
	}
}

// restartIfChanged redirects the animation toward next whenever the target
// moved, starting from prev, the value currently on screen. Non-pixel
// endpoints leave the animation untouched.
func (a *animatedLayoutProp) restartIfChanged(prev, next style.Val) {
	if prev.Unit != style.UnitPx || next.Unit != style.UnitPx {
		return
	}
	if a.target != next {
		a.origin = prev
		a.target = next
		a.state.Clock = 0
	}
}

// layoutField reads the layout length a transition property animates.
func layoutField(l *style.LayoutStyle, prop style.TransitionProperty) style.Val {
	switch prop {
	case style.TransitionLeft:
		return l.Left
	case style.TransitionTop:
		return l.Top
	case style.TransitionRight:
		return l.Right
	case style.TransitionBottom:
		return l.Bottom
	case style.TransitionWidth:
		return l.Width
	case style.TransitionHeight:
		return l.Height
	case style.TransitionBorderLeft:
		return l.Border.Left
	case style.TransitionBorderTop:
		return l.Border.Top
	case style.TransitionBorderRight:
		return l.Border.Right
	case style.TransitionBorderBottom:
		return l.Border.Bottom
	}
	panic(fmt.Sprintf("invalid layout transition property %d", prop))
}

func setLayoutField(l *style.LayoutStyle, prop style.TransitionProperty, v style.Val) {
	switch prop {
	case style.TransitionLeft:
		l.Left = v
	case style.TransitionTop:
		l.Top = v
	case style.TransitionRight:
		l.Right = v
	case style.TransitionBottom:
		l.Bottom = v
	case style.TransitionWidth:
		l.Width = v
	case style.TransitionHeight:
		l.Height = v
	case style.TransitionBorderLeft:
		l.Border.Left = v
	case style.TransitionBorderTop:
		l.Border.Top = v
	case style.TransitionBorderRight:
		l.Border.Right = v
	case style.TransitionBorderBottom:
		l.Border.Bottom = v
	default:
		panic(fmt.Sprintf("invalid layout transition property %d", prop))
	}
}

// animatedColor blends between two colors in linear RGB space.
type animatedColor struct {
	state  style.TransitionState
	origin style.Color
	target style.Color
}

func (a *animatedColor) update(delta float32) style.Color {
	a.state.Advance(delta)
	return a.origin.Lerp(a.target, a.state.T())
}

// animatedTransform interpolates every transform component independently.
type animatedTransform struct {
	state  style.TransitionState
	origin Transform
	target Transform
}

func (a *animatedTransform) update(delta float32) Transform {
	a.state.Advance(delta)
	t := a.state.T()
	return Transform{
		Translation: style.Vec3{
			X: lerp(a.origin.Translation.X, a.target.Translation.X, t),
			Y: lerp(a.origin.Translation.Y, a.target.Translation.Y, t),
			Z: lerp(a.origin.Translation.Z, a.target.Translation.Z, t),
		},
		ScaleX:   lerp(a.origin.ScaleX, a.target.ScaleX, t),
		ScaleY:   lerp(a.origin.ScaleY, a.target.ScaleY, t),
		Rotation: lerp(a.origin.Rotation, a.target.Rotation, t),
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
