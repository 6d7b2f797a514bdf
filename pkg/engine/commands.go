// pkg/engine/commands.go
package engine

import "github.com/xkilldash9x/peacock/pkg/style"

// command is a deferred mutation produced during a style pass. Commands run
// after the whole tree has been walked, so matching within one pass never
// observes partially applied results.
type command interface {
	apply(e *Engine)
}

// updateComputedStyle writes a freshly computed style into an element's
// output state, routing transitioned properties through their animations
// instead of snapping them.
type updateComputedStyle struct {
	ent   Entity
	style style.ComputedStyle
}

func (c updateComputedStyle) apply(e *Engine) {
	n := e.nodeFor(c.ent)
	cs := &c.style
	prev := n.out.Layout

	n.out.Layout = cs.Style

	// Layout transitions. A property already under animation holds its
	// current value and retargets; a newly transitioned property starts at
	// its computed value without animating.
	active := make(map[style.TransitionProperty]bool)
	for _, tr := range cs.Transitions {
		if !tr.Property.IsLayout() {
			continue
		}
		active[tr.Property] = true
		target := layoutField(&cs.Style, tr.Property)
		prevVal := layoutField(&prev, tr.Property)
		if anim, ok := n.layoutAnims[tr.Property]; ok {
			anim.state.Transition = tr
			anim.restartIfChanged(prevVal, target)
			setLayoutField(&n.out.Layout, tr.Property, prevVal)
		} else {
			if n.layoutAnims == nil {
				n.layoutAnims = make(map[style.TransitionProperty]*animatedLayoutProp)
			}
			anim := &animatedLayoutProp{
				state:  style.TransitionState{Transition: tr},
				origin: target,
				target: target,
			}
			n.layoutAnims[tr.Property] = anim
			anim.update(tr.Property, &n.out.Layout, 0, true)
		}
	}
	for prop := range n.layoutAnims {
		if !active[prop] {
			delete(n.layoutAnims, prop)
		}
	}

	// Background color. An element with an image but no color keeps a white
	// background so the image is not tinted away.
	bg := cs.BackgroundColor
	if bg == nil && cs.Image != "" {
		white := style.RGB(1, 1, 1)
		bg = &white
	}
	if tr, ok := cs.HasTransition(style.TransitionBackgroundColor); ok && bg != nil && n.out.BackgroundColor != nil {
		retargetColor(&n.bgAnim, tr, *n.out.BackgroundColor, *bg)
	} else {
		n.bgAnim = nil
		n.out.BackgroundColor = copyColor(bg)
	}

	if tr, ok := cs.HasTransition(style.TransitionBorderColor); ok && cs.BorderColor != nil && n.out.BorderColor != nil {
		retargetColor(&n.borderAnim, tr, *n.out.BorderColor, *cs.BorderColor)
	} else {
		n.borderAnim = nil
		n.out.BorderColor = copyColor(cs.BorderColor)
	}

	// Transform.
	next := transformOf(cs)
	if tr, ok := cs.HasTransition(style.TransitionTransform); ok {
		if n.transformAnim == nil {
			n.transformAnim = &animatedTransform{
				state:  style.TransitionState{Transition: tr},
				origin: next,
				target: next,
			}
			n.out.Transform = next
		} else {
			n.transformAnim.state.Transition = tr
			if n.transformAnim.target != next {
				n.transformAnim.origin = n.out.Transform
				n.transformAnim.target = next
				n.transformAnim.state.Clock = 0
			}
		}
	} else {
		n.transformAnim = nil
		n.out.Transform = next
	}

	n.out.OutlineColor = copyColor(cs.OutlineColor)
	n.out.OutlineWidth = cs.OutlineWidth
	n.out.OutlineOffset = cs.OutlineOffset
	n.out.ZIndex = cs.ZIndex

	n.out.Image = cs.Image
	n.out.FlipX = cs.FlipX
	n.out.FlipY = cs.FlipY

	n.out.Font = cs.Font
	n.out.FontSize = copyFloat32(cs.FontSize)
	n.out.Color = copyColor(cs.Color)
	n.out.TextAlign = copyTextAlign(cs.TextAlign)
	n.out.LineBreak = copyLineBreak(cs.LineBreak)

	n.out.Pickable = copyPointerEvents(cs.Pickable)
	n.out.Cursor = copyCursor(cs.Cursor)
}

// retargetColor creates or redirects a color animation toward target,
// starting from the element's current color when the target moved.
func retargetColor(slot **animatedColor, tr style.Transition, current, target style.Color) {
	anim := *slot
	if anim == nil {
		*slot = &animatedColor{
			state:  style.TransitionState{Transition: tr},
			origin: current,
			target: target,
		}
		return
	}
	anim.state.Transition = tr
	if anim.target != target {
		anim.origin = current
		anim.target = target
		anim.state.Clock = 0
	}
}

// transformOf collapses the computed transform fields onto the identity
// transform.
func transformOf(cs *style.ComputedStyle) Transform {
	t := IdentityTransform()
	if cs.Translation != nil {
		t.Translation = *cs.Translation
	}
	if cs.ScaleX != nil {
		t.ScaleX = *cs.ScaleX
	}
	if cs.ScaleY != nil {
		t.ScaleY = *cs.ScaleY
	}
	if cs.Rotation != nil {
		t.Rotation = *cs.Rotation
	}
	return t
}

func copyTextAlign(a *style.TextAlign) *style.TextAlign {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func copyLineBreak(lb *style.LineBreak) *style.LineBreak {
	if lb == nil {
		return nil
	}
	c := *lb
	return &c
}

func copyPointerEvents(pe *style.PointerEvents) *style.PointerEvents {
	if pe == nil {
		return nil
	}
	c := *pe
	return &c
}

func copyCursor(ci *style.CursorIcon) *style.CursorIcon {
	if ci == nil {
		return nil
	}
	c := *ci
	return &c
}
