// pkg/engine/matcher.go
package engine

import "github.com/xkilldash9x/peacock/pkg/style"

// nodeRef adapts one entity to the selector matcher's view of the tree. A
// ref is a transient value built during a style pass; it carries no state of
// its own.
type nodeRef struct {
	eng *Engine
	ent Entity
}

var _ style.NodeState = nodeRef{}

func (r nodeRef) HasClass(name string) bool {
	n, ok := r.eng.nodes[r.ent]
	return ok && n.classes[name]
}

// Hovered is true when the pointer is over this element or any of its
// descendants, matching the CSS notion of :hover on containers.
func (r nodeRef) Hovered() bool {
	return r.eng.hovering(r.ent)
}

func (r nodeRef) Focused() bool {
	return r.eng.hasFocus && r.eng.focus == r.ent
}

func (r nodeRef) FocusWithin() bool {
	return r.eng.hasFocus && r.eng.isDescendant(r.eng.focus, r.ent)
}

// FocusVisible currently mirrors Focused; distinguishing pointer from
// keyboard focus needs input-device tracking the host does not report yet.
func (r nodeRef) FocusVisible() bool {
	return r.Focused()
}

func (r nodeRef) FirstChild() bool {
	parent, ok := r.eng.tree.Parent(r.ent)
	if !ok {
		return false
	}
	children := r.eng.tree.Children(parent)
	return len(children) > 0 && children[0] == r.ent
}

func (r nodeRef) LastChild() bool {
	parent, ok := r.eng.tree.Parent(r.ent)
	if !ok {
		return false
	}
	children := r.eng.tree.Children(parent)
	return len(children) > 0 && children[len(children)-1] == r.ent
}

func (r nodeRef) Parent() (style.NodeState, bool) {
	parent, ok := r.eng.tree.Parent(r.ent)
	if !ok {
		return nil, false
	}
	return nodeRef{eng: r.eng, ent: parent}, true
}

// hovering reports whether the element is hovered this frame: the pointer
// set contains it or one of its descendants.
func (e *Engine) hovering(ent Entity) bool {
	for hovered := range e.hovered {
		if e.isDescendant(hovered, ent) {
			return true
		}
	}
	return false
}

// wasHovering is hovering evaluated against the previous frame's snapshot.
func (e *Engine) wasHovering(ent Entity) bool {
	for hovered := range e.prevHovered {
		if e.isDescendant(hovered, ent) {
			return true
		}
	}
	return false
}

func (e *Engine) focusWithin(ent Entity) bool {
	return e.hasFocus && e.isDescendant(e.focus, ent)
}

func (e *Engine) wasFocusWithin(ent Entity) bool {
	return e.hadFocus && e.isDescendant(e.prevFocus, ent)
}

// isChanged decides whether the element's styles must be recomputed this
// frame. A changed handle assignment always recomputes. Otherwise the
// element and up to selectorDepth-1 of its ancestors are checked for input
// deltas that its selectors could observe: hover transitions (only when a
// selector uses :hover), focus movement, and class edits.
func (e *Engine) isChanged(ent Entity, n *node) bool {
	if n.stylesChanged {
		return true
	}
	if n.selectorDepth == 0 {
		return false
	}
	cur := ent
	for i := 0; i < n.selectorDepth; i++ {
		if n.usesHover && e.hovering(cur) != e.wasHovering(cur) {
			return true
		}
		focused := e.hasFocus && e.focus == cur
		wasFocused := e.hadFocus && e.prevFocus == cur
		if focused != wasFocused {
			return true
		}
		if n.usesFocusWithin && e.focusWithin(cur) != e.wasFocusWithin(cur) {
			return true
		}
		if other, ok := e.nodes[cur]; ok && other.classesChanged {
			return true
		}
		parent, ok := e.tree.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return false
}
