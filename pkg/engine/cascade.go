// pkg/engine/cascade.go
package engine

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/peacock/pkg/style"
)

// textStyles is the subset of computed values that inherits down the tree:
// font, font size and text color.
type textStyles struct {
	font     string
	fontSize *float32
	color    *style.Color
}

func textStylesOf(cs *style.ComputedStyle) textStyles {
	return textStyles{font: cs.Font, fontSize: cs.FontSize, color: cs.Color}
}

func (t *textStyles) equal(other *textStyles) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.font != other.font {
		return false
	}
	if !float32PtrEqual(t.fontSize, other.fontSize) {
		return false
	}
	return colorPtrEqual(t.color, other.color)
}

func float32PtrEqual(a, b *float32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorPtrEqual(a, b *style.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// updateStyles walks the tree in pre-order, recomputing the style of every
// element whose inputs changed and of every element below a change in the
// inherited text styles. Recomputed styles are queued as commands and
// applied after the walk, so matching always observes the previous frame's
// outputs.
func (e *Engine) updateStyles() {
	var cmds []command
	for _, root := range e.tree.Roots() {
		e.updateStylesRecursive(root, nil, false, &cmds)
	}
	if len(cmds) > 0 {
		e.log.Debug("Recomputing element styles", zap.Int("elements", len(cmds)))
	}
	for _, cmd := range cmds {
		cmd.apply(e)
	}
}

func (e *Engine) updateStylesRecursive(ent Entity, inherited *textStyles, inheritedChanged bool, cmds *[]command) {
	n := e.nodeFor(ent)
	changed := e.isChanged(ent, n) || (n.isText && n.textChanged)

	nextInherited := inherited
	nextInheritedChanged := inheritedChanged

	if changed || inheritedChanged {
		cs := style.NewComputedStyle()
		cs.Style = n.out.Layout
		if inherited != nil {
			cs.Font = inherited.font
			cs.FontSize = copyFloat32(inherited.fontSize)
			cs.Color = copyColor(inherited.color)
		}
		ref := nodeRef{eng: e, ent: ent}
		for _, h := range n.handles {
			h.list.ApplyTo(&cs, ref)
		}

		// Track the inherited text-style cache. An element whose own text
		// values match what it inherits does not need a cache of its own;
		// text nodes always keep one so their styles can be restored.
		text := textStylesOf(&cs)
		if inherited != nil && text.equal(inherited) && !n.isText {
			dropped := n.textCache != nil
			n.textCache = nil
			nextInherited = inherited
			// With no cache of its own the node relays whatever the parent
			// reported; dropping a cache changes what children observe.
			nextInheritedChanged = inheritedChanged || dropped
			changed = changed || dropped
		} else {
			moved := !text.equal(n.textCache)
			if moved {
				cached := text
				n.textCache = &cached
			}
			nextInherited = n.textCache
			// Children inherit from this node's cache, so they only care
			// whether the cache itself moved.
			nextInheritedChanged = moved
			changed = changed || moved
		}

		// A node that merely relays an inherited change keeps its current
		// output; only nodes whose own computed state moved get rebuilt.
		if changed {
			*cmds = append(*cmds, updateComputedStyle{ent: ent, style: cs})
		}
	} else if n.textCache != nil {
		nextInherited = n.textCache
	}

	for _, child := range e.tree.Children(ent) {
		e.updateStylesRecursive(child, nextInherited, nextInheritedChanged, cmds)
	}
}

func copyFloat32(v *float32) *float32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyColor(c *style.Color) *style.Color {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}
