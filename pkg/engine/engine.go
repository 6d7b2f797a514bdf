// pkg/engine/engine.go

// Package engine drives styling for a host-owned element tree: it matches
// selectors against tree and input state, cascades inherited text styles,
// and animates declared transitions. The host owns the hierarchy and the
// frame loop; the engine owns everything between assigned style handles and
// the per-element output values.
package engine

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/peacock/pkg/style"
)

// Entity identifies one element of the host's tree.
type Entity uint64

// TreeQuery exposes the host's element hierarchy to the engine. Results
// must be stable within a single Tick.
type TreeQuery interface {
	Roots() []Entity
	Parent(e Entity) (Entity, bool)
	Children(e Entity) []Entity
}

// Transform is the visual transform of an element, relative to its layout
// position.
type Transform struct {
	Translation style.Vec3
	ScaleX      float32
	ScaleY      float32
	Rotation    float32
}

// IdentityTransform returns the rest transform.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// ElementOutput is the render-facing state the engine maintains for one
// element. The host reads it after each Tick; the engine rewrites it as
// styles recompute and animations advance.
type ElementOutput struct {
	Layout style.LayoutStyle

	BackgroundColor *style.Color
	BorderColor     *style.Color
	OutlineColor    *style.Color
	OutlineWidth    style.Val
	OutlineOffset   style.Val
	ZIndex          style.ZIndex

	Transform Transform

	Image string
	FlipX bool
	FlipY bool

	Font      string
	FontSize  *float32
	Color     *style.Color
	TextAlign *style.TextAlign
	LineBreak *style.LineBreak

	Pickable *style.PointerEvents
	Cursor   *style.CursorIcon
}

// node is the engine's per-element record.
type node struct {
	handles []*StyleHandle

	// Union of the selector metadata across handles, refreshed when the
	// handle assignment changes.
	usesHover       bool
	usesFocusWithin bool
	selectorDepth   int

	classes        map[string]bool
	stylesChanged  bool
	classesChanged bool

	isText      bool
	textChanged bool

	out       ElementOutput
	textCache *textStyles

	layoutAnims   map[style.TransitionProperty]*animatedLayoutProp
	bgAnim        *animatedColor
	borderAnim    *animatedColor
	transformAnim *animatedTransform
}

func newNode() *node {
	return &node{
		out: ElementOutput{
			Layout:    style.DefaultLayoutStyle(),
			Transform: IdentityTransform(),
		},
	}
}

// Engine is the styling engine. It is not safe for concurrent use; the host
// calls all methods from its frame loop.
type Engine struct {
	tree  TreeQuery
	log   *zap.Logger
	nodes map[Entity]*node

	hovered     map[Entity]bool
	prevHovered map[Entity]bool

	focus     Entity
	hasFocus  bool
	prevFocus Entity
	hadFocus  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		e.log = log.With(zap.String("component", "style_engine"))
	}
}

// New creates an engine over the host's tree.
func New(tree TreeQuery, opts ...Option) *Engine {
	e := &Engine{
		tree:        tree,
		log:         zap.NewNop(),
		nodes:       make(map[Entity]*node),
		hovered:     make(map[Entity]bool),
		prevHovered: make(map[Entity]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) nodeFor(ent Entity) *node {
	n, ok := e.nodes[ent]
	if !ok {
		n = newNode()
		e.nodes[ent] = n
	}
	return n
}

// SetStyles assigns the element's style handles, replacing any previous
// assignment. Order matters: later handles override earlier ones.
func (e *Engine) SetStyles(ent Entity, handles ...*StyleHandle) {
	n := e.nodeFor(ent)
	n.handles = handles
	n.stylesChanged = true

	n.usesHover = false
	n.usesFocusWithin = false
	n.selectorDepth = 0
	for _, h := range handles {
		n.usesHover = n.usesHover || h.usesHover
		n.usesFocusWithin = n.usesFocusWithin || h.usesFocusWithin
		if h.depth > n.selectorDepth {
			n.selectorDepth = h.depth
		}
	}
}

// SetClasses replaces the element's class set.
func (e *Engine) SetClasses(ent Entity, classes ...string) {
	n := e.nodeFor(ent)
	next := make(map[string]bool, len(classes))
	for _, c := range classes {
		next[c] = true
	}
	if !classSetsEqual(n.classes, next) {
		n.classes = next
		n.classesChanged = true
	}
}

// AddClass adds one class to the element.
func (e *Engine) AddClass(ent Entity, name string) {
	n := e.nodeFor(ent)
	if n.classes == nil {
		n.classes = make(map[string]bool)
	}
	if !n.classes[name] {
		n.classes[name] = true
		n.classesChanged = true
	}
}

// RemoveClass removes one class from the element.
func (e *Engine) RemoveClass(ent Entity, name string) {
	n, ok := e.nodes[ent]
	if !ok || !n.classes[name] {
		return
	}
	delete(n.classes, name)
	n.classesChanged = true
}

// HasClass reports whether the element carries the class.
func (e *Engine) HasClass(ent Entity, name string) bool {
	n, ok := e.nodes[ent]
	return ok && n.classes[name]
}

// MarkText flags the element as a text node. Text nodes always receive the
// inherited text styles, even when nothing else about them changed.
func (e *Engine) MarkText(ent Entity) {
	n := e.nodeFor(ent)
	n.isText = true
	n.textChanged = true
}

// SetHovered replaces the set of entities the pointer is over. An element
// counts as hovered when it is one of these or an ancestor of one.
func (e *Engine) SetHovered(entities ...Entity) {
	e.hovered = make(map[Entity]bool, len(entities))
	for _, ent := range entities {
		e.hovered[ent] = true
	}
}

// SetFocus moves keyboard focus to the element.
func (e *Engine) SetFocus(ent Entity) {
	e.focus = ent
	e.hasFocus = true
}

// ClearFocus removes keyboard focus.
func (e *Engine) ClearFocus() {
	e.focus = 0
	e.hasFocus = false
}

// Output returns the element's current render-facing state.
func (e *Engine) Output(ent Entity) (ElementOutput, bool) {
	n, ok := e.nodes[ent]
	if !ok {
		return ElementOutput{}, false
	}
	return n.out, true
}

// Tick runs one styling frame: recompute styles where inputs changed,
// snapshot the input state for the next frame's change detection, then
// advance animations by delta seconds.
func (e *Engine) Tick(delta float32) {
	e.updateStyles()
	e.snapshot()
	e.animate(delta)
}

// snapshot records this frame's input state and clears per-node change
// flags, so the next updateStyles pass sees only fresh deltas.
func (e *Engine) snapshot() {
	e.prevHovered = make(map[Entity]bool, len(e.hovered))
	for ent := range e.hovered {
		e.prevHovered[ent] = true
	}
	e.prevFocus = e.focus
	e.hadFocus = e.hasFocus
	for _, n := range e.nodes {
		n.stylesChanged = false
		n.classesChanged = false
		n.textChanged = false
	}
}

func (e *Engine) animate(delta float32) {
	for _, n := range e.nodes {
		for prop, anim := range n.layoutAnims {
			anim.update(prop, &n.out.Layout, delta, false)
		}
		if n.bgAnim != nil {
			c := n.bgAnim.update(delta)
			n.out.BackgroundColor = &c
		}
		if n.borderAnim != nil {
			c := n.borderAnim.update(delta)
			n.out.BorderColor = &c
		}
		if n.transformAnim != nil {
			n.out.Transform = n.transformAnim.update(delta)
		}
	}
}

func classSetsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b[c] {
			return false
		}
	}
	return true
}

// isDescendant reports whether child is the same as, or below, ancestor.
func (e *Engine) isDescendant(child, ancestor Entity) bool {
	cur := child
	for {
		if cur == ancestor {
			return true
		}
		parent, ok := e.tree.Parent(cur)
		if !ok {
			return false
		}
		cur = parent
	}
}
