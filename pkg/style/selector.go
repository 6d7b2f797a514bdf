// pkg/style/selector.go
package style

import "strings"

// Selector is a predicate chain which conditionally applies a style to a
// node. Selectors support a subset of CSS grammar:
//
//   - current element ("&")
//   - classname matching
//   - pseudo-classes: ":hover", ":focus", ":focus-within", ":focus-visible",
//     ":first-child", ":last-child"
//   - parent element (">") patterns
//   - multiple alternatives separated by commas
//
// Examples:
//
//	&
//	&.name
//	:hover
//	.state > &
//	.state > * > &.name
//
// Selectors target the "current element": the "&" marker may only appear on
// the last term of the expression, so parent elements can never implicitly
// style their children.
//
// The chain is built tail-first: the textually last condition is the
// outermost wrapper, and Accept is the innermost ground state. Selectors are
// immutable once parsed.
type Selector struct {
	op   selectorOp
	name string
	next *Selector
	alts []*Selector
}

type selectorOp uint8

const (
	opAccept selectorOp = iota
	opClass
	opHover
	opFocus
	opFocusWithin
	opFocusVisible
	opFirstChild
	opLastChild
	opCurrent
	opParent
	opEither
)

// Accept is the ground state; it matches any node.
func Accept() *Selector { return &Selector{op: opAccept} }

// Class matches a node carrying the given class name.
func Class(name string, next *Selector) *Selector {
	return &Selector{op: opClass, name: name, next: next}
}

// Hover matches a node that is being hovered.
func Hover(next *Selector) *Selector { return &Selector{op: opHover, next: next} }

// Focus matches the node holding keyboard focus.
func Focus(next *Selector) *Selector { return &Selector{op: opFocus, next: next} }

// FocusWithin matches a node that holds focus or contains a descendant
// that does.
func FocusWithin(next *Selector) *Selector { return &Selector{op: opFocusWithin, next: next} }

// FocusVisible matches the focused node when focus indication is shown.
func FocusVisible(next *Selector) *Selector { return &Selector{op: opFocusVisible, next: next} }

// FirstChild matches a node that is the first child of its parent.
func FirstChild(next *Selector) *Selector { return &Selector{op: opFirstChild, next: next} }

// LastChild matches a node that is the last child of its parent.
func LastChild(next *Selector) *Selector { return &Selector{op: opLastChild, next: next} }

// Current marks the element being styled. It is a no-op at match time; its
// only role is positional, during parsing and serialization.
func Current(next *Selector) *Selector { return &Selector{op: opCurrent, next: next} }

// Parent moves evaluation one level up the tree before continuing.
func Parent(next *Selector) *Selector { return &Selector{op: opParent, next: next} }

// Either matches if any of the alternative chains matches.
func Either(alts ...*Selector) *Selector { return &Selector{op: opEither, alts: alts} }

// NodeState supplies the per-node predicates a selector needs at match
// time. The styling engine implements it over its tree and input state.
type NodeState interface {
	HasClass(name string) bool
	Hovered() bool
	Focused() bool
	FocusWithin() bool
	FocusVisible() bool
	FirstChild() bool
	LastChild() bool
	Parent() (NodeState, bool)
}

// Match evaluates the selector against a node. Conditions along a chain are
// ANDed; Either alternatives are ORed with the first success winning. A
// missing parent fails the branch rather than erroring.
func (s *Selector) Match(n NodeState) bool {
	switch s.op {
	case opAccept:
		return true
	case opClass:
		return n.HasClass(s.name) && s.next.Match(n)
	case opHover:
		return n.Hovered() && s.next.Match(n)
	case opFocus:
		return n.Focused() && s.next.Match(n)
	case opFocusWithin:
		return n.FocusWithin() && s.next.Match(n)
	case opFocusVisible:
		return n.FocusVisible() && s.next.Match(n)
	case opFirstChild:
		return n.FirstChild() && s.next.Match(n)
	case opLastChild:
		return n.LastChild() && s.next.Match(n)
	case opCurrent:
		return s.next.Match(n)
	case opParent:
		parent, ok := n.Parent()
		return ok && s.next.Match(parent)
	case opEither:
		for _, alt := range s.alts {
			if alt.Match(n) {
				return true
			}
		}
		return false
	}
	return false
}

// Depth returns how many levels of the ancestor hierarchy the selector may
// need to inspect, counting the element itself as one level.
func (s *Selector) Depth() int {
	switch s.op {
	case opAccept:
		return 1
	case opParent:
		return s.next.Depth() + 1
	case opEither:
		max := 0
		for _, alt := range s.alts {
			if d := alt.Depth(); d > max {
				max = d
			}
		}
		return max
	default:
		return s.next.Depth()
	}
}

// UsesHover reports whether the selector references the hover pseudo-class.
func (s *Selector) UsesHover() bool {
	switch s.op {
	case opAccept:
		return false
	case opHover:
		return true
	case opEither:
		for _, alt := range s.alts {
			if alt.UsesHover() {
				return true
			}
		}
		return false
	default:
		return s.next.UsesHover()
	}
}

// UsesFocusWithin reports whether the selector references the focus-within
// pseudo-class.
func (s *Selector) UsesFocusWithin() bool {
	switch s.op {
	case opAccept:
		return false
	case opFocusWithin:
		return true
	case opEither:
		for _, alt := range s.alts {
			if alt.UsesFocusWithin() {
				return true
			}
		}
		return false
	default:
		return s.next.UsesFocusWithin()
	}
}

// Equal reports structural equality of two selectors.
func (s *Selector) Equal(other *Selector) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.op != other.op || s.name != other.name {
		return false
	}
	if (s.next == nil) != (other.next == nil) {
		return false
	}
	if s.next != nil && !s.next.Equal(other.next) {
		return false
	}
	if len(s.alts) != len(other.alts) {
		return false
	}
	for i := range s.alts {
		if !s.alts[i].Equal(other.alts[i]) {
			return false
		}
	}
	return true
}

// String renders the selector back to source form. Parsing the result
// yields an equal selector.
func (s *Selector) String() string {
	var sb strings.Builder
	s.render(&sb)
	return sb.String()
}

func (s *Selector) render(sb *strings.Builder) {
	switch s.op {
	case opAccept:
	case opCurrent:
		// '&' precedes its class conditions in source order, so the
		// trailing Class wrappers are collected and emitted reversed.
		var classes []string
		p := s.next
		for p.op == opClass {
			classes = append(classes, p.name)
			p = p.next
		}
		p.render(sb)
		sb.WriteByte('&')
		for i := len(classes) - 1; i >= 0; i-- {
			sb.WriteByte('.')
			sb.WriteString(classes[i])
		}
	case opClass:
		s.next.render(sb)
		sb.WriteByte('.')
		sb.WriteString(s.name)
	case opHover:
		s.next.render(sb)
		sb.WriteString(":hover")
	case opFocus:
		s.next.render(sb)
		sb.WriteString(":focus")
	case opFocusWithin:
		s.next.render(sb)
		sb.WriteString(":focus-within")
	case opFocusVisible:
		s.next.render(sb)
		sb.WriteString(":focus-visible")
	case opFirstChild:
		s.next.render(sb)
		sb.WriteString(":first-child")
	case opLastChild:
		s.next.render(sb)
		sb.WriteString(":last-child")
	case opParent:
		s.next.render(sb)
		if s.next.op == opParent {
			sb.WriteByte('*')
		}
		sb.WriteString(" > ")
	case opEither:
		for i, alt := range s.alts {
			if i > 0 {
				sb.WriteString(", ")
			}
			alt.render(sb)
		}
	}
}
