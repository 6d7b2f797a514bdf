// pkg/engine/classes.go
package engine

import "sort"

// ClassItem is one entry of a conditional class list.
type ClassItem struct {
	Name string
	When bool
}

// If returns a class that is present only while cond holds.
func If(name string, cond bool) ClassItem {
	return ClassItem{Name: name, When: cond}
}

// Always returns an unconditional class.
func Always(name string) ClassItem {
	return ClassItem{Name: name, When: true}
}

// ClassList resolves conditional items to the active class names, preserving
// item order.
func ClassList(items ...ClassItem) []string {
	var names []string
	for _, item := range items {
		if item.When {
			names = append(names, item.Name)
		}
	}
	return names
}

// Classes returns the element's class names in sorted order.
func (e *Engine) Classes(ent Entity) []string {
	n, ok := e.nodes[ent]
	if !ok || len(n.classes) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.classes))
	for name := range n.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
