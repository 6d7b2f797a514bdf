// pkg/engine/handle.go
package engine

import (
	"fmt"
	"sort"

	"github.com/xkilldash9x/peacock/pkg/style"
)

// StyleHandle is a named, shared reference to a compiled rule block. Handles
// are immutable after creation and may be attached to any number of
// elements; the engine caches the list's selector metadata here so it is
// computed once per rule instead of once per element.
type StyleHandle struct {
	name string
	list *style.StylePropList

	usesHover       bool
	usesFocusWithin bool
	depth           int
}

// NewHandle wraps a compiled prop list in a handle.
func NewHandle(name string, list *style.StylePropList) *StyleHandle {
	return &StyleHandle{
		name:            name,
		list:            list,
		usesHover:       list.UsesHover(),
		usesFocusWithin: list.UsesFocusWithin(),
		depth:           list.Depth(),
	}
}

// Name returns the rule name the handle was registered under.
func (h *StyleHandle) Name() string { return h.name }

// List returns the compiled rule block.
func (h *StyleHandle) List() *style.StylePropList { return h.list }

// StyleSheet is a registry of named style handles, usually compiled from a
// single stylesheet text.
type StyleSheet struct {
	handles map[string]*StyleHandle
}

// CompileStyleSheet parses stylesheet text and registers a handle per rule
// block. Duplicate rule names are an error.
func CompileStyleSheet(input string) (*StyleSheet, error) {
	rules, err := style.ParseStyleSheet(input)
	if err != nil {
		return nil, err
	}
	sheet := &StyleSheet{handles: make(map[string]*StyleHandle, len(rules))}
	for _, rule := range rules {
		if _, dup := sheet.handles[rule.Name]; dup {
			return nil, fmt.Errorf("duplicate style rule %q", rule.Name)
		}
		sheet.handles[rule.Name] = NewHandle(rule.Name, rule.List)
	}
	return sheet, nil
}

// MustCompileStyleSheet is like CompileStyleSheet but panics on error.
// Intended for stylesheet text embedded at build time.
func MustCompileStyleSheet(input string) *StyleSheet {
	sheet, err := CompileStyleSheet(input)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Handle returns the named handle, or nil when the sheet has no such rule.
func (s *StyleSheet) Handle(name string) *StyleHandle {
	return s.handles[name]
}

// Names returns the registered rule names in sorted order.
func (s *StyleSheet) Names() []string {
	names := make([]string, 0, len(s.handles))
	for name := range s.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
