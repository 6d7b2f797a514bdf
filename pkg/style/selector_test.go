// pkg/style/selector_test.go
package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Selector
	}{
		{
			name:  "current",
			input: "&",
			want:  Current(Accept()),
		},
		{
			name:  "star",
			input: "*",
			want:  Accept(),
		},
		{
			name:  "class",
			input: ".foo",
			want:  Class("foo", Accept()),
		},
		{
			name:  "current with class",
			input: "&.foo",
			want:  Current(Class("foo", Accept())),
		},
		{
			name:  "stacked classes",
			input: ".foo.bar",
			want:  Class("bar", Class("foo", Accept())),
		},
		{
			name:  "hover",
			input: ":hover",
			want:  Hover(Accept()),
		},
		{
			name:  "class with hover",
			input: ".foo:hover",
			want:  Hover(Class("foo", Accept())),
		},
		{
			name:  "focus",
			input: ":focus",
			want:  Focus(Accept()),
		},
		{
			name:  "focus-within",
			input: ":focus-within",
			want:  FocusWithin(Accept()),
		},
		{
			name:  "focus-visible",
			input: ":focus-visible",
			want:  FocusVisible(Accept()),
		},
		{
			name:  "first-child",
			input: ":first-child",
			want:  FirstChild(Accept()),
		},
		{
			name:  "last-child",
			input: ":last-child",
			want:  LastChild(Accept()),
		},
		{
			name:  "parent",
			input: ".state > &",
			want:  Current(Parent(Class("state", Accept()))),
		},
		{
			name:  "parent with star hop",
			input: ".state > * > &",
			want:  Current(Parent(Parent(Class("state", Accept())))),
		},
		{
			name:  "parent with class on current",
			input: ".state > &.frame",
			want:  Current(Class("frame", Parent(Class("state", Accept())))),
		},
		{
			name:  "hovered parent",
			input: ".state:hover > &",
			want:  Current(Parent(Hover(Class("state", Accept())))),
		},
		{
			name:  "either",
			input: "&.foo, .bar",
			want: Either(
				Current(Class("foo", Accept())),
				Class("bar", Accept()),
			),
		},
		{
			name:  "either of three",
			input: ".a, .b, .c",
			want: Either(
				Class("a", Accept()),
				Class("b", Accept()),
				Class("c", Accept()),
			),
		},
		{
			name:  "surrounding whitespace",
			input: "  .foo:hover  ",
			want:  Hover(Class("foo", Accept())),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSelector(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "parsed %q as %s, want %s", tc.input, got, tc.want)
		})
	}
}

func TestParseSelectorErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unknown pseudo-class", input: ":bogus"},
		{name: "bare dot", input: "."},
		{name: "trailing garbage", input: ".foo!"},
		{name: "dangling combinator", input: ".foo >"},
		{name: "dangling comma", input: ".foo,"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSelector(tc.input)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

// Serializing a parsed selector and parsing it again must yield an equal
// selector.
func TestSelectorRoundTrip(t *testing.T) {
	inputs := []string{
		"&",
		"&.foo",
		".foo.bar:hover",
		":focus-within",
		".state > &",
		".state > * > &",
		".state:hover > &.frame",
		"&.foo, .bar:focus",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := MustParseSelector(input)
			second, err := ParseSelector(first.String())
			require.NoError(t, err, "rendered form %q did not parse", first.String())
			assert.True(t, first.Equal(second), "round trip of %q changed the selector", input)
		})
	}
}

func TestSelectorDepth(t *testing.T) {
	tests := []struct {
		input string
		depth int
	}{
		{"&", 1},
		{".foo:hover", 1},
		{".state > &", 2},
		{".state > * > &", 3},
		{".a > &, .b > * > &", 3},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.depth, MustParseSelector(tc.input).Depth())
		})
	}
}

func TestSelectorUsage(t *testing.T) {
	hover := MustParseSelector(".state:hover > &")
	assert.True(t, hover.UsesHover())
	assert.False(t, hover.UsesFocusWithin())

	within := MustParseSelector("&:focus-within, .a")
	assert.True(t, within.UsesFocusWithin())
	assert.False(t, within.UsesHover())

	plain := MustParseSelector(".a > &.b")
	assert.False(t, plain.UsesHover())
	assert.False(t, plain.UsesFocusWithin())
}

// fakeNode is a minimal NodeState for match tests.
type fakeNode struct {
	classes      map[string]bool
	hovered      bool
	focused      bool
	focusWithin  bool
	focusVisible bool
	first, last  bool
	parent       *fakeNode
}

func (n *fakeNode) HasClass(name string) bool { return n.classes[name] }
func (n *fakeNode) Hovered() bool             { return n.hovered }
func (n *fakeNode) Focused() bool             { return n.focused }
func (n *fakeNode) FocusWithin() bool         { return n.focusWithin }
func (n *fakeNode) FocusVisible() bool        { return n.focusVisible }
func (n *fakeNode) FirstChild() bool          { return n.first }
func (n *fakeNode) LastChild() bool           { return n.last }

func (n *fakeNode) Parent() (NodeState, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func TestSelectorMatch(t *testing.T) {
	root := &fakeNode{classes: map[string]bool{"state": true}, hovered: true}
	child := &fakeNode{
		classes: map[string]bool{"frame": true},
		parent:  root,
		first:   true,
	}

	tests := []struct {
		selector string
		node     *fakeNode
		want     bool
	}{
		{"&", child, true},
		{"&.frame", child, true},
		{"&.missing", child, false},
		{":first-child", child, true},
		{":last-child", child, false},
		{".state > &", child, true},
		{".state:hover > &", child, true},
		{".other > &", child, false},
		// Root has no parent, so any parent hop fails.
		{".state > &", root, false},
		{"&.missing, .state > &", child, true},
		{"&.missing, .other > &", child, false},
	}
	for _, tc := range tests {
		t.Run(tc.selector, func(t *testing.T) {
			sel := MustParseSelector(tc.selector)
			assert.Equal(t, tc.want, sel.Match(tc.node))
		})
	}
}
