// pkg/style/props_test.go
package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylePropApply(t *testing.T) {
	t.Run("later application wins", func(t *testing.T) {
		cs := NewComputedStyle()
		Width(Px(10)).Apply(&cs)
		Width(Percent(50)).Apply(&cs)
		assert.Equal(t, Percent(50), cs.Style.Width)
	})

	t.Run("gap sets both axes", func(t *testing.T) {
		cs := NewComputedStyle()
		Gap(Px(4)).Apply(&cs)
		assert.Equal(t, Px(4), cs.Style.RowGap)
		assert.Equal(t, Px(4), cs.Style.ColumnGap)
	})

	t.Run("scale sets both axes", func(t *testing.T) {
		cs := NewComputedStyle()
		Scale(2).Apply(&cs)
		require.NotNil(t, cs.ScaleX)
		require.NotNil(t, cs.ScaleY)
		assert.Equal(t, float32(2), *cs.ScaleX)
		assert.Equal(t, float32(2), *cs.ScaleY)
	})

	t.Run("side props refine a rect", func(t *testing.T) {
		cs := NewComputedStyle()
		Margin(UiRectAll(Px(4))).Apply(&cs)
		MarginLeft(Px(8)).Apply(&cs)
		assert.Equal(t, Px(8), cs.Style.Margin.Left)
		assert.Equal(t, Px(4), cs.Style.Margin.Right)
	})

	t.Run("nil color clears", func(t *testing.T) {
		cs := NewComputedStyle()
		white := RGB(1, 1, 1)
		BackgroundColor(&white).Apply(&cs)
		require.NotNil(t, cs.BackgroundColor)
		BackgroundColor(nil).Apply(&cs)
		assert.Nil(t, cs.BackgroundColor)
	})

	t.Run("color value is copied", func(t *testing.T) {
		c := RGB(1, 0, 0)
		prop := BorderColor(&c)
		c.G = 1
		cs := NewComputedStyle()
		prop.Apply(&cs)
		assert.Equal(t, RGB(1, 0, 0), *cs.BorderColor)
	})
}

func TestStylePropListApplyTo(t *testing.T) {
	list := NewBuilder().
		BackgroundColor(RGB(0, 0, 0)).
		Width(Px(100)).
		Selector(":hover", func(b *Builder) {
			b.BackgroundColor(RGB(1, 1, 1))
		}).
		Selector(".open > &", func(b *Builder) {
			b.Width(Percent(100))
		}).
		List()

	parent := &fakeNode{classes: map[string]bool{"open": true}}
	node := &fakeNode{parent: parent, hovered: true}

	t.Run("matching entries override base props", func(t *testing.T) {
		cs := NewComputedStyle()
		list.ApplyTo(&cs, node)
		assert.Equal(t, RGB(1, 1, 1), *cs.BackgroundColor)
		assert.Equal(t, Percent(100), cs.Style.Width)
	})

	t.Run("non-matching entries are skipped", func(t *testing.T) {
		cold := &fakeNode{}
		cs := NewComputedStyle()
		list.ApplyTo(&cs, cold)
		assert.Equal(t, RGB(0, 0, 0), *cs.BackgroundColor)
		assert.Equal(t, Px(100), cs.Style.Width)
	})

	t.Run("nil node applies base props only", func(t *testing.T) {
		cs := NewComputedStyle()
		list.ApplyTo(&cs, nil)
		assert.Equal(t, RGB(0, 0, 0), *cs.BackgroundColor)
		assert.Equal(t, Px(100), cs.Style.Width)
	})

	t.Run("application is idempotent", func(t *testing.T) {
		once := NewComputedStyle()
		list.ApplyTo(&once, node)
		twice := NewComputedStyle()
		list.ApplyTo(&twice, node)
		list.ApplyTo(&twice, node)
		diff := cmp.Diff(once, twice)
		assert.Empty(t, diff)
	})

	assert.True(t, list.UsesHover())
	assert.False(t, list.UsesFocusWithin())
	assert.Equal(t, 2, list.Depth())
}

func TestBuilder(t *testing.T) {
	list := NewBuilder().
		Display(DisplayFlex).
		FlexDirection(FlexColumn).
		AlignItems(AlignItemsCenter).
		Padding(UiRectAll(Px(8))).
		Color(RGB(1, 1, 1)).
		FontSize(14).
		ZIndex(3).
		Transitions(Transition{Property: TransitionWidth, Duration: 0.3}).
		List()

	require.Empty(t, list.Selectors)
	cs := NewComputedStyle()
	list.ApplyTo(&cs, nil)

	assert.Equal(t, DisplayFlex, cs.Style.Display)
	assert.Equal(t, FlexColumn, cs.Style.FlexDirection)
	assert.Equal(t, AlignItemsCenter, cs.Style.AlignItems)
	assert.Equal(t, UiRectAll(Px(8)), cs.Style.Padding)
	require.NotNil(t, cs.Color)
	assert.Equal(t, RGB(1, 1, 1), *cs.Color)
	require.NotNil(t, cs.FontSize)
	assert.Equal(t, float32(14), *cs.FontSize)
	assert.Equal(t, ZIndex{Value: 3}, cs.ZIndex)
	require.Len(t, cs.Transitions, 1)
	assert.Equal(t, TransitionWidth, cs.Transitions[0].Property)
}

func TestBuilderSelectorPanicsOnBadLiteral(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder().Selector(":bogus", func(b *Builder) {})
	})
}

// A parsed stylesheet and the equivalent builder chain produce the same
// computed style.
func TestParsedAndBuiltAgree(t *testing.T) {
	sheet := MustParseStyleSheet(`
		panel {
			display: flex;
			width: 50%;
			background_color: #f00;
			:hover {
				background_color: #0f0;
			}
		}
	`)
	require.Len(t, sheet, 1)

	built := NewBuilder().
		Display(DisplayFlex).
		Width(Percent(50)).
		BackgroundColor(RGB(1, 0, 0)).
		Selector(":hover", func(b *Builder) {
			b.BackgroundColor(RGB(0, 1, 0))
		}).
		List()

	node := &fakeNode{hovered: true}
	fromSheet := NewComputedStyle()
	sheet[0].List.ApplyTo(&fromSheet, node)
	fromBuilder := NewComputedStyle()
	built.ApplyTo(&fromBuilder, node)

	diff := cmp.Diff(fromSheet, fromBuilder)
	assert.Empty(t, diff)
}
