// pkg/style/parser_test.go
package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecl(t *testing.T, input string) StyleProp {
	t.Helper()
	prop, err := ParseDeclaration(input)
	require.NoError(t, err, "declaration %q", input)
	return prop
}

func TestParseDeclarationLengths(t *testing.T) {
	tests := []struct {
		input string
		attr  Attr
		want  Val
	}{
		{"width: 10;", AttrWidth, Px(10)},
		{"width: 10px;", AttrWidth, Px(10)},
		{"width: 10.5px;", AttrWidth, Px(10.5)},
		{"width: -4px;", AttrWidth, Px(-4)},
		{"width: 10%;", AttrWidth, Percent(10)},
		{"width: 10vw;", AttrWidth, Vw(10)},
		{"height: 10vh;", AttrHeight, Vh(10)},
		{"height: 10vmin;", AttrHeight, VMin(10)},
		{"height: 10vmax;", AttrHeight, VMax(10)},
		{"width: auto;", AttrWidth, Auto()},
		{"flex_basis: 25%;", AttrFlexBasis, Percent(25)},
		{"margin_left: 8px;", AttrMarginLeft, Px(8)},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			prop := mustDecl(t, tc.input)
			assert.Equal(t, tc.attr, prop.Attr())
			assert.Equal(t, tc.want, prop.val)
		})
	}
}

func TestParseDeclarationColors(t *testing.T) {
	t.Run("hex shorthand equals rgb", func(t *testing.T) {
		short := mustDecl(t, "background_color: #fff;")
		fn := mustDecl(t, "background_color: rgb(1, 1, 1);")
		require.NotNil(t, short.color)
		require.NotNil(t, fn.color)
		assert.Equal(t, *fn.color, *short.color)
	})

	t.Run("hex forms", func(t *testing.T) {
		tests := []struct {
			input string
			want  Color
		}{
			{"border_color: #000;", RGBA(0, 0, 0, 1)},
			{"border_color: #0008;", RGBA(0, 0, 0, float32(0x88)/255)},
			{"border_color: #ff0000;", RGBA(1, 0, 0, 1)},
			{"border_color: #ff000080;", RGBA(1, 0, 0, float32(0x80)/255)},
		}
		for _, tc := range tests {
			prop := mustDecl(t, tc.input)
			require.NotNil(t, prop.color, tc.input)
			assert.Equal(t, tc.want, *prop.color, tc.input)
		}
	})

	t.Run("functional forms", func(t *testing.T) {
		rgba := mustDecl(t, "background_color: rgba(1, 0, 0, 0.5);")
		require.NotNil(t, rgba.color)
		assert.Equal(t, RGBA(1, 0, 0, 0.5), *rgba.color)

		slash := mustDecl(t, "background_color: rgb(1 0 0 / 0.5);")
		require.NotNil(t, slash.color)
		assert.Equal(t, RGBA(1, 0, 0, 0.5), *slash.color)

		linear := mustDecl(t, "background_color: rgb_linear(0.5, 0.5, 0.5);")
		require.NotNil(t, linear.color)
		assert.Equal(t, RGBALinear(0.5, 0.5, 0.5, 1), *linear.color)

		hsl := mustDecl(t, "background_color: hsl(120, 0.5, 0.5);")
		require.NotNil(t, hsl.color)
		assert.Equal(t, HSLA(120, 0.5, 0.5, 1), *hsl.color)
	})

	t.Run("transparent clears the color", func(t *testing.T) {
		prop := mustDecl(t, "background_color: transparent;")
		assert.Equal(t, AttrBackgroundColor, prop.Attr())
		assert.Nil(t, prop.color)
	})

	t.Run("text color", func(t *testing.T) {
		prop := mustDecl(t, "color: #fff;")
		assert.Equal(t, AttrColor, prop.Attr())
		require.NotNil(t, prop.color)
		assert.Equal(t, RGBA(1, 1, 1, 1), *prop.color)
	})
}

func TestParseDeclarationRects(t *testing.T) {
	tests := []struct {
		input string
		want  UiRect
	}{
		{
			"margin: 4px;",
			UiRectAll(Px(4)),
		},
		{
			"margin: auto;",
			UiRectAll(Auto()),
		},
		// Two values: vertical then horizontal.
		{
			"margin: 1px 2px;",
			UiRect{Left: Px(2), Right: Px(2), Top: Px(1), Bottom: Px(1)},
		},
		// Three values: top, horizontal, bottom.
		{
			"margin: 1px 2px 3px;",
			UiRect{Left: Px(2), Right: Px(2), Top: Px(1), Bottom: Px(3)},
		},
		// Four values: top, right, bottom, left.
		{
			"margin: 1px 2px 3px 4px;",
			UiRect{Left: Px(4), Right: Px(2), Top: Px(1), Bottom: Px(3)},
		},
		{
			"padding: 10% auto;",
			UiRect{Left: Auto(), Right: Auto(), Top: Percent(10), Bottom: Percent(10)},
		},
		// Bare numbers coerce to pixels.
		{
			"border: 1 2;",
			UiRect{Left: Px(2), Right: Px(2), Top: Px(1), Bottom: Px(1)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			prop := mustDecl(t, tc.input)
			assert.Equal(t, tc.want, prop.rect)
		})
	}
}

func TestParseDeclarationKeywords(t *testing.T) {
	tests := []struct {
		input string
		attr  Attr
		enum  int32
	}{
		{"display: flex;", AttrDisplay, int32(DisplayFlex)},
		{"display: none;", AttrDisplay, int32(DisplayNone)},
		{"position_type: absolute;", AttrPosition, int32(PositionAbsolute)},
		{"overflow_x: clip;", AttrOverflowX, int32(OverflowClip)},
		{"direction: rtl;", AttrDirection, int32(DirectionRtl)},
		{"flex_direction: column_reverse;", AttrFlexDirection, int32(FlexColumnReverse)},
		{"flex_wrap: wrap;", AttrFlexWrap, int32(Wrap)},
		{"align_items: center;", AttrAlignItems, int32(AlignItemsCenter)},
		{"align_content: space_between;", AttrAlignContent, int32(AlignContentSpaceBetween)},
		{"align_self: auto;", AttrAlignSelf, int32(AlignSelfAuto)},
		{"justify_content: flex_end;", AttrJustifyContent, int32(JustifyContentFlexEnd)},
		{"justify_self: stretch;", AttrJustifySelf, int32(JustifySelfStretch)},
		{"text_align: right;", AttrTextAlign, int32(TextAlignRight)},
		{"line_break: any_character;", AttrLineBreak, int32(LineBreakAnyCharacter)},
		{"cursor: pointer;", AttrCursor, int32(CursorPointer)},
		{"pointer_events: none;", AttrPickable, int32(PointerEventsNone)},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			prop := mustDecl(t, tc.input)
			assert.Equal(t, tc.attr, prop.Attr())
			assert.Equal(t, tc.enum, prop.enum)
		})
	}
}

func TestParseDeclarationScalars(t *testing.T) {
	size := mustDecl(t, "font_size: 16;")
	assert.Equal(t, AttrFontSize, size.Attr())
	assert.Equal(t, float32(16), size.num)

	font := mustDecl(t, `font: "fonts/Ubuntu-Medium.ttf";`)
	assert.Equal(t, "fonts/Ubuntu-Medium.ttf", font.str)

	flip := mustDecl(t, "flip_x: true;")
	assert.True(t, flip.flag)

	z := mustDecl(t, "z_index: 7;")
	assert.Equal(t, ZIndex{Value: 7}, z.z)

	rot := mustDecl(t, "rotation: 1.5;")
	assert.Equal(t, float32(1.5), rot.num)
}

func TestParseDeclarationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
		kind  PropertyErrorKind
		prop  bool
	}{
		{
			name:  "unknown property",
			input: "foo: 10;",
			msg:   "invalid property name: 'foo'",
			kind:  InvalidPropertyName,
			prop:  true,
		},
		{
			name:  "color where length required",
			input: "width: #fff;",
			msg:   "invalid property type: color",
			kind:  InvalidPropertyType,
			prop:  true,
		},
		{
			name:  "unknown keyword",
			input: "width: wide;",
			msg:   `invalid property value: "wide"`,
			kind:  InvalidPropertyValue,
			prop:  true,
		},
		{
			name:  "unknown enum keyword",
			input: "display: block;",
			msg:   `invalid property value: "block"`,
			kind:  InvalidPropertyValue,
			prop:  true,
		},
		{
			name:  "length where color required",
			input: "background_color: 10px;",
			msg:   "invalid property type: length",
			kind:  InvalidPropertyType,
			prop:  true,
		},
		{
			name:  "missing semicolon",
			input: "width: 10",
			msg:   "expected semicolon",
		},
		{
			name:  "garbage after value",
			input: "width: 10px wide;",
			msg:   "expected semicolon",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDeclaration(tc.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
			if tc.prop {
				var perr *PropertyError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tc.kind, perr.Kind)
			}
		})
	}
}

func TestParseStyleSheet(t *testing.T) {
	t.Run("empty block", func(t *testing.T) {
		sheet, err := ParseStyleSheet("MAIN {}")
		require.NoError(t, err)
		require.Len(t, sheet, 1)
		assert.Equal(t, "MAIN", sheet[0].Name)
		assert.Empty(t, sheet[0].List.Props)
		assert.Empty(t, sheet[0].List.Selectors)
	})

	t.Run("props and selectors", func(t *testing.T) {
		sheet, err := ParseStyleSheet(`
			panel {
				background_color: #222;
				width: 50%;
				:hover {
					background_color: #444;
				}
				.open > & {
					display: flex;
					border: 1px;
				}
			}
		`)
		require.NoError(t, err)
		require.Len(t, sheet, 1)

		list := sheet[0].List
		assert.Len(t, list.Props, 2)
		require.Len(t, list.Selectors, 2)
		assert.True(t, MustParseSelector(":hover").Equal(list.Selectors[0].Selector))
		assert.Len(t, list.Selectors[0].Props, 1)
		assert.True(t, MustParseSelector(".open > &").Equal(list.Selectors[1].Selector))
		assert.Len(t, list.Selectors[1].Props, 2)
	})

	t.Run("multiple blocks keep order", func(t *testing.T) {
		sheet, err := ParseStyleSheet(`
			first { width: 1px; }
			second { width: 2px; }
		`)
		require.NoError(t, err)
		require.Len(t, sheet, 2)
		assert.Equal(t, "first", sheet[0].Name)
		assert.Equal(t, "second", sheet[1].Name)
	})

	t.Run("comments are whitespace", func(t *testing.T) {
		sheet, err := ParseStyleSheet(`
			// leading comment
			panel { // after brace
				width: 10px; // after declaration
				// between declarations
				height: 20px;
			}
		`)
		require.NoError(t, err)
		require.Len(t, sheet, 1)
		assert.Len(t, sheet[0].List.Props, 2)
	})

	t.Run("any error fails the whole compile", func(t *testing.T) {
		sheet, err := ParseStyleSheet(`
			good { width: 10px; }
			bad { bogus: 10px; }
		`)
		require.Error(t, err)
		assert.Nil(t, sheet)
		assert.Contains(t, err.Error(), "invalid property name: 'bogus'")
	})

	t.Run("unterminated block", func(t *testing.T) {
		_, err := ParseStyleSheet("panel { width: 10px;")
		require.Error(t, err)
	})
}
