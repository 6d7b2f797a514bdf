// pkg/style/props.go
package style

// Attr identifies one supported visual or layout property. The set is
// closed; the stylesheet grammar and the cascade both dispatch on it.
type Attr uint8

const (
	AttrBackgroundColor Attr = iota
	AttrBorderColor
	AttrOutlineColor
	AttrColor

	AttrZIndex

	AttrDisplay
	AttrPosition
	AttrOverflowX
	AttrOverflowY
	AttrDirection

	AttrLeft
	AttrRight
	AttrTop
	AttrBottom

	AttrWidth
	AttrHeight
	AttrMinWidth
	AttrMinHeight
	AttrMaxWidth
	AttrMaxHeight
	AttrAspectRatio

	AttrMargin
	AttrMarginLeft
	AttrMarginRight
	AttrMarginTop
	AttrMarginBottom

	AttrPadding
	AttrPaddingLeft
	AttrPaddingRight
	AttrPaddingTop
	AttrPaddingBottom

	AttrBorder
	AttrBorderLeft
	AttrBorderRight
	AttrBorderTop
	AttrBorderBottom

	AttrFlexDirection
	AttrFlexWrap
	AttrFlexGrow
	AttrFlexShrink
	AttrFlexBasis
	AttrRowGap
	AttrColumnGap
	AttrGap

	AttrAlignItems
	AttrAlignContent
	AttrAlignSelf
	AttrJustifyItems
	AttrJustifyContent
	AttrJustifySelf

	AttrFont
	AttrFontSize
	AttrTextAlign
	AttrLineBreak

	AttrOutlineWidth
	AttrOutlineOffset

	AttrImage
	AttrFlipX
	AttrFlipY

	AttrScale
	AttrScaleX
	AttrScaleY
	AttrRotation
	AttrTranslation

	AttrCursor
	AttrPickable

	AttrTransitions
)

// StyleProp is one property assignment: an attribute plus its value. Props
// are immutable value types; which union field is meaningful depends on the
// attribute.
type StyleProp struct {
	attr  Attr
	val   Val
	rect  UiRect
	color *Color
	num   float32
	flag  bool
	enum  int32
	z     ZIndex
	str   string
	vec   Vec3
	trans []Transition
}

// Attr returns which property this prop assigns.
func (p StyleProp) Attr() Attr { return p.attr }

func valProp(attr Attr, v Val) StyleProp     { return StyleProp{attr: attr, val: v} }
func rectProp(attr Attr, r UiRect) StyleProp { return StyleProp{attr: attr, rect: r} }
func numProp(attr Attr, n float32) StyleProp { return StyleProp{attr: attr, num: n} }
func strProp(attr Attr, s string) StyleProp  { return StyleProp{attr: attr, str: s} }
func boolProp(attr Attr, b bool) StyleProp   { return StyleProp{attr: attr, flag: b} }
func enumProp(attr Attr, e int32) StyleProp  { return StyleProp{attr: attr, enum: e} }

func colorProp(attr Attr, c *Color) StyleProp {
	if c != nil {
		cc := *c
		c = &cc
	}
	return StyleProp{attr: attr, color: c}
}

// Free constructors for props whose names do not collide with type names in
// this package. The Builder carries the full set.

// Left sets the left inset.
func Left(v Val) StyleProp { return valProp(AttrLeft, v) }

// Right sets the right inset.
func Right(v Val) StyleProp { return valProp(AttrRight, v) }

// Top sets the top inset.
func Top(v Val) StyleProp { return valProp(AttrTop, v) }

// Bottom sets the bottom inset.
func Bottom(v Val) StyleProp { return valProp(AttrBottom, v) }

// Width sets the preferred width.
func Width(v Val) StyleProp { return valProp(AttrWidth, v) }

// Height sets the preferred height.
func Height(v Val) StyleProp { return valProp(AttrHeight, v) }

// MinWidth sets the minimum width.
func MinWidth(v Val) StyleProp { return valProp(AttrMinWidth, v) }

// MinHeight sets the minimum height.
func MinHeight(v Val) StyleProp { return valProp(AttrMinHeight, v) }

// MaxWidth sets the maximum width.
func MaxWidth(v Val) StyleProp { return valProp(AttrMaxWidth, v) }

// MaxHeight sets the maximum height.
func MaxHeight(v Val) StyleProp { return valProp(AttrMaxHeight, v) }

// AspectRatio fixes the width/height ratio.
func AspectRatio(ratio float32) StyleProp { return numProp(AttrAspectRatio, ratio) }

// Position sets the positioning mode.
func Position(p PositionType) StyleProp { return enumProp(AttrPosition, int32(p)) }

// OverflowX sets horizontal clipping behavior.
func OverflowX(o OverflowAxis) StyleProp { return enumProp(AttrOverflowX, int32(o)) }

// OverflowY sets vertical clipping behavior.
func OverflowY(o OverflowAxis) StyleProp { return enumProp(AttrOverflowY, int32(o)) }

// BackgroundColor sets the background; nil clears it.
func BackgroundColor(c *Color) StyleProp { return colorProp(AttrBackgroundColor, c) }

// BorderColor sets the border color; nil clears it.
func BorderColor(c *Color) StyleProp { return colorProp(AttrBorderColor, c) }

// OutlineColor sets the outline color; nil removes the outline.
func OutlineColor(c *Color) StyleProp { return colorProp(AttrOutlineColor, c) }

// OutlineWidth sets the outline stroke width.
func OutlineWidth(v Val) StyleProp { return valProp(AttrOutlineWidth, v) }

// OutlineOffset sets the gap between element and outline.
func OutlineOffset(v Val) StyleProp { return valProp(AttrOutlineOffset, v) }

// Margin sets all four margins.
func Margin(r UiRect) StyleProp { return rectProp(AttrMargin, r) }

// MarginLeft sets the left margin.
func MarginLeft(v Val) StyleProp { return valProp(AttrMarginLeft, v) }

// MarginRight sets the right margin.
func MarginRight(v Val) StyleProp { return valProp(AttrMarginRight, v) }

// MarginTop sets the top margin.
func MarginTop(v Val) StyleProp { return valProp(AttrMarginTop, v) }

// MarginBottom sets the bottom margin.
func MarginBottom(v Val) StyleProp { return valProp(AttrMarginBottom, v) }

// Padding sets all four paddings.
func Padding(r UiRect) StyleProp { return rectProp(AttrPadding, r) }

// PaddingLeft sets the left padding.
func PaddingLeft(v Val) StyleProp { return valProp(AttrPaddingLeft, v) }

// PaddingRight sets the right padding.
func PaddingRight(v Val) StyleProp { return valProp(AttrPaddingRight, v) }

// PaddingTop sets the top padding.
func PaddingTop(v Val) StyleProp { return valProp(AttrPaddingTop, v) }

// PaddingBottom sets the bottom padding.
func PaddingBottom(v Val) StyleProp { return valProp(AttrPaddingBottom, v) }

// Border sets all four border widths.
func Border(r UiRect) StyleProp { return rectProp(AttrBorder, r) }

// BorderLeft sets the left border width.
func BorderLeft(v Val) StyleProp { return valProp(AttrBorderLeft, v) }

// BorderRight sets the right border width.
func BorderRight(v Val) StyleProp { return valProp(AttrBorderRight, v) }

// BorderTop sets the top border width.
func BorderTop(v Val) StyleProp { return valProp(AttrBorderTop, v) }

// BorderBottom sets the bottom border width.
func BorderBottom(v Val) StyleProp { return valProp(AttrBorderBottom, v) }

// FlexGrow sets the flex grow factor.
func FlexGrow(n float32) StyleProp { return numProp(AttrFlexGrow, n) }

// FlexShrink sets the flex shrink factor.
func FlexShrink(n float32) StyleProp { return numProp(AttrFlexShrink, n) }

// FlexBasis sets the flex basis length.
func FlexBasis(v Val) StyleProp { return valProp(AttrFlexBasis, v) }

// RowGap sets the gap between rows.
func RowGap(v Val) StyleProp { return valProp(AttrRowGap, v) }

// ColumnGap sets the gap between columns.
func ColumnGap(v Val) StyleProp { return valProp(AttrColumnGap, v) }

// Gap sets both row and column gaps.
func Gap(v Val) StyleProp { return valProp(AttrGap, v) }

// Font sets the font asset path.
func Font(path string) StyleProp { return strProp(AttrFont, path) }

// FontSize sets the font size in logical pixels.
func FontSize(size float32) StyleProp { return numProp(AttrFontSize, size) }

// Image sets the background image asset path.
func Image(path string) StyleProp { return strProp(AttrImage, path) }

// FlipX mirrors the background image horizontally.
func FlipX(flip bool) StyleProp { return boolProp(AttrFlipX, flip) }

// FlipY mirrors the background image vertically.
func FlipY(flip bool) StyleProp { return boolProp(AttrFlipY, flip) }

// Scale sets a uniform transform scale.
func Scale(s float32) StyleProp { return numProp(AttrScale, s) }

// ScaleX sets the horizontal transform scale.
func ScaleX(s float32) StyleProp { return numProp(AttrScaleX, s) }

// ScaleY sets the vertical transform scale.
func ScaleY(s float32) StyleProp { return numProp(AttrScaleY, s) }

// Rotation sets the transform rotation in radians.
func Rotation(radians float32) StyleProp { return numProp(AttrRotation, radians) }

// Translation sets the transform translation.
func Translation(v Vec3) StyleProp { return StyleProp{attr: AttrTranslation, vec: v} }

// Cursor sets the cursor shape shown over the element.
func Cursor(c CursorIcon) StyleProp { return enumProp(AttrCursor, int32(c)) }

// Pickable controls whether the element participates in pointer picking.
func Pickable(pe PointerEvents) StyleProp { return enumProp(AttrPickable, int32(pe)) }

// Transitions declares the set of animated transitions for the element.
func Transitions(trans ...Transition) StyleProp {
	return StyleProp{attr: AttrTransitions, trans: trans}
}

// Apply writes the prop's value into a computed style. Later applications
// of the same attribute overwrite earlier ones.
func (p StyleProp) Apply(cs *ComputedStyle) {
	switch p.attr {
	case AttrBackgroundColor:
		cs.BackgroundColor = p.color
	case AttrBorderColor:
		cs.BorderColor = p.color
	case AttrOutlineColor:
		cs.OutlineColor = p.color
	case AttrColor:
		cs.Color = p.color

	case AttrZIndex:
		cs.ZIndex = p.z

	case AttrDisplay:
		cs.Style.Display = Display(p.enum)
	case AttrPosition:
		cs.Style.Position = PositionType(p.enum)
	case AttrOverflowX:
		cs.Style.OverflowX = OverflowAxis(p.enum)
	case AttrOverflowY:
		cs.Style.OverflowY = OverflowAxis(p.enum)
	case AttrDirection:
		cs.Style.Direction = Direction(p.enum)

	case AttrLeft:
		cs.Style.Left = p.val
	case AttrRight:
		cs.Style.Right = p.val
	case AttrTop:
		cs.Style.Top = p.val
	case AttrBottom:
		cs.Style.Bottom = p.val

	case AttrWidth:
		cs.Style.Width = p.val
	case AttrHeight:
		cs.Style.Height = p.val
	case AttrMinWidth:
		cs.Style.MinWidth = p.val
	case AttrMinHeight:
		cs.Style.MinHeight = p.val
	case AttrMaxWidth:
		cs.Style.MaxWidth = p.val
	case AttrMaxHeight:
		cs.Style.MaxHeight = p.val
	case AttrAspectRatio:
		ratio := p.num
		cs.Style.AspectRatio = &ratio

	case AttrMargin:
		cs.Style.Margin = p.rect
	case AttrMarginLeft:
		cs.Style.Margin.Left = p.val
	case AttrMarginRight:
		cs.Style.Margin.Right = p.val
	case AttrMarginTop:
		cs.Style.Margin.Top = p.val
	case AttrMarginBottom:
		cs.Style.Margin.Bottom = p.val

	case AttrPadding:
		cs.Style.Padding = p.rect
	case AttrPaddingLeft:
		cs.Style.Padding.Left = p.val
	case AttrPaddingRight:
		cs.Style.Padding.Right = p.val
	case AttrPaddingTop:
		cs.Style.Padding.Top = p.val
	case AttrPaddingBottom:
		cs.Style.Padding.Bottom = p.val

	case AttrBorder:
		cs.Style.Border = p.rect
	case AttrBorderLeft:
		cs.Style.Border.Left = p.val
	case AttrBorderRight:
		cs.Style.Border.Right = p.val
	case AttrBorderTop:
		cs.Style.Border.Top = p.val
	case AttrBorderBottom:
		cs.Style.Border.Bottom = p.val

	case AttrFlexDirection:
		cs.Style.FlexDirection = FlexDirection(p.enum)
	case AttrFlexWrap:
		cs.Style.FlexWrap = FlexWrap(p.enum)
	case AttrFlexGrow:
		cs.Style.FlexGrow = p.num
	case AttrFlexShrink:
		cs.Style.FlexShrink = p.num
	case AttrFlexBasis:
		cs.Style.FlexBasis = p.val
	case AttrRowGap:
		cs.Style.RowGap = p.val
	case AttrColumnGap:
		cs.Style.ColumnGap = p.val
	case AttrGap:
		cs.Style.RowGap = p.val
		cs.Style.ColumnGap = p.val

	case AttrAlignItems:
		cs.Style.AlignItems = AlignItems(p.enum)
	case AttrAlignContent:
		cs.Style.AlignContent = AlignContent(p.enum)
	case AttrAlignSelf:
		cs.Style.AlignSelf = AlignSelf(p.enum)
	case AttrJustifyItems:
		cs.Style.JustifyItems = JustifyItems(p.enum)
	case AttrJustifyContent:
		cs.Style.JustifyContent = JustifyContent(p.enum)
	case AttrJustifySelf:
		cs.Style.JustifySelf = JustifySelf(p.enum)

	case AttrFont:
		cs.Font = p.str
	case AttrFontSize:
		size := p.num
		cs.FontSize = &size
	case AttrTextAlign:
		align := TextAlign(p.enum)
		cs.TextAlign = &align
	case AttrLineBreak:
		lb := LineBreak(p.enum)
		cs.LineBreak = &lb

	case AttrOutlineWidth:
		cs.OutlineWidth = p.val
	case AttrOutlineOffset:
		cs.OutlineOffset = p.val

	case AttrImage:
		cs.Image = p.str
	case AttrFlipX:
		cs.FlipX = p.flag
	case AttrFlipY:
		cs.FlipY = p.flag

	case AttrScale:
		s := p.num
		cs.ScaleX = &s
		cs.ScaleY = &s
	case AttrScaleX:
		s := p.num
		cs.ScaleX = &s
	case AttrScaleY:
		s := p.num
		cs.ScaleY = &s
	case AttrRotation:
		r := p.num
		cs.Rotation = &r
	case AttrTranslation:
		v := p.vec
		cs.Translation = &v

	case AttrCursor:
		c := CursorIcon(p.enum)
		cs.Cursor = &c
	case AttrPickable:
		pe := PointerEvents(p.enum)
		cs.Pickable = &pe

	case AttrTransitions:
		cs.Transitions = p.trans
	}
}

// SelectorEntry pairs a selector with the props applied when it matches.
type SelectorEntry struct {
	Selector *Selector
	Props    []StyleProp
}

// StylePropList is one named compiled rule block: unconditional props plus
// conditional selector entries, both in declaration order. Lists are shared
// read-only across every element using the rule and never mutated after
// compile time.
type StylePropList struct {
	Props     []StyleProp
	Selectors []SelectorEntry
}

// ApplyTo merges the list into a computed style. Unconditional props apply
// first, then each selector entry whose selector matches the node, all in
// declaration order with later wins. A nil node skips selector entries.
func (l *StylePropList) ApplyTo(cs *ComputedStyle, node NodeState) {
	for _, prop := range l.Props {
		prop.Apply(cs)
	}
	if node == nil {
		return
	}
	for _, entry := range l.Selectors {
		if entry.Selector.Match(node) {
			for _, prop := range entry.Props {
				prop.Apply(cs)
			}
		}
	}
}

// UsesHover reports whether any selector in the list references :hover.
func (l *StylePropList) UsesHover() bool {
	for _, entry := range l.Selectors {
		if entry.Selector.UsesHover() {
			return true
		}
	}
	return false
}

// UsesFocusWithin reports whether any selector references :focus-within.
func (l *StylePropList) UsesFocusWithin() bool {
	for _, entry := range l.Selectors {
		if entry.Selector.UsesFocusWithin() {
			return true
		}
	}
	return false
}

// Depth returns the maximum ancestor inspection depth over all selectors in
// the list, zero when the list has no selectors.
func (l *StylePropList) Depth() int {
	max := 0
	for _, entry := range l.Selectors {
		if d := entry.Selector.Depth(); d > max {
			max = d
		}
	}
	return max
}
