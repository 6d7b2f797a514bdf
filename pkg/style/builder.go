// pkg/style/builder.go
package style

// Builder assembles a StylePropList programmatically, covering the full
// property set including attributes that have no free constructor. It is
// the in-code equivalent of a named stylesheet block.
type Builder struct {
	list StylePropList
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// List finalizes the builder. The returned list must not be mutated.
func (b *Builder) List() *StylePropList {
	list := b.list
	return &list
}

// Add appends pre-constructed props in order.
func (b *Builder) Add(props ...StyleProp) *Builder {
	b.list.Props = append(b.list.Props, props...)
	return b
}

// Selector adds a conditional block. The expression must be a valid
// selector literal; Selector panics otherwise, since builder expressions
// are fixed at compile time.
func (b *Builder) Selector(expr string, fn func(*Builder)) *Builder {
	sel := MustParseSelector(expr)
	inner := NewBuilder()
	fn(inner)
	b.list.Selectors = append(b.list.Selectors, SelectorEntry{
		Selector: sel,
		Props:    inner.list.Props,
	})
	return b
}

func (b *Builder) push(p StyleProp) *Builder {
	b.list.Props = append(b.list.Props, p)
	return b
}

// BackgroundColor sets the background color.
func (b *Builder) BackgroundColor(c Color) *Builder { return b.push(BackgroundColor(&c)) }

// NoBackgroundColor clears the background color.
func (b *Builder) NoBackgroundColor() *Builder { return b.push(BackgroundColor(nil)) }

// BorderColor sets the border color.
func (b *Builder) BorderColor(c Color) *Builder { return b.push(BorderColor(&c)) }

// NoBorderColor clears the border color.
func (b *Builder) NoBorderColor() *Builder { return b.push(BorderColor(nil)) }

// OutlineColor sets the outline color.
func (b *Builder) OutlineColor(c Color) *Builder { return b.push(OutlineColor(&c)) }

// Color sets the text color.
func (b *Builder) Color(c Color) *Builder { return b.push(colorProp(AttrColor, &c)) }

// ZIndex sets a sibling-relative stacking index.
func (b *Builder) ZIndex(z int32) *Builder {
	return b.push(StyleProp{attr: AttrZIndex, z: ZIndex{Value: z}})
}

// ZIndexGlobal sets a global stacking index.
func (b *Builder) ZIndexGlobal(z int32) *Builder {
	return b.push(StyleProp{attr: AttrZIndex, z: ZIndex{Global: true, Value: z}})
}

// Display sets the layout algorithm.
func (b *Builder) Display(d Display) *Builder { return b.push(enumProp(AttrDisplay, int32(d))) }

// Position sets the positioning mode.
func (b *Builder) Position(p PositionType) *Builder { return b.push(Position(p)) }

// OverflowX sets horizontal clipping.
func (b *Builder) OverflowX(o OverflowAxis) *Builder { return b.push(OverflowX(o)) }

// OverflowY sets vertical clipping.
func (b *Builder) OverflowY(o OverflowAxis) *Builder { return b.push(OverflowY(o)) }

// Direction sets layout direction.
func (b *Builder) Direction(d Direction) *Builder { return b.push(enumProp(AttrDirection, int32(d))) }

// Left sets the left inset.
func (b *Builder) Left(v Val) *Builder { return b.push(Left(v)) }

// Right sets the right inset.
func (b *Builder) Right(v Val) *Builder { return b.push(Right(v)) }

// Top sets the top inset.
func (b *Builder) Top(v Val) *Builder { return b.push(Top(v)) }

// Bottom sets the bottom inset.
func (b *Builder) Bottom(v Val) *Builder { return b.push(Bottom(v)) }

// Width sets the preferred width.
func (b *Builder) Width(v Val) *Builder { return b.push(Width(v)) }

// Height sets the preferred height.
func (b *Builder) Height(v Val) *Builder { return b.push(Height(v)) }

// MinWidth sets the minimum width.
func (b *Builder) MinWidth(v Val) *Builder { return b.push(MinWidth(v)) }

// MinHeight sets the minimum height.
func (b *Builder) MinHeight(v Val) *Builder { return b.push(MinHeight(v)) }

// MaxWidth sets the maximum width.
func (b *Builder) MaxWidth(v Val) *Builder { return b.push(MaxWidth(v)) }

// MaxHeight sets the maximum height.
func (b *Builder) MaxHeight(v Val) *Builder { return b.push(MaxHeight(v)) }

// AspectRatio fixes the width/height ratio.
func (b *Builder) AspectRatio(r float32) *Builder { return b.push(AspectRatio(r)) }

// Margin sets all margins.
func (b *Builder) Margin(r UiRect) *Builder { return b.push(Margin(r)) }

// MarginLeft sets the left margin.
func (b *Builder) MarginLeft(v Val) *Builder { return b.push(MarginLeft(v)) }

// MarginRight sets the right margin.
func (b *Builder) MarginRight(v Val) *Builder { return b.push(MarginRight(v)) }

// MarginTop sets the top margin.
func (b *Builder) MarginTop(v Val) *Builder { return b.push(MarginTop(v)) }

// MarginBottom sets the bottom margin.
func (b *Builder) MarginBottom(v Val) *Builder { return b.push(MarginBottom(v)) }

// Padding sets all paddings.
func (b *Builder) Padding(r UiRect) *Builder { return b.push(Padding(r)) }

// PaddingLeft sets the left padding.
func (b *Builder) PaddingLeft(v Val) *Builder { return b.push(PaddingLeft(v)) }

// PaddingRight sets the right padding.
func (b *Builder) PaddingRight(v Val) *Builder { return b.push(PaddingRight(v)) }

// PaddingTop sets the top padding.
func (b *Builder) PaddingTop(v Val) *Builder { return b.push(PaddingTop(v)) }

// PaddingBottom sets the bottom padding.
func (b *Builder) PaddingBottom(v Val) *Builder { return b.push(PaddingBottom(v)) }

// Border sets all border widths.
func (b *Builder) Border(r UiRect) *Builder { return b.push(Border(r)) }

// BorderLeft sets the left border width.
func (b *Builder) BorderLeft(v Val) *Builder { return b.push(BorderLeft(v)) }

// BorderRight sets the right border width.
func (b *Builder) BorderRight(v Val) *Builder { return b.push(BorderRight(v)) }

// BorderTop sets the top border width.
func (b *Builder) BorderTop(v Val) *Builder { return b.push(BorderTop(v)) }

// BorderBottom sets the bottom border width.
func (b *Builder) BorderBottom(v Val) *Builder { return b.push(BorderBottom(v)) }

// FlexDirection sets the flex main axis.
func (b *Builder) FlexDirection(d FlexDirection) *Builder {
	return b.push(enumProp(AttrFlexDirection, int32(d)))
}

// FlexWrap sets flex wrapping.
func (b *Builder) FlexWrap(w FlexWrap) *Builder { return b.push(enumProp(AttrFlexWrap, int32(w))) }

// FlexGrow sets the grow factor.
func (b *Builder) FlexGrow(n float32) *Builder { return b.push(FlexGrow(n)) }

// FlexShrink sets the shrink factor.
func (b *Builder) FlexShrink(n float32) *Builder { return b.push(FlexShrink(n)) }

// FlexBasis sets the flex basis.
func (b *Builder) FlexBasis(v Val) *Builder { return b.push(FlexBasis(v)) }

// RowGap sets the row gap.
func (b *Builder) RowGap(v Val) *Builder { return b.push(RowGap(v)) }

// ColumnGap sets the column gap.
func (b *Builder) ColumnGap(v Val) *Builder { return b.push(ColumnGap(v)) }

// Gap sets both gaps.
func (b *Builder) Gap(v Val) *Builder { return b.push(Gap(v)) }

// AlignItems sets cross-axis child alignment.
func (b *Builder) AlignItems(a AlignItems) *Builder { return b.push(enumProp(AttrAlignItems, int32(a))) }

// AlignContent sets cross-axis line distribution.
func (b *Builder) AlignContent(a AlignContent) *Builder {
	return b.push(enumProp(AttrAlignContent, int32(a)))
}

// AlignSelf overrides the parent's AlignItems.
func (b *Builder) AlignSelf(a AlignSelf) *Builder { return b.push(enumProp(AttrAlignSelf, int32(a))) }

// JustifyItems sets main-axis child alignment.
func (b *Builder) JustifyItems(j JustifyItems) *Builder {
	return b.push(enumProp(AttrJustifyItems, int32(j)))
}

// JustifyContent sets main-axis distribution.
func (b *Builder) JustifyContent(j JustifyContent) *Builder {
	return b.push(enumProp(AttrJustifyContent, int32(j)))
}

// JustifySelf overrides the parent's JustifyItems.
func (b *Builder) JustifySelf(j JustifySelf) *Builder {
	return b.push(enumProp(AttrJustifySelf, int32(j)))
}

// Font sets the font asset path.
func (b *Builder) Font(path string) *Builder { return b.push(Font(path)) }

// FontSize sets the font size.
func (b *Builder) FontSize(size float32) *Builder { return b.push(FontSize(size)) }

// TextAlign sets text alignment.
func (b *Builder) TextAlign(a TextAlign) *Builder { return b.push(enumProp(AttrTextAlign, int32(a))) }

// LineBreak sets line breaking behavior.
func (b *Builder) LineBreak(lb LineBreak) *Builder { return b.push(enumProp(AttrLineBreak, int32(lb))) }

// OutlineWidth sets the outline stroke width.
func (b *Builder) OutlineWidth(v Val) *Builder { return b.push(OutlineWidth(v)) }

// OutlineOffset sets the outline offset.
func (b *Builder) OutlineOffset(v Val) *Builder { return b.push(OutlineOffset(v)) }

// Image sets the background image asset path.
func (b *Builder) Image(path string) *Builder { return b.push(Image(path)) }

// FlipX mirrors the image horizontally.
func (b *Builder) FlipX(flip bool) *Builder { return b.push(FlipX(flip)) }

// FlipY mirrors the image vertically.
func (b *Builder) FlipY(flip bool) *Builder { return b.push(FlipY(flip)) }

// Scale sets a uniform transform scale.
func (b *Builder) Scale(s float32) *Builder { return b.push(Scale(s)) }

// ScaleX sets the horizontal scale.
func (b *Builder) ScaleX(s float32) *Builder { return b.push(ScaleX(s)) }

// ScaleY sets the vertical scale.
func (b *Builder) ScaleY(s float32) *Builder { return b.push(ScaleY(s)) }

// Rotation sets the rotation in radians.
func (b *Builder) Rotation(r float32) *Builder { return b.push(Rotation(r)) }

// Translation sets the transform translation.
func (b *Builder) Translation(v Vec3) *Builder { return b.push(Translation(v)) }

// Cursor sets the cursor shape.
func (b *Builder) Cursor(c CursorIcon) *Builder { return b.push(Cursor(c)) }

// Pickable sets pointer picking participation.
func (b *Builder) Pickable(pe PointerEvents) *Builder { return b.push(Pickable(pe)) }

// Transitions declares animated transitions.
func (b *Builder) Transitions(trans ...Transition) *Builder { return b.push(Transitions(trans...)) }
