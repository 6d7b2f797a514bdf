// pkg/style/computed.go
package style

// LayoutStyle holds the box-model and flex fields of an element. It is both
// the default data carrier a cascade starts from and the output the layout
// system consumes.
type LayoutStyle struct {
	Display   Display
	Position  PositionType
	OverflowX OverflowAxis
	OverflowY OverflowAxis
	Direction Direction

	Left   Val
	Right  Val
	Top    Val
	Bottom Val

	Width     Val
	Height    Val
	MinWidth  Val
	MinHeight Val
	MaxWidth  Val
	MaxHeight Val

	AspectRatio *float32

	AlignItems     AlignItems
	JustifyItems   JustifyItems
	AlignSelf      AlignSelf
	JustifySelf    JustifySelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	Margin  UiRect
	Padding UiRect
	Border  UiRect

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float32
	FlexShrink    float32
	FlexBasis     Val

	RowGap    Val
	ColumnGap Val
}

// DefaultLayoutStyle returns the rest state of an unstyled element: auto
// sizing and insets, zero-width box edges, flex defaults.
func DefaultLayoutStyle() LayoutStyle {
	zero := UiRectAll(Px(0))
	return LayoutStyle{
		Left:       Auto(),
		Right:      Auto(),
		Top:        Auto(),
		Bottom:     Auto(),
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Auto(),
		MinHeight:  Auto(),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Margin:     zero,
		Padding:    zero,
		Border:     zero,
		FlexShrink: 1,
		FlexBasis:  Auto(),
		RowGap:     Px(0),
		ColumnGap:  Px(0),
	}
}

// ComputedStyle is the composition of one or more style lists for a single
// node at a single frame: the fully resolved set of effective values.
// It is rebuilt from scratch on every recompute and consumed immediately by
// the apply step.
type ComputedStyle struct {
	Style LayoutStyle

	// Text properties. These inherit from the parent element when not
	// explicitly set.
	TextAlign *TextAlign
	Color     *Color
	FontSize  *float32
	Font      string
	LineBreak *LineBreak

	BorderColor     *Color
	BackgroundColor *Color
	OutlineColor    *Color
	OutlineWidth    Val
	OutlineOffset   Val
	ZIndex          ZIndex

	// Transform properties.
	ScaleX      *float32
	ScaleY      *float32
	Rotation    *float32
	Translation *Vec3

	// Image properties. Asset loading is the host's concern; only the path
	// is carried here.
	Image string
	FlipX bool
	FlipY bool

	Pickable *PointerEvents
	Cursor   *CursorIcon

	Transitions []Transition
}

// NewComputedStyle returns a computed style whose layout fields are at
// their rest state.
func NewComputedStyle() ComputedStyle {
	return ComputedStyle{Style: DefaultLayoutStyle()}
}

// HasTransition reports whether a transition is declared for the given
// property, returning it when present.
func (cs *ComputedStyle) HasTransition(prop TransitionProperty) (Transition, bool) {
	for _, tr := range cs.Transitions {
		if tr.Property == prop {
			return tr, true
		}
	}
	return Transition{}, false
}

