// pkg/style/values.go
package style

import (
	"fmt"
	"strconv"
)

// Unit distinguishes the measurement kinds a length value can carry.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

// Val is a length value with a unit, e.g. "10px" or "50%".
type Val struct {
	Unit  Unit
	Value float32
}

// Px returns a pixel length.
func Px(v float32) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a percentage length.
func Percent(v float32) Val { return Val{Unit: UnitPercent, Value: v} }

// Vw returns a viewport-width relative length.
func Vw(v float32) Val { return Val{Unit: UnitVw, Value: v} }

// Vh returns a viewport-height relative length.
func Vh(v float32) Val { return Val{Unit: UnitVh, Value: v} }

// VMin returns a viewport-minimum relative length.
func VMin(v float32) Val { return Val{Unit: UnitVMin, Value: v} }

// VMax returns a viewport-maximum relative length.
func VMax(v float32) Val { return Val{Unit: UnitVMax, Value: v} }

// Auto returns the automatic length.
func Auto() Val { return Val{Unit: UnitAuto} }

func (v Val) String() string {
	num := strconv.FormatFloat(float64(v.Value), 'g', -1, 32)
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitPx:
		return num + "px"
	case UnitPercent:
		return num + "%"
	case UnitVw:
		return num + "vw"
	case UnitVh:
		return num + "vh"
	case UnitVMin:
		return num + "vmin"
	case UnitVMax:
		return num + "vmax"
	}
	return num
}

// UiRect is a set of four lengths, one per side of a box.
type UiRect struct {
	Left   Val
	Right  Val
	Top    Val
	Bottom Val
}

// UiRectAll returns a rect with the same value on every side.
func UiRectAll(v Val) UiRect {
	return UiRect{Left: v, Right: v, Top: v, Bottom: v}
}

// UiRectAxes returns a rect from a horizontal and a vertical value.
func UiRectAxes(horizontal, vertical Val) UiRect {
	return UiRect{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Vec3 is a 3-component translation vector.
type Vec3 struct {
	X, Y, Z float32
}

// Display controls the layout algorithm used for an element.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayNone
)

// PositionType controls how an element is positioned relative to its parent.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// OverflowAxis controls clipping behavior along one axis.
type OverflowAxis uint8

const (
	OverflowVisible OverflowAxis = iota
	OverflowClip
)

// Direction controls text and layout direction.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLtr
	DirectionRtl
)

// FlexDirection controls the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// FlexWrap controls wrapping of flex items.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// AlignItems controls cross-axis alignment of children.
type AlignItems uint8

const (
	AlignItemsDefault AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignContent controls cross-axis distribution of lines.
type AlignContent uint8

const (
	AlignContentDefault AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)

// AlignSelf overrides the parent's AlignItems for one element.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// JustifyItems controls main-axis alignment of children.
type JustifyItems uint8

const (
	JustifyItemsDefault JustifyItems = iota
	JustifyItemsStart
	JustifyItemsEnd
	JustifyItemsCenter
	JustifyItemsBaseline
	JustifyItemsStretch
)

// JustifyContent controls main-axis distribution of children.
type JustifyContent uint8

const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentStretch
	JustifyContentSpaceBetween
	JustifyContentSpaceEvenly
	JustifyContentSpaceAround
)

// JustifySelf overrides the parent's JustifyItems for one element.
type JustifySelf uint8

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfBaseline
	JustifySelfStretch
)

// TextAlign controls horizontal alignment of text runs.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// LineBreak controls where text is allowed to wrap.
type LineBreak uint8

const (
	LineBreakWordBoundary LineBreak = iota
	LineBreakAnyCharacter
	LineBreakWordOrCharacter
	LineBreakNoWrap
)

// PointerEvents controls whether an element participates in picking.
type PointerEvents uint8

const (
	PointerEventsAll PointerEvents = iota
	PointerEventsNone
)

// CursorIcon is a subset of the standard CSS cursor shapes.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorCrosshair
	CursorNotAllowed
	CursorEwResize
	CursorNsResize
)

// ZIndex controls stacking order, either relative to siblings or globally.
type ZIndex struct {
	Global bool
	Value  int32
}

func (z ZIndex) String() string {
	if z.Global {
		return fmt.Sprintf("global(%d)", z.Value)
	}
	return strconv.FormatInt(int64(z.Value), 10)
}
