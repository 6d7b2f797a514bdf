// pkg/style/parser_bind.go
package style

// Binding of parsed property names to typed style props, with the value
// coercions each property accepts.

func bindProp(name string, v *propValue) (StyleProp, error) {
	bind, ok := propBindings[name]
	if !ok {
		return StyleProp{}, invalidName(name)
	}
	return bind(v)
}

type propBinder func(v *propValue) (StyleProp, error)

var propBindings = map[string]propBinder{
	"background_color": colorBinder(AttrBackgroundColor),
	"border_color":     colorBinder(AttrBorderColor),
	"outline_color":    colorBinder(AttrOutlineColor),
	"color":            colorBinder(AttrColor),

	"display":       enumBinder(AttrDisplay, displayKeywords),
	"position_type": enumBinder(AttrPosition, positionKeywords),
	"overflow_x":    enumBinder(AttrOverflowX, overflowKeywords),
	"overflow_y":    enumBinder(AttrOverflowY, overflowKeywords),
	"direction":     enumBinder(AttrDirection, directionKeywords),

	"left":   lengthBinder(AttrLeft),
	"right":  lengthBinder(AttrRight),
	"top":    lengthBinder(AttrTop),
	"bottom": lengthBinder(AttrBottom),

	"width":      lengthBinder(AttrWidth),
	"height":     lengthBinder(AttrHeight),
	"min_width":  lengthBinder(AttrMinWidth),
	"min_height": lengthBinder(AttrMinHeight),
	"max_width":  lengthBinder(AttrMaxWidth),
	"max_height": lengthBinder(AttrMaxHeight),

	"aspect_ratio": numberBinder(AttrAspectRatio),

	"margin":        rectBinder(AttrMargin),
	"margin_left":   lengthBinder(AttrMarginLeft),
	"margin_right":  lengthBinder(AttrMarginRight),
	"margin_top":    lengthBinder(AttrMarginTop),
	"margin_bottom": lengthBinder(AttrMarginBottom),

	"padding":        rectBinder(AttrPadding),
	"padding_left":   lengthBinder(AttrPaddingLeft),
	"padding_right":  lengthBinder(AttrPaddingRight),
	"padding_top":    lengthBinder(AttrPaddingTop),
	"padding_bottom": lengthBinder(AttrPaddingBottom),

	"border":        rectBinder(AttrBorder),
	"border_left":   lengthBinder(AttrBorderLeft),
	"border_right":  lengthBinder(AttrBorderRight),
	"border_top":    lengthBinder(AttrBorderTop),
	"border_bottom": lengthBinder(AttrBorderBottom),

	"flex_direction": enumBinder(AttrFlexDirection, flexDirectionKeywords),
	"flex_wrap":      enumBinder(AttrFlexWrap, flexWrapKeywords),
	"flex_grow":      numberBinder(AttrFlexGrow),
	"flex_shrink":    numberBinder(AttrFlexShrink),
	"flex_basis":     lengthBinder(AttrFlexBasis),

	"row_gap":    lengthBinder(AttrRowGap),
	"column_gap": lengthBinder(AttrColumnGap),
	"gap":        lengthBinder(AttrGap),

	"align_items":     enumBinder(AttrAlignItems, alignItemsKeywords),
	"align_content":   enumBinder(AttrAlignContent, contentKeywords),
	"align_self":      enumBinder(AttrAlignSelf, selfKeywords),
	"justify_items":   enumBinder(AttrJustifyItems, itemsKeywords),
	"justify_content": enumBinder(AttrJustifyContent, contentKeywords),
	"justify_self":    enumBinder(AttrJustifySelf, justifySelfKeywords),

	"font":       stringBinder(AttrFont),
	"font_size":  numberBinder(AttrFontSize),
	"text_align": enumBinder(AttrTextAlign, textAlignKeywords),
	"line_break": enumBinder(AttrLineBreak, lineBreakKeywords),

	"outline_width":  lengthBinder(AttrOutlineWidth),
	"outline_offset": lengthBinder(AttrOutlineOffset),

	"z_index": bindZIndex,

	"image":  stringBinder(AttrImage),
	"flip_x": boolBinder(AttrFlipX),
	"flip_y": boolBinder(AttrFlipY),

	"scale":    numberBinder(AttrScale),
	"scale_x":  numberBinder(AttrScaleX),
	"scale_y":  numberBinder(AttrScaleY),
	"rotation": numberBinder(AttrRotation),

	"cursor":         enumBinder(AttrCursor, cursorKeywords),
	"pointer_events": enumBinder(AttrPickable, pointerEventsKeywords),
}

func colorBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		c, err := v.coerceColor()
		if err != nil {
			return StyleProp{}, err
		}
		return colorProp(attr, c), nil
	}
}

func lengthBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		val, err := v.coerceVal()
		if err != nil {
			return StyleProp{}, err
		}
		return valProp(attr, val), nil
	}
}

func rectBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		r, err := v.coerceRect()
		if err != nil {
			return StyleProp{}, err
		}
		return rectProp(attr, r), nil
	}
}

func numberBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		n, err := v.coerceNumber()
		if err != nil {
			return StyleProp{}, err
		}
		return numProp(attr, n), nil
	}
}

func stringBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		s, err := v.coerceString()
		if err != nil {
			return StyleProp{}, err
		}
		return strProp(attr, s), nil
	}
}

func boolBinder(attr Attr) propBinder {
	return func(v *propValue) (StyleProp, error) {
		b, err := v.coerceBool()
		if err != nil {
			return StyleProp{}, err
		}
		return boolProp(attr, b), nil
	}
}

func enumBinder(attr Attr, keywords map[string]int32) propBinder {
	return func(v *propValue) (StyleProp, error) {
		if v.kind != pvIdent {
			return StyleProp{}, invalidType(v.typeName())
		}
		e, ok := keywords[v.ident]
		if !ok {
			return StyleProp{}, invalidValue(v.ident)
		}
		return enumProp(attr, e), nil
	}
}

func bindZIndex(v *propValue) (StyleProp, error) {
	if v.kind != pvNumber {
		return StyleProp{}, invalidType(v.typeName())
	}
	return StyleProp{attr: AttrZIndex, z: ZIndex{Value: int32(v.num)}}, nil
}

// coerceColor accepts a parsed color or the keyword "transparent", which
// clears the color rather than painting with zero alpha.
func (v *propValue) coerceColor() (*Color, error) {
	switch v.kind {
	case pvColor:
		c := v.color
		return &c, nil
	case pvIdent:
		if v.ident == "transparent" {
			return nil, nil
		}
		return nil, invalidType(`"` + v.ident + `"`)
	}
	return nil, invalidType(v.typeName())
}

// coerceVal accepts a length, a bare number (pixels) or the keyword "auto".
func (v *propValue) coerceVal() (Val, error) {
	switch v.kind {
	case pvLength:
		return v.length, nil
	case pvNumber:
		return Px(v.num), nil
	case pvIdent:
		if v.ident == "auto" {
			return Auto(), nil
		}
		return Val{}, invalidValue(v.ident)
	}
	return Val{}, invalidType(v.typeName())
}

// coerceRect accepts a single length applied to all sides, or a CSS-style
// shorthand list: two values are vertical then horizontal, three are top,
// horizontal, bottom, four are top, right, bottom, left.
func (v *propValue) coerceRect() (UiRect, error) {
	switch v.kind {
	case pvLength:
		return UiRectAll(v.length), nil
	case pvNumber:
		return UiRectAll(Px(v.num)), nil
	case pvIdent:
		if v.ident == "auto" {
			return UiRectAll(Auto()), nil
		}
		return UiRect{}, invalidValue(v.ident)
	case pvList:
		vals := make([]Val, len(v.list))
		for i := range v.list {
			val, err := v.list[i].coerceVal()
			if err != nil {
				return UiRect{}, err
			}
			vals[i] = val
		}
		switch len(vals) {
		case 2:
			return UiRectAxes(vals[1], vals[0]), nil
		case 3:
			return UiRect{Left: vals[1], Right: vals[1], Top: vals[0], Bottom: vals[2]}, nil
		case 4:
			return UiRect{Left: vals[3], Right: vals[1], Top: vals[0], Bottom: vals[2]}, nil
		}
		return UiRect{}, invalidType(v.typeName())
	}
	return UiRect{}, invalidType(v.typeName())
}

func (v *propValue) coerceNumber() (float32, error) {
	if v.kind != pvNumber {
		return 0, invalidType(v.typeName())
	}
	return v.num, nil
}

func (v *propValue) coerceString() (string, error) {
	if v.kind != pvString {
		return "", invalidType(v.typeName())
	}
	return v.str, nil
}

func (v *propValue) coerceBool() (bool, error) {
	if v.kind != pvIdent {
		return false, invalidType(v.typeName())
	}
	switch v.ident {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, invalidValue(v.ident)
}

var displayKeywords = map[string]int32{
	"flex": int32(DisplayFlex),
	"grid": int32(DisplayGrid),
	"none": int32(DisplayNone),
}

var positionKeywords = map[string]int32{
	"relative": int32(PositionRelative),
	"absolute": int32(PositionAbsolute),
}

var overflowKeywords = map[string]int32{
	"visible": int32(OverflowVisible),
	"clip":    int32(OverflowClip),
}

var directionKeywords = map[string]int32{
	"inherit": int32(DirectionInherit),
	"ltr":     int32(DirectionLtr),
	"rtl":     int32(DirectionRtl),
}

var flexDirectionKeywords = map[string]int32{
	"row":            int32(FlexRow),
	"row_reverse":    int32(FlexRowReverse),
	"column":         int32(FlexColumn),
	"column_reverse": int32(FlexColumnReverse),
}

var flexWrapKeywords = map[string]int32{
	"nowrap":       int32(NoWrap),
	"wrap":         int32(Wrap),
	"wrap_reverse": int32(WrapReverse),
}

var alignItemsKeywords = map[string]int32{
	"default":    int32(AlignItemsDefault),
	"start":      int32(AlignItemsStart),
	"end":        int32(AlignItemsEnd),
	"flex_start": int32(AlignItemsFlexStart),
	"flex_end":   int32(AlignItemsFlexEnd),
	"center":     int32(AlignItemsCenter),
	"baseline":   int32(AlignItemsBaseline),
	"stretch":    int32(AlignItemsStretch),
}

// contentKeywords serves both align_content and justify_content; the two
// enums share their variant order.
var contentKeywords = map[string]int32{
	"default":       int32(AlignContentDefault),
	"start":         int32(AlignContentStart),
	"end":           int32(AlignContentEnd),
	"flex_start":    int32(AlignContentFlexStart),
	"flex_end":      int32(AlignContentFlexEnd),
	"center":        int32(AlignContentCenter),
	"stretch":       int32(AlignContentStretch),
	"space_between": int32(AlignContentSpaceBetween),
	"space_evenly":  int32(AlignContentSpaceEvenly),
	"space_around":  int32(AlignContentSpaceAround),
}

var selfKeywords = map[string]int32{
	"auto":       int32(AlignSelfAuto),
	"start":      int32(AlignSelfStart),
	"end":        int32(AlignSelfEnd),
	"flex_start": int32(AlignSelfFlexStart),
	"flex_end":   int32(AlignSelfFlexEnd),
	"center":     int32(AlignSelfCenter),
	"baseline":   int32(AlignSelfBaseline),
	"stretch":    int32(AlignSelfStretch),
}

var itemsKeywords = map[string]int32{
	"default":  int32(JustifyItemsDefault),
	"start":    int32(JustifyItemsStart),
	"end":      int32(JustifyItemsEnd),
	"center":   int32(JustifyItemsCenter),
	"baseline": int32(JustifyItemsBaseline),
	"stretch":  int32(JustifyItemsStretch),
}

var justifySelfKeywords = map[string]int32{
	"auto":     int32(JustifySelfAuto),
	"start":    int32(JustifySelfStart),
	"end":      int32(JustifySelfEnd),
	"center":   int32(JustifySelfCenter),
	"baseline": int32(JustifySelfBaseline),
	"stretch":  int32(JustifySelfStretch),
}

var textAlignKeywords = map[string]int32{
	"left":   int32(TextAlignLeft),
	"center": int32(TextAlignCenter),
	"right":  int32(TextAlignRight),
}

var lineBreakKeywords = map[string]int32{
	"word_boundary":     int32(LineBreakWordBoundary),
	"any_character":     int32(LineBreakAnyCharacter),
	"word_or_character": int32(LineBreakWordOrCharacter),
	"no_wrap":           int32(LineBreakNoWrap),
}

var cursorKeywords = map[string]int32{
	"default":     int32(CursorDefault),
	"none":        int32(CursorNone),
	"pointer":     int32(CursorPointer),
	"text":        int32(CursorText),
	"move":        int32(CursorMove),
	"grab":        int32(CursorGrab),
	"grabbing":    int32(CursorGrabbing),
	"crosshair":   int32(CursorCrosshair),
	"not_allowed": int32(CursorNotAllowed),
	"ew_resize":   int32(CursorEwResize),
	"ns_resize":   int32(CursorNsResize),
}

var pointerEventsKeywords = map[string]int32{
	"auto": int32(PointerEventsAll),
	"none": int32(PointerEventsNone),
}
