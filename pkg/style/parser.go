// pkg/style/parser.go
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// NamedStyle is one compiled rule block of a stylesheet.
type NamedStyle struct {
	Name string
	List *StylePropList
}

// ParseStyleSheet compiles stylesheet text into an ordered list of named
// rule blocks. Names are not required to be unique; binding them is the
// caller's concern. Any declaration failure aborts the whole compile with a
// positional error; a broken stylesheet is never partially applied.
func ParseStyleSheet(input string) ([]NamedStyle, error) {
	p := &parser{input: input}
	var sheet []NamedStyle
	for {
		p.skipSpace()
		if p.eof() {
			return sheet, nil
		}
		name, err := p.parseIdent("style name")
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect('{'); err != nil {
			return nil, err
		}
		list, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		sheet = append(sheet, NamedStyle{Name: name, List: list})
	}
}

// MustParseStyleSheet is like ParseStyleSheet but panics on error. Intended
// for stylesheet text embedded at build time.
func MustParseStyleSheet(input string) []NamedStyle {
	sheet, err := ParseStyleSheet(input)
	if err != nil {
		panic(err)
	}
	return sheet
}

// ParseDeclaration parses a single "name: value;" declaration.
func ParseDeclaration(input string) (StyleProp, error) {
	p := &parser{input: input}
	p.skipSpace()
	prop, err := p.parseDeclaration()
	if err != nil {
		return StyleProp{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return StyleProp{}, &ParseError{Offset: p.pos, Expected: "end of input"}
	}
	return prop, nil
}

type parser struct {
	input string
	pos   int
}

// parseBlock parses the contents of a rule block after '{': declarations
// plus nested selector blocks, until the closing '}'.
func (p *parser) parseBlock() (*StylePropList, error) {
	list := &StylePropList{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, &ParseError{Offset: p.pos, Expected: "'}'"}
		}
		switch p.current() {
		case '}':
			p.pos++
			return list, nil
		case '.', '&', '*', ':', ',':
			entry, err := p.parseSelectorEntry()
			if err != nil {
				return nil, err
			}
			list.Selectors = append(list.Selectors, entry)
		default:
			prop, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			list.Props = append(list.Props, prop)
		}
	}
}

// parseSelectorEntry parses "<selector> { decl* }".
func (p *parser) parseSelectorEntry() (SelectorEntry, error) {
	start := p.pos
	open := strings.IndexByte(p.input[p.pos:], '{')
	if open < 0 {
		return SelectorEntry{}, &ParseError{Offset: p.pos, Expected: "'{' after selector"}
	}
	sel, err := ParseSelector(p.input[p.pos : p.pos+open])
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Offset += start
		}
		return SelectorEntry{}, err
	}
	p.pos += open + 1

	var props []StyleProp
	for {
		p.skipSpace()
		if p.eof() {
			return SelectorEntry{}, &ParseError{Offset: p.pos, Expected: "'}'"}
		}
		if p.current() == '}' {
			p.pos++
			return SelectorEntry{Selector: sel, Props: props}, nil
		}
		prop, err := p.parseDeclaration()
		if err != nil {
			return SelectorEntry{}, err
		}
		props = append(props, prop)
	}
}

// parseDeclaration parses one "name: value;" pair and binds it to a typed
// style prop.
func (p *parser) parseDeclaration() (StyleProp, error) {
	start := p.pos
	name, err := p.parseIdent("property name")
	if err != nil {
		return StyleProp{}, err
	}
	p.skipSpace()
	if err := p.expect(':'); err != nil {
		return StyleProp{}, err
	}
	p.skipSpace()
	value, err := p.parseValue()
	if err != nil {
		return StyleProp{}, err
	}
	p.skipSpace()
	if p.eof() || p.current() != ';' {
		return StyleProp{}, &ParseError{Offset: p.pos, Expected: "semicolon"}
	}
	p.pos++

	prop, err := bindProp(name, &value)
	if err != nil {
		return StyleProp{}, &ParseError{Offset: start, Err: err}
	}
	return prop, nil
}

// Transient parsed value, discarded after coercion into a StyleProp.
type propValue struct {
	kind   pvKind
	ident  string
	num    float32
	str    string
	length Val
	list   []propValue
	color  Color
}

type pvKind uint8

const (
	pvIdent pvKind = iota
	pvNumber
	pvString
	pvLength
	pvList
	pvColor
)

func (v *propValue) typeName() string {
	switch v.kind {
	case pvIdent:
		return "ident"
	case pvNumber:
		return "number"
	case pvString:
		return "string"
	case pvLength:
		return "length"
	case pvList:
		return "list"
	case pvColor:
		return "color"
	}
	return "unknown"
}

// parseValue dispatches on the leading character: hex colors, functional
// colors or bare identifiers, lengths and length lists, quoted strings.
func (p *parser) parseValue() (propValue, error) {
	if p.eof() {
		return propValue{}, &ParseError{Offset: p.pos, Expected: "property value"}
	}
	switch ch := p.current(); {
	case ch == '#':
		return p.parseHexColor()
	case isAlpha(ch):
		return p.parseIdentOrColorFn()
	case ch == '"':
		return p.parseString()
	case isNumberStart(ch):
		return p.parseLengths()
	}
	return propValue{}, &ParseError{Offset: p.pos, Expected: "property value"}
}

func (p *parser) parseHexColor() (propValue, error) {
	start := p.pos
	p.pos++
	for !p.eof() && hexDigit(p.current()) >= 0 && p.pos-start <= 8 {
		p.pos++
	}
	c, err := Hex(p.input[start:p.pos])
	if err != nil {
		return propValue{}, &ParseError{Offset: start, Err: err}
	}
	return propValue{kind: pvColor, color: c}, nil
}

var colorFns = map[string]bool{
	"rgb": true, "rgba": true, "rgb_linear": true, "rgba_linear": true,
	"hsl": true, "hsla": true,
}

func (p *parser) parseIdentOrColorFn() (propValue, error) {
	name, err := p.parseIdent("identifier")
	if err != nil {
		return propValue{}, err
	}
	if colorFns[name] {
		mark := p.pos
		p.skipSpace()
		if !p.eof() && p.current() == '(' {
			p.pos++
			return p.parseColorFnArgs(name)
		}
		p.pos = mark
	}
	return propValue{kind: pvIdent, ident: name}, nil
}

// parseColorFnArgs parses the channel arguments of a functional color. The
// first three channels may be separated by commas or spaces, the alpha
// channel additionally by a slash.
func (p *parser) parseColorFnArgs(fn string) (propValue, error) {
	p.skipSpace()
	args := make([]float32, 0, 4)
	for i := 0; i < 3; i++ {
		n, err := p.parseFloat()
		if err != nil {
			return propValue{}, err
		}
		args = append(args, n)
		p.skipSpace()
		if !p.eof() && (p.current() == ',') {
			p.pos++
			p.skipSpace()
		}
	}
	if !p.eof() && p.current() == '/' {
		p.pos++
		p.skipSpace()
	}
	if !p.eof() && p.current() != ')' {
		alpha, err := p.parseFloat()
		if err != nil {
			return propValue{}, err
		}
		args = append(args, alpha)
		p.skipSpace()
	}
	if err := p.expect(')'); err != nil {
		return propValue{}, err
	}

	alpha := float32(1)
	if len(args) == 4 {
		alpha = args[3]
	}
	var c Color
	switch fn {
	case "rgb", "rgba":
		c = RGBA(args[0], args[1], args[2], alpha)
	case "rgb_linear", "rgba_linear":
		c = RGBALinear(args[0], args[1], args[2], alpha)
	case "hsl", "hsla":
		c = HSLA(args[0], args[1], args[2], alpha)
	}
	return propValue{kind: pvColor, color: c}, nil
}

func (p *parser) parseString() (propValue, error) {
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return propValue{}, &ParseError{Offset: p.pos, Expected: "closing quote"}
		}
		ch := p.current()
		p.pos++
		switch ch {
		case '"':
			return propValue{kind: pvString, str: sb.String()}, nil
		case '\\':
			if p.eof() {
				return propValue{}, &ParseError{Offset: p.pos, Expected: "escape character"}
			}
			esc := p.current()
			p.pos++
			switch esc {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			default:
				return propValue{}, &ParseError{
					Offset: p.pos - 1,
					Err:    fmt.Errorf("unknown escape sequence '\\%c'", esc),
				}
			}
		default:
			sb.WriteByte(ch)
		}
	}
}

// parseLengths parses a single length or a 2–4 element space-separated
// length list used by rect shorthands.
func (p *parser) parseLengths() (propValue, error) {
	first, err := p.parseLength()
	if err != nil {
		return propValue{}, err
	}
	list := []propValue{first}
	for len(list) < 4 {
		mark := p.pos
		if !p.skipRequiredSpace() {
			break
		}
		next, ok := p.tryParseLength()
		if !ok {
			p.pos = mark
			break
		}
		list = append(list, next)
	}
	if len(list) == 1 {
		return first, nil
	}
	return propValue{kind: pvList, list: list}, nil
}

// parseLength parses "auto", a number with a unit suffix, or a bare number.
func (p *parser) parseLength() (propValue, error) {
	if !p.eof() && isAlpha(p.current()) {
		start := p.pos
		name, err := p.parseIdent("length")
		if err != nil {
			return propValue{}, err
		}
		if name != "auto" {
			return propValue{}, &ParseError{Offset: start, Expected: "length"}
		}
		return propValue{kind: pvLength, length: Auto()}, nil
	}
	n, err := p.parseFloat()
	if err != nil {
		return propValue{}, err
	}
	for _, unit := range lengthUnits {
		if p.startsWith(unit.suffix) {
			p.pos += len(unit.suffix)
			return propValue{kind: pvLength, length: Val{Unit: unit.unit, Value: n}}, nil
		}
	}
	return propValue{kind: pvNumber, num: n}, nil
}

func (p *parser) tryParseLength() (propValue, bool) {
	mark := p.pos
	v, err := p.parseLength()
	if err != nil {
		p.pos = mark
		return propValue{}, false
	}
	return v, true
}

var lengthUnits = []struct {
	suffix string
	unit   Unit
}{
	{"vmin", UnitVMin},
	{"vmax", UnitVMax},
	{"vh", UnitVh},
	{"vw", UnitVw},
	{"px", UnitPx},
	{"%", UnitPercent},
}

func (p *parser) parseFloat() (float32, error) {
	start := p.pos
	if !p.eof() && (p.current() == '-' || p.current() == '+') {
		p.pos++
	}
	for !p.eof() && (isDigit(p.current()) || p.current() == '.') {
		p.pos++
	}
	if !p.eof() && (p.current() == 'e' || p.current() == 'E') {
		mark := p.pos
		p.pos++
		if !p.eof() && (p.current() == '-' || p.current() == '+') {
			p.pos++
		}
		if p.eof() || !isDigit(p.current()) {
			p.pos = mark
		} else {
			for !p.eof() && isDigit(p.current()) {
				p.pos++
			}
		}
	}
	n, err := strconv.ParseFloat(p.input[start:p.pos], 32)
	if err != nil {
		return 0, &ParseError{Offset: start, Expected: "number"}
	}
	return float32(n), nil
}

// parseIdent parses a name: a leading letter followed by letters, digits
// or underscores.
func (p *parser) parseIdent(expected string) (string, error) {
	start := p.pos
	if p.eof() || !isAlpha(p.current()) {
		return "", &ParseError{Offset: p.pos, Expected: expected}
	}
	p.pos++
	for !p.eof() && isIdentChar(p.current()) {
		p.pos++
	}
	return p.input[start:p.pos], nil
}

func (p *parser) expect(ch byte) error {
	if p.eof() || p.current() != ch {
		return &ParseError{Offset: p.pos, Expected: fmt.Sprintf("'%c'", ch)}
	}
	p.pos++
	return nil
}

// skipSpace consumes whitespace and //-to-end-of-line comments.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.current() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '/':
			if !p.startsWith("//") {
				return
			}
			for !p.eof() && p.current() != '\n' && p.current() != '\r' {
				p.pos++
			}
		default:
			return
		}
	}
}

// skipRequiredSpace consumes at least one whitespace byte, reporting
// whether it did.
func (p *parser) skipRequiredSpace() bool {
	if p.eof() {
		return false
	}
	switch p.current() {
	case ' ', '\t', '\r', '\n':
		p.skipSpace()
		return true
	}
	return false
}

func (p *parser) eof() bool        { return p.pos >= len(p.input) }
func (p *parser) current() byte    { return p.input[p.pos] }
func (p *parser) startsWith(s string) bool {
	return p.pos+len(s) <= len(p.input) && p.input[p.pos:p.pos+len(s)] == s
}

func isDigit(ch byte) bool     { return ch >= '0' && ch <= '9' }
func isIdentChar(ch byte) bool { return isAlpha(ch) || isDigit(ch) || ch == '_' }
func isNumberStart(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.'
}
