// pkg/style/selector_parser.go
package style

import (
	"fmt"
	"strings"
)

// ParseSelector parses a selector expression. The whole input must be
// consumed; trailing garbage is an error.
func ParseSelector(input string) (*Selector, error) {
	p := &selectorParser{input: strings.TrimSpace(input)}
	sel, err := p.parseEither()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, &ParseError{Offset: p.pos, Expected: "end of selector"}
	}
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on error. Intended for
// selector literals fixed at compile time.
func MustParseSelector(input string) *Selector {
	sel, err := ParseSelector(input)
	if err != nil {
		panic(err)
	}
	return sel
}

type selectorParser struct {
	input string
	pos   int
}

// parseEither parses comma-separated alternatives. A single alternative is
// returned directly, without an Either wrapper.
func (p *selectorParser) parseEither() (*Selector, error) {
	first, err := p.parseDesc()
	if err != nil {
		return nil, err
	}
	alts := []*Selector{first}
	for {
		mark := p.pos
		p.skipSpace()
		if p.eof() || p.current() != ',' {
			p.pos = mark
			break
		}
		p.pos++
		p.skipSpace()
		next, err := p.parseDesc()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return Either(alts...), nil
}

// parseDesc parses a chain of combinators joined by '>'. Each '>' inserts a
// Parent hop and the following combinator wraps above it.
func (p *selectorParser) parseDesc() (*Selector, error) {
	sel, err := p.parseCombo(Accept())
	if err != nil {
		return nil, err
	}
	for {
		mark := p.pos
		p.skipSpace()
		if p.eof() || p.current() != '>' {
			p.pos = mark
			break
		}
		p.pos++
		p.skipSpace()
		sel, err = p.parseCombo(Parent(sel))
		if err != nil {
			return nil, err
		}
	}
	return sel, nil
}

// parseCombo parses one simple-selector group ("&.foo:hover") on top of the
// given base chain. A '*' prefix contributes no wrapper; a '&' prefix wraps
// the finished combo in Current.
func (p *selectorParser) parseCombo(base *Selector) (*Selector, error) {
	isCurrent := false
	consumed := false
	if !p.eof() {
		switch p.current() {
		case '*':
			p.pos++
			consumed = true
		case '&':
			isCurrent = true
			p.pos++
			consumed = true
		}
	}

	sel := base
	for !p.eof() {
		switch p.current() {
		case '.':
			p.pos++
			name, err := p.parseName("class name")
			if err != nil {
				return nil, err
			}
			sel = Class(name, sel)
			consumed = true
		case ':':
			p.pos++
			start := p.pos
			name, err := p.parseName("pseudo-class")
			if err != nil {
				return nil, err
			}
			switch name {
			case "hover":
				sel = Hover(sel)
			case "focus":
				sel = Focus(sel)
			case "focus-within":
				sel = FocusWithin(sel)
			case "focus-visible":
				sel = FocusVisible(sel)
			case "first-child":
				sel = FirstChild(sel)
			case "last-child":
				sel = LastChild(sel)
			default:
				return nil, &ParseError{
					Offset: start,
					Err:    fmt.Errorf("unknown pseudo-class %q", name),
				}
			}
			consumed = true
		default:
			return p.finishCombo(sel, isCurrent, consumed)
		}
	}
	return p.finishCombo(sel, isCurrent, consumed)
}

func (p *selectorParser) finishCombo(sel *Selector, isCurrent, consumed bool) (*Selector, error) {
	if !consumed {
		return nil, &ParseError{Offset: p.pos, Expected: "selector"}
	}
	if isCurrent {
		return Current(sel), nil
	}
	return sel, nil
}

// parseName parses an identifier: a leading letter followed by letters,
// digits, '-' or '_'.
func (p *selectorParser) parseName(expected string) (string, error) {
	start := p.pos
	if p.eof() || !isAlpha(p.current()) {
		return "", &ParseError{Offset: p.pos, Expected: expected}
	}
	p.pos++
	for !p.eof() && isNameChar(p.current()) {
		p.pos++
	}
	return p.input[start:p.pos], nil
}

func (p *selectorParser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *selectorParser) current() byte {
	return p.input[p.pos]
}

func (p *selectorParser) skipSpace() {
	for !p.eof() {
		switch p.current() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch byte) bool {
	return isAlpha(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_'
}
