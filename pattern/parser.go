// Package pattern implements the lexical grammar and matcher-facing
// token representation of spec.md §4.2: a small DSL of literals,
// wildcards, inclusion/exclusion classes, and named back-reference
// captures over raw bytes.
//
// Parse is a character-driven state machine with four states —
// top level, inside a bracket group, inside a capture's name, and inside
// a capture's inner bracket group — exactly as spec.md §4.2 describes.
// There is no AST beyond the flat token sequence: patterns have no
// nesting (group_body forbids nested groups, and a capture's inner group
// is itself terminal), so a linear scan producing a linear token list is
// the whole of it.
package pattern

import "github.com/sirupsen/logrus"

// isReserved reports whether b is one of the metacharacters that must be
// escaped with '\' to appear as a literal byte.
func isReserved(b byte) bool {
	switch b {
	case '*', '^', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

// lexer is a cursor over the pattern bytes. col() always equals the
// 1-based column of the next unread byte — every construct in this
// grammar advances the column by exactly the number of bytes it
// consumes, so the byte index and the column never drift apart.
type lexer struct {
	pat []byte
	i   int
}

func (l *lexer) col() int     { return l.i + 1 }
func (l *lexer) eof() bool    { return l.i >= len(l.pat) }
func (l *lexer) peek() byte   { return l.pat[l.i] }
func (l *lexer) advance() byte {
	b := l.pat[l.i]
	l.i++
	log.WithFields(logrus.Fields{"byte": b, "column": l.i}).Debug("byte consumed, column advanced")
	return b
}

// Parse translates pat into an ordered token sequence, or returns a
// *ParseError naming the offending construct and its 1-based column.
func Parse(pat []byte) ([]Token, *ParseError) {
	l := &lexer{pat: pat}
	var tokens []Token

	log.WithField("length", len(pat)).Debug("state entered: top level")
	for !l.eof() {
		switch b := l.peek(); b {
		case '\\':
			lit := l.readEscape()
			tokens = append(tokens, NewChar(lit))
		case '*':
			l.advance()
			tokens = append(tokens, NewWildcard())
		case '[':
			tok, err := l.readGroup()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case '{':
			tok, err := l.readCapture()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ']', '}', '^':
			return nil, unescapedSymbol(b, l.col())
		default:
			l.advance()
			tokens = append(tokens, NewChar(b))
		}
	}

	return tokens, nil
}

// readEscape consumes a '\' and, if followed by a reserved metacharacter,
// consumes that too and returns it literally. A '\' not followed by a
// reserved metacharacter (including a '\' at end-of-input) is returned as
// a literal backslash, consuming only the one byte; the grammar does not
// define this case, and this is the most conservative reading of
// "literal := any byte not in {reserved} OR escape".
func (l *lexer) readEscape() byte {
	l.advance() // consume '\'
	if l.eof() {
		return '\\'
	}
	if b := l.peek(); isReserved(b) {
		l.advance()
		return b
	}
	return '\\'
}

// readGroup consumes a top-level '[' ... ']' or '[^' ... ']' construct.
// startCol is the column of the opening '[' itself, per the "Dangling
// group ... starting at column C" error convention — see DESIGN.md for
// why this is the bracket's own column rather than the column after it.
func (l *lexer) readGroup() (Token, *ParseError) {
	startCol := l.col()
	log.WithField("column", startCol).Debug("state entered: in group")
	l.advance() // consume '['

	exclusion := false
	if !l.eof() && l.peek() == '^' {
		exclusion = true
		l.advance()
	}

	body, closeErr := l.readGroupBody(startCol, exclusion)
	if closeErr != nil {
		return Token{}, closeErr
	}

	set := NewCharset(body)
	if exclusion {
		return NewExclusion(set), nil
	}
	return NewInclusion(set), nil
}

// readGroupBody scans literal bytes until the closing ']', reporting a
// dangling-group error (tagged inclusion/exclusion per the exclusion
// flag) on end-of-input.
func (l *lexer) readGroupBody(startCol int, exclusion bool) ([]byte, *ParseError) {
	dangling := func() *ParseError {
		if exclusion {
			return danglingGroup(ErrDanglingExclusion, "exclusion", startCol)
		}
		return danglingGroup(ErrDanglingInclusion, "inclusion", startCol)
	}

	var body []byte
	for {
		if l.eof() {
			return nil, dangling()
		}
		switch b := l.peek(); {
		case b == ']':
			closeCol := l.col()
			l.advance()
			if len(body) == 0 {
				return nil, unescapedSymbol(']', closeCol)
			}
			return body, nil
		case b == '\\':
			body = append(body, l.readEscape())
		case isReserved(b):
			return nil, unescapedSymbol(b, l.col())
		default:
			body = append(body, l.advance())
		}
	}
}

// readCapture consumes a '{' name '}' or '{' name group '}' construct.
// startCol is the column of '{' itself; every capture-level error
// (dangling, unnamed, or non-trailing inner group) reports startCol, not
// the column of whatever nested delimiter actually failed — see the
// "Group ... must in the tail position of capture starting at column C"
// example in spec.md §8, where C is the capture's '{', not its inner '['.
// An unescaped metacharacter inside the name or inner group is reported
// at its own column instead.
func (l *lexer) readCapture() (Token, *ParseError) {
	startCol := l.col()
	log.WithField("column", startCol).Debug("state entered: in capture")
	l.advance() // consume '{'

	var name []byte
	for {
		if l.eof() {
			return Token{}, danglingGroup(ErrDanglingCapture, "capture", startCol)
		}
		switch b := l.peek(); {
		case b == '}':
			l.advance()
			if len(name) == 0 {
				return Token{}, unnamedCaptureEmpty(startCol)
			}
			return NewCapture(string(name)), nil
		case b == '[':
			if len(name) == 0 {
				return Token{}, unnamedCaptureBeforeGroup(startCol)
			}
			return l.readCaptureGroup(string(name), startCol)
		case b == '\\':
			name = append(name, l.readEscape())
		case isReserved(b):
			return Token{}, unescapedSymbol(b, l.col())
		default:
			name = append(name, l.advance())
		}
	}
}

// readCaptureGroup consumes the inner '[' ... ']' of a named capture and
// the mandatory trailing '}'. The current byte on entry is '['.
func (l *lexer) readCaptureGroup(name string, startCol int) (Token, *ParseError) {
	log.WithFields(logrus.Fields{"column": startCol, "name": name}).Debug("state entered: in capture group")
	l.advance() // consume '['

	exclusion := false
	if !l.eof() && l.peek() == '^' {
		exclusion = true
		l.advance()
	}

	body, err := l.readCaptureGroupBody(startCol)
	if err != nil {
		return Token{}, err
	}

	groupName := "inclusion"
	if exclusion {
		groupName = "exclusion"
	}

	if l.eof() {
		return Token{}, danglingGroup(ErrDanglingCapture, "capture", startCol)
	}
	if l.peek() != '}' {
		return Token{}, groupNotTrailing(groupName, startCol)
	}
	l.advance() // consume '}'

	set := NewCharset(body)
	if exclusion {
		return NewCaptureEx(name, set), nil
	}
	return NewCaptureIn(name, set), nil
}

// readCaptureGroupBody scans literal bytes until the closing ']'. Unlike
// readGroupBody, end-of-input here always means the enclosing capture
// never closed, so it reports dangling-capture rather than a group-kind
// error.
func (l *lexer) readCaptureGroupBody(startCol int) ([]byte, *ParseError) {
	var body []byte
	for {
		if l.eof() {
			return nil, danglingGroup(ErrDanglingCapture, "capture", startCol)
		}
		switch b := l.peek(); {
		case b == ']':
			closeCol := l.col()
			l.advance()
			if len(body) == 0 {
				return nil, unescapedSymbol(']', closeCol)
			}
			return body, nil
		case b == '\\':
			body = append(body, l.readEscape())
		case isReserved(b):
			return nil, unescapedSymbol(b, l.col())
		default:
			body = append(body, l.advance())
		}
	}
}
