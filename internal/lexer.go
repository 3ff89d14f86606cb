package internal

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// lexer produces tokens on demand. ch holds the character at current,
// atEnd is set once the whole source has been consumed.
type lexer struct {
	source  string
	start   int
	current int
	line    int

	ch    rune
	width int
	atEnd bool
}

func newLexer(source string) *lexer {
	l := &lexer{
		source: source,
		line:   1,
	}
	l.read()
	return l
}

// nextToken returns the next token in the source. Once the end of input
// is reached every call returns an EOF token.
func (l *lexer) nextToken() (token, error) {
	l.skipWhitespace()

	l.start = l.current
	if l.atEnd {
		return l.emit(tkEOF, nil), nil
	}

	c := l.ch
	if isDigit(c) {
		return l.number()
	}
	if isAlpha(c) {
		return l.identifier(), nil
	}

	l.advance()
	switch c {
	case '(':
		return l.emit(tkLeftParen, nil), nil
	case ')':
		return l.emit(tkRightParen, nil), nil
	case ',':
		return l.emit(tkComma, nil), nil
	case '-':
		return l.emit(tkMinus, nil), nil
	case '+':
		return l.emit(tkPlus, nil), nil
	case '/':
		return l.emit(tkSlash, nil), nil
	case '*':
		return l.emit(tkStar, nil), nil
	case '!':
		if l.match('=') {
			return l.emit(tkBangEqual, nil), nil
		}
	case '=':
		if l.match('=') {
			return l.emit(tkEqualEqual, nil), nil
		}
		return l.emit(tkEqual, nil), nil
	case '<':
		if l.match('=') {
			return l.emit(tkLessEqual, nil), nil
		}
		return l.emit(tkLess, nil), nil
	case '>':
		if l.match('=') {
			return l.emit(tkGreaterEqual, nil), nil
		}
		return l.emit(tkGreater, nil), nil
	}

	return token{}, l.error(detailf(errInvalidChar, "invalid character %q", c))
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

func (l *lexer) number() (token, error) {
	seenDot := false
	for !l.atEnd && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if seenDot {
				return token{}, l.error(errMultipleDecimalPoints)
			}
			seenDot = true
		}
		l.advance()
	}

	if l.match('e') || l.match('E') {
		if !l.match('+') {
			l.match('-')
		}
		if l.atEnd || !isDigit(l.ch) {
			return token{}, l.error(errMissingExponent)
		}
		for !l.atEnd && isDigit(l.ch) {
			l.advance()
		}
	}

	literal, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil {
		return token{}, l.error(detailf(errInvalidNumber, "invalid number format: %s", l.source[l.start:l.current]))
	}

	return l.emit(tkNumber, literal), nil
}

func (l *lexer) identifier() token {
	for !l.atEnd && isAlpha(l.ch) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	return l.emit(tokenType, nil)
}

func (l *lexer) read() {
	if l.current >= len(l.source) {
		l.atEnd = true
		l.ch = 0
		l.width = 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.source[l.current:])
}

func (l *lexer) advance() {
	if l.atEnd {
		return
	}
	if l.ch == '\n' {
		l.line++
	}
	l.current += l.width
	l.read()
}

func (l *lexer) match(c rune) bool {
	if l.atEnd || l.ch != c {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) emit(tk tokenType, literal interface{}) token {
	return token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	}
}

func (l *lexer) error(err error) error {
	return &Error{
		Kind: LexicalError,
		Line: l.line,
		Err:  err,
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
