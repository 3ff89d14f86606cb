package internal

import (
	"errors"
	"testing"
)

func scanAll(t *testing.T, source string) []token {
	t.Helper()
	l := newLexer(source)
	var tokens []token
	for {
		tk, err := l.nextToken()
		if err != nil {
			t.Fatalf("unexpected error scanning %q: %v", source, err)
		}
		tokens = append(tokens, tk)
		if tk.token == tkEOF {
			return tokens
		}
	}
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	tokens := scanAll(t, source)
	if len(tokens) != len(expected) {
		t.Errorf("%q: expected %d tokens, got %d: %v", source, len(expected), len(tokens), tokens)
		return
	}
	for i, tk := range tokens {
		if tk.token != expected[i] {
			t.Errorf("%q: token %d should be %s instead of %s", source, i, expected[i], tk.token)
		}
	}
}

func TestLexerTokens(t *testing.T) {
	checkTokens(t, "   \t\n  ", tkEOF)
	checkTokens(t, "1 + 2", tkNumber, tkPlus, tkNumber, tkEOF)
	checkTokens(
		t,
		"+-*/=(),",
		tkPlus, tkMinus, tkStar, tkSlash, tkEqual, tkLeftParen, tkRightParen, tkComma, tkEOF,
	)
	checkTokens(
		t,
		"== != >= <= > <",
		tkEqualEqual, tkBangEqual, tkGreaterEqual, tkLessEqual, tkGreater, tkLess, tkEOF,
	)
	checkTokens(t, "a==b", tkIdentifier, tkEqualEqual, tkIdentifier, tkEOF)
	checkTokens(t, "a=b", tkIdentifier, tkEqual, tkIdentifier, tkEOF)
	checkTokens(t, "x<=-1", tkIdentifier, tkLessEqual, tkMinus, tkNumber, tkEOF)
	checkTokens(
		t,
		"if then else end for to fn return print",
		tkIf, tkThen, tkElse, tkEnd, tkFor, tkTo, tkFn, tkReturn, tkPrint, tkEOF,
	)
	checkTokens(t, "iff _end print_ Then", tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier, tkEOF)
	checkTokens(t, "x1", tkIdentifier, tkNumber, tkEOF)
	checkTokens(t, "größe", tkIdentifier, tkEOF)
}

func TestLexerEmptySource(t *testing.T) {
	tokens := scanAll(t, "")
	if len(tokens) != 1 || tokens[0].token != tkEOF {
		t.Errorf("expected a single EOF token, got %v", tokens)
	}
}

func TestLexerNumbers(t *testing.T) {
	cases := map[string]float64{
		"0":       0,
		"42":      42,
		"3.25":    3.25,
		"10.":     10,
		"1e3":     1000,
		"1E3":     1000,
		"2.5e-2":  0.025,
		"2.5E+2":  250,
		"0.00001": 0.00001,
	}
	for source, expected := range cases {
		tokens := scanAll(t, source)
		if tokens[0].token != tkNumber {
			t.Errorf("%q: expected a number, got %s", source, tokens[0].token)
			continue
		}
		if tokens[0].literal.(float64) != expected {
			t.Errorf("%q: expected %v, got %v", source, expected, tokens[0].literal)
		}
		if tokens[0].lexeme != source {
			t.Errorf("%q: lexeme should be the source text, got %q", source, tokens[0].lexeme)
		}
	}
}

func TestLexerIdentifierLexeme(t *testing.T) {
	tokens := scanAll(t, "  my_var ")
	if tokens[0].lexeme != "my_var" {
		t.Errorf("expected my_var, got %q", tokens[0].lexeme)
	}
}

func TestLexerLines(t *testing.T) {
	tokens := scanAll(t, "a\nb\n\nc")
	lines := []int{1, 2, 4, 4}
	for i, tk := range tokens {
		if tk.line != lines[i] {
			t.Errorf("token %v should be on line %d, found on %d", tk, lines[i], tk.line)
		}
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := newLexer("1")
	if tk, _ := l.nextToken(); tk.token != tkNumber {
		t.Fatalf("expected a number, got %s", tk.token)
	}
	for i := 0; i < 3; i++ {
		tk, err := l.nextToken()
		if err != nil || tk.token != tkEOF {
			t.Fatalf("call %d after the end: expected EOF, got %s (%v)", i, tk.token, err)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	cases := map[string]error{
		"#":     errInvalidChar,
		"!":     errInvalidChar,
		"1;":    errInvalidChar,
		".5":    errInvalidChar,
		"1.2.3": errMultipleDecimalPoints,
		"1..":   errMultipleDecimalPoints,
		"3e":    errMissingExponent,
		"3e-":   errMissingExponent,
		"3E+x":  errMissingExponent,
		"9e400": errInvalidNumber,
	}
	for source, expected := range cases {
		l := newLexer(source)
		var err error
		for i := 0; i < 4 && err == nil; i++ {
			_, err = l.nextToken()
		}
		if !errors.Is(err, expected) {
			t.Errorf("%q: expected %v, got %v", source, expected, err)
			continue
		}
		var lexErr *Error
		if !errors.As(err, &lexErr) || lexErr.Kind != LexicalError {
			t.Errorf("%q: expected a lexical *Error, got %#v", source, err)
		}
	}
}
