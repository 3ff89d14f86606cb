package internal

import "fmt"

// tokenType identifies the kind of a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), ',', -, +, /, *
	tkLeftParen
	tkRightParen
	tkComma
	tkMinus
	tkPlus
	tkSlash
	tkStar

	// One or two character tokens.
	// !=, =, ==, >, >=, <, <=
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, number
	tkIdentifier
	tkNumber

	// Keywords.
	// if, then, else, end, for, to, fn, return, print
	tkIf
	tkThen
	tkElse
	tkEnd
	tkFor
	tkTo
	tkFn
	tkReturn
	tkPrint
)

var keywords = map[string]tokenType{
	"if":     tkIf,
	"then":   tkThen,
	"else":   tkElse,
	"end":    tkEnd,
	"for":    tkFor,
	"to":     tkTo,
	"fn":     tkFn,
	"return": tkReturn,
	"print":  tkPrint,
}

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkComma:        ",",
	tkMinus:        "-",
	tkPlus:         "+",
	tkSlash:        "/",
	tkStar:         "*",
	tkBangEqual:    "!=",
	tkEqual:        "=",
	tkEqualEqual:   "==",
	tkGreater:      ">",
	tkGreaterEqual: ">=",
	tkLess:         "<",
	tkLessEqual:    "<=",
	tkIdentifier:   "IDENTIFIER",
	tkNumber:       "NUMBER",
	tkIf:           "if",
	tkThen:         "then",
	tkElse:         "else",
	tkEnd:          "end",
	tkFor:          "for",
	tkTo:           "to",
	tkFn:           "fn",
	tkReturn:       "return",
	tkPrint:        "print",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t token) String() string {
	if t.token == tkNumber {
		return fmt.Sprintf("%v", t.literal)
	}
	if t.lexeme == "" {
		return t.token.String()
	}
	return t.lexeme
}
