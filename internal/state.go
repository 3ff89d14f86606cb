package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorKind classifies where an interpretation failed
type ErrorKind int

const (
	// LexicalError is raised while scanning source text
	LexicalError ErrorKind = iota
	// SyntaxError is raised while parsing tokens
	SyntaxError
	// RuntimeError is raised while evaluating the tree
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "Lexical Error"
	case SyntaxError:
		return "Syntax Error"
	default:
		return "Runtime Error"
	}
}

// Error is the only error type returned by the interpreter.
// Any failure aborts the whole interpretation.
type Error struct {
	Kind ErrorKind
	Line int
	Err  error

	// set when parsing ran out of tokens
	incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d: %s", e.Kind, e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err comes from source that ended in the
// middle of a construct, so more input could complete it.
func IsIncomplete(err error) bool {
	var interpErr *Error
	return errors.As(err, &interpErr) && interpErr.incomplete
}

// detailError adds context to a sentinel while keeping it matchable with errors.Is
type detailError struct {
	sentinel error
	msg      string
}

func (d *detailError) Error() string {
	return d.msg
}

func (d *detailError) Unwrap() error {
	return d.sentinel
}

func detailf(sentinel error, format string, a ...interface{}) error {
	return &detailError{sentinel: sentinel, msg: fmt.Sprintf(format, a...)}
}

// interpreterState stores the state of a single interpretation
type interpreterState struct {
	source string
	log    *logrus.Entry
}

func (s *interpreterState) runtimeErr(err error, line int) {
	panic(&Error{
		Kind: RuntimeError,
		Line: line,
		Err:  err,
	})
}

// Lexer errors
var errInvalidChar = errors.New("invalid character")
var errMultipleDecimalPoints = errors.New("invalid number: multiple decimal points")
var errMissingExponent = errors.New("missing exponent digits")
var errInvalidNumber = errors.New("invalid number format")

// Parser errors
var errUnexpectedToken = errors.New("unexpected token")

// Runtime errors
var errUndefinedVar = errors.New("undefined variable")
var errUndefinedFn = errors.New("undefined function")
var errDivisionByZero = errors.New("division by zero")
var errBuiltinNotFound = errors.New("built-in function not found")
var errInvalidNumberArguments = errors.New("invalid number of arguments")
var errOnlyNumbers = errors.New("formatted values cannot be used as numbers")
var errInvalidDecimals = errors.New("invalid number of decimals")
var errMaxDepth = errors.New("maximum recursion depth exceeded")
var errUndefinedOp = errors.New("undefined operator")
