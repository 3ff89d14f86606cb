package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Session evaluates programs against one root environment, so
// variables and functions survive from one Eval to the next.
type Session struct {
	cfg     Config
	printer IPrinter
	log     *logrus.Logger
	globals *env
}

// NewSession creates a session printing through p
func NewSession(cfg Config, p IPrinter) *Session {
	logger := logrus.New()
	logger.Out = os.Stderr
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	return &Session{
		cfg:     cfg,
		printer: p,
		log:     logger,
		globals: newEnv(nil, builtins),
	}
}

// Logger gives access to the session logger
func (s *Session) Logger() *logrus.Logger {
	return s.log
}

// Eval lexes, parses and evaluates source. The result is the value of the
// last statement evaluated. Any error aborts the whole evaluation.
func (s *Session) Eval(source string) (Value, error) {
	state := &interpreterState{
		source: source,
		log:    logrus.NewEntry(s.log),
	}

	program, err := s.parse(state)
	if err != nil {
		return nil, err
	}

	executor := &exec{
		state:          state,
		printer:        s.printer,
		globals:        s.globals,
		env:            s.globals,
		maxDepth:       s.cfg.MaxDepth,
		formatDecimals: s.cfg.FormatDecimals,
	}

	result, err := executor.interpret(program)
	if err != nil {
		state.log.WithError(err).Debug("evaluation failed")
		return nil, err
	}
	state.log.WithField("result", result).Debug("evaluated program")
	return result, nil
}

// Tree parses source and returns its tree as s-expressions, one per statement
func (s *Session) Tree(source string) (string, error) {
	state := &interpreterState{
		source: source,
		log:    logrus.NewEntry(s.log),
	}
	program, err := s.parse(state)
	if err != nil {
		return "", err
	}
	return printTree(program), nil
}

func (s *Session) parse(state *interpreterState) (*blockStmt, error) {
	parser := newParser(state.source, s.globals.builtins)
	program, err := parser.parse()
	if err != nil {
		state.log.WithError(err).Debug("parse failed")
		return nil, err
	}
	state.log.WithFields(logrus.Fields{
		"tokens":     parser.scanned,
		"statements": len(program.stmts),
	}).Debug("parsed program")
	return program, nil
}

// Interpret runs source on a fresh root environment with the default settings
func Interpret(source string, p IPrinter) (Value, error) {
	return NewSession(DefaultConfig(), p).Eval(source)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance,
// reporting errors through p. It returns false when the program failed.
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	session := NewSession(DefaultConfig(), p)
	session.log.WithField("file", absPath).Debug("running source")
	if _, err := session.Eval(source); err != nil {
		p.Fprintln(os.Stderr, err)
		return false
	}
	return true
}

// PrintTree parses source and returns its tree
func PrintTree(source string) (string, error) {
	return NewSession(DefaultConfig(), nil).Tree(source)
}
