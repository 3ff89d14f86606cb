package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type function struct {
	declaration *fnStmt
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

// call runs the function in a fresh scope whose parent is the caller's
// current scope. Parameters without a matching argument stay unbound.
func (f *function) call(exec *exec, arguments []float64, callee *token) R {
	if exec.maxDepth > 0 && exec.depth >= exec.maxDepth {
		exec.state.runtimeErr(detailf(errMaxDepth, "maximum recursion depth exceeded (%d)", exec.maxDepth), callee.line)
	}

	scope := newEnv(exec.env, exec.env.builtins)
	for i, param := range f.declaration.params {
		if i < len(arguments) {
			scope.define(param.lexeme, arguments[i])
		}
	}

	exec.state.log.WithFields(logrus.Fields{
		"fn":    f.String(),
		"args":  len(arguments),
		"arity": f.arity(),
		"depth": exec.depth + 1,
	}).Trace("call")

	return exec.executeIn(f.declaration.body, scope)
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
