package internal

// env is one scope. enclosing is a read-only link to the scope that was
// active when this one was created; writes never go through it.
type env struct {
	enclosing *env
	builtins  *registry

	values    map[string]float64
	functions map[string]*fnStmt
}

func newEnv(enclosing *env, builtins *registry) *env {
	return &env{
		enclosing: enclosing,
		builtins:  builtins,
		values:    make(map[string]float64),
		functions: make(map[string]*fnStmt),
	}
}

func (e *env) get(name string) (float64, bool) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name]; ok {
			return value, true
		}
	}
	return 0, false
}

func (e *env) define(name string, value float64) {
	e.values[name] = value
}

func (e *env) getFunction(name string) (*fnStmt, bool) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if fn, ok := scope.functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

func (e *env) defineFunction(fn *fnStmt) {
	e.functions[fn.name.lexeme] = fn
}
