package internal

import (
	"errors"
	"math"
	"testing"
)

func TestEnvLookupWalksToRoot(t *testing.T) {
	root := newEnv(nil, builtins)
	root.define("a", 1)
	child := newEnv(root, root.builtins)
	child.define("b", 2)
	grandchild := newEnv(child, child.builtins)

	if v, ok := grandchild.get("a"); !ok || v != 1 {
		t.Errorf("expected a = 1 from the root, got %v %v", v, ok)
	}
	if v, ok := grandchild.get("b"); !ok || v != 2 {
		t.Errorf("expected b = 2 from the parent, got %v %v", v, ok)
	}
	if _, ok := root.get("b"); ok {
		t.Error("root must not see bindings of its children")
	}
	if _, ok := grandchild.get("c"); ok {
		t.Error("c is not defined anywhere")
	}
}

func TestEnvWritesStayLocal(t *testing.T) {
	root := newEnv(nil, builtins)
	root.define("a", 1)
	child := newEnv(root, root.builtins)
	child.define("a", 5)

	if v, _ := child.get("a"); v != 5 {
		t.Errorf("child should see its own binding, got %v", v)
	}
	if v, _ := root.get("a"); v != 1 {
		t.Errorf("root binding must be untouched, got %v", v)
	}
}

func TestEnvFunctions(t *testing.T) {
	program, err := newParser("fn one() 1 end\nfn two() 2 end", builtins).parse()
	if err != nil {
		t.Fatal(err)
	}
	one := program.stmts[0].(*fnStmt)
	two := program.stmts[1].(*fnStmt)

	root := newEnv(nil, builtins)
	root.defineFunction(one)
	child := newEnv(root, builtins)

	if fn, ok := child.getFunction("one"); !ok || fn != one {
		t.Errorf("expected to find one through the parent, got %v %v", fn, ok)
	}
	if _, ok := child.getFunction("two"); ok {
		t.Error("two is not defined yet")
	}

	// redefinition replaces the binding in place
	redefined := &fnStmt{name: one.name, body: two.body}
	root.defineFunction(redefined)
	if fn, _ := child.getFunction("one"); fn != redefined {
		t.Error("expected the latest definition to win")
	}
}

func TestBuiltinRegistry(t *testing.T) {
	names := []string{
		"sin", "cos", "tan", "asin", "acos", "atan", "sqrt", "abs", "round", "floor", "ceil",
		"log", "exp", "pow", "min", "max", "pi", "e", "format", "equals", "bool", "not",
	}
	for _, name := range names {
		if !builtins.isBuiltin(name) {
			t.Errorf("%s should be a builtin", name)
		}
	}
	if len(builtins.fns) != len(names) {
		t.Errorf("expected %d builtins, got %d", len(names), len(builtins.fns))
	}
	if builtins.isBuiltin("print") {
		t.Error("print is a keyword, not a builtin")
	}
}

func TestBuiltinDefaults(t *testing.T) {
	cases := []struct {
		name      string
		arguments []float64
		result    float64
	}{
		{"round", []float64{2.4}, 2},
		{"round", []float64{2.456, 1}, 2.5},
		{"round", []float64{-2.5}, -3},
		{"equals", []float64{1, 1 + 1e-12}, 1},
		{"equals", []float64{1, 1.1}, 0},
		{"equals", []float64{1, 1.1, 0.5}, 1},
		{"format", []float64{3.14159}, 3.14},
		{"pi", nil, math.Pi},
		{"e", nil, math.E},
		{"pow", []float64{3, 2}, 9},
	}
	for _, c := range cases {
		result, err := builtins.call(c.name, c.arguments)
		if err != nil {
			t.Errorf("%s%v: unexpected error %v", c.name, c.arguments, err)
			continue
		}
		if result != c.result {
			t.Errorf("%s%v should be %v instead of %v", c.name, c.arguments, c.result, result)
		}
	}
}

func TestBuiltinDefaultsDoNotLeak(t *testing.T) {
	arguments := make([]float64, 1, 4)
	arguments[0] = 2.5
	if _, err := builtins.call("round", arguments); err != nil {
		t.Fatal(err)
	}
	if arguments[:2][1] != 0 {
		t.Error("filling defaults must not write into the caller's backing array")
	}
}

func TestBuiltinErrors(t *testing.T) {
	if _, err := builtins.call("nope", nil); !errors.Is(err, errBuiltinNotFound) {
		t.Errorf("expected builtin not found, got %v", err)
	}
	var empty *registry
	if _, err := empty.call("sqrt", []float64{4}); !errors.Is(err, errBuiltinNotFound) {
		t.Errorf("expected builtin not found on an empty registry, got %v", err)
	}
	if _, err := builtins.call("pi", []float64{1}); !errors.Is(err, errInvalidNumberArguments) {
		t.Errorf("expected an arity error, got %v", err)
	}
	if _, err := builtins.call("equals", []float64{1, 2, 3, 4}); !errors.Is(err, errInvalidNumberArguments) {
		t.Errorf("expected an arity error, got %v", err)
	}
}

func TestBuiltinsAreShared(t *testing.T) {
	a := NewSession(DefaultConfig(), &testPrinter{})
	b := NewSession(DefaultConfig(), &testPrinter{})
	if a.globals.builtins != b.globals.builtins || a.globals.builtins != builtins {
		t.Error("every session should share the process registry")
	}
}
