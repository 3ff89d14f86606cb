package internal

import (
	"math"
	"strconv"
)

type nativeFn struct {
	name     string
	arity    int
	defaults []float64
	callFn   func(arguments []float64) float64
}

func (n *nativeFn) call(arguments []float64) (float64, error) {
	if len(arguments) < n.arity || len(arguments) > n.arity+len(n.defaults) {
		return 0, detailf(
			errInvalidNumberArguments,
			"built-in function `%s` expects %s arguments, got %d",
			n.name,
			n.arityString(),
			len(arguments),
		)
	}
	if missing := n.arity + len(n.defaults) - len(arguments); missing > 0 {
		filled := make([]float64, len(arguments), n.arity+len(n.defaults))
		copy(filled, arguments)
		arguments = append(filled, n.defaults[len(n.defaults)-missing:]...)
	}
	return n.callFn(arguments), nil
}

func (n *nativeFn) arityString() string {
	if len(n.defaults) == 0 {
		return strconv.Itoa(n.arity)
	}
	return strconv.Itoa(n.arity) + " to " + strconv.Itoa(n.arity+len(n.defaults))
}

func (n *nativeFn) String() string {
	return "<fn native " + n.name + ">"
}

// registry holds the native functions. It is filled once and only read afterwards.
type registry struct {
	fns map[string]*nativeFn
}

// builtins is shared by every environment of every interpretation
var builtins = newRegistry()

func newRegistry() *registry {
	r := &registry{fns: make(map[string]*nativeFn)}
	defineTrigonometry(r)
	defineMath(r)
	defineConstants(r)
	defineLogic(r)
	return r
}

func (r *registry) define(name string, arity int, defaults []float64, callFn func(arguments []float64) float64) {
	r.fns[name] = &nativeFn{
		name:     name,
		arity:    arity,
		defaults: defaults,
		callFn:   callFn,
	}
}

func (r *registry) isBuiltin(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.fns[name]
	return ok
}

func (r *registry) call(name string, arguments []float64) (float64, error) {
	var fn *nativeFn
	if r != nil {
		fn = r.fns[name]
	}
	if fn == nil {
		return 0, detailf(errBuiltinNotFound, "built-in function `%s` not found", name)
	}
	return fn.call(arguments)
}

func unary(f func(float64) float64) func(arguments []float64) float64 {
	return func(arguments []float64) float64 {
		return f(arguments[0])
	}
}

func binary(f func(float64, float64) float64) func(arguments []float64) float64 {
	return func(arguments []float64) float64 {
		return f(arguments[0], arguments[1])
	}
}

func defineTrigonometry(r *registry) {
	r.define("sin", 1, nil, unary(math.Sin))
	r.define("cos", 1, nil, unary(math.Cos))
	r.define("tan", 1, nil, unary(math.Tan))
	r.define("asin", 1, nil, unary(math.Asin))
	r.define("acos", 1, nil, unary(math.Acos))
	r.define("atan", 1, nil, unary(math.Atan))
}

func defineMath(r *registry) {
	r.define("sqrt", 1, nil, unary(math.Sqrt))
	r.define("abs", 1, nil, unary(math.Abs))
	r.define("floor", 1, nil, unary(math.Floor))
	r.define("ceil", 1, nil, unary(math.Ceil))
	r.define("log", 1, nil, unary(math.Log))
	r.define("exp", 1, nil, unary(math.Exp))
	r.define("pow", 2, nil, binary(math.Pow))
	r.define("min", 2, nil, binary(math.Min))
	r.define("max", 2, nil, binary(math.Max))
	r.define("round", 1, []float64{0}, binary(roundTo))
	// format calls are parsed into formatExpr nodes and rendered there.
	// The entry only makes the name known to the parser.
	r.define("format", 1, []float64{2}, func([]float64) float64 {
		panic("format is evaluated as a formatExpr")
	})
}

func defineConstants(r *registry) {
	r.define("pi", 0, nil, func([]float64) float64 { return math.Pi })
	r.define("e", 0, nil, func([]float64) float64 { return math.E })
}

func defineLogic(r *registry) {
	r.define("equals", 2, []float64{1e-10}, func(arguments []float64) float64 {
		return boolToNumber(math.Abs(arguments[0]-arguments[1]) < arguments[2])
	})
	r.define("bool", 1, nil, func(arguments []float64) float64 {
		return boolToNumber(arguments[0] != 0)
	})
	r.define("not", 1, nil, func(arguments []float64) float64 {
		return boolToNumber(arguments[0] == 0)
	})
}

func roundTo(x, decimals float64) float64 {
	p := math.Pow(10, math.Trunc(decimals))
	switch {
	case math.IsInf(p, 1):
		return x
	case p == 0:
		return 0
	}
	return math.Round(x*p) / p
}
