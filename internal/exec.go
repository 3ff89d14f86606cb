package internal

import "math"

type exec struct {
	state   *interpreterState
	printer IPrinter

	globals *env
	env     *env

	depth          int
	maxDepth       int
	formatDecimals int
}

func (e *exec) interpret(program stmt) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			e.env = e.globals
			e.depth = 0
			result = nil
			err = runErr
		}
	}()
	return program.accept(e), nil
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(e)
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.truthy(stmt.condition.accept(e), stmt.keyword) {
		return stmt.thenBranch.accept(e)
	}
	if stmt.elseBranch != nil {
		return stmt.elseBranch.accept(e)
	}
	return 0.0
}

func (e *exec) visitForStmt(stmt *forStmt) R {
	start := e.getNum(stmt.start.accept(e), stmt.keyword)
	end := e.getNum(stmt.end.accept(e), stmt.keyword)

	var result R = 0.0
	for i := start; i <= end; i++ {
		e.env.define(stmt.variable.lexeme, i)
		result = stmt.body.accept(e)
		// past 2^53 adding one no longer moves i
		if i+1 == i {
			break
		}
	}
	return result
}

func (e *exec) visitFnStmt(stmt *fnStmt) R {
	e.env.defineFunction(stmt)
	return 0.0
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	return stmt.value.accept(e)
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.value.accept(e)
	e.printer.Println(value)
	return value
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	var result R = 0.0
	for _, s := range stmt.stmts {
		result = s.accept(e)
	}
	return result
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.getNum(expr.left.accept(e), expr.operator)
	right := e.getNum(expr.right.accept(e), expr.operator)

	apply, ok := binaryOperators[expr.operator.token]
	if !ok {
		e.state.runtimeErr(detailf(errUndefinedOp, "undefined operator `%s`", expr.operator.token), expr.operator.line)
	}
	value, err := apply(left, right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator.line)
	}
	return value
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	value, ok := e.env.get(expr.name.lexeme)
	if !ok {
		e.state.runtimeErr(detailf(errUndefinedVar, "variable `%s` is not defined", expr.name.lexeme), expr.name.line)
	}
	return value
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	value := e.getNum(expr.value.accept(e), expr.name)
	e.env.define(expr.name.lexeme, value)
	return value
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	fn, ok := e.env.getFunction(expr.name.lexeme)
	if !ok {
		e.state.runtimeErr(detailf(errUndefinedFn, "function `%s` is not defined", expr.name.lexeme), expr.name.line)
	}
	arguments := e.evaluateArguments(expr.arguments, expr.name)
	return (&function{declaration: fn}).call(e, arguments, expr.name)
}

func (e *exec) visitBuiltinCallExpr(expr *builtinCallExpr) R {
	arguments := e.evaluateArguments(expr.arguments, expr.name)
	value, err := e.env.builtins.call(expr.name.lexeme, arguments)
	if err != nil {
		e.state.runtimeErr(err, expr.name.line)
	}
	return value
}

func (e *exec) visitFormatExpr(expr *formatExpr) R {
	value := e.getNum(expr.value.accept(e), expr.name)
	decimals := e.formatDecimals
	if expr.decimals != nil {
		d := e.getNum(expr.decimals.accept(e), expr.name)
		if math.IsNaN(d) || d > maxFormatDecimals {
			e.state.runtimeErr(
				detailf(errInvalidDecimals, "format expects at most %d decimals, got %v", maxFormatDecimals, d),
				expr.name.line,
			)
		}
		decimals = int(math.Max(d, -1))
	}
	return formatFixed(value, decimals)
}

func (e *exec) evaluateArguments(exprs []expr, tk *token) []float64 {
	arguments := make([]float64, len(exprs))
	for i := range exprs {
		arguments[i] = e.getNum(exprs[i].accept(e), tk)
	}
	return arguments
}

// executeIn evaluates body with scope as the current environment
func (e *exec) executeIn(body stmt, scope *env) R {
	previous := e.env
	e.depth++
	defer func() {
		e.env = previous
		e.depth--
	}()
	e.env = scope
	return body.accept(e)
}

func (e *exec) getNum(value R, tk *token) float64 {
	num, ok := value.(float64)
	if !ok {
		e.state.runtimeErr(errOnlyNumbers, tk.line)
	}
	return num
}

func (e *exec) truthy(value R, tk *token) bool {
	return e.getNum(value, tk) != 0
}
