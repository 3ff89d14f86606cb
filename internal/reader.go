package internal

import (
	"fmt"
	"strings"
)

func printTree(program *blockStmt) string {
	out := ""
	for _, stmt := range program.stmts {
		out += stmt.accept(stringVisitor{}).(string) + "\n"
	}
	return out
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if %v (then %v)", stmt.condition.accept(v), stmt.thenBranch.accept(v))
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" (else %v)", stmt.elseBranch.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitForStmt(stmt *forStmt) R {
	return fmt.Sprintf(
		"(for %s %v %v %v)",
		stmt.variable.lexeme,
		stmt.start.accept(v),
		stmt.end.accept(v),
		stmt.body.accept(v),
	)
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) R {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	return fmt.Sprintf("(fn %s (%s) %v)", stmt.name.lexeme, strings.Join(params, ", "), stmt.body.accept(v))
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	return fmt.Sprintf("(return %v)", stmt.value.accept(v))
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.value.accept(v))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := "(block"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	return fmt.Sprintf("%v", expr.value)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(set %s %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	return v.call("call", expr.name, expr.arguments)
}

func (v stringVisitor) visitBuiltinCallExpr(expr *builtinCallExpr) R {
	return v.call("builtin", expr.name, expr.arguments)
}

func (v stringVisitor) visitFormatExpr(expr *formatExpr) R {
	if expr.decimals == nil {
		return fmt.Sprintf("(format %v)", expr.value.accept(v))
	}
	return fmt.Sprintf("(format %v %v)", expr.value.accept(v), expr.decimals.accept(v))
}

func (v stringVisitor) call(kind string, name *token, arguments []expr) string {
	out := "(" + kind + " " + name.lexeme
	for _, arg := range arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}
