package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . Stmt | gofmt > ../../internal/stmt.go"
//go:generate sh -c "go run . Expr | gofmt > ../../internal/expr.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Stmt|Expr")
		os.Exit(1)
	}

	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Expr: expression expr",
			"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
			"For: keyword *token, variable *token, start expr, end expr, body stmt",
			"Fn: name *token, params []*token, body stmt",
			"Return: keyword *token, value expr",
			"Print: keyword *token, value expr",
			"Block: stmts []stmt",
		})
	case "Expr":
		out = generateAst("Expr", []string{
			"Literal: value float64",
			"Binary: left expr, operator *token, right expr",
			"Variable: name *token",
			"Assign: name *token, value expr",
			"Call: name *token, arguments []expr",
			"BuiltinCall: name *token, arguments []expr",
			"Format: name *token, value expr, decimals expr",
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(1)
	}
	fmt.Print(out)
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\taccept(" + base + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", base)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + base + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	base := strings.ToLower(baseName)

	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + base + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
