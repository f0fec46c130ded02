/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/lox/scanner"
)

var ExprFormats = []string{"sexpr", "tree"}

// WriteExpr writes expr to w. JSON output ignores format; otherwise format
// picks between the s-expression printer and the indented tree dump.
func WriteExpr(w io.Writer, expr ast.Expr, format, output string) error {
	if output == "json" {
		return json.NewEncoder(w).Encode(ExprToMap(expr))
	}

	switch format {
	case "tree":
		_, err := io.WriteString(w, ast.Dump(expr))
		return err
	default:
		_, err := fmt.Fprintln(w, ast.Printer{}.Print(expr))
		return err
	}
}

type node = map[string]any

// encoder turns a tree into nested maps suitable for encoding/json
type encoder struct{}

// ExprToMap converts expr into nested maps keyed by field name
func ExprToMap(expr ast.Expr) map[string]any {
	return ast.Accept[node](expr, encoder{})
}

func (e encoder) all(exprs []ast.Expr) []node {
	nodes := make([]node, 0, len(exprs))
	for _, x := range exprs {
		nodes = append(nodes, ExprToMap(x))
	}
	return nodes
}

func (e encoder) VisitAssign(a *ast.Assign) node {
	return node{"kind": "Assign", "name": a.Name.Lexeme, "value": ExprToMap(a.Value), "line": a.Name.Line}
}

func (e encoder) VisitBinary(b *ast.Binary) node {
	return node{"kind": "Binary", "operator": b.Operator.Lexeme, "left": ExprToMap(b.Left), "right": ExprToMap(b.Right), "line": b.Operator.Line}
}

func (e encoder) VisitCall(c *ast.Call) node {
	return node{"kind": "Call", "callee": ExprToMap(c.Callee), "arguments": e.all(c.Arguments), "line": c.Paren.Line}
}

func (e encoder) VisitGet(g *ast.Get) node {
	return node{"kind": "Get", "object": ExprToMap(g.Object), "name": g.Name.Lexeme, "line": g.Name.Line}
}

func (e encoder) VisitGrouping(g *ast.Grouping) node {
	return node{"kind": "Grouping", "expression": ExprToMap(g.Expression)}
}

func (e encoder) VisitLiteral(l *ast.Literal) node {
	n := node{"kind": "Literal", "value": nil}
	if l.Value == nil {
		return n
	}

	switch l.Value.Kind {
	case scanner.LIT_STRING:
		n["value"] = l.Value.Text
	case scanner.LIT_NUMBER:
		n["value"] = l.Value.Number
	case scanner.LIT_BOOLEAN:
		n["value"] = l.Value.Boolean
	}
	return n
}

func (e encoder) VisitLogical(l *ast.Logical) node {
	return node{"kind": "Logical", "operator": l.Operator.Lexeme, "left": ExprToMap(l.Left), "right": ExprToMap(l.Right), "line": l.Operator.Line}
}

func (e encoder) VisitSet(s *ast.Set) node {
	return node{"kind": "Set", "object": ExprToMap(s.Object), "name": s.Name.Lexeme, "value": ExprToMap(s.Value), "line": s.Name.Line}
}

func (e encoder) VisitSuper(s *ast.Super) node {
	return node{"kind": "Super", "method": s.Method.Lexeme, "line": s.Keyword.Line}
}

func (e encoder) VisitThis(t *ast.This) node {
	return node{"kind": "This", "line": t.Keyword.Line}
}

func (e encoder) VisitUnary(u *ast.Unary) node {
	return node{"kind": "Unary", "operator": u.Operator.Lexeme, "right": ExprToMap(u.Right), "line": u.Operator.Line}
}

func (e encoder) VisitVariable(v *ast.Variable) node {
	return node{"kind": "Variable", "name": v.Name.Lexeme, "line": v.Name.Line}
}
