/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import "strings"

// Printer renders an expression as a fully parenthesized s-expression, e.g.
// "1 + 2 * 3" becomes "(+ 1 (* 2 3))".
type Printer struct{}

func (p Printer) Print(e Expr) string {
	return Accept[string](e, p)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(p.Print(e))
	}
	b.WriteString(")")

	return b.String()
}

func (p Printer) VisitAssign(a *Assign) string {
	return p.parenthesize("= "+a.Name.Lexeme, a.Value)
}

func (p Printer) VisitBinary(b *Binary) string {
	return p.parenthesize(b.Operator.Lexeme, b.Left, b.Right)
}

func (p Printer) VisitCall(c *Call) string {
	return p.parenthesize("call", append([]Expr{c.Callee}, c.Arguments...)...)
}

func (p Printer) VisitGet(g *Get) string {
	return p.parenthesize(". "+g.Name.Lexeme, g.Object)
}

func (p Printer) VisitGrouping(g *Grouping) string {
	return p.parenthesize("group", g.Expression)
}

func (p Printer) VisitLiteral(l *Literal) string {
	return l.Label()
}

func (p Printer) VisitLogical(l *Logical) string {
	return p.parenthesize(l.Operator.Lexeme, l.Left, l.Right)
}

func (p Printer) VisitSet(s *Set) string {
	return p.parenthesize("set "+s.Name.Lexeme, s.Object, s.Value)
}

func (p Printer) VisitSuper(s *Super) string {
	return "(super " + s.Method.Lexeme + ")"
}

func (p Printer) VisitThis(*This) string {
	return "this"
}

func (p Printer) VisitUnary(u *Unary) string {
	return p.parenthesize(u.Operator.Lexeme, u.Right)
}

func (p Printer) VisitVariable(v *Variable) string {
	return v.Name.Lexeme
}
