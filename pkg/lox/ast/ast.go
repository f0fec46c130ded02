/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"strconv"

	"github.com/dburkart/lox/pkg/lox/scanner"
)

// Expr is any expression node. The set of node kinds is closed; only types in
// this package implement it.
type Expr interface {
	// Label is a short description of the node itself, excluding children
	Label() string

	exprNode()
}

type (
	Assign struct {
		Name  scanner.Token
		Value Expr
	}

	Binary struct {
		Left     Expr
		Operator scanner.Token
		Right    Expr
	}

	Call struct {
		Callee Expr
		// Paren is the closing parenthesis, kept for error locations
		Paren     scanner.Token
		Arguments []Expr
	}

	Get struct {
		Object Expr
		Name   scanner.Token
	}

	Grouping struct {
		Expression Expr
	}

	Literal struct {
		// Value is nil for the nil literal
		Value *scanner.Literal
	}

	Logical struct {
		Left     Expr
		Operator scanner.Token
		Right    Expr
	}

	Set struct {
		Object Expr
		Name   scanner.Token
		Value  Expr
	}

	Super struct {
		Keyword scanner.Token
		Method  scanner.Token
	}

	This struct {
		Keyword scanner.Token
	}

	Unary struct {
		Operator scanner.Token
		Right    Expr
	}

	Variable struct {
		Name scanner.Token
	}
)

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

func (a *Assign) Label() string   { return a.Name.Lexeme }
func (b *Binary) Label() string   { return b.Operator.Lexeme }
func (c *Call) Label() string     { return strconv.Itoa(len(c.Arguments)) }
func (g *Get) Label() string      { return g.Name.Lexeme }
func (*Grouping) Label() string   { return "" }
func (l *Logical) Label() string  { return l.Operator.Lexeme }
func (s *Set) Label() string      { return s.Name.Lexeme }
func (s *Super) Label() string    { return s.Method.Lexeme }
func (t *This) Label() string     { return t.Keyword.Lexeme }
func (u *Unary) Label() string    { return u.Operator.Lexeme }
func (v *Variable) Label() string { return v.Name.Lexeme }

// Label renders the literal the way it would be written in source: strings
// are quoted, numbers drop a redundant fraction.
func (l *Literal) Label() string {
	if l.Value == nil {
		return "nil"
	}
	if l.Value.Kind == scanner.LIT_STRING {
		return strconv.Quote(l.Value.Text)
	}
	return l.Value.ToString()
}
