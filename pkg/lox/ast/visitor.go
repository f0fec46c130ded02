/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import "fmt"

// Visitor is one operation over the expression tree. Adding a node kind adds a
// method here, so every operation has to handle it before the code compiles.
type Visitor[T any] interface {
	VisitAssign(*Assign) T
	VisitBinary(*Binary) T
	VisitCall(*Call) T
	VisitGet(*Get) T
	VisitGrouping(*Grouping) T
	VisitLiteral(*Literal) T
	VisitLogical(*Logical) T
	VisitSet(*Set) T
	VisitSuper(*Super) T
	VisitThis(*This) T
	VisitUnary(*Unary) T
	VisitVariable(*Variable) T
}

// Accept dispatches e to the matching method of v.
func Accept[T any](e Expr, v Visitor[T]) T {
	switch n := e.(type) {
	case *Assign:
		return v.VisitAssign(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Call:
		return v.VisitCall(n)
	case *Get:
		return v.VisitGet(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Logical:
		return v.VisitLogical(n)
	case *Set:
		return v.VisitSet(n)
	case *Super:
		return v.VisitSuper(n)
	case *This:
		return v.VisitThis(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Variable:
		return v.VisitVariable(n)
	}

	panic(fmt.Sprintf("Unexpected Expr %T passed to Accept", e))
}
