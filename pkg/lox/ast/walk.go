/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Inspector is called for every node in pre-order by Walk. If the returned
// Inspector is non-nil it is used for the node's children, followed by a
// call with a nil node.
type Inspector interface {
	Visit(Expr) Inspector
}

func Walk(v Inspector, node Expr) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Assign:
		Walk(v, n.Value)

	case *Binary:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *Call:
		Walk(v, n.Callee)
		for _, a := range n.Arguments {
			Walk(v, a)
		}

	case *Get:
		Walk(v, n.Object)

	case *Grouping:
		Walk(v, n.Expression)

	case *Logical:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *Set:
		Walk(v, n.Object)
		Walk(v, n.Value)

	case *Unary:
		Walk(v, n.Right)

	case *Literal, *Super, *This, *Variable:
		// Skip, leaf nodes

	default:
		panic("Unexpected Expr passed to Walk")
	}

	v.Visit(nil)
}

type inspectFunc func(Expr) bool

func (f inspectFunc) Visit(node Expr) Inspector {
	if f(node) {
		return f
	}
	return nil
}

// Inspect walks node in pre-order, calling f for each node and then f(nil)
// once the node's children are done. Returning false skips the children.
func Inspect(node Expr, f func(Expr) bool) {
	Walk(inspectFunc(f), node)
}
