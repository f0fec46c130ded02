/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

// Dumper renders a tree with one node per line, children indented below
// their parent.
type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Expr) Inspector {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + node.Label() + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// Dump returns the Dumper rendering of node
func Dump(node Expr) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}
