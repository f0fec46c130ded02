/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"testing"

	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/lox/parser"
)

func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()

	expr, err := parser.Parse(scan(t, input), nil)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}

func TestWriteExpr(t *testing.T) {
	tests := []struct {
		format string
		output string
		want   string
	}{
		{"sexpr", "text", "(+ 1 (- x))\n"},
		{"tree", "text", "Binary[+]\n    Literal[1]\n    Unary[-]\n        Variable[x]\n"},
		{"tree", "json", `{"kind":"Binary","left":{"kind":"Literal","value":1},"line":1,"operator":"+","right":{"kind":"Unary","line":1,"operator":"-","right":{"kind":"Variable","line":1,"name":"x"}}}` + "\n"},
	}

	for _, test := range tests {
		var b bytes.Buffer
		if err := WriteExpr(&b, parseExpr(t, "1 + -x"), test.format, test.output); err != nil {
			t.Fatal(err)
		}
		if b.String() != test.want {
			t.Errorf("%s/%s: wanted:\n%s\ngot:\n%s", test.format, test.output, test.want, b.String())
		}
	}
}

func TestExprToMap(t *testing.T) {
	m := ExprToMap(parseExpr(t, `a.b = f("s", true, nil)`))

	if m["kind"] != "Set" || m["name"] != "b" {
		t.Fatalf("wanted a Set of b, got %v", m)
	}

	value := m["value"].(map[string]any)
	args := value["arguments"].([]map[string]any)
	if len(args) != 3 {
		t.Fatalf("wanted 3 arguments, got %d", len(args))
	}
	if args[0]["value"] != "s" || args[1]["value"] != true || args[2]["value"] != nil {
		t.Errorf("unexpected literal values: %v", args)
	}
}
