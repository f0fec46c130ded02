/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/lox/scanner"
)

func parseString(t *testing.T, input string, d *parse.Diagnostics) (ast.Expr, error) {
	t.Helper()

	tokens, err := scanner.Scan(input, d)
	if err != nil {
		t.Fatalf("unexpected scan error for %q: %s", input, err)
	}

	return Parse(tokens, d)
}

func TestPrint(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"- -1", "(- (- 1))"},
		{"!!x", "(! (! x))"},
		{"a < b == c >= d", "(== (< a b) (>= c d))"},
		{"a or b and c", "(or a (and b c))"},
		{"a and b or c", "(or (and a b) c)"},
		{"a = b = 3", "(= a (= b 3))"},
		{"a.b = c or d", "(set b a (or c d))"},
		{"a.b.c(1, 2)", "(call (. c (. b a)) 1 2)"},
		{"f()()", "(call (call f))"},
		{"super.init(this)", "(call (super init) this)"},
		{`"str" + nil`, `(+ "str" nil)`},
		{"true != false", "(!= true false)"},
		{"2.50", "2.5"},
	}

	for _, test := range tests {
		d := parse.Diagnostics{}
		expr, err := parseString(t, test.input, &d)
		if err != nil {
			t.Errorf("unexpected error parsing %q: %s", test.input, err)
			continue
		}

		if got := (ast.Printer{}).Print(expr); got != test.want {
			t.Errorf("parsing %q: wanted %s, got %s", test.input, test.want, got)
		}
		if d.HadError() {
			t.Errorf("parsing %q reported errors: %v", test.input, d.Entries)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  parse.ErrorKind
		want  string
	}{
		{"1 = 2", parse.InvalidAssignmentTarget, "[line 1] Error at '=': Invalid assignment target."},
		{"a + b = c", parse.InvalidAssignmentTarget, "[line 1] Error at '=': Invalid assignment target."},
		{"(1 + 2", parse.MissingExpectedToken, "[line 1] Error at end: Expect ')' after expression."},
		{"f(1, 2", parse.MissingExpectedToken, "[line 1] Error at end: Expect ')' after arguments."},
		{"a.", parse.MissingExpectedToken, "[line 1] Error at end: Expect property name after '.'."},
		{"a.1", parse.MissingExpectedToken, "[line 1] Error at '1': Expect property name after '.'."},
		{"super", parse.MissingExpectedToken, "[line 1] Error at end: Expect '.' after 'super'."},
		{"super.", parse.MissingExpectedToken, "[line 1] Error at end: Expect superclass method name."},
		{"", parse.MissingExpectedToken, "[line 1] Error at end: Expect expression."},
		{"* 2", parse.MissingExpectedToken, "[line 1] Error at '*': Expect expression."},
		{"1 2", parse.TrailingTokens, "[line 1] Error at '2': Expect end of expression."},
		{"a )", parse.TrailingTokens, "[line 1] Error at ')': Expect end of expression."},
	}

	for _, test := range tests {
		d := parse.Diagnostics{}
		expr, err := parseString(t, test.input, &d)
		if err == nil {
			t.Errorf("wanted %q to fail", test.input)
			continue
		}
		if expr != nil {
			t.Errorf("wanted no tree for %q, got %s", test.input, ast.Printer{}.Print(expr))
		}

		errs := parse.Errors(err)
		if len(errs) != 1 {
			t.Errorf("parsing %q: wanted 1 error, got %d", test.input, len(errs))
			continue
		}
		if errs[0].Kind != test.kind {
			t.Errorf("parsing %q: wanted %s, got %s", test.input, test.kind.ToString(), errs[0].Kind.ToString())
		}
		if errs[0].Error() != test.want {
			t.Errorf("parsing %q: wanted %s, got %s", test.input, test.want, errs[0].Error())
		}

		if len(d.Entries) != 1 || d.Entries[0].String() != test.want {
			t.Errorf("parsing %q: wanted reporter to see %s, got %v", test.input, test.want, d.Entries)
		}
	}
}

func TestMissingParenLine(t *testing.T) {
	d := parse.Diagnostics{}
	_, err := parseString(t, "(1 +\n2\n;", &d)

	errs := parse.Errors(err)
	if len(errs) != 1 {
		t.Fatalf("wanted 1 error, got %d", len(errs))
	}

	// The line is the unmatched '(', the location is the token found instead
	e := errs[0]
	if e.Line != 1 {
		t.Errorf("wanted error on line 1, got %d", e.Line)
	}
	if e.Where != " at ';'" {
		t.Errorf("wanted error at ';', got %q", e.Where)
	}
	if e.Location.Line != 3 || e.Location.Start != 7 {
		t.Errorf("wanted location on line 3 at 7, got line %d at %d", e.Location.Line, e.Location.Start)
	}
}

func TestErrorLine(t *testing.T) {
	d := parse.Diagnostics{}
	_, err := parseString(t, "a +\n\n*", &d)

	errs := parse.Errors(err)
	if len(errs) != 1 {
		t.Fatalf("wanted 1 error, got %d", len(errs))
	}
	if errs[0].Error() != "[line 3] Error at '*': Expect expression." {
		t.Errorf("unexpected error: %s", errs[0])
	}
}

func TestTooManyArguments(t *testing.T) {
	tokens, err := scanner.Scan("f(1, 2, 3)", nil)
	if err != nil {
		t.Fatal(err)
	}

	d := parse.Diagnostics{}
	p := Parser{Tokens: tokens, Reporter: &d, MaxArguments: 2}
	expr, err := p.Parse()

	// The error is reported, but the tree is still built
	if expr == nil {
		t.Fatal("wanted a tree despite the argument limit")
	}
	if got := (ast.Printer{}).Print(expr); got != "(call f 1 2 3)" {
		t.Errorf("wanted (call f 1 2 3), got %s", got)
	}

	errs := parse.Errors(err)
	if len(errs) != 1 || errs[0].Kind != parse.TooManyArguments {
		t.Fatalf("wanted a single TooManyArguments error, got %v", err)
	}
	if errs[0].Error() != "[line 1] Error at '3': Can't have more than 2 arguments." {
		t.Errorf("unexpected error: %s", errs[0])
	}
	if !d.HadError() {
		t.Error("wanted the error to be reported")
	}
}

func TestDefaultMaxArguments(t *testing.T) {
	args := make([]string, DefaultMaxArguments)
	for i := range args {
		args[i] = "a"
	}

	d := parse.Diagnostics{}
	_, err := parseString(t, fmt.Sprintf("f(%s)", strings.Join(args, ", ")), &d)
	if err != nil {
		t.Errorf("%d arguments should be allowed: %s", DefaultMaxArguments, err)
	}

	args = append(args, "b")
	expr, err := parseString(t, fmt.Sprintf("f(%s)", strings.Join(args, ", ")), &d)
	if err == nil {
		t.Fatalf("%d arguments should not be allowed", len(args))
	}
	if call, ok := expr.(*ast.Call); !ok || len(call.Arguments) != len(args) {
		t.Errorf("wanted a call with %d arguments", len(args))
	}
	if errs := parse.Errors(err); errs[0].Where != " at 'b'" {
		t.Errorf("wanted error at 'b', got %q", errs[0].Where)
	}
}

func TestFirstErrorAborts(t *testing.T) {
	d := parse.Diagnostics{}
	_, err := parseString(t, "(1 = 2) + (3", &d)

	if errs := parse.Errors(err); len(errs) != 1 || errs[0].Kind != parse.InvalidAssignmentTarget {
		t.Errorf("wanted only the first error, got %v", err)
	}
	if len(d.Entries) != 1 {
		t.Errorf("wanted 1 reported error, got %d", len(d.Entries))
	}
}

func TestNilReporter(t *testing.T) {
	tokens, _ := scanner.Scan("1 +", nil)

	expr, err := Parse(tokens, nil)
	if expr != nil || err == nil {
		t.Error("wanted an error without a reporter")
	}
}

func TestMissingEOF(t *testing.T) {
	tokens, _ := scanner.Scan("a + b", nil)
	tokens = tokens[:len(tokens)-1]

	expr, err := Parse(tokens, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := (ast.Printer{}).Print(expr); got != "(+ a b)" {
		t.Errorf("wanted (+ a b), got %s", got)
	}

	// The caller's tokens are left alone
	if tokens[len(tokens)-1].Type != scanner.TOK_IDENTIFIER {
		t.Error("Parse modified its input")
	}
}

func TestNodeTokens(t *testing.T) {
	d := parse.Diagnostics{}
	expr, err := parseString(t, "obj.field(\n1)", &d)
	if err != nil {
		t.Fatal(err)
	}

	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("wanted *ast.Call, got %T", expr)
	}
	if call.Paren.Type != scanner.TOK_PAREN_R || call.Paren.Line != 2 {
		t.Errorf("wanted the closing paren on line 2, got %s on line %d", call.Paren.Type.ToString(), call.Paren.Line)
	}

	get, ok := call.Callee.(*ast.Get)
	if !ok {
		t.Fatalf("wanted *ast.Get callee, got %T", call.Callee)
	}
	if get.Name.Lexeme != "field" {
		t.Errorf("wanted field, got %s", get.Name.Lexeme)
	}
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/lox")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatalf("no tests found in %s", inputDirectory)
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			lines := bufio.NewScanner(file)

			shouldPass := false
			lines.Scan()
			if strings.ToUpper(lines.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for lines.Scan() {
				tokens, err := scanner.Scan(lines.Text(), nil)
				if err != nil {
					t.Errorf("Unexpected scan error: %s", err)
					continue
				}

				expr, err := Parse(tokens, nil)
				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected expression to fail: %s", lines.Text())
					continue
				}

				if shouldPass {
					actual += ast.Dump(expr)
				} else {
					actual += err.Error() + "\n"
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
