/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dburkart/lox/pkg/lox/scanner"
	"github.com/dburkart/lox/pkg/metrics"
)

func scan(t *testing.T, input string) []scanner.Token {
	t.Helper()

	tokens, err := scanner.Scan(input, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

func TestCSVWriter(t *testing.T) {
	var b bytes.Buffer
	if err := NewOutputWriter(&b, "csv").Write(TokenTable(scan(t, "a = 1"))); err != nil {
		t.Fatal(err)
	}

	want := "line,type,lexeme,literal\n" +
		"1,TOK_IDENTIFIER,a,\n" +
		"1,TOK_EQ,=,\n" +
		"1,TOK_NUMBER,1,1\n" +
		"1,TOK_EOF,,\n"
	if b.String() != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, b.String())
	}
}

func TestTextWriter(t *testing.T) {
	var b bytes.Buffer
	if err := NewOutputWriter(&b, "text").Write(TokenTable(scan(t, `"hi"`))); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"TOK_STRING", `"hi"`, "TOK_EOF"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("wanted table to contain %s:\n%s", want, b.String())
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var b bytes.Buffer
	samples := MetricsTable{{Name: "lox_tokens", Value: 4}}
	if err := NewOutputWriter(&b, "json").Write(samples); err != nil {
		t.Fatal(err)
	}

	var decoded []metrics.Sample
	if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Name != "lox_tokens" || decoded[0].Value != 4 {
		t.Errorf("unexpected JSON output: %s", b.String())
	}
}

func TestMetricsTable(t *testing.T) {
	rows := MetricsTable{{Name: "lox_tokens", Value: 1234}}.Values()
	if len(rows) != 1 || rows[0][2] != "1,234" {
		t.Errorf("wanted 1,234, got %v", rows)
	}
}

func TestConsoleReporter(t *testing.T) {
	var b bytes.Buffer
	r := NewConsoleReporter(&b)

	r.Report(2, " at end", "Expect expression.")
	if b.String() != "[line 2] Error at end: Expect expression.\n" {
		t.Errorf("unexpected output: %q", b.String())
	}
	if !r.HadError() {
		t.Error("wanted HadError after a report")
	}

	r.Reset()
	if r.HadError() {
		t.Error("wanted no error after Reset")
	}
}
