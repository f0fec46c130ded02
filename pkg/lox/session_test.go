/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lox

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/metrics"
)

func sampleValue(t *testing.T, s *Session, name, labels string) float64 {
	t.Helper()

	samples, err := s.Metrics().Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	for _, sample := range samples {
		if sample.Name == name && sample.Labels == labels {
			return sample.Value
		}
	}
	return 0
}

func TestSessionParse(t *testing.T) {
	d := parse.Diagnostics{}
	s := NewSession(zerolog.Nop(), nil, &d)

	if s.ID == uuid.Nil {
		t.Error("wanted a session id")
	}

	expr, err := s.Parse("1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	if got := (ast.Printer{}).Print(expr); got != "(+ 1 2)" {
		t.Errorf("wanted (+ 1 2), got %s", got)
	}

	if v := sampleValue(t, s, "lox_tokens", ""); v != 4 {
		t.Errorf("wanted 4 tokens, got %v", v)
	}
	if v := sampleValue(t, s, "lox_sources", "stage=parse"); v != 1 {
		t.Errorf("wanted 1 parsed source, got %v", v)
	}
}

func TestSessionLexicalErrors(t *testing.T) {
	d := parse.Diagnostics{}
	s := NewSession(zerolog.Nop(), metrics.NewStore(), &d)

	expr, err := s.Parse("1 + @")
	if err == nil || expr != nil {
		t.Fatal("wanted a lexical error and no tree")
	}
	if len(d.Entries) != 1 {
		t.Errorf("wanted 1 reported error, got %d", len(d.Entries))
	}

	// Sources with lexical errors are never parsed
	if v := sampleValue(t, s, "lox_sources", "stage=parse"); v != 0 {
		t.Errorf("wanted no parsed sources, got %v", v)
	}
	if v := sampleValue(t, s, "lox_errors", "kind=UnexpectedCharacter,stage=scan"); v != 1 {
		t.Errorf("wanted 1 scan error, got %v", v)
	}
}

func TestSessionSyntaxErrors(t *testing.T) {
	d := parse.Diagnostics{}
	s := NewSession(zerolog.Nop(), nil, &d)

	if _, err := s.Parse("(1"); err == nil {
		t.Fatal("wanted a syntax error")
	}
	if v := sampleValue(t, s, "lox_errors", "kind=MissingExpectedToken,stage=parse"); v != 1 {
		t.Errorf("wanted 1 parse error, got %v", v)
	}

	// Each source starts clean
	d.Reset()
	if _, err := s.Parse("a = 1"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if d.HadError() {
		t.Error("wanted no errors on the second source")
	}
}

func TestSessionMaxArguments(t *testing.T) {
	s := NewSession(zerolog.Nop(), nil, nil)
	s.MaxArguments = 1

	tokens, err := s.Scan("f(1, 2)")
	if err != nil {
		t.Fatal(err)
	}

	expr, err := s.ParseTokens(tokens)
	if err == nil {
		t.Error("wanted an argument limit error")
	}
	if expr == nil {
		t.Error("wanted a tree despite the argument limit")
	}
}
