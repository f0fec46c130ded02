/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/dburkart/lox/pkg/lox/scanner"
	"github.com/dburkart/lox/pkg/metrics"
)

// TokenTable lists scanned tokens, one row each
type TokenTable []scanner.Token

func (t TokenTable) Headers() []string {
	return []string{"line", "type", "lexeme", "literal"}
}

func (t TokenTable) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		literal := ""
		if tok.Literal != nil {
			literal = tok.Literal.ToString()
		}
		rows = append(rows, []string{strconv.Itoa(tok.Line), tok.Type.ToString(), tok.Lexeme, literal})
	}
	return rows
}

// MetricsTable lists a metrics snapshot
type MetricsTable []metrics.Sample

func (m MetricsTable) Headers() []string {
	return []string{"metric", "labels", "value"}
}

func (m MetricsTable) Values() [][]string {
	rows := make([][]string, 0, len(m))
	for _, s := range m {
		rows = append(rows, []string{s.Name, s.Labels, humanize.Commaf(s.Value)})
	}
	return rows
}
