/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lox

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lox/ast"
	"github.com/dburkart/lox/pkg/lox/parser"
	"github.com/dburkart/lox/pkg/lox/scanner"
	"github.com/dburkart/lox/pkg/metrics"
)

// Session runs the front end over source buffers, one at a time. Every call
// uses a fresh scanner and parser; the session only carries the ambient
// reporter, logger and metrics between them.
type Session struct {
	ID           uuid.UUID
	MaxArguments int

	log      zerolog.Logger
	metrics  metrics.Store
	reporter parse.Reporter
}

func NewSession(log zerolog.Logger, m metrics.Store, r parse.Reporter) *Session {
	id := uuid.New()
	if m == nil {
		m = metrics.NewStore()
	}

	return &Session{
		ID:           id,
		MaxArguments: parser.DefaultMaxArguments,
		log:          log.With().Str("session", id.String()).Logger(),
		metrics:      m,
		reporter:     r,
	}
}

func (s *Session) Metrics() metrics.Store {
	return s.metrics
}

// Scan returns the tokens of source. Lexical errors do not stop the scan, so
// the tokens are returned alongside any error.
func (s *Session) Scan(source string) ([]scanner.Token, error) {
	t := time.Now()
	s.log.Debug().Str("size", humanize.Bytes(uint64(len(source)))).Msg("scanning source")

	tokens, err := scanner.Scan(source, s.reporter)

	s.metrics.ObserveStageNS(metrics.StageScan, time.Since(t).Nanoseconds())
	s.metrics.IncSources(metrics.StageScan)
	s.metrics.AddTokens(len(tokens))
	s.countErrors(metrics.StageScan, err)

	s.log.Trace().
		Str("tokens", humanize.Comma(int64(len(tokens)))).
		Str("dur", time.Since(t).String()).
		Msg("scan finished")

	return tokens, err
}

// ParseTokens builds the expression tree for a scanned token sequence
func (s *Session) ParseTokens(tokens []scanner.Token) (ast.Expr, error) {
	t := time.Now()

	p := parser.Parser{Tokens: tokens, Reporter: s.reporter, MaxArguments: s.MaxArguments}
	expr, err := p.Parse()

	s.metrics.ObserveStageNS(metrics.StageParse, time.Since(t).Nanoseconds())
	s.metrics.IncSources(metrics.StageParse)
	s.countErrors(metrics.StageParse, err)

	s.log.Trace().Str("dur", time.Since(t).String()).Bool("ok", err == nil).Msg("parse finished")

	return expr, err
}

// Parse scans and parses source. A source with lexical errors is not parsed.
func (s *Session) Parse(source string) (ast.Expr, error) {
	tokens, err := s.Scan(source)
	if err != nil {
		return nil, err
	}
	return s.ParseTokens(tokens)
}

func (s *Session) countErrors(stage string, err error) {
	for _, e := range parse.Errors(err) {
		s.metrics.IncErrors(stage, e.Kind.ToString())
		s.log.Debug().Int("line", e.Line).Str("kind", e.Kind.ToString()).Msg(e.Message)
	}
}
