/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package runner

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lox"
	"github.com/dburkart/lox/pkg/metrics"
	"github.com/dburkart/lox/pkg/repl"
)

// Exit codes, following sysexits.h
const (
	ExitDataErr = 65
	ExitNoInput = 66
)

// Runner carries one invocation of the front end from the command line:
// reading input, running the session and writing results.
type Runner struct {
	Log      zerolog.Logger
	Reporter *repl.ConsoleReporter
	Session  *lox.Session
	Output   string
	Format   string

	// ShowTokens makes Expr list the tokens before the tree
	ShowTokens bool

	writer  repl.OutputWriter
	noInput bool
}

func New() *Runner {
	log := viper.Get("logger").(zerolog.Logger)

	output := viper.GetString("lox.output")
	if !contains(repl.OutputFormats, output) {
		log.Fatal().Str("output", output).Msg("unsupported output format")
	}

	format := viper.GetString("lox.format")
	if !contains(repl.ExprFormats, format) {
		log.Fatal().Str("format", format).Msg("unsupported syntax tree format")
	}

	reporter := repl.NewConsoleReporter(os.Stderr)
	session := lox.NewSession(log, metrics.NewStore(), reporter)
	session.MaxArguments = viper.GetInt("parser.max_arguments")

	return &Runner{
		Log:      log,
		Reporter: reporter,
		Session:  session,
		Output:   output,
		Format:   format,
		writer:   repl.NewOutputWriter(os.Stdout, output),
	}
}

// ReadSource returns the contents of path, or of standard input when path is
// "-". Failures are logged and remembered for Finish.
func (r *Runner) ReadSource(path string) (string, bool) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		err = errors.Wrap(err, "unable to read standard input")
	} else {
		data, err = os.ReadFile(path)
		err = errors.Wrapf(err, "unable to read script %s", path)
	}

	if err != nil {
		r.Log.Error().Err(err).Send()
		r.noInput = true
		return "", false
	}

	return string(data), true
}

// Tokens scans source and writes the token listing
func (r *Runner) Tokens(source string) bool {
	tokens, err := r.Session.Scan(source)

	if werr := r.writer.Write(repl.TokenTable(tokens)); werr != nil {
		r.Log.Error().Err(werr).Msg("unable to write tokens")
	}
	r.explain(source, err)

	return err == nil
}

// Expr parses source and writes the resulting syntax tree. A source with
// lexical errors is not parsed.
func (r *Runner) Expr(source string) bool {
	tokens, err := r.Session.Scan(source)
	if r.ShowTokens {
		if werr := r.writer.Write(repl.TokenTable(tokens)); werr != nil {
			r.Log.Error().Err(werr).Msg("unable to write tokens")
		}
	}
	if err != nil {
		r.explain(source, err)
		return false
	}

	// Some syntax errors still leave a usable tree behind
	expr, err := r.Session.ParseTokens(tokens)
	r.explain(source, err)
	if expr == nil {
		return false
	}

	if werr := repl.WriteExpr(os.Stdout, expr, r.Format, r.Output); werr != nil {
		r.Log.Error().Err(werr).Msg("unable to write syntax tree")
	}

	return err == nil
}

// Metrics writes the session's metrics snapshot, if enabled
func (r *Runner) Metrics() {
	if !viper.GetBool("lox.metrics") {
		return
	}

	samples, err := r.Session.Metrics().Snapshot()
	if err != nil {
		r.Log.Error().Err(err).Msg("unable to gather metrics")
		return
	}

	if err := repl.NewOutputWriter(os.Stderr, r.Output).Write(repl.MetricsTable(samples)); err != nil {
		r.Log.Error().Err(err).Msg("unable to write metrics")
	}
}

// Finish prints metrics and exits non-zero if anything went wrong
func (r *Runner) Finish() {
	r.Metrics()

	if r.noInput {
		os.Exit(ExitNoInput)
	}
	if r.Reporter.HadError() {
		r.Log.Debug().Err(r.Reporter.Err()).Int("count", len(r.Reporter.Entries)).Msg("source has errors")
		os.Exit(ExitDataErr)
	}
}

// explain logs where in source each error was found
func (r *Runner) explain(source string, err error) {
	for _, e := range parse.Errors(err) {
		r.Log.Debug().Str("kind", e.Kind.ToString()).Msg(e.FormatError(source))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
