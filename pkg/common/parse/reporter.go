/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"

	"go.uber.org/multierr"
)

// Reporter receives every lexical and syntax error as soon as it is found.
// It never formats or prints on behalf of the scanner or parser.
type Reporter interface {
	Report(line int, where, message string)
}

type ReporterFunc func(line int, where, message string)

func (f ReporterFunc) Report(line int, where, message string) {
	f(line, where, message)
}

// Report forwards e to r, tolerating a nil reporter.
func Report(r Reporter, e *Error) {
	if r == nil {
		return
	}
	r.Report(e.Line, e.Where, e.Message)
}

type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Diagnostics is a Reporter which keeps everything it was told. It replaces a
// process-wide "had error" flag; callers Reset it between runs.
type Diagnostics struct {
	Entries []Diagnostic
}

func (d *Diagnostics) Report(line int, where, message string) {
	d.Entries = append(d.Entries, Diagnostic{Line: line, Where: where, Message: message})
}

func (d *Diagnostics) HadError() bool {
	return len(d.Entries) > 0
}

func (d *Diagnostics) Reset() {
	d.Entries = nil
}

// Err combines every recorded diagnostic into a single error, or nil.
func (d *Diagnostics) Err() error {
	var err error
	for _, e := range d.Entries {
		err = multierr.Append(err, fmt.Errorf("%s", e.String()))
	}
	return err
}

// Combine joins a list of errors found during a single pass. The result is nil
// when errs is empty, and multierr.Errors splits it back apart.
func Combine(errs []*Error) error {
	var err error
	for _, e := range errs {
		err = multierr.Append(err, e)
	}
	return err
}

// Errors returns the individual *Error values inside err.
func Errors(err error) []*Error {
	var list []*Error
	for _, e := range multierr.Errors(err) {
		if pe, ok := e.(*Error); ok {
			list = append(list, pe)
		}
	}
	return list
}
