/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"

	"github.com/dburkart/lox/pkg/common/parse"
)

// ConsoleReporter prints every error it receives and remembers them, so the
// caller can decide whether to go past the front end.
type ConsoleReporter struct {
	parse.Diagnostics
	w io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (c *ConsoleReporter) Report(line int, where, message string) {
	c.Diagnostics.Report(line, where, message)
	fmt.Fprintf(c.w, "[line %d] Error%s: %s\n", line, where, message)
}
