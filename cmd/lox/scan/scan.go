/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scan

import (
	"github.com/spf13/cobra"

	"github.com/dburkart/lox/cmd/lox/runner"
)

var Command = &cobra.Command{
	Use:   "scan <script>",
	Short: "Print the tokens of a Lox script",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		r := runner.New()

		if source, ok := r.ReadSource(args[0]); ok {
			r.Tokens(source)
		}

		r.Finish()
	},
}
