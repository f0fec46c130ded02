/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/cmd/lox/runner"
)

var Command = &cobra.Command{
	Use:   "parse <script>",
	Short: "Print the syntax tree of a Lox expression",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		r := runner.New()

		if source, ok := r.ReadSource(args[0]); ok {
			r.ShowTokens = viper.GetBool("lox.tokens")
			r.Expr(source)
		}

		r.Finish()
	},
}

func init() {
	// Flags for this command
	Command.Flags().BoolP("tokens", "t", false, "Also print the tokens before the syntax tree")

	// Bind flags to viper
	viper.BindPFlag("lox.tokens", Command.Flags().Lookup("tokens"))
}
