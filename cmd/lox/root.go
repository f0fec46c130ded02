/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lox

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/cmd/lox/parse"
	"github.com/dburkart/lox/cmd/lox/repl"
	"github.com/dburkart/lox/cmd/lox/runner"
	"github.com/dburkart/lox/cmd/lox/scan"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "lox [script]",
		Short: "Lox scans and parses Lox expressions",
		Long: "Lox runs the scanner and parser over a script, or over each line typed at the\n" +
			"prompt when no script is given, and prints the resulting syntax tree.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				repl.Run()
				return
			}

			r := runner.New()
			source, ok := r.ReadSource(args[0])
			if ok {
				r.Expr(source)
			}
			r.Finish()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the lox config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format [csv, json, text]")
	rootCmd.PersistentFlags().StringP("format", "f", "sexpr", "Syntax tree layout for text output [sexpr, tree]")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print front end metrics when done")
	rootCmd.PersistentFlags().Int("max-arguments", 255, "Largest argument list a call may have")

	// Bind viper config to the root flags
	viper.BindPFlag("lox.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("lox.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("lox.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("lox.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("lox.metrics", rootCmd.PersistentFlags().Lookup("metrics"))
	viper.BindPFlag("parser.max_arguments", rootCmd.PersistentFlags().Lookup("max-arguments"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("lox version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	scan.Command.Version = rootCmd.Version
	parse.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(scan.Command)
	rootCmd.AddCommand(parse.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
