/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/cmd/lox/runner"
	"github.com/dburkart/lox/pkg/lox/scanner"
)

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt which parses each line as an expression",

		Run: func(cmd *cobra.Command, args []string) {
			Run()
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().String("prompt", "> ", "Prompt shown before each line")
	Command.Flags().String("history", "", "File to keep line history in")

	// Bind flags to viper
	viper.BindPFlag("repl.prompt", Command.Flags().Lookup("prompt"))
	viper.BindPFlag("repl.history", Command.Flags().Lookup("history"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func keywordItems() []readline.PrefixCompleterInterface {
	items := []readline.PrefixCompleterInterface{}
	for _, k := range sortedKeywords() {
		items = append(items, readline.PcItem(k))
	}
	return items
}

func sortedKeywords() []string {
	keywords := make([]string, 0, len(scanner.Keywords))
	for k := range scanner.Keywords {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// Run reads expressions from the terminal until exit or end of input. Errors
// on one line never carry over to the next.
func Run() {
	r := runner.New()

	items := append([]readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("exit"),
	}, keywordItems()...)
	completer := readline.NewPrefixCompleter(items...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          viper.GetString("repl.prompt"),
		HistoryFile:     viper.GetString("repl.history"),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		r.Log.Fatal().Err(err).Msg("unable to start the prompt")
	}
	defer rl.Close()

	r.Log.Debug().Str("session", r.Session.ID.String()).Msg("prompt started")

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if line == "" {
			continue
		}
		if strings.ToUpper(line) == "HELP" {
			fmt.Println("Type an expression to see its syntax tree.")
			fmt.Println(completer.Tree("    "))
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			break
		}

		r.Reporter.Reset()
		r.Expr(line)
	}

	r.Metrics()
	os.Exit(0)
}
