package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/automaton/automaton"
)

type concatOptions struct {
	words []string
}

func (a *App) newConcatCmd() *cobra.Command {
	opts := &concatOptions{}

	cmd := &cobra.Command{
		Use:   "concat",
		Short: "Append words through a chain of states",
		Long: `Build one state per word. Each state appends its word to a shared buffer
and continues to the next; the last state has no successor.

Examples:
  automaton concat --word Foo --word Bar
  automaton concat -w Hello -w ", " -w world --observer zap -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConcat(opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.words, "word", "w", nil, "Word appended by one state (repeatable)")

	return cmd
}

func (a *App) runConcat(opts *concatOptions) error {
	if len(opts.words) == 0 {
		return errors.New("at least one --word is required")
	}

	auto, sync, err := newAutomaton(a, "concat", concatGraph(opts.words))
	if err != nil {
		return err
	}
	defer sync()

	var buf strings.Builder
	result := auto.Run(&buf)
	if err := runFailed(result); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "output: %s\n", buf.String())
	a.printResult(result.Status(), result.StateID(), result.Steps())
	return nil
}

// concatGraph builds states 1..n, state i appending words[i-1].
func concatGraph(words []string) func() *automaton.Handle[int, *strings.Builder] {
	return func() *automaton.Handle[int, *strings.Builder] {
		var next *automaton.Handle[int, *strings.Builder]
		for i := len(words) - 1; i >= 0; i-- {
			word, successor := words[i], next
			next = automaton.Share[int, *strings.Builder](automaton.NewFuncState(i+1, func(buf *strings.Builder) (automaton.Outcome[int, *strings.Builder], error) {
				buf.WriteString(word)
				return automaton.Continue(successor), nil
			}))
		}
		return next
	}
}
