package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/automaton/automaton"
	"github.com/tailored-agentic-units/automaton/keys"
	"github.com/tailored-agentic-units/automaton/simple"
)

type pairsOptions struct {
	first  string
	second string
	text   string
	file   string
}

// pairText is the data of the pairs automaton: the text being scanned and the
// rune positions where a pair starts.
type pairText struct {
	*keys.Runes
	matches []int
}

type runeKey = keys.Indexed[rune]

const (
	pairsIdle = iota
	pairsFirst
	pairsMatched
)

func (a *App) newPairsCmd() *cobra.Command {
	opts := &pairsOptions{}

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Report where one character is directly followed by another",
		Long: `Scan a text one character at a time and report the position of every
occurrence of the --first character directly followed by the --second one.
Positions count characters from zero.

Examples:
  automaton pairs --first a --second b --text aabbacacaabab
  automaton pairs --first '<' --second '/' --file page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPairs(opts)
		},
	}

	cmd.Flags().StringVar(&opts.first, "first", "a", "First character of the pair")
	cmd.Flags().StringVar(&opts.second, "second", "b", "Second character of the pair")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text to scan")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File to scan instead of --text")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

func (a *App) runPairs(opts *pairsOptions) error {
	first, err := singleRune("first", opts.first)
	if err != nil {
		return err
	}
	second, err := singleRune("second", opts.second)
	if err != nil {
		return err
	}
	if first == second {
		return errors.New("--first and --second must differ")
	}

	text := opts.text
	if opts.file != "" {
		content, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(content)
	}

	auto, sync, err := newAutomaton(a, "pairs", pairsGraph(first, second))
	if err != nil {
		return err
	}
	defer sync()

	data := &pairText{Runes: keys.NewRunes(text)}
	result := auto.Run(data)
	if err := runFailed(result); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "matches: %v\n", data.matches)
	a.printResult(result.Status(), result.StateID(), result.Steps())
	return nil
}

func singleRune(flag, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// pairsGraph builds the three-state pair recognizer:
//
//	idle    --first-->  first    --(other)--> idle
//	first   --first-->  first
//	first   --second--> matched  (records the pair start)
//	matched --first-->  first    --(other)--> idle
func pairsGraph(first, second rune) func() *automaton.Handle[int, *pairText] {
	isFirst := simple.Field(keys.Value[rune], simple.Equal(first))
	isSecond := simple.Field(keys.Value[rune], simple.Equal(second))

	record := func(data *pairText, key runeKey) error {
		data.matches = append(data.matches, key.Index-1)
		return nil
	}

	return func() *automaton.Handle[int, *pairText] {
		newState := simple.New[runeKey, int, *pairText]

		idle := newState(pairsIdle)
		afterFirst := newState(pairsFirst)
		matched := newState(pairsMatched)

		idle.Connect(isFirst, nil, afterFirst)
		idle.Connect(simple.Any[runeKey](), nil, idle)

		afterFirst.Connect(isFirst, nil, afterFirst)
		afterFirst.Connect(isSecond, record, matched)
		afterFirst.Connect(simple.Any[runeKey](), nil, idle)

		matched.Connect(isFirst, nil, afterFirst)
		matched.Connect(simple.Any[runeKey](), nil, idle)

		return idle.Handle()
	}
}
