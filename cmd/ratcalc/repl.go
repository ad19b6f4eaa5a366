package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prompt "github.com/joeycumines/go-prompt"
	pstrings "github.com/joeycumines/go-prompt/strings"
	"github.com/joeycumines/rational/internal/calc"
	"github.com/spf13/cobra"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd)
		},
	}
}

func (a *app) repl(cmd *cobra.Command) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	p := prompt.New(
		func(line string) { a.execute(out, s, line) },
		prompt.WithPrefix(a.cfg.Prompt.Prefix),
		prompt.WithTitle(a.cfg.Prompt.Title),
		prompt.WithCompleter(func(d prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
			end := d.CurrentRuneIndex()
			word := d.GetWordBeforeCursor()
			return suggestions(s, word), end - pstrings.RuneCountInString(word), end
		}),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return breakline && isExit(in)
		}),
	)

	p.Run()

	return nil
}

// execute evaluates a single line entered at the prompt, writing either the
// result or the error.
func (a *app) execute(w io.Writer, s *calc.Session, line string) {
	if isExit(line) {
		return
	}
	v, err := s.Eval(line)
	switch {
	case errors.Is(err, calc.ErrEmpty):
	case err != nil:
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
	default:
		_ = a.print(w, v)
	}
}

func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case `exit`, `quit`:
		return true
	}
	return false
}

// suggestions completes word against the keywords, then the bound
// variables, in sorted order.
func suggestions(s *calc.Session, word string) []prompt.Suggest {
	if word == `` {
		return nil
	}
	var all []prompt.Suggest
	for _, k := range calc.Keywords {
		all = append(all, prompt.Suggest{Text: k, Description: `keyword`})
	}
	for _, name := range s.Variables() {
		v, _ := s.Lookup(name)
		all = append(all, prompt.Suggest{Text: name, Description: v.String()})
	}
	return prompt.FilterHasPrefix(all, word, true)
}
