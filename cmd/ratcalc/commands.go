package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joeycumines/rational/internal/calc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errDemoFailed = errors.New(`demo failed`)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval STMT...",
		Short: "Evaluate statements, in order, printing each result",
		Example: `  ratcalc eval 'let half = 1/2' 'half + 1/3'
  ratcalc eval --format both '2/3'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			for _, stmt := range args {
				v, err := s.Eval(stmt)
				if errors.Is(err, calc.ErrEmpty) {
					continue
				}
				if err != nil {
					return err
				}
				if err := a.print(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "Evaluate a script, one statement per line (stdin if FILE is omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := `-`
			if len(args) != 0 {
				name = args[0]
			}

			var r io.Reader
			if name == `-` {
				r = cmd.InOrStdin()
				name = `<stdin>`
			} else {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			s, err := a.newSession()
			if err != nil {
				return err
			}

			return s.Run(cmd.Context(), r, func(line int, v calc.Value, err error) error {
				if err != nil {
					return fmt.Errorf("%s:%d: %w", name, line, err)
				}
				return a.print(cmd.OutOrStdout(), v)
			})
		},
	}
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration, failing if any check is false",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			return a.demo(cmd.OutOrStdout(), s, calc.Demo)
		},
	}
}

// demo evaluates script, echoing each statement with its result. Every
// statement must succeed, and every boolean result must be true.
func (a *app) demo(w io.Writer, s *calc.Session, script string) error {
	var failed int
	for _, line := range strings.Split(script, "\n") {
		v, err := s.Eval(line)
		if errors.Is(err, calc.ErrEmpty) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errDemoFailed, line, err)
		}
		if b, ok := v.Bool(); ok && !b {
			failed++
		}
		if _, err := fmt.Fprintf(w, "%s => %s\n", line, v.Format(a.cfg.Format, a.cfg.Precision)); err != nil {
			return err
		}
	}
	if failed != 0 {
		return fmt.Errorf("%w: %d check(s) were false", errDemoFailed, failed)
	}
	return nil
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
