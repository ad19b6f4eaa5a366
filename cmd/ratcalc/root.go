package main

import (
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/rational/internal/calc"
	"github.com/joeycumines/rational/internal/config"
	"github.com/joeycumines/rational/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the state shared by all commands, initialized by the root
// command's persistent pre-run.
type app struct {
	flags struct {
		config    string
		logLevel  string
		format    string
		precision int
	}
	cfg    config.Config
	logger *logiface.Logger[logiface.Event]
}

func newRootCmd() *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:          "ratcalc",
		Short:        "Exact rational arithmetic calculator",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd)
		},
	}

	defaults := config.Default()
	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.flags.config, "config", "c", "", "Config file (.yaml, .yml or .toml)")
	flags.StringVar(&a.flags.logLevel, "log-level", defaults.LogLevel, "Log level, written to stderr: trace|debug|info|notice|warning|err|crit|alert|emerg|off")
	flags.StringVarP(&a.flags.format, "format", "f", string(defaults.Format), "Output format: fraction|decimal|both")
	flags.IntVarP(&a.flags.precision, "precision", "p", defaults.Precision, "Decimal places, for the decimal and both formats")

	cmd.AddCommand(
		a.evalCmd(),
		a.runCmd(),
		a.replCmd(),
		a.demoCmd(),
		a.configCmd(),
	)

	return cmd
}

// init resolves the configuration, where flags take precedence over the
// config file, but only if they were set.
func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.config != `` {
		var err error
		if cfg, err = config.Load(a.flags.config); err != nil {
			return err
		}
	}

	a.applyFlags(cmd.Flags(), &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Level())

	a.logger.Debug().
		Str(`format`, string(cfg.Format)).
		Int(`precision`, cfg.Precision).
		Str(`command`, cmd.Name()).
		Log(`initialized`)

	return nil
}

func (a *app) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed(`log-level`) {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed(`format`) {
		cfg.Format = config.Format(a.flags.format)
	}
	if flags.Changed(`precision`) {
		cfg.Precision = a.flags.precision
	}
}

func (a *app) newSession() (*calc.Session, error) {
	return calc.New(calc.WithLogger(a.logger))
}

func (a *app) print(w io.Writer, v calc.Value) error {
	_, err := fmt.Fprintln(w, v.Format(a.cfg.Format, a.cfg.Precision))
	return err
}
