package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpn"
)

// errFailed reports that at least one expression failed. The failure itself
// has already been printed.
var errFailed = errors.New("some expressions failed")

type flags struct {
	config   string
	logLevel string
	format   string
	postfix  bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var fl flags
	cmd := &cobra.Command{
		Use:   "rpn [expression...]",
		Short: "Evaluate infix arithmetic by way of reverse Polish notation",
		Long: `rpn converts infix expressions to postfix order with the shunting-yard
algorithm and evaluates them on a stack.

Operators, loosest first:
  ^        power, right-associative
  << >>    shifts on 32-bit integers
  + -      addition and subtraction
  * /      multiplication and division
  + -      unary signs

Functions are called as name(x) or name(x, y). Type "funcs" at the prompt
to list them.

With no arguments, rpn reads one expression per line from standard input.

An argument starting with a sign reads as a flag. Put such expressions after
"--", as in: rpn -- -1+2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFile(fl.config)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("log-level") {
				cfg.LogLevel = fl.logLevel
			}
			if f.Changed("format") {
				cfg.Format = fl.format
			}
			if f.Changed("postfix") {
				cfg.Postfix = fl.postfix
			}
			if f.Changed("no-color") {
				cfg.Color = !fl.noColor
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			lvl, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger().
				Level(lvl)

			calc := rpn.New(rpn.WithLogger(logger))
			p := newPrinter(cmd.OutOrStdout(), cfg)
			if len(args) > 0 {
				ok := true
				for _, arg := range args {
					ok = p.eval(calc, arg) && ok
				}
				if !ok {
					return errFailed
				}
				return nil
			}
			return repl(cmd.InOrStdin(), p, calc, cfg.Prompt)
		},
	}
	pf := cmd.Flags()
	pf.StringVar(&fl.config, "config", "", "YAML config file")
	pf.StringVar(&fl.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&fl.format, "format", "%g", "result formatting verb")
	pf.BoolVar(&fl.postfix, "postfix", false, "print the postfix program of each expression")
	pf.BoolVar(&fl.noColor, "no-color", false, "disable styled output")
	return cmd
}

// repl evaluates each line of in until EOF or an exit command.
func repl(in io.Reader, p *printer, calc *rpn.Calculator, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		p.prompt(prompt)
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "funcs":
			p.funcs(rpn.Funcs())
			continue
		}
		p.eval(calc, line)
	}
	p.newline()
	return sc.Err()
}
