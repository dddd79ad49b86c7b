// rpncalc converts infix arithmetic expressions to Reverse Polish Notation
// and evaluates them, interactively or from a file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
	"go.skia.org/rpncalc/go/batch"
	"go.skia.org/rpncalc/go/rpn"
	"go.skia.org/rpncalc/go/shell"
	"go.skia.org/rpncalc/go/skerr"
	"go.skia.org/rpncalc/go/sklog"
	"go.skia.org/rpncalc/go/sklog/sklogimpl"
	"go.skia.org/rpncalc/go/sklog/stdlogging"
	"go.skia.org/rpncalc/go/urfavecli"
	"golang.org/x/term"
)

// flag names
const (
	verboseFlagName     = "verbose"
	colorFlagName       = "color"
	promptFlagName      = "prompt"
	concurrencyFlagName = "concurrency"
	failOnErrorFlagName = "fail-on-error"
)

// stdinFileName makes the batch command read from stdin.
const stdinFileName = "-"

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// flags
var (
	verboseFlag = &cli.BoolFlag{
		Name:    verboseFlagName,
		Value:   false,
		Usage:   "Log debug output and flag values to stderr.",
		EnvVars: []string{"RPNCALC_VERBOSE"},
	}
	colorFlag = &cli.BoolFlag{
		Name:    colorFlagName,
		Value:   isTerminal(os.Stdout),
		Usage:   "Highlight labels in the output. Defaults to true if stdout is a terminal.",
		EnvVars: []string{"RPNCALC_COLOR"},
	}
	promptFlag = &cli.BoolFlag{
		Name:    promptFlagName,
		Value:   isTerminal(os.Stdin),
		Usage:   "Print a banner and a prompt before each expression. Defaults to true if stdin is a terminal.",
		EnvVars: []string{"RPNCALC_PROMPT"},
	}
	concurrencyFlag = &cli.IntFlag{
		Name:    concurrencyFlagName,
		Value:   0,
		Usage:   "Maximum number of expressions evaluated in parallel. 0 means one per CPU.",
		EnvVars: []string{"RPNCALC_CONCURRENCY"},
	}
	failOnErrorFlag = &cli.BoolFlag{
		Name:    failOnErrorFlagName,
		Value:   false,
		Usage:   "Exit with a non-zero status if any expression fails.",
		EnvVars: []string{"RPNCALC_FAIL_ON_ERROR"},
	}
)

func main() {
	app := &cli.App{
		Name:        "rpncalc",
		Usage:       "Evaluate arithmetic expressions via Reverse Polish Notation.",
		Description: "rpncalc converts infix expressions such as (2+3)*4 into RPN with the shunting-yard algorithm and evaluates them. With no command it starts an interactive session.",
		Flags: []cli.Flag{
			verboseFlag,
			colorFlag,
			promptFlag,
		},
		Before: setupLogging,
		Action: replAction,
		Commands: []*cli.Command{
			{
				Name:        "repl",
				Description: "repl reads expressions from stdin until EOF or 'exit'.",
				Usage:       "rpncalc repl",
				Action:      replAction,
			},
			{
				Name:        "eval",
				Description: "eval evaluates the expression made of all remaining arguments.",
				Usage:       "rpncalc eval -- <expression>",
				ArgsUsage:   "<expression>",
				Action:      evalAction,
			},
			{
				Name:        "batch",
				Description: "batch evaluates a file with one expression per line and prints a table of results. Blank lines and lines starting with # are skipped.",
				Usage:       "rpncalc batch [--concurrency N] [--fail-on-error] <file|->",
				ArgsUsage:   "<file|->",
				Flags: []cli.Flag{
					concurrencyFlag,
					failOnErrorFlag,
				},
				Action: batchAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		sklog.Flush()
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	sklogimpl.SetLogger(stdlogging.New(os.Stderr, c.Bool(verboseFlagName)))
	return nil
}

func newShell(c *cli.Context, in io.Reader) *shell.Shell {
	return shell.New(in, os.Stdout, shell.Config{
		Prompt: c.Bool(promptFlagName),
		Color:  c.Bool(colorFlagName),
	})
}

func replAction(c *cli.Context) error {
	if c.Bool(verboseFlagName) {
		urfavecli.LogFlags(c)
	}
	return newShell(c, os.Stdin).Run(c.Context)
}

func evalAction(c *cli.Context) error {
	if c.Bool(verboseFlagName) {
		urfavecli.LogFlags(c)
	}
	expr := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(expr) == "" {
		return cli.Exit("eval requires an expression", 2)
	}
	res, calcErr := rpn.Calculate(expr)
	s := newShell(c, strings.NewReader(""))
	if err := s.Print(res, calcErr); err != nil {
		return err
	}
	if calcErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func batchAction(c *cli.Context) error {
	if c.Bool(verboseFlagName) {
		urfavecli.LogFlags(c)
	}
	if c.NArg() > 1 {
		return cli.Exit("batch takes at most one file", 2)
	}
	name := c.Args().First()
	var in io.Reader = os.Stdin
	if name != "" && name != stdinFileName {
		f, err := os.Open(name)
		if err != nil {
			return skerr.Wrapf(err, "opening %s", name)
		}
		defer func() {
			if err := f.Close(); err != nil {
				sklog.Errorf("Failed to close %s: %s", name, err)
			}
		}()
		in = f
	}

	report, err := batch.Run(c.Context, in, batch.Config{
		Concurrency: c.Int(concurrencyFlagName),
	})
	if err != nil {
		return skerr.Wrapf(err, "evaluating %s", name)
	}
	report.WriteTable(os.Stdout)
	if err := report.Err(); err != nil {
		sklog.Debug(err)
		if c.Bool(failOnErrorFlagName) {
			return cli.Exit(fmt.Sprintf("%d of %d expressions failed", report.Failed(), len(report.Results)), 1)
		}
	}
	return nil
}
