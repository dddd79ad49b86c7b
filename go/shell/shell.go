// Package shell implements the interactive read-eval-print loop of the
// rpncalc tool on top of package rpn.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.skia.org/rpncalc/go/rpn"
	"go.skia.org/rpncalc/go/skerr"
	"go.skia.org/rpncalc/go/sklog"
)

const (
	// ExitCommand ends the session. Matched case-insensitively.
	ExitCommand = "exit"

	banner = "Example: (2 + 3) * 4 - 5 / 2\nType 'exit' to quit\n"
	prompt = "\nEnter expression: "

	// maxLineSize is the longest line Run accepts. bufio.Scanner's default
	// of 64 KiB is too small for generated expressions.
	maxLineSize = 64 * 1024 * 1024
)

// Config controls the presentation of a Shell.
type Config struct {
	// Prompt prints a banner at startup and a prompt before every read. It
	// is normally only set when the input is a terminal.
	Prompt bool

	// Color highlights the RPN:, Result: and Error: labels.
	Color bool
}

// Shell reads expressions line by line and writes the RPN form and the value
// of each one, or the reason it failed. A failed line never ends the session.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	cfg Config

	rpnLabel    *color.Color
	resultLabel *color.Color
	errorLabel  *color.Color
}

// New returns a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg Config) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s := &Shell{
		in:          scanner,
		out:         out,
		cfg:         cfg,
		rpnLabel:    color.New(color.FgCyan),
		resultLabel: color.New(color.FgGreen, color.Bold),
		errorLabel:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.rpnLabel, s.resultLabel, s.errorLabel} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Run loops until the input is exhausted or the exit command is read.
// Reaching the end of the input or reading the exit command is not an error.
// ctx is checked before each read; a read that is already blocked is not
// interrupted by cancelling ctx.
func (s *Shell) Run(ctx context.Context) error {
	if s.cfg.Prompt {
		if _, err := io.WriteString(s.out, banner); err != nil {
			return skerr.Wrapf(err, "writing banner")
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return skerr.Wrap(err)
		}
		if s.cfg.Prompt {
			if _, err := io.WriteString(s.out, prompt); err != nil {
				return skerr.Wrapf(err, "writing prompt")
			}
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return skerr.Wrapf(err, "reading expression")
			}
			sklog.Debug("End of input.")
			return nil
		}
		done, err := s.Eval(s.in.Text())
		if err != nil {
			return err
		}
		if done {
			sklog.Debug("Exit requested.")
			return nil
		}
	}
}

// Eval handles a single line of input. It returns true if the line was the
// exit command. The returned error is only ever a failure to write output;
// problems with the expression itself are written to the output.
func (s *Shell) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, ExitCommand) {
		return true, nil
	}
	if line == "" {
		return false, nil
	}

	res, err := rpn.Calculate(line)
	if err != nil {
		sklog.Debugf("Failed to evaluate %q: %s", line, err)
	} else {
		sklog.Debugf("Evaluated %q = %v", line, res.Value)
	}
	return false, s.Print(res, err)
}

// Print writes the outcome of rpn.Calculate: the RPN line if res is non-nil,
// followed by either the result or the error.
func (s *Shell) Print(res *rpn.Result, calcErr error) error {
	if res != nil {
		if _, err := fmt.Fprintf(s.out, "%s %s\n", s.rpnLabel.Sprint("RPN:"), res.RPNString()); err != nil {
			return skerr.Wrapf(err, "writing RPN")
		}
	}
	if calcErr != nil {
		if _, err := fmt.Fprintf(s.out, "%s %s\n", s.errorLabel.Sprint("Error:"), calcErr); err != nil {
			return skerr.Wrapf(err, "writing error")
		}
		return nil
	}
	if _, err := fmt.Fprintf(s.out, "%s %s\n", s.resultLabel.Sprint("Result:"), rpn.FormatValue(res.Value)); err != nil {
		return skerr.Wrapf(err, "writing result")
	}
	return nil
}
