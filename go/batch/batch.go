// Package batch evaluates a file of expressions, one per line, in parallel.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"go.skia.org/rpncalc/go/rpn"
	"go.skia.org/rpncalc/go/skerr"
	"go.skia.org/rpncalc/go/sklog"
	"golang.org/x/sync/errgroup"
)

const (
	// commentPrefix starts a line that is not an expression.
	commentPrefix = "#"

	// maxLineSize is the longest line Run accepts.
	maxLineSize = 64 * 1024 * 1024
)

// Config for Run.
type Config struct {
	// Concurrency is the maximum number of expressions evaluated at once.
	// Values < 1 mean runtime.GOMAXPROCS(0).
	Concurrency int
}

// Result is the outcome of one input line.
type Result struct {
	// Line is the 1-based line number in the input.
	Line       int
	Expression string
	// RPN is nil if the expression failed to convert.
	RPN   []string
	Value float64
	Err   error
}

// Report holds one Result per expression, in input order.
type Report struct {
	Results []*Result
}

// Run reads expressions from r and evaluates them. Blank lines and lines
// starting with '#' are skipped. Bad expressions do not make Run fail; they
// are recorded in their Result and summarized by Report.Err. The returned
// error is only for failures to read r or a cancelled ctx.
func Run(ctx context.Context, r io.Reader, cfg Config) (*Report, error) {
	report := &Report{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		report.Results = append(report.Results, &Result{
			Line:       lineNum,
			Expression: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skerr.Wrapf(err, "reading line %d", lineNum+1)
	}

	limit := cfg.Concurrency
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, res := range report.Results {
		res := res
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return skerr.Wrap(err)
			}
			calc, err := rpn.Calculate(res.Expression)
			if calc != nil {
				res.RPN = calc.RPN
				res.Value = calc.Value
			}
			res.Err = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sklog.Infof("Evaluated %d expressions, %d failed.", len(report.Results), report.Failed())
	return report, nil
}

// Failed returns the number of expressions that could not be evaluated.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err returns an error listing every failed line, or nil if all succeeded.
// Each wrapped error still matches the rpn sentinels with errors.Is.
func (r *Report) Err() error {
	var errs *multierror.Error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %q: %w", res.Line, res.Expression, res.Err))
		}
	}
	return errs.ErrorOrNil()
}

// WriteTable writes the report as a text table with the columns Line,
// Expression, RPN and Result.
func (r *Report) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Line", "Expression", "RPN", "Result"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, res := range r.Results {
		var value string
		if res.Err != nil {
			value = "Error: " + res.Err.Error()
		} else {
			value = rpn.FormatValue(res.Value)
		}
		table.Append([]string{
			strconv.Itoa(res.Line),
			res.Expression,
			strings.Join(res.RPN, " "),
			value,
		})
	}
	table.Render()
}
