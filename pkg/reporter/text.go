package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/doclint/internal/ui/pretty"
	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int
	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalIssues, nil
}

// reportGrouped writes issues grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file.Path, file.Error)
			continue
		}
		if file.Result == nil {
			continue
		}

		issues := file.Result.Issues()
		if len(issues) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path), len(issues)))

		for i := range issues {
			fmt.Fprint(r.bw, r.styles.FormatIssue(
				r.displayPath(file.Path),
				&issues[i],
				r.opts.ShowContext,
				r.sourceLine(file.Result.Document, issues[i].Line),
				r.opts.RuleFormat,
			))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes issues without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file.Path, file.Error)
			continue
		}
		if file.Result == nil {
			continue
		}

		issues := file.Result.Issues()
		for i := range issues {
			fmt.Fprint(r.bw, r.styles.FormatIssue(
				r.displayPath(file.Path),
				&issues[i],
				r.opts.ShowContext,
				r.sourceLine(file.Result.Document, issues[i].Line),
				r.opts.RuleFormat,
			))
			total++
		}
	}

	return total
}

func (r *TextReporter) writeFileError(path string, err error) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(r.displayPath(path)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}

// sourceLine returns the physical line for context display, or "".
func (r *TextReporter) sourceLine(doc *docmodel.Document, lineNum int) string {
	if !r.opts.ShowContext || doc == nil {
		return ""
	}
	return doc.Line(lineNum)
}

// displayPath makes paths relative to WorkingDir when configured.
func (r *TextReporter) displayPath(path string) string {
	return relativePath(path, r.opts.WorkingDir)
}
