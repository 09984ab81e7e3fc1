package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
	"github.com/conn-castle/sdd-module/internal/terminal"
)

// colorEnabled is swapped in tests.
var colorEnabled = terminal.SupportsColor

type renderOptions struct {
	root      string
	json      bool
	verbose   bool
	noiseMode string
	color     bool
}

// renderResult writes result to out, either as the host JSON record or as colored outcome lines.
func renderResult(out io.Writer, result outcome.Result, opts renderOptions) error {
	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Summary())
	}

	p := newPalette(opts.color)
	_, _ = fmt.Fprintf(out, messages.CLIPhaseHeaderFmt, result.Phase, opts.root)
	for _, item := range outcome.ApplyNoiseControl(result.Outcomes, opts.noiseMode) {
		printOutcome(out, p, item, opts.verbose)
	}

	if result.Success {
		_, _ = fmt.Fprint(out, p.ok.Sprintf(messages.CLISummaryWarningsFmt, result.Message, len(result.Warnings())))
		return nil
	}
	_, _ = fmt.Fprintln(out, p.fatal.Sprint(result.Message))
	_, _ = fmt.Fprintln(out, p.fatal.Sprint(result.Error))
	return nil
}

type palette struct {
	ok    *color.Color
	warn  *color.Color
	fatal *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fatal: color.New(color.FgRed),
	}
	if enabled {
		p.ok.EnableColor()
		p.warn.EnableColor()
		p.fatal.EnableColor()
	} else {
		p.ok.DisableColor()
		p.warn.DisableColor()
		p.fatal.DisableColor()
	}
	return p
}

func printOutcome(out io.Writer, p palette, item outcome.Outcome, verbose bool) {
	var status string
	switch item.Status {
	case outcome.StatusOK:
		status = p.ok.Sprint(messages.CLIStatusOKLabel)
	case outcome.StatusWarning:
		status = p.warn.Sprint(messages.CLIStatusWarnLabel)
	default:
		status = p.fatal.Sprint(messages.CLIStatusFatalLabel)
	}

	_, _ = fmt.Fprintf(out, messages.CLIOutcomeLineFmt, status, item.Step, item.Message)
	if item.Subject != "" {
		_, _ = fmt.Fprintf(out, messages.CLIOutcomeSubjectFmt, item.Subject)
	}
	if item.Fix != "" {
		_, _ = fmt.Fprintln(out, messages.CLIOutcomeFixPrefix+item.Fix)
	}
	for _, detail := range item.Details {
		_, _ = fmt.Fprintf(out, messages.CLIOutcomeDetailFmt, detail)
	}
	if verbose && item.Diff != "" {
		for _, line := range strings.Split(strings.TrimSuffix(item.Diff, "\n"), "\n") {
			_, _ = fmt.Fprintln(out, messages.CLIDiffIndent+line)
		}
	}
}
