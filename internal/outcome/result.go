package outcome

import (
	"fmt"
	"strings"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// Phase names an independent lifecycle sequence.
type Phase string

const (
	PhaseInstall   Phase = "install"
	PhaseUninstall Phase = "uninstall"
	PhaseCheck     Phase = "check"
)

// Result aggregates every outcome recorded during one phase.
type Result struct {
	RunID    string
	Phase    Phase
	Outcomes []Outcome
	// Skipped lists the steps that never ran because an earlier step was fatal.
	Skipped []string
	Success bool
	Message string
	Error   string
}

// HostResult is the record returned to the host framework.
type HostResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Record appends outcomes in the order they were observed.
func (r *Result) Record(items ...Outcome) {
	r.Outcomes = append(r.Outcomes, items...)
}

// Skip records steps that were not run.
func (r *Result) Skip(steps ...string) {
	r.Skipped = append(r.Skipped, steps...)
}

// Finish derives Success, Message, and Error from the recorded outcomes.
// successMessage is used only when no fatal outcome was recorded.
func (r *Result) Finish(successMessage string) {
	fatal, ok := r.Fatal()
	if !ok {
		r.Success = true
		r.Message = successMessage
		r.Error = ""
		return
	}
	r.Success = false
	r.Error = fatal.Message
	r.Message = fmt.Sprintf(messages.ResultHaltedFmt, r.Phase, fatal.Step)
	if len(r.Skipped) > 0 {
		r.Message += fmt.Sprintf(messages.ResultSkippedFmt, strings.Join(r.Skipped, ", "))
	}
}

// Fatal returns the first fatal outcome, if any.
func (r Result) Fatal() (Outcome, bool) {
	for _, item := range r.Outcomes {
		if item.IsFatal() {
			return item, true
		}
	}
	return Outcome{}, false
}

// Warnings returns the warning outcomes in the order they were recorded.
func (r Result) Warnings() []Outcome {
	var out []Outcome
	for _, item := range r.Outcomes {
		if item.IsWarning() {
			out = append(out, item)
		}
	}
	return out
}

// ForStep returns the outcomes recorded by step.
func (r Result) ForStep(step string) []Outcome {
	var out []Outcome
	for _, item := range r.Outcomes {
		if item.Step == step {
			out = append(out, item)
		}
	}
	return out
}

// Summary returns the host-facing record for r.
func (r Result) Summary() HostResult {
	return HostResult{
		Success: r.Success,
		Message: r.Message,
		Error:   r.Error,
	}
}
