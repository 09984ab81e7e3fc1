package outcome

import (
	"fmt"
	"strings"
)

// Status classifies a single step outcome.
type Status string

const (
	// StatusOK reports a step that converged without issues.
	StatusOK Status = "OK"
	// StatusWarning reports a degraded but non-blocking condition.
	StatusWarning Status = "WARN"
	// StatusFatal reports a condition that halts the current phase.
	StatusFatal Status = "FATAL"
)

// Outcome codes.
const (
	CodePreconditionFailed     = "PRECONDITION_FAILED"
	CodeCanceled               = "CANCELED"
	CodeToolMissing            = "TOOL_MISSING"
	CodeDirectoryCreateFailed  = "DIRECTORY_CREATE_FAILED"
	CodeDirectoryMissing       = "DIRECTORY_MISSING"
	CodeTemplateMissing        = "TEMPLATE_MISSING"
	CodeCredentialsAbsent      = "CREDENTIALS_ABSENT"
	CodeCredentialsIncomplete  = "CREDENTIALS_INCOMPLETE"
	CodeSidecarsUnavailable    = "SIDECARS_UNAVAILABLE"
	CodeSidecarMissing         = "SIDECAR_MISSING"
	CodeSidecarFileMissing     = "SIDECAR_FILE_MISSING"
	CodeSidecarDirCreateFailed = "SIDECAR_DIR_CREATE_FAILED"
	CodeCommandsDirFailed      = "COMMANDS_DIR_CREATE_FAILED"
	CodeCommandInvalid         = "COMMAND_INVALID"
	CodeCommandWriteFailed     = "COMMAND_WRITE_FAILED"
	CodeCommandOutdated        = "COMMAND_OUTDATED"
	CodeCommandRemoveFailed    = "COMMAND_REMOVE_FAILED"
	CodeNoiseModeInvalid       = "NOISE_MODE_INVALID"
)

// Outcome is the structured report of one observation made by a lifecycle step.
type Outcome struct {
	Step    string
	Status  Status
	Code    string
	Subject string
	Message string
	Fix     string
	Details []string
	// Diff holds a unified diff when the outcome describes content drift.
	Diff string
	// NoiseSuppressible marks warnings that reduced-noise rendering may hide.
	// Fatal outcomes are never suppressed even if this flag is true.
	NoiseSuppressible bool
}

// OK builds a successful outcome for step.
func OK(step string, message string) Outcome {
	return Outcome{Step: step, Status: StatusOK, Message: message}
}

// Warn builds a non-blocking warning outcome for step.
func Warn(step string, code string, message string) Outcome {
	return Outcome{Step: step, Status: StatusWarning, Code: code, Message: message}
}

// Fail builds a fatal outcome for step.
func Fail(step string, code string, message string) Outcome {
	return Outcome{Step: step, Status: StatusFatal, Code: code, Message: message}
}

// WithSubject returns a copy of o naming the path or tool it concerns.
func (o Outcome) WithSubject(subject string) Outcome {
	o.Subject = subject
	return o
}

// WithFix returns a copy of o carrying remediation guidance.
func (o Outcome) WithFix(fix string) Outcome {
	o.Fix = fix
	return o
}

// WithDetails returns a copy of o with details appended.
func (o Outcome) WithDetails(details ...string) Outcome {
	o.Details = append(append([]string(nil), o.Details...), details...)
	return o
}

// WithDiff returns a copy of o carrying a unified diff.
func (o Outcome) WithDiff(diff string) Outcome {
	o.Diff = diff
	return o
}

// Suppressible returns a copy of o that reduced-noise rendering may hide.
func (o Outcome) Suppressible() Outcome {
	o.NoiseSuppressible = true
	return o
}

// IsFatal reports whether o halts the phase.
func (o Outcome) IsFatal() bool {
	return o.Status == StatusFatal
}

// IsWarning reports whether o is a non-blocking warning.
func (o Outcome) IsWarning() bool {
	return o.Status == StatusWarning
}

func (o Outcome) String() string {
	if o.Status == StatusOK {
		return fmt.Sprintf("%s %s: %s", o.Status, o.Step, o.Message)
	}
	var b strings.Builder
	b.WriteString(string(o.Status) + " " + o.Code + ": " + o.Message + "\n")
	b.WriteString("  step: " + o.Step)
	if o.Subject != "" {
		b.WriteString("\n  subject: " + o.Subject)
	}
	if o.Fix != "" {
		b.WriteString("\n  fix: " + o.Fix)
	}
	for _, d := range o.Details {
		b.WriteString("\n  details: " + d)
	}
	return b.String()
}

// HasFatal reports whether any outcome in items is fatal.
func HasFatal(items []Outcome) bool {
	for _, item := range items {
		if item.IsFatal() {
			return true
		}
	}
	return false
}
