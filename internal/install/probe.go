package install

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

// ProbeTimeout bounds a single presence probe so a hung tool cannot stall a phase.
const ProbeTimeout = 2 * time.Second

// Tool names an optional external executable and what degrades without it.
type Tool struct {
	Name    string
	Label   string
	Missing string
}

// ProbeTool runs "<tool> --version" and reports whether it is invocable.
// The result is OK or a warning; a missing tool never fails a phase.
func ProbeTool(ctx context.Context, runner Runner, tool Tool, timeout time.Duration) outcome.Outcome {
	if timeout <= 0 {
		timeout = ProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := runner.Run(probeCtx, tool.Name, "--version")
	if err == nil {
		return outcome.OK(StepValidateEnvironment, fmt.Sprintf(messages.ProbeAvailableFmt, tool.Label)).
			WithSubject(tool.Name)
	}

	detail := err.Error()
	if errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
		detail = fmt.Sprintf(messages.ProbeTimedOutFmt, timeout)
	}
	return outcome.Warn(StepValidateEnvironment, outcome.CodeToolMissing, tool.Missing).
		WithSubject(tool.Name).
		WithFix(fmt.Sprintf(messages.ProbeMissingFixFmt, tool.Name)).
		WithDetails(detail)
}
