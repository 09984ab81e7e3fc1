package outcome

import (
	"fmt"
	"strings"

	"github.com/conn-castle/sdd-module/internal/messages"
)

const (
	// NoiseModeDefault keeps all outcomes.
	NoiseModeDefault = "default"
	// NoiseModeReduce hides suppressible warnings.
	NoiseModeReduce = "reduce"
)

// ApplyNoiseControl filters outcomes for rendering.
// mode is the warnings.noise_mode value from config. The Result itself is never filtered.
func ApplyNoiseControl(items []Outcome, mode string) []Outcome {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" || normalized == NoiseModeDefault {
		if len(items) == 0 {
			return nil
		}
		return append([]Outcome(nil), items...)
	}
	if normalized == NoiseModeReduce {
		filtered := make([]Outcome, 0, len(items))
		for _, item := range items {
			if item.IsWarning() && item.NoiseSuppressible {
				continue
			}
			filtered = append(filtered, item)
		}
		return filtered
	}

	out := append([]Outcome(nil), items...)
	out = append(out, Outcome{
		Step:    "render",
		Status:  StatusWarning,
		Code:    CodeNoiseModeInvalid,
		Subject: "warnings.noise_mode",
		Message: fmt.Sprintf(messages.OutcomeNoiseModeInvalidFmt, mode, NoiseModeDefault, NoiseModeReduce),
		Fix:     messages.OutcomeNoiseModeInvalidFix,
	})
	return out
}
