// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

// SupportsColor reports whether colored output should be written to w.
// Only real terminals qualify, and a non-empty NO_COLOR always disables color.
func SupportsColor(w io.Writer) bool {
	if os.Getenv(messages.TerminalNoColorEnv) != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(file.Fd()))
}
