package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines kept per artifact.
const DefaultDiffMaxLines = 40

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// renderArtifactDiff renders a unified diff from the on-disk content to the generated content.
func renderArtifactDiff(name string, onDisk string, generated string, maxLines int) string {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(name+" (on disk)", name+" (generated)", onDisk, generated)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n"))
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.InstallDiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n"))
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
