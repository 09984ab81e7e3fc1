package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// ToolBin is a temporary directory of fake external tools placed first on PATH.
type ToolBin struct {
	t   *testing.T
	Dir string
}

// NewToolBin creates an empty tool directory and prepends it to PATH for the test.
func NewToolBin(t *testing.T) *ToolBin {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return &ToolBin{t: t, Dir: dir}
}

// Versioned installs a tool that exits zero only when called with --version.
func (b *ToolBin) Versioned(name string) string {
	b.t.Helper()
	return b.write(name, "#!/bin/sh\n[ \"$1\" = \"--version\" ] && exit 0\nexit 64\n")
}

// Failing installs a tool that always exits with code.
func (b *ToolBin) Failing(name string, code int) string {
	b.t.Helper()
	return b.write(name, fmt.Sprintf("#!/bin/sh\nexit %d\n", code))
}

// Hanging installs a tool that sleeps for seconds. exec replaces the shell so a
// context kill reaches the sleeping process.
func (b *ToolBin) Hanging(name string, seconds int) string {
	b.t.Helper()
	return b.write(name, fmt.Sprintf("#!/bin/sh\nexec sleep %d\n", seconds))
}

func (b *ToolBin) write(name string, script string) string {
	b.t.Helper()
	path := filepath.Join(b.Dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		b.t.Fatalf("write tool %s: %v", name, err)
	}
	return path
}

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup (equivalent to testing.T.Chdir
// from Go 1.24).
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	})
}
