package install

import (
	"context"
	"os"
	"os/exec"

	"github.com/conn-castle/sdd-module/internal/fsutil"
)

// System abstracts filesystem operations needed by the lifecycle steps.
// It is package-local so tests can inject faults without touching the real disk permissions.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Remove(name string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Remove removes the named file or empty directory.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// Runner starts an external program and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs with os/exec. Output is discarded.
type ExecRunner struct{}

// Run executes name with args and reports spawn failures and non-zero exits as errors.
// The process is killed when ctx is done.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	// Stdio stays nil, which connects it to the null device.
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}
