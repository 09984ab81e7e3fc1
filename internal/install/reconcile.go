package install

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/sdd-module/internal/messages"
)

// DirReport records which directories a reconcile pass created and which already existed.
type DirReport struct {
	Created []string
	Present []string
}

// ReconcileDirs ensures every directory in dirs exists, creating missing ones with their parents.
// It stops at the first path it cannot reconcile and returns the report accumulated so far.
// Repeating the call with the same input creates nothing.
func ReconcileDirs(sys System, dirs []string) (DirReport, error) {
	var report DirReport
	for _, dir := range dirs {
		exists, err := dirExists(sys, dir)
		if err != nil {
			return report, err
		}
		if exists {
			report.Present = append(report.Present, dir)
			continue
		}
		if err := sys.MkdirAll(dir, 0o755); err != nil {
			return report, fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
		report.Created = append(report.Created, dir)
	}
	return report, nil
}

// MissingDirs returns the entries of dirs that do not exist, without creating anything.
func MissingDirs(sys System, dirs []string) ([]string, error) {
	var missing []string
	for _, dir := range dirs {
		exists, err := dirExists(sys, dir)
		if err != nil {
			return missing, err
		}
		if !exists {
			missing = append(missing, dir)
		}
	}
	return missing, nil
}

// dirExists reports whether dir is an existing directory.
// A non-directory at the path or an unexpected stat failure is an error.
func dirExists(sys System, dir string) (bool, error) {
	info, err := sys.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf(messages.InstallPathNotDirFmt, dir)
	}
	return true, nil
}
