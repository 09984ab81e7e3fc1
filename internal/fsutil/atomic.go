// Package fsutil holds small filesystem helpers shared by the installer.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/sdd-module/internal/messages"
)

var (
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// WriteFileAtomic writes data to a sibling temp file and renames it over filename,
// so readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := osCreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if err := osRename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	committed = true
	return nil
}
