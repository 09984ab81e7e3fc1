package install

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sdd-module/internal/config"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

// faultSystem is a test helper that allows deterministic error injection for the
// lifecycle System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	mkdirErrs  map[string]error
	removeErrs map[string]error
	writeErrs  map[string]error
	writes     []string
	mkdirs     []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		readErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		removeErrs: map[string]error{},
		writeErrs:  map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	f.mkdirs = append(f.mkdirs, normalizePath(path))
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	f.writes = append(f.writes, normalizePath(filename))
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.WriteFileAtomic(filename, data, perm)
}

func (f *faultSystem) Remove(name string) error {
	if err, ok := f.removeErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Remove(name)
}

// fakeRunner records invocations and returns a preset error per program.
type fakeRunner struct {
	mu    sync.Mutex
	errs  map[string]error
	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	if r.errs == nil {
		return nil
	}
	return r.errs[name]
}

// testOptions returns options that never spawn real processes.
func testOptions(sys System) Options {
	return Options{System: sys, Runner: &fakeRunner{}}
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// seedModule writes a complete module payload and Jira credentials under root for the default code.
func seedModule(t *testing.T, root string) {
	t.Helper()
	writeFile(t, filepath.Join(root, ".env"), "JIRA_API_URL=https://example.atlassian.net\nJIRA_API_TOKEN=secret\n")
	moduleRoot := filepath.Join(root, "bmad", config.DefaultCode)
	for _, entry := range TemplateChecklist {
		writeFile(t, filepath.Join(moduleRoot, filepath.FromSlash(entry)), "# template\n")
	}
	for _, sidecar := range DefaultSidecars {
		for _, file := range SidecarFiles {
			writeFile(t, filepath.Join(moduleRoot, "agents", sidecar, file), "# "+file+"\n")
		}
	}
}

func codes(items []outcome.Outcome) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Code != "" {
			out = append(out, item.Code)
		}
	}
	return out
}

// snapshotTree returns every relative path under root.
func snapshotTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return paths
}
