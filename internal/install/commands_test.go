package install

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	yaml "go.yaml.in/yaml/v3"

	"github.com/conn-castle/sdd-module/internal/config"
)

const generateCommitArtifact = `---
name: generate-commit
description: Create git commits following SDD streamlined format
---

Execute the SDD standalone task: generate-commit

<invoke-task path="{project-root}/bmad/sdd/tasks/generate-commit.xml" />
`

func TestRenderCommandExactBytes(t *testing.T) {
	commands := DefaultCommands(config.InstallConfig{})
	got, err := RenderCommand(commands[0], config.DefaultCode)
	require.NoError(t, err)
	require.Equal(t, generateCommitArtifact, string(got))
}

func TestRenderCommandUsesModuleCode(t *testing.T) {
	commands := DefaultCommands(config.InstallConfig{Code: "acme"})
	require.Equal(t, "bmad/acme/tasks/create-pr.xml", commands[1].TaskPath)

	got, err := RenderCommand(commands[1], "acme")
	require.NoError(t, err)
	require.Contains(t, string(got), "Execute the ACME standalone task: create-pr\n")
	require.Contains(t, string(got), `<invoke-task path="{project-root}/bmad/acme/tasks/create-pr.xml" />`)
}

func TestRenderCommandQuotesSpecialFrontMatter(t *testing.T) {
	d := CommandDescriptor{Name: "review", TaskPath: "bmad/sdd/tasks/review.xml", Description: "Review: #1 priority"}
	got, err := RenderCommand(d, "sdd")
	require.NoError(t, err)

	parts := strings.SplitN(string(got), "---\n", 3)
	require.Len(t, parts, 3)
	var front map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &front))
	require.Equal(t, map[string]string{"name": "review", "description": "Review: #1 priority"}, front)
}

func TestRenderCommandKeepsStringTypes(t *testing.T) {
	d := CommandDescriptor{Name: "toggle", TaskPath: "t.xml", Description: "true"}
	got, err := RenderCommand(d, "sdd")
	require.NoError(t, err)

	parts := strings.SplitN(string(got), "---\n", 3)
	var front map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &front))
	require.Equal(t, "true", front["description"])
}

func TestCommandDescriptorValidate(t *testing.T) {
	valid := CommandDescriptor{Name: "create-pr", TaskPath: "a.xml", Description: "d"}
	require.NoError(t, valid.Validate())

	for _, d := range []CommandDescriptor{
		{Name: "", TaskPath: "a.xml", Description: "d"},
		{Name: "../escape", TaskPath: "a.xml", Description: "d"},
		{Name: "nested/name", TaskPath: "a.xml", Description: "d"},
		{Name: "ok", TaskPath: "", Description: "d"},
		{Name: "ok", TaskPath: "a.xml", Description: " "},
	} {
		require.Error(t, d.Normalized().Validate(), "descriptor %+v", d)
	}
}

func TestGenerateCommandsCreatedUnchangedUpdated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".claude", "commands")
	commands := DefaultCommands(config.InstallConfig{})

	first, err := GenerateCommands(RealSystem{}, dir, commands, "sdd", 0)
	require.NoError(t, err)
	require.Len(t, first, 2)
	for _, report := range first {
		require.Equal(t, ArtifactCreated, report.Action)
	}
	initial, err := os.ReadFile(first[0].Path)
	require.NoError(t, err)

	second, err := GenerateCommands(RealSystem{}, dir, commands, "sdd", 0)
	require.NoError(t, err)
	for _, report := range second {
		require.Equal(t, ArtifactUnchanged, report.Action)
		require.Empty(t, report.Diff)
	}
	again, err := os.ReadFile(first[0].Path)
	require.NoError(t, err)
	require.Equal(t, initial, again, "regeneration must be byte-identical")

	writeFile(t, first[0].Path, "hand edited\n")
	third, err := GenerateCommands(RealSystem{}, dir, commands, "sdd", 0)
	require.NoError(t, err)
	require.Equal(t, ArtifactUpdated, third[0].Action)
	require.Contains(t, third[0].Diff, "-hand edited")
	require.Contains(t, third[0].Diff, "+name: generate-commit")

	restored, err := os.ReadFile(first[0].Path)
	require.NoError(t, err)
	require.Equal(t, initial, restored)
}

func TestGenerateCommandsIsolatesFailures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "commands")
	commands := append([]CommandDescriptor{{Name: "bad/name", TaskPath: "x", Description: "y"}}, DefaultCommands(config.InstallConfig{})...)
	sys := newFaultSystem(RealSystem{})
	sys.writeErrs[CommandPath(dir, "generate-commit")] = errors.New("read-only")

	reports, err := GenerateCommands(sys, dir, commands, "sdd", 0)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.Equal(t, ArtifactInvalid, reports[0].Action)
	require.Equal(t, ArtifactFailed, reports[1].Action)
	require.ErrorContains(t, reports[1].Err, "read-only")
	require.Equal(t, ArtifactCreated, reports[2].Action)
}

func TestGenerateCommandsDirFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "commands")
	sys := newFaultSystem(RealSystem{})
	sys.mkdirErrs[dir] = errors.New("denied")

	reports, err := GenerateCommands(sys, dir, DefaultCommands(config.InstallConfig{}), "sdd", 0)
	require.ErrorContains(t, err, "denied")
	require.Nil(t, reports)
	require.Empty(t, sys.writes)
}

func TestInspectCommandsReportsDrift(t *testing.T) {
	dir := t.TempDir()
	commands := DefaultCommands(config.InstallConfig{})
	writeFile(t, CommandPath(dir, "generate-commit"), generateCommitArtifact)
	writeFile(t, CommandPath(dir, "create-pr"), "stale\n")

	reports := InspectCommands(RealSystem{}, dir, commands, "sdd", 0)
	require.Equal(t, ArtifactCurrent, reports[0].Action)
	require.Equal(t, ArtifactOutdated, reports[1].Action)
	require.Contains(t, reports[1].Diff, "-stale")

	require.NoError(t, os.Remove(CommandPath(dir, "create-pr")))
	reports = InspectCommands(RealSystem{}, dir, commands, "sdd", 0)
	require.Equal(t, ArtifactMissing, reports[1].Action)
}

func TestRemoveCommands(t *testing.T) {
	dir := t.TempDir()
	commands := DefaultCommands(config.InstallConfig{})
	writeFile(t, CommandPath(dir, "generate-commit"), generateCommitArtifact)
	require.NoError(t, os.Mkdir(CommandPath(dir, "create-pr"), 0o755))
	unrelated := filepath.Join(dir, "other.md")
	writeFile(t, unrelated, "keep")

	reports := RemoveCommands(RealSystem{}, dir, commands)
	require.Equal(t, ArtifactRemoved, reports[0].Action)
	require.Equal(t, ArtifactFailed, reports[1].Action, "directories are never removed")
	require.DirExists(t, CommandPath(dir, "create-pr"))
	require.FileExists(t, unrelated)

	reports = RemoveCommands(RealSystem{}, dir, commands[:1])
	require.Equal(t, ArtifactAbsent, reports[0].Action)
}

func TestRemoveCommandsFailure(t *testing.T) {
	dir := t.TempDir()
	path := CommandPath(dir, "generate-commit")
	writeFile(t, path, "x")
	sys := newFaultSystem(RealSystem{})
	sys.removeErrs[path] = errors.New("busy")

	reports := RemoveCommands(sys, dir, DefaultCommands(config.InstallConfig{})[:1])
	require.Equal(t, ArtifactFailed, reports[0].Action)
	require.ErrorContains(t, reports[0].Err, "busy")
	require.FileExists(t, path)
}

func TestRenderArtifactDiffTruncates(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < 30; i++ {
		before.WriteString("old line\n")
		after.WriteString("new line\n")
	}
	diff := renderArtifactDiff("x.md", before.String(), after.String(), 10)
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	require.Len(t, lines, 11)
	require.Contains(t, lines[10], "truncated after 10 lines")

	full := renderArtifactDiff("x.md", "a\n", "b\n", 0)
	require.Contains(t, full, "-a")
	require.Contains(t, full, "+b")
	require.NotContains(t, full, "truncated")
}
