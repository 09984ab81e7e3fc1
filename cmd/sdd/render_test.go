package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sdd-module/internal/outcome"
)

func sampleResult() outcome.Result {
	r := outcome.Result{Phase: outcome.PhaseInstall}
	r.Record(
		outcome.OK("generate-artifacts", "command create-pr updated").
			WithSubject("/repo/.claude/commands/create-pr.md").
			WithDiff("--- a\n+++ b\n-old\n+new\n"),
		outcome.Warn("validate-structure", outcome.CodeTemplateMissing, "missing template: templates/pr/template.md").
			WithFix("reinstall").
			Suppressible(),
		outcome.Warn("inspect-credentials", outcome.CodeCredentialsAbsent, "Jira credentials file not found").
			WithDetails("detail one"),
	)
	r.Finish("Module installed and configured")
	return r
}

func TestRenderResultText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderResult(&out, sampleResult(), renderOptions{root: "/repo"}))

	got := out.String()
	require.Contains(t, got, "SDD module install in /repo\n")
	require.Contains(t, got, "[OK]   generate-artifacts: command create-pr updated\n")
	require.Contains(t, got, "    /repo/.claude/commands/create-pr.md\n")
	require.Contains(t, got, "[WARN] validate-structure: missing template: templates/pr/template.md\n")
	require.Contains(t, got, "    fix: reinstall\n")
	require.Contains(t, got, "    - detail one\n")
	require.Contains(t, got, "Module installed and configured (2 warnings)\n")
	require.NotContains(t, got, "+new", "diffs are verbose-only")
	require.NotContains(t, got, "\x1b[", "color is off")
}

func TestRenderResultVerboseAndReduced(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderResult(&out, sampleResult(), renderOptions{verbose: true, noiseMode: "reduce"}))

	got := out.String()
	require.Contains(t, got, "      +new\n")
	require.NotContains(t, got, "validate-structure")
	require.Contains(t, got, "inspect-credentials")
}

func TestRenderResultColor(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderResult(&out, sampleResult(), renderOptions{color: true}))
	require.Contains(t, out.String(), "\x1b[")
}

func TestRenderResultFailure(t *testing.T) {
	r := outcome.Result{Phase: outcome.PhaseUninstall}
	r.Record(outcome.Fail("validate-environment", outcome.CodePreconditionFailed, "project root is required"))
	r.Skip("remove-artifacts")
	r.Finish("unused")

	var out bytes.Buffer
	require.NoError(t, renderResult(&out, r, renderOptions{}))
	require.Contains(t, out.String(), "[FAIL] validate-environment: project root is required\n")
	require.Contains(t, out.String(), "uninstall halted at validate-environment; skipped: remove-artifacts\n")
}

func TestRenderResultJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderResult(&out, sampleResult(), renderOptions{json: true}))
	require.JSONEq(t, `{"success": true, "message": "Module installed and configured"}`, out.String())
}
