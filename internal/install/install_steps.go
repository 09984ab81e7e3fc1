package install

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

func (lc *lifecycle) reconcileDirectories(context.Context) []outcome.Outcome {
	dirs := lc.paths.DocumentDirs()
	report, err := ReconcileDirs(lc.sys, dirs)
	items := dirOutcomes(StepReconcileDirectories, report)
	if err != nil {
		items = append(items, outcome.Fail(StepReconcileDirectories, outcome.CodeDirectoryCreateFailed, err.Error()).
			WithFix(messages.InstallDirFailedFix))
	}
	return items
}

func dirOutcomes(step string, report DirReport) []outcome.Outcome {
	items := make([]outcome.Outcome, 0, len(report.Created)+len(report.Present))
	for _, dir := range report.Created {
		items = append(items, outcome.OK(step, messages.InstallDirCreated).WithSubject(dir))
	}
	for _, dir := range report.Present {
		items = append(items, outcome.OK(step, messages.InstallDirPresent).WithSubject(dir))
	}
	return items
}

func (lc *lifecycle) validateStructure(context.Context) []outcome.Outcome {
	missing := ValidateStructure(lc.sys, lc.paths.ModuleRoot, TemplateChecklist)
	if len(missing) == 0 {
		return []outcome.Outcome{
			outcome.OK(StepValidateStructure, messages.InstallTemplatesPresent).WithSubject(lc.paths.ModuleRoot),
		}
	}
	items := make([]outcome.Outcome, 0, len(missing))
	for _, entry := range missing {
		items = append(items,
			outcome.Warn(StepValidateStructure, outcome.CodeTemplateMissing, fmt.Sprintf(messages.InstallTemplateMissingFmt, entry)).
				WithSubject(filepath.Join(lc.paths.ModuleRoot, filepath.FromSlash(entry))).
				WithFix(messages.InstallTemplateMissingFix).
				Suppressible())
	}
	return items
}

func (lc *lifecycle) inspectCredentials(context.Context) []outcome.Outcome {
	rule := JiraCredentialRule
	report := InspectCredentials(lc.sys, lc.paths.CredentialPath, rule)
	switch report.Status {
	case CredentialsAbsent:
		return []outcome.Outcome{
			outcome.Warn(StepInspectCredentials, outcome.CodeCredentialsAbsent,
				fmt.Sprintf(messages.InstallCredentialsAbsentFmt, rule.Name)).
				WithSubject(report.Path).
				WithFix(fmt.Sprintf(messages.InstallCredentialsFixFmt, strings.Join(report.MissingClasses(rule), ", "))),
		}
	case CredentialsIncomplete:
		item := outcome.Warn(StepInspectCredentials, outcome.CodeCredentialsIncomplete,
			fmt.Sprintf(messages.InstallCredentialsIncompleteFmt, rule.Name)).
			WithSubject(report.Path).
			WithFix(fmt.Sprintf(messages.InstallCredentialsFixFmt, strings.Join(report.MissingClasses(rule), ", ")))
		if report.ReadErr != nil {
			item = item.WithDetails(report.ReadErr.Error())
		}
		return []outcome.Outcome{item}
	default:
		return []outcome.Outcome{
			outcome.OK(StepInspectCredentials, fmt.Sprintf(messages.InstallCredentialsCompleteFmt, rule.Name)).
				WithSubject(report.Path),
		}
	}
}

func (lc *lifecycle) setupSidecars(context.Context) []outcome.Outcome {
	if lc.cfg.SkipSidecars {
		return []outcome.Outcome{outcome.OK(StepSetupSidecars, messages.InstallSidecarsDisabled)}
	}
	report := InspectSidecars(lc.sys, lc.paths.AgentsDir, DefaultSidecars)
	items, ok := sidecarPresenceOutcomes(StepSetupSidecars, report)
	if !ok {
		return items
	}
	for _, sidecar := range report.Sidecars {
		if !sidecar.Present {
			continue
		}
		dirs, err := ReconcileDirs(lc.sys, sidecar.AuxDirs)
		if err != nil {
			return append(items, outcome.Fail(StepSetupSidecars, outcome.CodeSidecarDirCreateFailed, err.Error()).
				WithSubject(sidecar.Path).
				WithFix(messages.InstallDirFailedFix))
		}
		item := outcome.OK(StepSetupSidecars, fmt.Sprintf(messages.InstallSidecarReadyFmt, sidecar.Name)).
			WithSubject(sidecar.Path)
		if len(dirs.Created) > 0 {
			item = item.WithDetails(dirs.Created...)
		}
		items = append(items, item)
	}
	return items
}

// sidecarPresenceOutcomes reports missing sidecars and files. ok is false when
// the agents directory itself is unavailable and nothing else should be attempted.
func sidecarPresenceOutcomes(step string, report SidecarsReport) ([]outcome.Outcome, bool) {
	if !report.AgentsDirPresent {
		return []outcome.Outcome{
			outcome.Warn(step, outcome.CodeSidecarsUnavailable, messages.InstallAgentsDirMissing).
				WithSubject(report.AgentsDir).
				Suppressible(),
		}, false
	}
	var items []outcome.Outcome
	for _, sidecar := range report.Sidecars {
		if !sidecar.Present {
			items = append(items, outcome.Warn(step, outcome.CodeSidecarMissing,
				fmt.Sprintf(messages.InstallSidecarMissingFmt, sidecar.Name)).
				WithSubject(sidecar.Path).
				Suppressible())
			continue
		}
		for _, file := range sidecar.MissingFiles {
			items = append(items, outcome.Warn(step, outcome.CodeSidecarFileMissing,
				fmt.Sprintf(messages.InstallSidecarFileMissingFmt, sidecar.Name, file)).
				WithSubject(filepath.Join(sidecar.Path, file)).
				Suppressible())
		}
	}
	return items, true
}

func (lc *lifecycle) generateArtifacts(context.Context) []outcome.Outcome {
	reports, err := GenerateCommands(lc.sys, lc.paths.CommandsDir, lc.commands, lc.cfg.CodeOrDefault(), lc.diffMaxLines)
	if err != nil {
		skipped := make([]string, 0, len(lc.commands))
		for _, d := range lc.commands {
			skipped = append(skipped, fmt.Sprintf(messages.InstallCommandSkippedFmt, d.Normalized().Name))
		}
		return []outcome.Outcome{
			outcome.Warn(StepGenerateArtifacts, outcome.CodeCommandsDirFailed, err.Error()).
				WithSubject(lc.paths.CommandsDir).
				WithDetails(skipped...),
		}
	}

	items := make([]outcome.Outcome, 0, len(reports))
	for _, report := range reports {
		switch report.Action {
		case ArtifactInvalid:
			items = append(items, outcome.Warn(StepGenerateArtifacts, outcome.CodeCommandInvalid, report.Err.Error()).
				WithSubject(report.Name))
		case ArtifactFailed:
			items = append(items, outcome.Warn(StepGenerateArtifacts, outcome.CodeCommandWriteFailed, report.Err.Error()).
				WithSubject(report.Path))
		default:
			items = append(items, outcome.OK(StepGenerateArtifacts,
				fmt.Sprintf(messages.InstallCommandWrittenFmt, report.Name, report.Action)).
				WithSubject(report.Path).
				WithDiff(report.Diff))
		}
	}
	return items
}
