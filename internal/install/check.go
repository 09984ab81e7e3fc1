package install

import (
	"context"
	"fmt"

	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

func (lc *lifecycle) checkDirectories(context.Context) []outcome.Outcome {
	var items []outcome.Outcome
	for _, dir := range lc.paths.DocumentDirs() {
		exists, err := dirExists(lc.sys, dir)
		switch {
		case err != nil:
			items = append(items, outcome.Warn(StepCheckDirectories, outcome.CodeDirectoryMissing, err.Error()).
				WithSubject(dir).
				WithFix(messages.CheckRunInstallFix))
		case !exists:
			items = append(items, outcome.Warn(StepCheckDirectories, outcome.CodeDirectoryMissing, messages.CheckDirMissing).
				WithSubject(dir).
				WithFix(messages.CheckRunInstallFix))
		default:
			items = append(items, outcome.OK(StepCheckDirectories, messages.InstallDirPresent).WithSubject(dir))
		}
	}
	return items
}

func (lc *lifecycle) checkSidecars(context.Context) []outcome.Outcome {
	if lc.cfg.SkipSidecars {
		return []outcome.Outcome{outcome.OK(StepCheckSidecars, messages.InstallSidecarsDisabled)}
	}
	report := InspectSidecars(lc.sys, lc.paths.AgentsDir, DefaultSidecars)
	items, ok := sidecarPresenceOutcomes(StepCheckSidecars, report)
	if !ok {
		return items
	}
	for _, sidecar := range report.Sidecars {
		if !sidecar.Present {
			continue
		}
		missing, err := MissingDirs(lc.sys, sidecar.AuxDirs)
		if err != nil {
			items = append(items, outcome.Warn(StepCheckSidecars, outcome.CodeDirectoryMissing, err.Error()).
				WithSubject(sidecar.Path))
			continue
		}
		for _, dir := range missing {
			items = append(items, outcome.Warn(StepCheckSidecars, outcome.CodeDirectoryMissing, messages.CheckDirMissing).
				WithSubject(dir).
				WithFix(messages.CheckRunInstallFix).
				Suppressible())
		}
		if len(missing) == 0 {
			items = append(items, outcome.OK(StepCheckSidecars, fmt.Sprintf(messages.InstallSidecarReadyFmt, sidecar.Name)).
				WithSubject(sidecar.Path))
		}
	}
	return items
}

func (lc *lifecycle) checkArtifacts(context.Context) []outcome.Outcome {
	reports := InspectCommands(lc.sys, lc.paths.CommandsDir, lc.commands, lc.cfg.CodeOrDefault(), lc.diffMaxLines)
	items := make([]outcome.Outcome, 0, len(reports))
	for _, report := range reports {
		switch report.Action {
		case ArtifactCurrent:
			items = append(items, outcome.OK(StepCheckArtifacts, fmt.Sprintf(messages.CheckCommandCurrentFmt, report.Name)).
				WithSubject(report.Path))
		case ArtifactMissing:
			items = append(items, outcome.Warn(StepCheckArtifacts, outcome.CodeCommandOutdated,
				fmt.Sprintf(messages.CheckCommandMissingFmt, report.Name)).
				WithSubject(report.Path).
				WithFix(messages.CheckRunInstallFix))
		case ArtifactOutdated:
			items = append(items, outcome.Warn(StepCheckArtifacts, outcome.CodeCommandOutdated,
				fmt.Sprintf(messages.CheckCommandOutdatedFmt, report.Name)).
				WithSubject(report.Path).
				WithFix(messages.CheckRunInstallFix).
				WithDiff(report.Diff))
		case ArtifactInvalid:
			items = append(items, outcome.Warn(StepCheckArtifacts, outcome.CodeCommandInvalid, report.Err.Error()).
				WithSubject(report.Name))
		default:
			items = append(items, outcome.Warn(StepCheckArtifacts, outcome.CodeCommandOutdated, report.Err.Error()).
				WithSubject(report.Path))
		}
	}
	return items
}
