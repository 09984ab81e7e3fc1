package install

import (
	"context"
	"fmt"

	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

func (lc *lifecycle) removeArtifacts(context.Context) []outcome.Outcome {
	reports := RemoveCommands(lc.sys, lc.paths.CommandsDir, lc.commands)
	items := make([]outcome.Outcome, 0, len(reports))
	for _, report := range reports {
		switch report.Action {
		case ArtifactRemoved:
			items = append(items, outcome.OK(StepRemoveArtifacts, fmt.Sprintf(messages.UninstallCommandRemovedFmt, report.Name)).
				WithSubject(report.Path))
		case ArtifactAbsent:
			items = append(items, outcome.OK(StepRemoveArtifacts, fmt.Sprintf(messages.UninstallCommandAbsentFmt, report.Name)).
				WithSubject(report.Path))
		case ArtifactInvalid:
			items = append(items, outcome.Warn(StepRemoveArtifacts, outcome.CodeCommandInvalid, report.Err.Error()).
				WithSubject(report.Name))
		default:
			items = append(items, outcome.Warn(StepRemoveArtifacts, outcome.CodeCommandRemoveFailed, report.Err.Error()).
				WithSubject(report.Path).
				WithFix(messages.UninstallRemoveFailedFix))
		}
	}
	return items
}

func (lc *lifecycle) preserveDocuments(context.Context) []outcome.Outcome {
	return []outcome.Outcome{
		outcome.OK(StepPreserveDocuments, messages.UninstallDocumentsPreserved).WithSubject(lc.paths.OutputDir),
	}
}
