package messages

// Lifecycle messages.
const (
	// LifecycleRootRequired indicates the host did not supply a project root.
	LifecycleRootRequired      = "project root is required"
	LifecycleRootRequiredFix   = "Pass the host project root (project_root in the config file or --root)."
	LifecycleConfigInvalidFmt  = "invalid module configuration: %v"
	LifecyclePreconditionOKFmt = "module %s %s targeting %s"
	LifecycleCanceledFmt       = "%s canceled: %v"

	InstallSucceeded   = "Module installed and configured"
	UninstallSucceeded = "Module uninstalled; document directories preserved"
	// CheckSucceededFmt formats the check summary with the warning count.
	CheckSucceededFmt = "Module check complete (%d warnings)"

	ResultHaltedFmt  = "%s halted at %s"
	ResultSkippedFmt = "; skipped: %s"
)

// Debug log messages.
const (
	LogStepStarted        = "step started"
	LogStepFinished       = "step finished"
	LogStepCanceled       = "step canceled"
	LogPreconditionPassed = "precondition passed"
)

// Presence probe messages.
const (
	ProbeAvailableFmt  = "%s available"
	ProbeTimedOutFmt   = "probe timed out after %s"
	ProbeMissingFixFmt = "Install %s and make sure it is on PATH."
	ProbeGitMissing    = "Git not found; development workflows will be unavailable"
	ProbeGHMissing     = "GitHub CLI (gh) not found; PR creation will be unavailable"
)

// Install step messages.
const (
	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallFailedReadFmt      = "failed to read %s: %w"
	InstallFailedWriteFmt     = "failed to write %s: %w"
	InstallFailedStatFmt      = "failed to stat %s: %w"
	InstallPathNotDirFmt      = "%s exists but is not a directory"
	InstallRemoveFailedFmt    = "failed to remove %s: %w"
	InstallRefuseRemoveDirFmt = "%s is a directory; refusing to remove it"
	InstallDirFailedFix       = "Check permissions on the parent directory and make sure no file occupies the path."
	InstallDirCreated         = "created directory"
	InstallDirPresent         = "directory already present"

	InstallTemplatesPresent   = "all templates in place"
	InstallTemplateMissingFmt = "missing template: %s"
	InstallTemplateMissingFix = "Reinstall the module payload so the templates directory is complete."

	InstallCredentialsAbsentFmt     = "%s credentials file not found; integration features will be unavailable"
	InstallCredentialsIncompleteFmt = "%s credentials file is incomplete"
	InstallCredentialsCompleteFmt   = "%s credentials configured"
	InstallCredentialsFixFmt        = "Add the missing keys to the credentials file: %s."

	InstallSidecarsDisabled      = "sidecar setup disabled by configuration"
	InstallAgentsDirMissing      = "agents directory not found; skipping sidecar setup"
	InstallSidecarMissingFmt     = "sidecar %s not found; agent may not have persistent memory"
	InstallSidecarFileMissingFmt = "sidecar %s is missing %s"
	InstallSidecarReadyFmt       = "sidecar %s ready"

	InstallInvalidCommandFmt      = "invalid command descriptor %q: %w"
	InstallRenderCommandFailedFmt = "failed to render command %s: %w"
	InstallCommandWrittenFmt      = "command %s %s"
	InstallCommandSkippedFmt      = "skipped command %s"
	InstallDiffTruncatedFmt       = "... diff truncated after %d lines"
)

// Uninstall messages.
const (
	UninstallCommandRemovedFmt  = "removed command %s"
	UninstallCommandAbsentFmt   = "command %s not present"
	UninstallRemoveFailedFix    = "Remove the file manually or fix its permissions, then rerun uninstall."
	UninstallDocumentsPreserved = "document directories preserved"
)

// Check messages.
const (
	CheckDirMissing         = "directory missing"
	CheckRunInstallFix      = "Run `sdd install` to reconcile."
	CheckCommandCurrentFmt  = "command %s up to date"
	CheckCommandMissingFmt  = "command %s missing"
	CheckCommandOutdatedFmt = "command %s differs from the generated version"
)
