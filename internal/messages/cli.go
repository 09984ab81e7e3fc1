package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "sdd"
	// RootShort is the short description for the root command.
	RootShort = "Provision the Spec-Driven Development module into a project"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	InstallUse     = "install"
	InstallShort   = "Install the module: create directories, validate the payload, and generate commands"
	UninstallUse   = "uninstall"
	UninstallShort = "Remove generated commands; document directories are preserved"
	DoctorUse      = "doctor"
	DoctorShort    = "Report what install would change without writing anything"

	FlagConfigUsage         = "path to a TOML host config file"
	FlagRootUsage           = "project root (defaults to the working directory)"
	FlagOutputPathUsage     = "document output directory (defaults to <root>/docs/sdd)"
	FlagCredentialPathUsage = "Jira credentials file (defaults to <root>/.env)"
	FlagCodeUsage           = "module code (defaults to sdd)"
	FlagModuleVersionUsage  = "module version reported in the result"
	FlagSkipSidecarsUsage   = "skip agent sidecar setup"
	FlagJSONUsage           = "print the host result record as JSON"
	FlagVerboseUsage        = "print diffs for updated or outdated commands"
	FlagDebugUsage          = "write debug logs to stderr"
	FlagNoiseModeUsage      = "warning noise mode: default or reduce"

	CLIPhaseHeaderFmt     = "SDD module %s in %s\n"
	CLIOutcomeLineFmt     = "%s %s: %s\n"
	CLIOutcomeSubjectFmt  = "    %s\n"
	CLIOutcomeFixPrefix   = "    fix: "
	CLIOutcomeDetailFmt   = "    - %s\n"
	CLIDiffIndent         = "      "
	CLIStatusOKLabel      = "[OK]  "
	CLIStatusWarnLabel    = "[WARN]"
	CLIStatusFatalLabel   = "[FAIL]"
	CLISummaryWarningsFmt = "%s (%d warnings)\n"
	CLIResolveWorkingDir  = "resolve working directory: %w"
	CLIEncodeResultFmt    = "encode result: %w"
)
