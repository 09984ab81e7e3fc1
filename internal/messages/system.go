package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"

	// OutcomeNoiseModeInvalidFmt formats the warning for an unknown noise mode.
	OutcomeNoiseModeInvalidFmt = "unknown warnings noise mode %q; expected one of: %s, %s"
	OutcomeNoiseModeInvalidFix = "Set warnings.noise_mode to default or reduce."

	TerminalNoColorEnv = "NO_COLOR"
)
