package messages

// Config messages for loading the host config file.
const (
	// ConfigReadFileFmt formats unreadable config file errors.
	ConfigReadFileFmt         = "read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigSyntaxAtFmt         = "invalid config %s (line %d, column %d): %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %s"
	ConfigInvalidFieldsFmt    = "%s: invalid config values: %w"
	ConfigExpandPathFmt       = "expand %s: %w"
)
