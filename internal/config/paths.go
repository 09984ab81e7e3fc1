package config

import "path/filepath"

// Paths holds every filesystem location derived from an InstallConfig.
type Paths struct {
	Root           string
	OutputDir      string
	PRDDir         string
	TechSpecDir    string
	ModuleRoot     string
	AgentsDir      string
	CommandsDir    string
	CredentialPath string
}

// DefaultPaths resolves the paths for cfg. Overrides in cfg win over defaults.
func DefaultPaths(cfg InstallConfig) Paths {
	root := cfg.ProjectRoot
	output := cfg.OutputDocumentPath
	if output == "" {
		output = filepath.Join(root, "docs", "sdd")
	}
	credentials := cfg.CredentialPath
	if credentials == "" {
		credentials = filepath.Join(root, ".env")
	}
	moduleRoot := filepath.Join(root, filepath.FromSlash(cfg.ModuleRelPath()))
	return Paths{
		Root:           root,
		OutputDir:      output,
		PRDDir:         filepath.Join(output, "prd"),
		TechSpecDir:    filepath.Join(output, "tech-spec"),
		ModuleRoot:     moduleRoot,
		AgentsDir:      filepath.Join(moduleRoot, "agents"),
		CommandsDir:    filepath.Join(root, ".claude", "commands"),
		CredentialPath: credentials,
	}
}

// DocumentDirs returns the document directories in creation order.
func (p Paths) DocumentDirs() []string {
	return []string{p.OutputDir, p.PRDDir, p.TechSpecDir}
}
