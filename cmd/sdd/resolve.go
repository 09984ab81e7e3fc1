package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sdd-module/internal/config"
	"github.com/conn-castle/sdd-module/internal/messages"
)

// resolveConfig builds the install config from the optional config file and the flags.
// Flags that were set explicitly win over file values. Without either source the
// working directory is the project root; an explicit empty --root is passed through
// so the lifecycle can report it.
func resolveConfig(cmd *cobra.Command, flags *cliFlags) (config.InstallConfig, error) {
	var cfg config.InstallConfig
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return config.InstallConfig{}, err
		}
		cfg = *loaded
	}

	changed := cmd.Flags().Changed
	overrides := []struct {
		name   string
		target *string
		value  string
	}{
		{flagRoot, &cfg.ProjectRoot, flags.root},
		{flagOutputPath, &cfg.OutputDocumentPath, flags.outputPath},
		{flagCredentialPath, &cfg.CredentialPath, flags.credentialPath},
		{flagCode, &cfg.Code, flags.code},
		{flagModuleVersion, &cfg.ModuleVersion, flags.moduleVersion},
		{flagNoiseMode, &cfg.Warnings.NoiseMode, flags.noiseMode},
	}
	for _, o := range overrides {
		if changed(o.name) {
			*o.target = o.value
		}
	}
	if changed(flagSkipSidecars) {
		cfg.SkipSidecars = flags.skipSidecars
	}

	if cfg.ProjectRoot == "" && !changed(flagRoot) {
		cwd, err := getwd()
		if err != nil {
			return config.InstallConfig{}, fmt.Errorf(messages.CLIResolveWorkingDir, err)
		}
		cfg.ProjectRoot = cwd
	}
	return cfg, nil
}
