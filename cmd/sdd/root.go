package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sdd-module/internal/config"
	"github.com/conn-castle/sdd-module/internal/install"
	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

const (
	flagConfig         = "config"
	flagRoot           = "root"
	flagOutputPath     = "output-path"
	flagCredentialPath = "credential-path"
	flagCode           = "code"
	flagModuleVersion  = "module-version"
	flagSkipSidecars   = "skip-sidecars"
	flagJSON           = "json"
	flagVerbose        = "verbose"
	flagDebug          = "debug"
	flagNoiseMode      = "noise-mode"
)

// cliFlags holds the persistent flags shared by every lifecycle command.
type cliFlags struct {
	configPath     string
	root           string
	outputPath     string
	credentialPath string
	code           string
	moduleVersion  string
	skipSidecars   bool
	jsonOutput     bool
	verbose        bool
	debug          bool
	noiseMode      string
}

type phaseFunc func(ctx context.Context, cfg config.InstallConfig, opts install.Options) outcome.Result

// Lifecycle entry points, swapped in tests.
var (
	installFunc   phaseFunc = install.Install
	uninstallFunc phaseFunc = install.Uninstall
	checkFunc     phaseFunc = install.Check
)

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, flagConfig, "", messages.FlagConfigUsage)
	pf.StringVar(&flags.root, flagRoot, "", messages.FlagRootUsage)
	pf.StringVar(&flags.outputPath, flagOutputPath, "", messages.FlagOutputPathUsage)
	pf.StringVar(&flags.credentialPath, flagCredentialPath, "", messages.FlagCredentialPathUsage)
	pf.StringVar(&flags.code, flagCode, "", messages.FlagCodeUsage)
	pf.StringVar(&flags.moduleVersion, flagModuleVersion, "", messages.FlagModuleVersionUsage)
	pf.BoolVar(&flags.skipSidecars, flagSkipSidecars, false, messages.FlagSkipSidecarsUsage)
	pf.BoolVar(&flags.jsonOutput, flagJSON, false, messages.FlagJSONUsage)
	pf.BoolVarP(&flags.verbose, flagVerbose, "v", false, messages.FlagVerboseUsage)
	pf.BoolVar(&flags.debug, flagDebug, false, messages.FlagDebugUsage)
	pf.StringVar(&flags.noiseMode, flagNoiseMode, "", messages.FlagNoiseModeUsage)

	cmd.AddCommand(
		newPhaseCmd(messages.InstallUse, messages.InstallShort, flags, func() phaseFunc { return installFunc }),
		newPhaseCmd(messages.UninstallUse, messages.UninstallShort, flags, func() phaseFunc { return uninstallFunc }),
		newPhaseCmd(messages.DoctorUse, messages.DoctorShort, flags, func() phaseFunc { return checkFunc }),
	)
	return cmd
}

func newPhaseCmd(use string, short string, flags *cliFlags, phase func() phaseFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), flags.debug)
			opts := install.Options{Logger: &logger}
			result := phase()(cmd.Context(), cfg, opts)

			if err := renderResult(cmd.OutOrStdout(), result, renderOptions{
				root:      cfg.ProjectRoot,
				json:      flags.jsonOutput,
				verbose:   flags.verbose,
				noiseMode: cfg.Warnings.NoiseMode,
				color:     colorEnabled(cmd.OutOrStdout()),
			}); err != nil {
				return fmt.Errorf(messages.CLIEncodeResultFmt, err)
			}
			if !result.Success {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
}
