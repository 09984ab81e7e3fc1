package install

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/conn-castle/sdd-module/internal/config"
	"github.com/conn-castle/sdd-module/internal/messages"
	"github.com/conn-castle/sdd-module/internal/outcome"
)

// Lifecycle step names, in the order each phase runs them.
const (
	StepValidateEnvironment  = "validate-environment"
	StepReconcileDirectories = "reconcile-directories"
	StepValidateStructure    = "validate-structure"
	StepInspectCredentials   = "inspect-credentials"
	StepSetupSidecars        = "setup-sidecars"
	StepGenerateArtifacts    = "generate-artifacts"

	StepRemoveArtifacts   = "remove-artifacts"
	StepPreserveDocuments = "preserve-documents"

	StepCheckDirectories = "check-directories"
	StepCheckSidecars    = "check-sidecars"
	StepCheckArtifacts   = "check-artifacts"
)

// Options controls lifecycle behavior. Zero values select the real filesystem,
// the real process runner, the default tool and command catalogs, and no logging.
type Options struct {
	System System
	Runner Runner
	Logger *zerolog.Logger
	// Tools overrides the probed executables. A non-nil empty slice disables probing.
	Tools        []Tool
	ProbeTimeout time.Duration
	// Commands overrides the command descriptor catalog.
	Commands     []CommandDescriptor
	DiffMaxLines int
}

type lifecycle struct {
	cfg          config.InstallConfig
	paths        config.Paths
	sys          System
	runner       Runner
	log          zerolog.Logger
	tools        []Tool
	probeTimeout time.Duration
	commands     []CommandDescriptor
	diffMaxLines int
	result       outcome.Result
}

type step struct {
	name string
	run  func(ctx context.Context) []outcome.Outcome
}

// Install provisions the module into cfg.ProjectRoot.
// Warnings never halt the phase; the first fatal outcome does.
func Install(ctx context.Context, cfg config.InstallConfig, opts Options) outcome.Result {
	lc := newLifecycle(outcome.PhaseInstall, cfg, opts)
	lc.run(ctx, []step{
		{name: StepValidateEnvironment, run: lc.validateEnvironment},
		{name: StepReconcileDirectories, run: lc.reconcileDirectories},
		{name: StepValidateStructure, run: lc.validateStructure},
		{name: StepInspectCredentials, run: lc.inspectCredentials},
		{name: StepSetupSidecars, run: lc.setupSidecars},
		{name: StepGenerateArtifacts, run: lc.generateArtifacts},
	})
	lc.result.Finish(messages.InstallSucceeded)
	return lc.result
}

// Uninstall removes the generated artifacts and never touches document directories.
func Uninstall(ctx context.Context, cfg config.InstallConfig, opts Options) outcome.Result {
	lc := newLifecycle(outcome.PhaseUninstall, cfg, opts)
	lc.run(ctx, []step{
		{name: StepValidateEnvironment, run: lc.precondition},
		{name: StepRemoveArtifacts, run: lc.removeArtifacts},
		{name: StepPreserveDocuments, run: lc.preserveDocuments},
	})
	lc.result.Finish(messages.UninstallSucceeded)
	return lc.result
}

// Check reports what Install would change without writing anything.
func Check(ctx context.Context, cfg config.InstallConfig, opts Options) outcome.Result {
	lc := newLifecycle(outcome.PhaseCheck, cfg, opts)
	lc.run(ctx, []step{
		{name: StepValidateEnvironment, run: lc.validateEnvironment},
		{name: StepCheckDirectories, run: lc.checkDirectories},
		{name: StepValidateStructure, run: lc.validateStructure},
		{name: StepInspectCredentials, run: lc.inspectCredentials},
		{name: StepCheckSidecars, run: lc.checkSidecars},
		{name: StepCheckArtifacts, run: lc.checkArtifacts},
	})
	lc.result.Finish(fmt.Sprintf(messages.CheckSucceededFmt, len(lc.result.Warnings())))
	return lc.result
}

func newLifecycle(phase outcome.Phase, cfg config.InstallConfig, opts Options) *lifecycle {
	runID := uuid.NewString()
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	tools := opts.Tools
	if tools == nil {
		tools = DefaultTools()
	}
	return &lifecycle{
		cfg:          cfg,
		sys:          sys,
		runner:       runner,
		log:          logger.With().Str("run_id", runID).Str("phase", string(phase)).Logger(),
		tools:        tools,
		probeTimeout: opts.ProbeTimeout,
		commands:     opts.Commands,
		diffMaxLines: normalizeDiffMaxLines(opts.DiffMaxLines),
		result:       outcome.Result{RunID: runID, Phase: phase},
	}
}

// run executes steps in order, halting on the first fatal outcome or on cancellation.
func (lc *lifecycle) run(ctx context.Context, steps []step) {
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			lc.result.Record(outcome.Fail(s.name, outcome.CodeCanceled, fmt.Sprintf(messages.LifecycleCanceledFmt, s.name, err)))
			lc.result.Skip(stepNames(steps[i+1:])...)
			lc.log.Debug().Str("step", s.name).Err(err).Msg(messages.LogStepCanceled)
			return
		}

		lc.log.Debug().Str("step", s.name).Msg(messages.LogStepStarted)
		items := s.run(ctx)
		lc.result.Record(items...)
		fatal := outcome.HasFatal(items)
		lc.log.Debug().
			Str("step", s.name).
			Int("outcomes", len(items)).
			Int("warnings", countWarnings(items)).
			Bool("fatal", fatal).
			Msg(messages.LogStepFinished)
		if fatal {
			lc.result.Skip(stepNames(steps[i+1:])...)
			return
		}
	}
}

// precondition validates the host input and derives every path from it.
// Nothing touches the filesystem before it passes.
func (lc *lifecycle) precondition(context.Context) []outcome.Outcome {
	if !lc.cfg.HasProjectRoot() {
		return []outcome.Outcome{
			outcome.Fail(StepValidateEnvironment, outcome.CodePreconditionFailed, messages.LifecycleRootRequired).
				WithFix(messages.LifecycleRootRequiredFix),
		}
	}
	normalized, err := lc.cfg.Normalized()
	if err != nil {
		return []outcome.Outcome{
			outcome.Fail(StepValidateEnvironment, outcome.CodePreconditionFailed, fmt.Sprintf(messages.LifecycleConfigInvalidFmt, err)),
		}
	}
	if err := normalized.Validate(); err != nil {
		return []outcome.Outcome{
			outcome.Fail(StepValidateEnvironment, outcome.CodePreconditionFailed, fmt.Sprintf(messages.LifecycleConfigInvalidFmt, err)),
		}
	}
	lc.cfg = normalized
	lc.paths = config.DefaultPaths(normalized)
	if lc.commands == nil {
		lc.commands = DefaultCommands(normalized)
	}
	lc.log.Debug().
		Str("root", lc.paths.Root).
		Str("code", normalized.CodeOrDefault()).
		Str("version", normalized.ModuleVersionOrDefault()).
		Msg(messages.LogPreconditionPassed)
	return []outcome.Outcome{
		outcome.OK(StepValidateEnvironment, fmt.Sprintf(messages.LifecyclePreconditionOKFmt,
			normalized.CodeOrDefault(), normalized.ModuleVersionOrDefault(), lc.paths.Root)).
			WithSubject(lc.paths.Root),
	}
}

// validateEnvironment checks the precondition, then probes every optional tool.
func (lc *lifecycle) validateEnvironment(ctx context.Context) []outcome.Outcome {
	items := lc.precondition(ctx)
	if outcome.HasFatal(items) {
		return items
	}
	for _, tool := range lc.tools {
		items = append(items, ProbeTool(ctx, lc.runner, tool, lc.probeTimeout))
	}
	return items
}

func stepNames(steps []step) []string {
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.name)
	}
	return names
}

func countWarnings(items []outcome.Outcome) int {
	count := 0
	for _, item := range items {
		if item.IsWarning() {
			count++
		}
	}
	return count
}
