// Package setup coordinates the full installer flow: detect prior
// installation state, drive the fresh-install or repeat-setup path, and
// hand off to the bot. Steps always run in the same order — environment,
// dependencies, credentials, owner preference, persistence, interactive
// authorization, launch — and any fatal step aborts the whole run.
package setup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yoruboku/vito-setup/internal/manifest"
	"github.com/yoruboku/vito-setup/pkg/authorize"
	"github.com/yoruboku/vito-setup/pkg/command"
	"github.com/yoruboku/vito-setup/pkg/credentials"
	"github.com/yoruboku/vito-setup/pkg/envfile"
	"github.com/yoruboku/vito-setup/pkg/prompt"
	"github.com/yoruboku/vito-setup/pkg/provision"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

// Menu entries shown when an installation already exists, in display order.
const (
	menuRun = iota
	menuReinstall
	menuExit
)

// DependencyInstaller provisions the environment from scratch or
// refreshes the installed packages for the repeat-setup path.
type DependencyInstaller interface {
	Run(ctx context.Context) error
	InstallPackages(ctx context.Context) error
}

// LoginAuthorizer runs the interactive browser login step.
type LoginAuthorizer interface {
	Run(ctx context.Context) error
}

// CredentialSource collects the validated configuration record.
type CredentialSource interface {
	Collect(ctx context.Context) (credentials.Record, error)
	CollectOwners(ctx context.Context) ([]string, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithPaths injects a resolved workspace layout.
func WithPaths(paths workspace.Paths) Option {
	return func(o *Orchestrator) {
		o.paths = paths
		o.pathsSet = true
	}
}

// WithDriver injects a prompt driver.
func WithDriver(driver prompt.Driver) Option {
	return func(o *Orchestrator) {
		o.driver = driver
	}
}

// WithRunner injects a command runner.
func WithRunner(runner command.Runner) Option {
	return func(o *Orchestrator) {
		o.runner = runner
	}
}

// WithManifest overrides the embedded provisioning manifest.
func WithManifest(man manifest.Manifest) Option {
	return func(o *Orchestrator) {
		o.man = man
		o.manSet = true
	}
}

// WithLogger attaches a logger; defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// WithInstaller injects a custom dependency installer.
func WithInstaller(installer DependencyInstaller) Option {
	return func(o *Orchestrator) {
		o.installer = installer
	}
}

// WithAuthorizer injects a custom login authorizer.
func WithAuthorizer(authorizer LoginAuthorizer) Option {
	return func(o *Orchestrator) {
		o.authorizer = authorizer
	}
}

// WithCredentialSource injects a custom credential source.
func WithCredentialSource(source CredentialSource) Option {
	return func(o *Orchestrator) {
		o.source = source
	}
}

// Orchestrator wires the setup capabilities together. Missing dependencies
// are initialised with the real implementations so the binary needs a
// single constructor call, while tests inject fakes through options.
type Orchestrator struct {
	paths    workspace.Paths
	pathsSet bool
	man      manifest.Manifest
	manSet   bool

	driver     prompt.Driver
	runner     command.Runner
	installer  DependencyInstaller
	authorizer LoginAuthorizer
	source     CredentialSource
	log        zerolog.Logger

	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		log: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if !o.manSet {
		man, err := manifest.Load()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.man = man
	}
	if !o.pathsSet {
		paths, err := workspace.Resolve(".")
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.paths = paths
	}
	if o.driver == nil {
		o.driver = prompt.New()
	}
	if o.runner == nil {
		o.runner = command.New(command.WithDir(o.paths.Root))
	}
	if o.installer == nil {
		o.installer = provision.New(o.runner, o.paths, o.man, provision.WithLogger(o.log))
	}
	if o.authorizer == nil {
		o.authorizer = authorize.New(o.runner, o.paths, o.man, authorize.WithLogger(o.log))
	}
	if o.source == nil {
		o.source = credentials.NewCollector(o.driver)
	}
}

// Run executes the top-level decision: fresh directories take the full
// install path unconditionally; an existing installation gets the
// run/reinstall/exit menu, defaulting to run.
func (o *Orchestrator) Run(ctx context.Context) error {
	if o.initialiseErr != nil {
		return o.initialiseErr
	}

	if !o.paths.Detect() {
		o.log.Info().Str("root", o.paths.Root).Msg("no installation found, running full setup")
		return o.install(ctx)
	}

	choice, err := o.driver.Select(ctx, prompt.SelectConfig{
		Message: "Existing installation detected",
		Options: []string{
			"Run VITO",
			"Reinstall from scratch",
			"Exit",
		},
		DefaultIndex: menuRun,
	})
	if err != nil {
		return err
	}

	switch choice {
	case menuRun:
		return o.refreshAndLaunch(ctx)
	case menuReinstall:
		o.log.Info().Msg("reinstalling from scratch")
		return o.install(ctx)
	case menuExit:
		o.log.Info().Msg("exiting at user request")
		return nil
	default:
		return fmt.Errorf("setup: unknown menu choice %d", choice)
	}
}

// install runs every setup step in order. No step is skipped or
// reordered; persistence always precedes authorization so the config file
// exists before the interactive login.
func (o *Orchestrator) install(ctx context.Context) error {
	if err := o.installer.Run(ctx); err != nil {
		return err
	}

	rec, err := o.source.Collect(ctx)
	if err != nil {
		return err
	}
	owners, err := o.source.CollectOwners(ctx)
	if err != nil {
		return err
	}
	rec.Owners = owners

	if err := envfile.Write(o.paths.ConfigFile, rec); err != nil {
		return err
	}
	// Read-back sanity check while the user is still at the terminal.
	if _, err := envfile.Load(o.paths.ConfigFile); err != nil {
		return err
	}
	o.log.Info().Str("file", o.paths.ConfigFile).Msg("configuration saved")

	msg := fmt.Sprintf("A browser window will open at %s. Log in to your Google account, then close the window to continue.", o.man.LoginURL)
	if err := o.driver.Info(ctx, msg); err != nil {
		return err
	}
	if err := o.authorizer.Run(ctx); err != nil {
		return err
	}

	return o.launch(ctx)
}

// refreshAndLaunch is the repeat-setup path: refresh the installed
// packages against the manifest, then start the bot.
func (o *Orchestrator) refreshAndLaunch(ctx context.Context) error {
	if err := o.installer.InstallPackages(ctx); err != nil {
		return err
	}
	return o.launch(ctx)
}

// launch hands control to the bot. The orchestrator neither supervises
// nor restarts it; a non-zero bot exit is reported as-is.
func (o *Orchestrator) launch(ctx context.Context) error {
	o.log.Info().Str("entry", o.man.Entry).Msg("launching VITO")
	if err := o.runner.Run(ctx, o.paths.Python(), o.man.Entry); err != nil {
		return fmt.Errorf("setup: launch bot: %w", err)
	}
	return nil
}
