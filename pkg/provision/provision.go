// Package provision creates the isolated Python environment, installs the
// pinned dependency manifest into it, and pulls down the Playwright
// browser assets. Every step is fatal on failure; there is no partial
// continuation and nothing is retried.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yoruboku/vito-setup/internal/manifest"
	"github.com/yoruboku/vito-setup/pkg/command"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

// ErrNoInterpreter reports that no compatible Python interpreter is on
// PATH. The caller must treat this as fatal.
var ErrNoInterpreter = errors.New("provision: no python interpreter found (need python3 or python)")

// interpreterNames are tried in order when locating the system interpreter.
var interpreterNames = []string{"python3", "python"}

// Option customises a Provisioner.
type Option func(*Provisioner)

// WithLogger attaches a logger for step-level progress events.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provisioner) {
		p.log = log
	}
}

// Provisioner runs the environment and dependency installation steps
// through an injected command runner.
type Provisioner struct {
	runner command.Runner
	paths  workspace.Paths
	man    manifest.Manifest
	log    zerolog.Logger
}

// New builds a Provisioner.
func New(runner command.Runner, paths workspace.Paths, man manifest.Manifest, options ...Option) *Provisioner {
	p := &Provisioner{
		runner: runner,
		paths:  paths,
		man:    man,
		log:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Interpreter locates the system Python used to create the environment.
func (p *Provisioner) Interpreter() (string, error) {
	for _, name := range interpreterNames {
		if path, err := p.runner.Look(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoInterpreter
}

// Run executes the full provisioning sequence: create the environment,
// upgrade pip, install the manifest, install the browser assets.
func (p *Provisioner) Run(ctx context.Context) error {
	python, err := p.Interpreter()
	if err != nil {
		return err
	}

	p.log.Info().Str("interpreter", python).Str("dir", p.paths.EnvDir).
		Msg("creating isolated environment")
	if err := p.runner.Run(ctx, python, "-m", "venv", p.paths.EnvDir); err != nil {
		return fmt.Errorf("provision: create environment: %w", err)
	}

	venvPython := p.paths.Python()

	p.log.Info().Msg("upgrading pip")
	if err := p.runner.Run(ctx, venvPython, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("provision: upgrade pip: %w", err)
	}

	if err := p.InstallPackages(ctx); err != nil {
		return err
	}

	p.log.Info().Str("browser", p.man.Browser).Msg("installing browser assets")
	if err := p.runner.Run(ctx, venvPython, "-m", "playwright", "install", p.man.Browser); err != nil {
		return fmt.Errorf("provision: install browser assets: %w", err)
	}
	return nil
}

// InstallPackages installs the manifest into an existing environment. The
// repeat-setup path uses it alone to refresh dependencies before launch.
func (p *Provisioner) InstallPackages(ctx context.Context) error {
	p.log.Info().Strs("packages", p.man.Packages).Msg("installing dependencies")
	args := append([]string{"-m", "pip", "install"}, p.man.Packages...)
	if err := p.runner.Run(ctx, p.paths.Python(), args...); err != nil {
		return fmt.Errorf("provision: install dependencies: %w", err)
	}
	return nil
}
