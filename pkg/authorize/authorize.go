// Package authorize runs the interactive Gemini login step: a visible
// browser window bound to the persistent profile directory, opened at the
// fixed login URL. The user logs in manually and closes the window; the
// window close is the only completion signal, so the step proceeds
// optimistically with no verification and no timeout.
package authorize

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yoruboku/vito-setup/internal/manifest"
	"github.com/yoruboku/vito-setup/pkg/command"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

// Option customises an Authorizer.
type Option func(*Authorizer)

// WithLogger attaches a logger for progress events.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Authorizer) {
		a.log = log
	}
}

// Authorizer opens the login window through the environment's Playwright
// installation and blocks until the user closes it.
type Authorizer struct {
	runner command.Runner
	paths  workspace.Paths
	man    manifest.Manifest
	log    zerolog.Logger
}

// New builds an Authorizer.
func New(runner command.Runner, paths workspace.Paths, man manifest.Manifest, options ...Option) *Authorizer {
	a := &Authorizer{
		runner: runner,
		paths:  paths,
		man:    man,
		log:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Run blocks until the login window is closed. The browser process exit
// is the close signal; success of the login itself is not observable here.
func (a *Authorizer) Run(ctx context.Context) error {
	a.log.Info().Str("url", a.man.LoginURL).Str("profile", a.paths.ProfileDir).
		Msg("opening browser for interactive login")

	err := a.runner.Run(ctx, a.paths.Python(),
		"-m", "playwright", "open",
		"--browser", a.man.Browser,
		"--user-data-dir", a.paths.ProfileDir,
		a.man.LoginURL,
	)
	if err != nil {
		return fmt.Errorf("authorize: login window: %w", err)
	}

	a.log.Info().Msg("login window closed, continuing")
	return nil
}
