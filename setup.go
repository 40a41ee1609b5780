// Package vitosetup exposes the installer's orchestrator from the module
// root, mirroring the layered packages under pkg/ for callers that want a
// single import.
package vitosetup

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yoruboku/vito-setup/pkg/command"
	"github.com/yoruboku/vito-setup/pkg/prompt"
	"github.com/yoruboku/vito-setup/pkg/setup"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

// Orchestrator drives the install/update flow.
type Orchestrator = setup.Orchestrator

// Option customises the orchestrator configuration.
type Option = setup.Option

// New constructs an orchestrator; see pkg/setup for the available options.
func New(options ...Option) *Orchestrator {
	return setup.New(options...)
}

// Run is the simplest entry point: build an orchestrator with the given
// options and execute the full flow.
func Run(ctx context.Context, options ...Option) error {
	return setup.New(options...).Run(ctx)
}

// WithPaths injects a resolved workspace layout.
func WithPaths(paths workspace.Paths) Option {
	return setup.WithPaths(paths)
}

// WithDriver injects a prompt driver.
func WithDriver(driver prompt.Driver) Option {
	return setup.WithDriver(driver)
}

// WithRunner injects a command runner.
func WithRunner(runner command.Runner) Option {
	return setup.WithRunner(runner)
}

// WithLogger attaches a logger to the flow.
func WithLogger(log zerolog.Logger) Option {
	return setup.WithLogger(log)
}
