// Package command models "spawn an external tool and check its exit
// status" as an injectable Runner capability, keeping orchestration logic
// testable without real processes.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. Run blocks until the process exits
// and returns a non-nil error for any non-zero exit status. Look resolves
// a command name to an executable path, mirroring exec.LookPath.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Look(name string) (string, error)
}

// Option customises the exec-backed runner.
type Option func(*execRunner)

// WithDir sets the working directory spawned commands run in.
func WithDir(dir string) Option {
	return func(r *execRunner) {
		r.dir = dir
	}
}

// WithOutput redirects the spawned command's stdout and stderr. Defaults
// to the installer's own streams so tool output stays visible to the user.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *execRunner) {
		if stdout != nil {
			r.stdout = stdout
		}
		if stderr != nil {
			r.stderr = stderr
		}
	}
}

type execRunner struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
}

// New constructs the exec-backed Runner used by the real binary.
func New(options ...Option) Runner {
	r := &execRunner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command: %s: %w", displayName(name, args), err)
	}
	return nil
}

func (r *execRunner) Look(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("command: look up %s: %w", name, err)
	}
	return path, nil
}

func displayName(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
