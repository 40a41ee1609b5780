// Package workspace resolves the on-disk layout the installer works
// against. All paths are carried explicitly in a Paths value so nothing
// downstream depends on the ambient working directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Paths holds every location the setup flow touches: the isolated Python
// environment, the secrets file, and the persistent browser profile owned
// by the automation engine.
type Paths struct {
	// Root is the workspace directory the bot runs from.
	Root string

	// EnvDir is the isolated environment holding the interpreter and the
	// installed dependency set.
	EnvDir string `env:"VITO_ENV_DIR"`

	// ConfigFile is the KEY=VALUE secrets file read by the bot at startup.
	ConfigFile string `env:"VITO_CONFIG_FILE"`

	// ProfileDir is opaque storage for the browser session (cookies, local
	// storage) reused across runs so the user logs in once.
	ProfileDir string `env:"VITO_PROFILE_DIR"`
}

// Resolve builds a Paths for the given root directory. Defaults mirror the
// layout the bot expects; individual locations can be overridden through
// VITO_* environment variables.
func Resolve(root string) (Paths, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("workspace: resolve root: %w", err)
	}

	var paths Paths
	if err := env.Parse(&paths); err != nil {
		return Paths{}, fmt.Errorf("workspace: parse overrides: %w", err)
	}
	paths.Root = abs

	defaults := Paths{
		EnvDir:     filepath.Join(abs, "venv"),
		ConfigFile: filepath.Join(abs, ".env"),
		ProfileDir: filepath.Join(abs, "playwright_data"),
	}
	if err := mergo.Merge(&paths, defaults); err != nil {
		return Paths{}, fmt.Errorf("workspace: merge defaults: %w", err)
	}
	return paths, nil
}

// Detect reports whether a prior installation exists: both the environment
// directory and the configuration file must be present. This is the only
// state signal; no version stamp or integrity check is kept.
func (p Paths) Detect() bool {
	info, err := os.Stat(p.EnvDir)
	if err != nil || !info.IsDir() {
		return false
	}
	info, err = os.Stat(p.ConfigFile)
	if err != nil || info.IsDir() {
		return false
	}
	return true
}

// Python returns the interpreter inside the isolated environment.
func (p Paths) Python() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.EnvDir, "Scripts", "python.exe")
	}
	return filepath.Join(p.EnvDir, "bin", "python")
}
