// Package manifest pins everything the installer provisions: the Python
// packages the bot imports, the browser engine Playwright should install,
// the login URL for the interactive authorization step, and the bot entry
// point. The manifest is embedded so a setup binary always installs the
// exact set it was built for.
package manifest

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var embedded []byte

// Manifest describes the fixed provisioning set for one release of the bot.
type Manifest struct {
	// Packages lists pip requirements installed into the isolated environment.
	Packages []string `yaml:"packages"`

	// Browser names the Playwright browser whose binary assets get installed.
	Browser string `yaml:"browser"`

	// LoginURL is the page opened during the interactive authorization step.
	LoginURL string `yaml:"login_url"`

	// Entry is the bot script handed to the environment interpreter at launch.
	Entry string `yaml:"entry"`
}

// Load returns the embedded manifest.
func Load() (Manifest, error) {
	return Parse(embedded)
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m Manifest) validate() error {
	if len(m.Packages) == 0 {
		return fmt.Errorf("manifest: no packages listed")
	}
	for _, pkg := range m.Packages {
		if pkg == "" {
			return fmt.Errorf("manifest: empty package name")
		}
	}
	if m.Browser == "" {
		return fmt.Errorf("manifest: browser is required")
	}
	if m.LoginURL == "" {
		return fmt.Errorf("manifest: login_url is required")
	}
	if m.Entry == "" {
		return fmt.Errorf("manifest: entry is required")
	}
	return nil
}
