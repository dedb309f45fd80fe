// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sigkit/extbuild/pkg/extension"
)

// Config holds extbuild configuration.
type Config struct {
	// Toolbox is the package identity of the toolbox itself; its version
	// and base directories are discovered through the provider.
	Toolbox string `yaml:"toolbox"`

	// PkgConfig is the package-description provider binary.
	PkgConfig string `yaml:"pkg_config"`

	// CagingRoot is the staged install root for caged builds. Empty means
	// "install normally".
	CagingRoot string `yaml:"caging_root"`

	// RuntimeVersion pins the compatible-ABI version used to derive package
	// identities. Empty means "derive from the toolbox version".
	RuntimeVersion string `yaml:"runtime_version"`

	// PlaceholderSource overrides the platform default for shipping a
	// placeholder source file with every descriptor.
	PlaceholderSource *bool `yaml:"placeholder_source"`

	// Linker is the base linker invocation probed and used for linking.
	Linker []string `yaml:"linker"`

	// Extensions are the logical extensions built when none are named on
	// the command line.
	Extensions []extension.Spec `yaml:"extensions"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration. The caging root and
// provider binary honor the DESTDIR and PKG_CONFIG environment variables.
func DefaultConfig() *Config {
	return &Config{
		Toolbox:    "sigkit",
		PkgConfig:  os.Getenv("PKG_CONFIG"),
		CagingRoot: os.Getenv("DESTDIR"),
		Linker:     []string{"cc", "-shared"},
	}
}

// LoadConfig loads configuration from file, falling back to defaults when
// no file exists.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "extbuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "extbuild", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
