package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mblarsen/balloon/internal/xdgpath"
)

// Backends a config can select.
const (
	BackendAuto    = "auto"
	BackendNotifu  = "notifu"
	BackendDesktop = "desktop"
)

// Config represents the structure of the config.toml file.
type Config struct {
	// Backend is one of auto, notifu or desktop.
	Backend string `toml:"backend"`
	// VendorDir holds the notifu executables. Defaults to vendor/notifu next
	// to the balloon binary.
	VendorDir    string `toml:"vendor_dir,omitempty"`
	Executable32 string `toml:"executable_32,omitempty"`
	Executable64 string `toml:"executable_64,omitempty"`
	// AppIcon is shown by the desktop backend when a request has no icon.
	AppIcon  string `toml:"app_icon,omitempty"`
	LogLevel string `toml:"log_level,omitempty"`
	// Defaults are request fields applied to every notification that does
	// not set them.
	Defaults map[string]any `toml:"defaults,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Backend:  BackendAuto,
		Defaults: map[string]any{},
	}
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() (string, error) {
	return xdgpath.ConfigPath("config.toml")
}

// Load reads a TOML file from the given path, validates it, and returns a
// Config struct. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if cfg.Backend == "" {
		cfg.Backend = BackendAuto
	}
	if cfg.Defaults == nil {
		cfg.Defaults = map[string]any{}
	}

	switch cfg.Backend {
	case BackendAuto, BackendNotifu, BackendDesktop:
	default:
		return nil, fmt.Errorf("config %s: unknown backend '%s'", path, cfg.Backend)
	}

	if _, ok := cfg.Defaults["message"]; ok {
		return nil, fmt.Errorf("config %s: defaults cannot set a message", path)
	}

	return cfg, nil
}

// ResolveVendorDir returns the configured vendor directory or the default
// one next to the running binary.
func (c *Config) ResolveVendorDir() (string, error) {
	if c.VendorDir != "" {
		return c.VendorDir, nil
	}
	dir, err := xdgpath.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vendor", "notifu"), nil
}

// Encode writes the config as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
