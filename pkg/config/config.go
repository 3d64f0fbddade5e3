// Package config loads dotlink's configuration: built-in defaults, then an
// optional TOML file, then DOTLINK_* environment variables, each layer
// overriding the previous one.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Configuration keys contain literal dots (externals map from ".bashrc" to a
// path), so the koanf delimiter must be something that cannot appear in them.
const delim = "::"

// Config holds the fully resolved configuration consumed by the repository.
type Config struct {
	// HomeDir is the directory where links live.
	HomeDir string `koanf:"homedir"`

	// Repository is the directory holding the canonical file contents.
	Repository string `koanf:"repository"`

	// Prefix is prepended to filenames inside the repository in place of
	// the leading dot, so files are not hidden in listings.
	Prefix string `koanf:"prefix"`

	// Ignore lists glob patterns for repository entries to leave unmanaged.
	Ignore []string `koanf:"ignore"`

	// Externals maps a dotfile name to an arbitrary path outside the
	// repository that the link should point at instead.
	Externals map[string]string `koanf:"externals"`
}

var knownKeys = map[string]bool{
	"homedir":    true,
	"repository": true,
	"prefix":     true,
	"ignore":     true,
	"externals":  true,
}

// DefaultPath returns the conventional config file location under the XDG
// config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "dotlink", "config.toml")
}

// Load resolves the configuration. An empty path means the default location,
// where a missing file is fine; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot determine home directory")
	}

	k := koanf.New(delim)

	defaults := map[string]interface{}{
		"homedir":    home,
		"repository": filepath.Join(home, "Dotfiles"),
		"prefix":     "",
		"ignore":     []string{},
		"externals":  map[string]string{},
	}
	if err := k.Load(confmap.Provider(defaults, delim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
		}
	} else {
		fileK := koanf.New(delim)
		if err := fileK.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse config file %s", path)
		}
		if err := rejectUnknownKeys(fileK.Raw()); err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(fileK.Raw(), delim), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge config file %s", path)
		}
	}

	err = k.Load(env.Provider("DOTLINK_", delim, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOTLINK_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	cfg.expandPaths(home)
	return &cfg, nil
}

// rejectUnknownKeys treats a typo'd configuration key as a hard error. A
// warn-and-ignore fallback would silently drop the user's intent.
func rejectUnknownKeys(raw map[string]interface{}) error {
	for key := range raw {
		if !knownKeys[key] {
			return errors.Newf(errors.ErrConfigInvalid, "unknown configuration key: %q", key)
		}
	}
	return nil
}

func (c *Config) expandPaths(home string) {
	c.HomeDir = paths.TrimTrailingSeparators(paths.ExpandUser(c.HomeDir, home))
	c.Repository = paths.TrimTrailingSeparators(paths.ExpandUser(c.Repository, home))
	for name, target := range c.Externals {
		c.Externals[name] = paths.ExpandUser(target, c.HomeDir)
	}
}
