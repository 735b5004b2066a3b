package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/brianjo/watchdialtools/pkg/dial"
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pattern"
)

// fileConfig is the on-disk shape of a --config file: one optional table per
// generation kind.
type fileConfig struct {
	Dial     dial.Options     `toml:"dial"`
	Pattern  pattern.Options  `toml:"pattern"`
	Template movement.Options `toml:"template"`
}

// loadConfig decodes a TOML config file over the built-in defaults, so a
// config only needs the keys it changes. An empty path returns defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{
		Dial:     dial.DefaultOptions(),
		Pattern:  pattern.DefaultOptions(),
		Template: movement.DefaultOptions(),
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}
