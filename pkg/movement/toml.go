package movement

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/brianjo/watchdialtools/pkg/errors"
)

// presetFile is the on-disk shape of a movement preset file: a single
// [movement] table.
type presetFile struct {
	Movement Preset `toml:"movement"`
}

// LoadFile reads one movement preset from a TOML file and registers it.
func (r *Registry) LoadFile(path string) (Preset, error) {
	var f presetFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse movement preset %s", path)
	}
	if f.Movement.Name == "" {
		// Fall back to the file name so minimal preset files work.
		base := filepath.Base(path)
		f.Movement.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if err := r.Add(f.Movement); err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid movement preset %s", path)
	}
	return f.Movement, nil
}

// LoadDir registers every *.toml preset in a directory. Returns the number
// of presets loaded. A missing directory is not an error; a malformed file
// is.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read movements directory %s", dir)
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		if _, err := r.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
