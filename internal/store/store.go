// Package store provides atomic flat-JSON persistence for small application registries.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/swatch-cli/swatch/filesystem"
)

// Load reads the JSON document at path into target.
// A missing file is not an error; target is left untouched and ok is false.
func Load(path string, target any) (ok bool, err error) {
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(contents, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// Save serializes value as indented JSON and atomically swaps it into place.
// The temporary file lives next to the target so the rename never crosses devices.
func Save(path string, value any) error {
	contents, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := filesystem.API().WriteFile(tmp, contents, 0644); err != nil {
		return err
	}

	if err := filesystem.API().Rename(tmp, path); err != nil {
		_ = filesystem.API().Remove(tmp)
		return err
	}
	return nil
}
