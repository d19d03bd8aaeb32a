package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

//go:embed sample_config.csv
var sampleConfig string

// CreateSample writes a sample job configuration to the specified location.
// An advisory lock beside the target keeps concurrent init runs from
// interleaving writes.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock sample config: %w", err)
	}
	if !locked {
		return fmt.Errorf("config %s is being written by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
