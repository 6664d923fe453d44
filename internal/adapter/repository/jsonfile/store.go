// Package jsonfile persists the ledger as flat JSON files, the format
// the tool has always used. Every save rewrites the whole file; loads
// treat missing or unparsable files as absent state rather than errors.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// readFile returns the file contents. found is false when the file does
// not exist or is empty; any other read failure is a storage error.
func readFile(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, false, nil
	}

	return data, true, nil
}

// writeFile replaces the file contents atomically: the data goes to a
// temp file in the same directory which is then renamed over the
// target, so a crash mid-write cannot leave a truncated file behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// truncateFile empties the file, leaving it behind so the next load
// reports the state absent. A file that never existed stays absent.
func truncateFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return writeFile(path, nil)
}
