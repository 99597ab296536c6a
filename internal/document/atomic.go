// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeAtomic produces dest without ever leaving it partially written: write
// receives a temporary path in the destination directory, and only a fully
// written temporary file is renamed into place. On any failure the temporary
// file is removed and dest is untouched.
//
// The temporary file lives in the destination directory so the final rename
// never crosses a filesystem boundary.
func writeAtomic(dest string, write func(tmpPath string) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".pdftool-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
