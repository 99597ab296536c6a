// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output resolves destination paths for operation output files
// according to the user's placement policy.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

// defaultSubfolderSuffix names the subfolder created beside the source file
// when the user asked for a subfolder but left the name blank.
const defaultSubfolderSuffix = "_images"

// Resolve computes the absolute destination path for filename given the
// source file and the placement policy.
//
// Only the PlaceSubfolder variant has a side effect: the subfolder is
// created beside the source file if it does not already exist. The target
// file itself is never created or touched. PlaceCustomDir requires an
// existing directory and fails otherwise.
func Resolve(sourcePath string, p types.Placement, filename string) (string, error) {
	sourceDir := filepath.Dir(sourcePath)

	var dir string
	switch p.Kind {
	case types.PlaceSourceDir:
		dir = sourceDir

	case types.PlaceSubfolder:
		name := strings.TrimSpace(p.Subfolder)
		if name == "" {
			base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
			name = base + defaultSubfolderSuffix
		}
		dir = filepath.Join(sourceDir, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output subfolder %s: %w", dir, err)
		}

	case types.PlaceCustomDir:
		info, err := os.Stat(p.Dir)
		if err != nil {
			return "", fmt.Errorf("output directory %s: %w", p.Dir, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("output directory %s: not a directory", p.Dir)
		}
		dir = p.Dir

	default:
		return "", fmt.Errorf("unknown placement kind %q", p.Kind)
	}

	abs, err := filepath.Abs(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	return abs, nil
}
