// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ImageFormat identifies the rasterize output encoding.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatJPG ImageFormat = "jpg"
)

// Ext returns the filename extension for the format, without the dot.
func (f ImageFormat) Ext() string {
	return string(f)
}

// ParseImageFormat normalizes a user-supplied format token. Matching is
// case-insensitive; "jpeg" is accepted as an alias for "jpg".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (want png or jpg)", s)
	}
}

// SplitKind selects how a document is split.
type SplitKind string

const (
	// SplitAllPages produces one output file per page.
	SplitAllPages SplitKind = "pages"

	// SplitByRanges produces one output file per page-range group.
	SplitByRanges SplitKind = "ranges"
)

// SplitMode carries the split variant and, for SplitByRanges, the textual
// page-range expression (e.g. "1-3,5;7-end").
type SplitMode struct {
	Kind   SplitKind `json:"kind" yaml:"kind"`
	Ranges string    `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// RasterizeOptions holds the parameters of one rasterize invocation.
type RasterizeOptions struct {
	// DPI is the target resolution. Rendering scale is DPI/72 relative to
	// the PDF reference resolution. Must be positive.
	DPI int `json:"dpi" yaml:"dpi"`

	// Format selects png (keeps transparency) or jpg (flattened, quality 95).
	Format ImageFormat `json:"format" yaml:"format"`

	// Ranges optionally restricts pages to the union of the parsed
	// page-range groups. Blank means all pages.
	Ranges string `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// Validate checks the option invariants before an operation starts.
func (o RasterizeOptions) Validate() error {
	if o.DPI <= 0 {
		return fmt.Errorf("resolution must be a positive DPI value, got %d", o.DPI)
	}
	if o.Format != FormatPNG && o.Format != FormatJPG {
		return fmt.Errorf("unsupported image format %q", o.Format)
	}
	return nil
}
