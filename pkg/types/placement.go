// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PlacementKind selects where an operation writes its output files.
type PlacementKind string

const (
	// PlaceSourceDir writes output alongside the input file.
	PlaceSourceDir PlacementKind = "source"

	// PlaceSubfolder creates (or reuses) a named subfolder beside the input
	// file and writes output into it.
	PlaceSubfolder PlacementKind = "subfolder"

	// PlaceCustomDir writes output into an existing, user-supplied directory.
	PlaceCustomDir PlacementKind = "custom"
)

// Placement is the output placement policy for one operation. It is built
// from user input immediately before the operation starts and is immutable
// for its duration.
type Placement struct {
	// Kind selects the placement variant.
	Kind PlacementKind `json:"kind" yaml:"kind"`

	// Subfolder is the subfolder name for PlaceSubfolder. A blank name is
	// substituted with a default derived from the source file.
	Subfolder string `json:"subfolder,omitempty" yaml:"subfolder,omitempty"`

	// Dir is the target directory for PlaceCustomDir. It must exist at
	// resolution time.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// SourceDir returns the alongside-the-input placement.
func SourceDir() Placement {
	return Placement{Kind: PlaceSourceDir}
}

// Subfolder returns a placement that creates name beside the input file.
func Subfolder(name string) Placement {
	return Placement{Kind: PlaceSubfolder, Subfolder: name}
}

// CustomDir returns a placement targeting an existing directory.
func CustomDir(dir string) Placement {
	return Placement{Kind: PlaceCustomDir, Dir: dir}
}
