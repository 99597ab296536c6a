// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chuzhi-keji/pdf/internal/output"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

// Merge appends every page of every input, in input order, into one new
// document at the resolved output path. The operation is all-or-nothing:
// any invalid input or write error yields a single Failure and no output
// file, enforced by the temp-file-then-move write.
func Merge(e Engine, inputs []string, placement types.Placement, outName string, w io.Writer) types.OperationResult {
	label := fmt.Sprintf("merge of %d files", len(inputs))

	if len(inputs) == 0 {
		return types.Failuref(label, "no input files")
	}

	// Validate every input before touching the destination.
	for _, in := range inputs {
		if err := e.Validate(in); err != nil {
			return types.Failuref(label, "invalid PDF %s: %v", filepath.Base(in), err)
		}
	}

	dest, err := output.Resolve(inputs[0], placement, ensurePDFExt(outName))
	if err != nil {
		return types.Failure(label, err)
	}

	if err := writeAtomic(dest, func(tmp string) error {
		return e.MergeTo(inputs, tmp)
	}); err != nil {
		fmt.Fprintf(w, "failed:  merge (%v)\n", err)
		return types.Failure(label, err)
	}

	pages := 0
	for _, in := range inputs {
		if n, err := e.PageCount(in); err == nil {
			pages += n
		}
	}

	fmt.Fprintf(w, "merged: %d files -> %s\n", len(inputs), dest)
	return types.Success(label, dest, pages)
}

// ensurePDFExt appends ".pdf" when name lacks the suffix, case-insensitively.
func ensurePDFExt(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return name
	}
	return name + ".pdf"
}
