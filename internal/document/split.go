// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chuzhi-keji/pdf/internal/output"
	"github.com/chuzhi-keji/pdf/internal/pagerange"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

// Split divides one PDF into multiple documents, either one file per page
// or one file per page-range group, and returns one result per produced
// file. A failure writing one group does not abort the others.
//
// Per-page output names are deliberately unpadded ("_page_2", not
// "_page_02"); rasterize output pads. Both spellings are load-bearing for
// callers that glob existing output.
func Split(e Engine, input string, placement types.Placement, mode types.SplitMode, w io.Writer) []types.OperationResult {
	if err := e.Validate(input); err != nil {
		return []types.OperationResult{types.Failuref(input, "invalid PDF: %v", err)}
	}

	doc, err := e.Open(input)
	if err != nil {
		return []types.OperationResult{types.Failure(input, err)}
	}
	defer doc.Close()

	// Placement problems are an operation-level precondition, checked once
	// before any page work.
	if _, err := output.Resolve(input, placement, ""); err != nil {
		return []types.OperationResult{types.Failure(input, err)}
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	total := doc.PageCount()

	switch mode.Kind {
	case types.SplitAllPages:
		results := make([]types.OperationResult, 0, total)
		for n := 1; n <= total; n++ {
			name := fmt.Sprintf("%s_page_%d.pdf", base, n)
			results = append(results, writeGroup(doc, input, placement, name, []int{n}, w))
		}
		return results

	case types.SplitByRanges:
		if strings.TrimSpace(mode.Ranges) == "" {
			return []types.OperationResult{types.Failuref(input, "no ranges provided")}
		}
		groups, skipped := pagerange.Parse(mode.Ranges, total)
		for _, note := range skipped {
			fmt.Fprintf(w, "warning: %s\n", note)
		}
		if len(groups) == 0 {
			return []types.OperationResult{types.Failuref(input, "cannot parse ranges %q", mode.Ranges)}
		}

		results := make([]types.OperationResult, 0, len(groups))
		for i, g := range groups {
			name := groupFilename(base, i+1, len(groups), g)
			results = append(results, writeGroup(doc, input, placement, name, g, w))
		}
		return results

	default:
		return []types.OperationResult{types.Failuref(input, "unknown split mode %q", mode.Kind)}
	}
}

// groupFilename names one range-split output. Multiple groups carry the
// group index; a single group does not. A single-page group names the page
// instead of a degenerate "n-n" span.
func groupFilename(base string, index, groupCount int, g pagerange.Group) string {
	span := fmt.Sprintf("%d-%d", g.First(), g.Last())
	if g.First() == g.Last() {
		span = strconv.Itoa(g.First())
	}
	if groupCount > 1 {
		return fmt.Sprintf("%s_split_%d_pages_%s.pdf", base, index, span)
	}
	return fmt.Sprintf("%s_pages_%s.pdf", base, span)
}

// writeGroup extracts pages into one output document via the
// temp-file-then-move write. The extraction context is per-group and
// released as soon as the output is written, bounding peak memory on large
// documents.
func writeGroup(doc Document, input string, placement types.Placement, name string, pages []int, w io.Writer) types.OperationResult {
	dest, err := output.Resolve(input, placement, name)
	if err != nil {
		return types.Failure(input, err)
	}

	if err := writeAtomic(dest, func(tmp string) error {
		return doc.ExtractTo(pages, tmp)
	}); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.Failure(input, err)
	}

	fmt.Fprintf(w, "wrote: %s\n", dest)
	return types.Success(input, dest, len(pages))
}
