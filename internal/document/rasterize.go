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
	"github.com/chuzhi-keji/pdf/internal/task"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

// ProgressFunc receives incremental progress as a percentage of the whole
// batch. Values are monotonically non-decreasing within one invocation.
type ProgressFunc func(percent float64)

// Rasterize renders each input PDF to image files, one result per input
// processed, in input order. Per-file errors are recorded and processing
// continues with the next input. A stop observed mid-file records that file
// as Cancelled and returns the results accumulated so far; later files are
// not processed.
//
// ctl may be nil, in which case the operation is not pausable or stoppable.
func Rasterize(open RenderOpener, inputs []string, opts types.RasterizeOptions, placement types.Placement, ctl *task.Control, progress ProgressFunc, w io.Writer) []types.OperationResult {
	if err := opts.Validate(); err != nil {
		return []types.OperationResult{types.Failure("rasterize", err)}
	}

	results := make([]types.OperationResult, 0, len(inputs))
	for i, input := range inputs {
		res, stopped := rasterizeFile(open, input, i, len(inputs), opts, placement, ctl, progress, w)
		results = append(results, res)
		if stopped {
			return results
		}
		if progress != nil {
			progress(float64(i+1) / float64(len(inputs)) * 100)
		}
	}
	return results
}

// rasterizeFile renders one input. The stopped return is true when a stop
// request was observed, telling the caller to abandon the remaining inputs.
func rasterizeFile(open RenderOpener, input string, fileIdx, fileCount int, opts types.RasterizeOptions, placement types.Placement, ctl *task.Control, progress ProgressFunc, w io.Writer) (res types.OperationResult, stopped bool) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	// Library-level panics (corrupt input, renderer faults) are contained to
	// this file's result; the batch continues.
	defer func() {
		if p := recover(); p != nil {
			res = types.Failuref(input, "unexpected error: %v", p)
			stopped = false
		}
	}()

	r, err := open(input)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Failure(input, err), false
	}
	defer r.Close()

	totalPages := r.NumPages()
	pages, err := selectPages(opts.Ranges, totalPages, w)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Failure(input, err), false
	}

	// The output directory is resolved once per file and reused for every
	// page.
	outDir, err := output.Resolve(input, placement, "")
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Failure(input, err), false
	}

	// Page numbers are padded to the width of the total page count so
	// directory listings sort correctly at any document size.
	width := len(strconv.Itoa(totalPages))

	for k, page := range pages {
		if ctl != nil && !ctl.Checkpoint() {
			fmt.Fprintf(w, "cancelled: %s before page %d\n", base, page)
			return types.Cancelled(input, fmt.Sprintf("stopped before page %d", page)), true
		}

		img, err := r.Render(page, float64(opts.DPI))
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (rendering page %d: %v)\n", base, page, err)
			return types.Failuref(input, "rendering page %d: %v", page, err), false
		}

		name := fmt.Sprintf("%s_page_%0*d.%s", base, width, page, opts.Format.Ext())
		if err := writeImage(filepath.Join(outDir, name), img, opts.Format); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			return types.Failure(input, err), false
		}

		if progress != nil {
			frac := float64(k+1) / float64(len(pages))
			progress((float64(fileIdx) + frac) / float64(fileCount) * 100)
		}
	}

	fmt.Fprintf(w, "converted: %s (%d pages) -> %s\n", base, len(pages), outDir)
	return types.Success(input, outDir, len(pages)), false
}

// selectPages resolves the optional range spec into the ascending page
// selection for one file: every page when the spec is blank, otherwise the
// union of the parsed groups.
func selectPages(spec string, totalPages int, w io.Writer) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	groups, skipped := pagerange.Parse(spec, totalPages)
	for _, note := range skipped {
		fmt.Fprintf(w, "warning: %s\n", note)
	}
	pages := pagerange.Union(groups)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no valid pages in range %q", spec)
	}
	return pages, nil
}
