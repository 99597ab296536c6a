// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"
)

// fakeEngine implements Engine without a PDF library. Page counts are
// configured per path; paths listed in invalid fail validation.
type fakeEngine struct {
	pageCounts map[string]int
	invalid    map[string]bool
	mergeErr   error
	mergeCalls int

	// failExtractPage makes ExtractTo fail for any group starting at this
	// page. Zero disables.
	failExtractPage int
}

func (e *fakeEngine) Validate(path string) error {
	if e.invalid[path] {
		return fmt.Errorf("not a PDF")
	}
	return nil
}

func (e *fakeEngine) PageCount(path string) (int, error) {
	n, ok := e.pageCounts[path]
	if !ok {
		return 0, fmt.Errorf("unknown file %s", path)
	}
	return n, nil
}

func (e *fakeEngine) MergeTo(inputs []string, outPath string) error {
	e.mergeCalls++
	if e.mergeErr != nil {
		return e.mergeErr
	}
	content := "%PDF-fake merged:" + strconv.Itoa(len(inputs))
	return os.WriteFile(outPath, []byte(content), 0o644)
}

func (e *fakeEngine) Open(path string) (Document, error) {
	n, ok := e.pageCounts[path]
	if !ok {
		return nil, fmt.Errorf("unknown file %s", path)
	}
	return &fakeDocument{pages: n, failExtractPage: e.failExtractPage}, nil
}

type fakeDocument struct {
	pages           int
	failExtractPage int
	closed          bool
}

func (d *fakeDocument) PageCount() int {
	return d.pages
}

func (d *fakeDocument) ExtractTo(pages []int, outPath string) error {
	if d.failExtractPage != 0 && pages[0] == d.failExtractPage {
		return fmt.Errorf("extraction failed at page %d", pages[0])
	}
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return os.WriteFile(outPath, []byte("%PDF-fake pages:"+strings.Join(parts, ",")), 0o644)
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

// fakeRenderer implements Renderer with a fixed-size semi-transparent page.
// afterRender, when set, runs after every successful page render; tests use
// it to signal stop mid-file.
type fakeRenderer struct {
	pages       int
	renderErrOn int
	afterRender func(page int)
	rendered    []int
	closed      bool
}

func (r *fakeRenderer) NumPages() int {
	return r.pages
}

func (r *fakeRenderer) Render(page int, dpi float64) (image.Image, error) {
	if r.renderErrOn != 0 && page == r.renderErrOn {
		return nil, fmt.Errorf("render fault on page %d", page)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 128})
		}
	}
	r.rendered = append(r.rendered, page)
	if r.afterRender != nil {
		r.afterRender(page)
	}
	return img, nil
}

func (r *fakeRenderer) Close() error {
	r.closed = true
	return nil
}

// openerFor returns a RenderOpener serving a fixed renderer per path.
// Unknown paths fail to open.
func openerFor(renderers map[string]*fakeRenderer) RenderOpener {
	return func(path string) (Renderer, error) {
		r, ok := renderers[path]
		if !ok {
			return nil, fmt.Errorf("cannot open %s", path)
		}
		return r, nil
	}
}
