// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

// jpegQuality is the fixed JPEG encoding quality. Deliberately above the
// encoder default: rasterized document pages show ringing artifacts around
// text at lower settings.
const jpegQuality = 95

// Renderer is the page-rasterization capability for one open document.
type Renderer interface {
	// NumPages returns the document's total page count.
	NumPages() int

	// Render rasterizes the 1-based page at the given DPI. 72 DPI is the
	// reference resolution, so the effective scale is dpi/72.
	Render(page int, dpi float64) (image.Image, error)

	// Close releases the document.
	Close() error
}

// RenderOpener opens a document for rendering. Production code uses
// OpenFitz; tests substitute fakes.
type RenderOpener func(path string) (Renderer, error)

// fitzRenderer implements Renderer on go-fitz (MuPDF).
type fitzRenderer struct {
	doc *fitz.Document
}

// OpenFitz opens the PDF at path with MuPDF.
func OpenFitz(path string) (Renderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &fitzRenderer{doc: doc}, nil
}

func (r *fitzRenderer) NumPages() int {
	return r.doc.NumPage()
}

func (r *fitzRenderer) Render(page int, dpi float64) (image.Image, error) {
	// go-fitz pages are 0-based.
	return r.doc.ImageDPI(page-1, dpi)
}

func (r *fitzRenderer) Close() error {
	return r.doc.Close()
}

// encodeImage writes img to w in the requested format. PNG keeps the alpha
// channel; JPEG cannot carry one, so the image is flattened onto white
// before encoding at jpegQuality.
func encodeImage(w io.Writer, img image.Image, format types.ImageFormat) error {
	switch format {
	case types.FormatPNG:
		return png.Encode(w, img)
	case types.FormatJPG:
		bounds := img.Bounds()
		flat := imaging.Overlay(
			imaging.New(bounds.Dx(), bounds.Dy(), color.White),
			img, image.Pt(0, 0), 1.0)
		return jpeg.Encode(w, flat, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// writeImage encodes img at path, removing the partial file on encode
// failure.
func writeImage(path string, img image.Image, format types.ImageFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := encodeImage(f, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
