// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document implements the three document operations: merging PDFs,
// splitting a PDF by page ranges or into per-page files, and rasterizing
// pages into image files.
//
// The PDF-level work is delegated to collaborator interfaces (Engine for
// structure-level reads and writes, Renderer for page rasterization) so the
// operation logic stays testable without a PDF library or CGo toolchain.
package document

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Engine is the PDF reading/writing capability the operations depend on.
type Engine interface {
	// Validate checks that path is a well-formed PDF.
	Validate(path string) error

	// PageCount returns the number of pages in the PDF at path.
	PageCount(path string) (int, error)

	// MergeTo appends every page of every input, in input order, into a new
	// document written at outPath.
	MergeTo(inputs []string, outPath string) error

	// Open reads the PDF at path for page extraction.
	Open(path string) (Document, error)
}

// Document is one open source PDF. Page extraction builds a fresh document
// per call, so per-group memory is released as soon as each output is
// written.
type Document interface {
	// PageCount returns the document's total page count.
	PageCount() int

	// ExtractTo writes a new document containing exactly the given 1-based
	// pages, in the given order, at outPath.
	ExtractTo(pages []int, outPath string) error

	// Close releases the document.
	Close() error
}

// pdfcpuEngine implements Engine on pdfcpu.
type pdfcpuEngine struct {
	conf *model.Configuration
}

// NewEngine returns the pdfcpu-backed Engine used in production.
func NewEngine() Engine {
	return &pdfcpuEngine{conf: model.NewDefaultConfiguration()}
}

func (e *pdfcpuEngine) Validate(path string) error {
	if err := api.ValidateFile(path, e.conf); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	return nil
}

func (e *pdfcpuEngine) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

func (e *pdfcpuEngine) MergeTo(inputs []string, outPath string) error {
	return api.MergeCreateFile(inputs, outPath, false, e.conf)
}

func (e *pdfcpuEngine) Open(path string) (Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &pdfcpuDocument{ctx: ctx}, nil
}

// pdfcpuDocument wraps one parsed pdfcpu context.
type pdfcpuDocument struct {
	ctx *model.Context
}

func (d *pdfcpuDocument) PageCount() int {
	return d.ctx.PageCount
}

func (d *pdfcpuDocument) ExtractTo(pages []int, outPath string) error {
	extracted, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("extracting pages %v: %w", pages, err)
	}
	if err := api.WriteContextFile(extracted, outPath); err != nil {
		return fmt.Errorf("writing extracted pages: %w", err)
	}
	return nil
}

func (d *pdfcpuDocument) Close() error {
	d.ctx = nil
	return nil
}
