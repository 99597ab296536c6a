// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	results := []OperationResult{
		Success("a.pdf", "/out/a", 2),
		Failure("b.pdf", errors.New("not a PDF")),
		Cancelled("c.pdf", "stopped"),
		Failuref("d.pdf", "rendering page %d: fault", 3),
	}

	s := Summarize(results)

	if s.Succeeded != 1 || s.Failed != 2 || s.Cancelled != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Total() != 4 {
		t.Errorf("total = %d, want 4", s.Total())
	}
	if !s.HasFailures() {
		t.Error("HasFailures = false")
	}
	line := s.String()
	if !strings.Contains(line, "1 succeeded, 2 failed, 1 cancelled") {
		t.Errorf("summary line = %q", line)
	}
	if !strings.Contains(line, "b.pdf: not a PDF") {
		t.Errorf("summary line missing failure message: %q", line)
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpg", FormatJPG, false},
		{"JPG", FormatJPG, false},
		{"jpeg", FormatJPG, false},
		{" png ", FormatPNG, false},
		{"tiff", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseImageFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseImageFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseImageFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRasterizeOptionsValidate(t *testing.T) {
	if err := (RasterizeOptions{DPI: 150, Format: FormatPNG}).Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
	if err := (RasterizeOptions{DPI: 0, Format: FormatPNG}).Validate(); err == nil {
		t.Error("zero DPI accepted")
	}
	if err := (RasterizeOptions{DPI: -72, Format: FormatJPG}).Validate(); err == nil {
		t.Error("negative DPI accepted")
	}
	if err := (RasterizeOptions{DPI: 96, Format: "bmp"}).Validate(); err == nil {
		t.Error("unknown format accepted")
	}
}
