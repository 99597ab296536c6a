// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

func TestMerge(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	b := filepath.Join(tmp, "b.pdf")
	e := &fakeEngine{pageCounts: map[string]int{a: 3, b: 4}}

	res := Merge(e, []string{a, b}, types.SourceDir(), "combined.pdf", io.Discard)

	if res.Status != types.StatusSuccess {
		t.Fatalf("status = %q (%s), want success", res.Status, res.Message)
	}
	want := filepath.Join(tmp, "combined.pdf")
	if res.Path != want {
		t.Errorf("path = %q, want %q", res.Path, want)
	}
	if res.Pages != 7 {
		t.Errorf("pages = %d, want 7", res.Pages)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestMergeAppendsExtension(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	e := &fakeEngine{pageCounts: map[string]int{a: 1}}

	tests := []struct {
		outName string
		want    string
	}{
		{"combined", "combined.pdf"},
		{"combined.PDF", "combined.PDF"},
		{"combined.Pdf", "combined.Pdf"},
		{"archive.v2", "archive.v2.pdf"},
	}
	for _, tt := range tests {
		res := Merge(e, []string{a}, types.SourceDir(), tt.outName, io.Discard)
		if res.Status != types.StatusSuccess {
			t.Fatalf("%q: status = %q (%s)", tt.outName, res.Status, res.Message)
		}
		if got := filepath.Base(res.Path); got != tt.want {
			t.Errorf("outName %q: file = %q, want %q", tt.outName, got, tt.want)
		}
	}
}

func TestMergeNoInputs(t *testing.T) {
	tmp := t.TempDir()
	e := &fakeEngine{pageCounts: map[string]int{}}

	res := Merge(e, nil, types.CustomDir(tmp), "out.pdf", io.Discard)

	if res.Status != types.StatusFailure {
		t.Fatalf("status = %q, want failure", res.Status)
	}
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output directory not empty: %v", entries)
	}
}

func TestMergeInvalidInputFailsFast(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	bad := filepath.Join(tmp, "bad.pdf")
	e := &fakeEngine{
		pageCounts: map[string]int{a: 3, bad: 1},
		invalid:    map[string]bool{bad: true},
	}

	res := Merge(e, []string{a, bad}, types.SourceDir(), "out.pdf", io.Discard)

	if res.Status != types.StatusFailure {
		t.Fatalf("status = %q, want failure", res.Status)
	}
	if e.mergeCalls != 0 {
		t.Errorf("merge was attempted despite invalid input")
	}
}

func TestMergeWriteFailureLeavesNoOutput(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := &fakeEngine{
		pageCounts: map[string]int{a: 3},
		mergeErr:   errors.New("disk full"),
	}

	res := Merge(e, []string{a}, types.SourceDir(), "out.pdf", io.Discard)

	if res.Status != types.StatusFailure {
		t.Fatalf("status = %q, want failure", res.Status)
	}
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	// Only the input file remains: no destination, no temp leftovers.
	if len(entries) != 1 || entries[0].Name() != "a.pdf" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory = %v, want only a.pdf", names)
	}
}

func TestMergeBadCustomDir(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	e := &fakeEngine{pageCounts: map[string]int{a: 3}}

	res := Merge(e, []string{a}, types.CustomDir(filepath.Join(tmp, "missing")), "out.pdf", io.Discard)

	if res.Status != types.StatusFailure {
		t.Fatalf("status = %q, want failure", res.Status)
	}
}
