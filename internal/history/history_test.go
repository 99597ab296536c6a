// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	results := []types.OperationResult{
		types.Success("a.pdf", "/out/a", 3),
		types.Failure("b.pdf", errors.New("not a PDF")),
		types.Cancelled("c.pdf", "stopped before page 2"),
	}
	runID, err := s.Record(ctx, "convert", started, results)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if runID == 0 {
		t.Error("run id = 0")
	}

	runs, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.Kind != "convert" {
		t.Errorf("kind = %q", run.Kind)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("started_at = %v, want %v", run.StartedAt, started)
	}
	if run.Summary.Succeeded != 1 || run.Summary.Failed != 1 || run.Summary.Cancelled != 1 {
		t.Errorf("summary = %+v", run.Summary)
	}
	if len(run.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(run.Results))
	}
	if run.Results[1].Message != "not a PDF" {
		t.Errorf("result message = %q", run.Results[1].Message)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, kind := range []string{"merge", "split", "convert"} {
		if _, err := s.Record(ctx, kind, time.Now(), nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Kind != "convert" || runs[1].Kind != "split" {
		t.Errorf("order = %q, %q", runs[0].Kind, runs[1].Kind)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	s1, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s1.Record(context.Background(), "merge", time.Now(), nil); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()

	runs, err := s2.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}

func TestExport(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	tmp := t.TempDir()

	if _, err := s.Record(ctx, "merge", time.Now(),
		[]types.OperationResult{types.Success("a.pdf", "/out/a.pdf", 5)}); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(tmp, "history.json")
	if err := s.ExportJSON(ctx, jsonPath); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(runs) != 1 || runs[0].Kind != "merge" {
		t.Errorf("exported runs = %+v", runs)
	}

	yamlPath := filepath.Join(tmp, "history.yaml")
	if err := s.ExportYAML(ctx, yamlPath); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	if info, err := os.Stat(yamlPath); err != nil || info.Size() == 0 {
		t.Errorf("YAML export missing or empty: %v", err)
	}
}
