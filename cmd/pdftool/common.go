package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chuzhi-keji/pdf/internal/history"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

// addPlacementFlags registers the output placement flags shared by merge,
// split, and convert.
func addPlacementFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-dir", "", "write output into this existing directory")
	cmd.Flags().String("subfolder", "", "create (or reuse) this subfolder beside each input file")
}

// placementFromFlags builds the placement policy: --out-dir wins over
// --subfolder, and neither means output lands beside the input files. A
// --subfolder given with an empty value selects the default subfolder name.
func placementFromFlags(cmd *cobra.Command) (types.Placement, error) {
	outDir, _ := cmd.Flags().GetString("out-dir")
	subfolder, _ := cmd.Flags().GetString("subfolder")

	switch {
	case outDir != "" && cmd.Flags().Changed("subfolder"):
		return types.Placement{}, fmt.Errorf("--out-dir and --subfolder are mutually exclusive")
	case outDir != "":
		return types.CustomDir(outDir), nil
	case cmd.Flags().Changed("subfolder"):
		return types.Subfolder(subfolder), nil
	default:
		return types.SourceDir(), nil
	}
}

// historyDir returns the journal location: config key history.dir, or
// ~/.pdftool.
func historyDir() string {
	if dir := viper.GetString("history.dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pdftool"
	}
	return filepath.Join(home, ".pdftool")
}

// recordRun journals the outcome of one operation. The journal is advisory:
// problems are reported as warnings and never fail the command.
func recordRun(kind string, startedAt time.Time, results []types.OperationResult) {
	store, err := history.Open(historyDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), kind, startedAt, results); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

// finish journals the run, prints the aggregate outcome, and converts
// failures into a command error.
func finish(kind string, startedAt time.Time, results []types.OperationResult) error {
	recordRun(kind, startedAt, results)

	summary := types.Summarize(results)
	fmt.Println(summary.String())

	if summary.HasFailures() {
		return fmt.Errorf("%s: %d of %d items failed", kind, summary.Failed, summary.Total())
	}
	return nil
}
