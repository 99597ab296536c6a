package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chuzhi-keji/pdf/internal/document"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [pdfs...]",
	Short: "Merge PDF files into one document",
	Long: `Merge appends every page of every input, in the order given, into one new
document. The operation is all-or-nothing: any invalid input aborts the
merge and no output file is created. Output lands beside the first input
unless --out-dir or --subfolder says otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outName, _ := cmd.Flags().GetString("output")
		placement, err := placementFromFlags(cmd)
		if err != nil {
			return err
		}

		started := time.Now()
		res := document.Merge(document.NewEngine(), args, placement, outName, os.Stderr)
		return finish("merge", started, []types.OperationResult{res})
	},
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "merged.pdf", "output filename (.pdf appended if missing)")
	addPlacementFlags(mergeCmd)

	rootCmd.AddCommand(mergeCmd)
}
