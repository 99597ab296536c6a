package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chuzhi-keji/pdf/internal/document"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split [pdf]",
	Short: "Split a PDF into per-page files or by page ranges",
	Long: `Split divides one PDF into multiple documents. With --mode pages every
page becomes its own file. With --mode ranges the --ranges expression
selects one output document per semicolon-delimited group: "1-3,5;7-end"
produces two documents, the first with pages 1-3 and 5, the second with
page 7 through the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		ranges, _ := cmd.Flags().GetString("ranges")

		var mode types.SplitMode
		switch modeFlag {
		case "pages":
			mode = types.SplitMode{Kind: types.SplitAllPages}
		case "ranges":
			mode = types.SplitMode{Kind: types.SplitByRanges, Ranges: ranges}
		default:
			return fmt.Errorf("unknown split mode %q (want pages or ranges)", modeFlag)
		}

		placement, err := placementFromFlags(cmd)
		if err != nil {
			return err
		}

		started := time.Now()
		results := document.Split(document.NewEngine(), args[0], placement, mode, os.Stderr)
		return finish("split", started, results)
	},
}

func init() {
	splitCmd.Flags().String("mode", "pages", "split mode: pages (one file per page) or ranges")
	splitCmd.Flags().String("ranges", "", `page ranges for --mode ranges, e.g. "1-3,5;7-end"`)
	addPlacementFlags(splitCmd)

	rootCmd.AddCommand(splitCmd)
}
