package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chuzhi-keji/pdf/internal/document"
	"github.com/chuzhi-keji/pdf/internal/task"
	"github.com/chuzhi-keji/pdf/pkg/types"
)

// shutdownTimeout bounds how long the command waits for the worker to
// release its file handles after a stop request.
const shutdownTimeout = 10 * time.Second

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Rasterize PDF pages into PNG or JPG images",
	Long: `Convert renders each page of each input PDF to an image file at the
requested resolution. PNG output keeps transparency; JPG output is
flattened and encoded at quality 95. Page numbers in output filenames are
zero-padded so directory listings sort correctly.

The conversion runs on a background worker. Interrupting with Ctrl-C stops
it cooperatively: the page being rendered finishes, the interrupted file is
reported as cancelled, and remaining files are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dpi, _ := cmd.Flags().GetInt("dpi")
		if !cmd.Flags().Changed("dpi") {
			if v := viper.GetInt("convert.dpi"); v > 0 {
				dpi = v
			}
		}
		formatFlag, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") {
			if v := viper.GetString("convert.format"); v != "" {
				formatFlag = v
			}
		}
		format, err := types.ParseImageFormat(formatFlag)
		if err != nil {
			return err
		}
		ranges, _ := cmd.Flags().GetString("ranges")

		opts := types.RasterizeOptions{DPI: dpi, Format: format, Ranges: ranges}
		if err := opts.Validate(); err != nil {
			return err
		}
		placement, err := placementFromFlags(cmd)
		if err != nil {
			return err
		}

		progress := func(pct float64) {
			fmt.Fprintf(os.Stderr, "\rprogress: %5.1f%%", pct)
		}

		started := time.Now()
		runner := task.NewRunner()
		done, err := runner.Start(func(ctl *task.Control) ([]types.OperationResult, error) {
			return document.Rasterize(document.OpenFitz, args, opts, placement, ctl, progress, os.Stderr), nil
		})
		if err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		defer signal.Stop(sig)

		var out task.Outcome
		select {
		case out = <-done:
		case <-sig:
			fmt.Fprintln(os.Stderr, "\ninterrupt: stopping after the current page")
			runner.Stop()
			if err := runner.Wait(shutdownTimeout); err != nil {
				return err
			}
			out = <-done
		}
		fmt.Fprintln(os.Stderr)

		if out.Err != nil {
			return out.Err
		}
		return finish("convert", started, out.Results)
	},
}

func init() {
	convertCmd.Flags().Int("dpi", 200, "image resolution in DPI (72/96/150/200/300/400/600 are typical)")
	convertCmd.Flags().String("format", "png", "image format: png or jpg")
	convertCmd.Flags().String("ranges", "", `restrict conversion to these pages, e.g. "1-3,5;7-end"`)
	addPlacementFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
