package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chuzhi-keji/pdf/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or export recent operation runs",
	Long: `History lists recent merge, split, and convert runs with their per-file
outcomes, newest first. With --export the full journal is written to a
YAML or JSON file instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		export, _ := cmd.Flags().GetString("export")
		outPath, _ := cmd.Flags().GetString("out")

		store, err := history.Open(historyDir())
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()

		switch export {
		case "":
		case "yaml":
			if outPath == "" {
				outPath = "history.yaml"
			}
			if err := store.ExportYAML(ctx, outPath); err != nil {
				return err
			}
			fmt.Println("exported:", outPath)
			return nil
		case "json":
			if outPath == "" {
				outPath = "history.json"
			}
			if err := store.ExportJSON(ctx, outPath); err != nil {
				return err
			}
			fmt.Println("exported:", outPath)
			return nil
		default:
			return fmt.Errorf("unknown export format %q (want yaml or json)", export)
		}

		runs, err := store.Recent(ctx, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("#%d  %s  %-7s  %d ok, %d failed, %d cancelled\n",
				run.ID, run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.Kind,
				run.Summary.Succeeded, run.Summary.Failed, run.Summary.Cancelled)
			for _, r := range run.Results {
				switch r.Status {
				case "success":
					fmt.Printf("    %s -> %s\n", r.Input, r.Path)
				default:
					fmt.Printf("    %s: %s (%s)\n", r.Input, r.Status, r.Message)
				}
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "number of runs to show")
	historyCmd.Flags().String("export", "", "export the journal: yaml or json")
	historyCmd.Flags().String("out", "", "export destination path")

	rootCmd.AddCommand(historyCmd)
}
