// Package main is the entry point for the pdftool CLI: merge, split, and
// rasterize PDF documents from the command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdftool CLI.
var rootCmd = &cobra.Command{
	Use:   "pdftool",
	Short: "Merge, split, and rasterize PDF documents",
	Long: `pdftool manipulates PDF documents: merging multiple files into one,
splitting a document by page ranges or into per-page files, and rasterizing
pages into PNG or JPG images at a configurable resolution.

Page ranges use semicolons to separate output groups and commas within a
group. "1-3,5;7-end" selects pages 1-3 and 5 as one group, and page 7
through the last page as another. Invalid tokens are skipped with a warning.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdftool.yaml or ~/.config/pdftool/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftool"))
		}
	}

	viper.SetEnvPrefix("PDFTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
