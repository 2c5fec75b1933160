// mvsform is a terminal order-form editor for photo-day roster CSVs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/config"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/ui"
)

var (
	cfg        *config.Config
	jsonOutput bool
	noColor    bool

	// Signal-aware context for graceful cancellation
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "mvsform",
	Short: "Photo-day order form editor for roster CSVs",
	Long: `mvsform edits photo-day order forms stored in a roster CSV.

Load a roster exported from the photography system, step through players one
at a time, enter contact details and item quantities, and save changes back
into the same file. Every save backs the file up first and rewrites only the
edited row, so foreign columns and formatting survive untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Season price list, if the league ships one.
		if path := cfg.CatalogOverridePath(); fileExists(path) {
			if _, err := catalog.LoadOverrides(path); err != nil {
				WarnError("ignoring %s: %v", path, err)
			}
		}

		if noColor || !ui.ShouldUseColor() {
			color.NoColor = true
		}
		return nil
	},
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func main() {
	rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer rootCancel()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	if err := rootCmd.Execute(); err != nil {
		FatalError("%v", err)
	}
}
