package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/ui"
)

//go:embed guide.md
var guideText string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the photo-day operator guide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(ui.RenderMarkdown(guideText))
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
