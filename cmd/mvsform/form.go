package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/rules"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

var formCmd = &cobra.Command{
	Use:   "form <roster.csv> <barcode>",
	Short: "Fill one player's order with an interactive form",
	Long: `Fill a single player's order form without entering the full editor.

Useful for walk-up corrections: look the player up by barcode, step through
the fields, confirm, and the row is saved with the usual rules applied
(backup, coach item, name markers, canonical cell order).

The form uses keyboard navigation:
  - Tab/Shift+Tab: Move between fields
  - Enter: Submit the form (on the last field or submit button)
  - Ctrl+C: Cancel and exit`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runForm(args[0], args[1])
	},
}

func runForm(path, barcode string) {
	r, err := roster.Load(path)
	if err != nil {
		FatalClassified(err)
	}

	idx := r.FindByBarcode(barcode)
	if idx < 0 {
		FatalErrorWithHint(fmt.Sprintf("no player with barcode %s in %s", barcode, path),
			"Run 'mvsform list' to see the roster")
	}
	p := r.Players[idx]
	upd := p.Update()

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First Name").
				Value(&upd.FirstName),

			huh.NewInput().
				Title("Last Name").
				Description("Coach and no-order markers are managed automatically").
				Value(&upd.LastName),

			huh.NewInput().
				Title("Cell Phone").
				Placeholder("e.g. 555-867-5309").
				Value(&upd.CellPhone).
				Validate(rules.ValidatePhone),

			huh.NewInput().
				Title("Email").
				Placeholder("e.g. parent@example.com").
				Value(&upd.Email).
				Validate(rules.ValidateEmail),

			huh.NewSelect[string]().
				Title("Coach").
				Options(
					huh.NewOption("No", "N"),
					huh.NewOption("Yes", "Y"),
				).
				Value(&upd.Coach),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Packages").
				Description("Item codes, one per unit, comma-separated").
				Placeholder("e.g. A,A,FAM-5x7").
				Value(&upd.Packages),

			huh.NewInput().
				Title("Products").
				Description("Item codes, one per unit, comma-separated").
				Placeholder("e.g. 8x10,TEAM-8x10,DD").
				Value(&upd.Products),

			huh.NewConfirm().
				Title(fmt.Sprintf("Save order for %s?", p.DisplayName())).
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(formTheme())

	// Selects need a non-empty current value to land on the right option.
	if strings.TrimSpace(upd.Coach) == "" {
		upd.Coach = "N"
	}

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(os.Stderr, "Cancelled, nothing saved.")
			os.Exit(0)
		}
		FatalError("form error: %v", err)
	}
	if !confirmed {
		fmt.Fprintln(os.Stderr, "Cancelled, nothing saved.")
		return
	}

	saveAndReport(path, upd)
}

// saveAndReport runs the shared save pipeline and prints the outcome in the
// active output mode. Shared by form and update.
func saveAndReport(path string, upd types.PlayerUpdate) {
	opts := roster.SaveOptions{Backups: cfg.BackupsEnabled(), BackupDir: cfg.BackupDir()}
	normalized, err := roster.Save(path, upd, opts)
	if err != nil {
		if jsonOutput {
			outputJSONError(err, "save_failed")
		}
		FatalClassified(err)
	}

	if jsonOutput {
		outputJSON(normalized)
		return
	}
	fmt.Printf("Saved %s (%s %s)\n", normalized.Barcode, normalized.FirstName, normalized.LastName)
}

// formTheme maps the configured theme name onto a huh theme.
func formTheme() *huh.Theme {
	switch strings.ToLower(cfg.Theme()) {
	case "dracula":
		return huh.ThemeDracula()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	default:
		return huh.ThemeCharm()
	}
}

func init() {
	rootCmd.AddCommand(formCmd)
}
