package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
)

var (
	updFirstName string
	updLastName  string
	updPhone     string
	updEmail     string
	updCoach     string
	updPackages  string
	updProducts  string
)

var updateCmd = &cobra.Command{
	Use:   "update <roster.csv> <barcode>",
	Short: "Update a player's row from flags (scriptable)",
	Long: `Update one player's row without the interactive editor.

Only the flags you pass change; everything else keeps its current value.
The usual save pipeline runs: backup first, business rules applied, only
the one row rewritten. Example:

  mvsform update roster.csv 1042 --packages A,A --products TEAM-8x10
  mvsform update roster.csv 2001 --coach Y`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, args[0], args[1])
	},
}

func runUpdate(cmd *cobra.Command, path, barcode string) {
	r, err := roster.Load(path)
	if err != nil {
		if jsonOutput {
			outputJSONError(err, "load_failed")
		}
		FatalClassified(err)
	}

	idx := r.FindByBarcode(barcode)
	if idx < 0 {
		err := fmt.Errorf("no player with barcode %s in %s", barcode, path)
		if jsonOutput {
			outputJSONError(err, "not_found")
		}
		FatalErrorWithHint(err.Error(), "Run 'mvsform list' to see the roster")
	}

	upd := r.Players[idx].Update()
	if cmd.Flags().Changed("first-name") {
		upd.FirstName = updFirstName
	}
	if cmd.Flags().Changed("last-name") {
		upd.LastName = updLastName
	}
	if cmd.Flags().Changed("phone") {
		upd.CellPhone = updPhone
	}
	if cmd.Flags().Changed("email") {
		upd.Email = updEmail
	}
	if cmd.Flags().Changed("coach") {
		upd.Coach = updCoach
	}
	if cmd.Flags().Changed("packages") {
		upd.Packages = updPackages
	}
	if cmd.Flags().Changed("products") {
		upd.Products = updProducts
	}

	saveAndReport(path, upd)
}

func init() {
	updateCmd.Flags().StringVar(&updFirstName, "first-name", "", "Set the first name")
	updateCmd.Flags().StringVar(&updLastName, "last-name", "", "Set the last name")
	updateCmd.Flags().StringVar(&updPhone, "phone", "", "Set the cell phone")
	updateCmd.Flags().StringVar(&updEmail, "email", "", "Set the email")
	updateCmd.Flags().StringVar(&updCoach, "coach", "", "Set the coach flag (Y or N)")
	updateCmd.Flags().StringVar(&updPackages, "packages", "", "Set the Packages cell")
	updateCmd.Flags().StringVar(&updProducts, "products", "", "Set the Products cell")
	rootCmd.AddCommand(updateCmd)
}
