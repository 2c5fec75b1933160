package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the orderable item codes and prices",
	Long: `Print the item catalog: the code to type into an order cell, the
column it belongs in, and the unit price.

Prices can be overridden per season by a catalog.yaml price list in the
.mvsform directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCatalog()
	},
}

type catalogEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Column   string `json:"column"`
	Category string `json:"category"`
	Cents    int    `json:"price_cents"`
	Free     bool   `json:"free,omitempty"`
}

func runCatalog() {
	items := catalog.Items()

	if jsonOutput {
		entries := make([]catalogEntry, 0, len(items))
		for _, it := range items {
			col := "Products"
			if it.RoutesToPackages() {
				col = "Packages"
			}
			entries = append(entries, catalogEntry{
				Code:     it.External,
				Name:     it.Name,
				Column:   col,
				Category: it.Category.String(),
				Cents:    it.PriceCents,
				Free:     it.Free,
			})
		}
		outputJSON(entries)
		return
	}

	fmt.Println(ui.HeaderStyle.Render("Item catalog"))
	fmt.Printf("%-10s %-36s %-9s %s\n", "CODE", "NAME", "COLUMN", "PRICE")
	for _, it := range items {
		col := "Products"
		if it.RoutesToPackages() {
			col = "Packages"
		}
		price := fmt.Sprintf("$%.2f", float64(it.PriceCents)/100)
		if it.Free {
			price = "free"
		}
		fmt.Printf("%-10s %-36s %-9s %s\n", it.External, ui.Truncate(it.Name, 36), col, price)
	}
	fmt.Println(ui.RenderMuted("DD prices differ by column: as a package add-on vs a la carte."))
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
