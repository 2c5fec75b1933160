package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/order"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <roster.csv> <barcode>",
	Short: "Show one player's details and decoded order",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runShow(args[0], args[1])
	},
}

type showLine struct {
	Code    string `json:"code"`
	Name    string `json:"name,omitempty"`
	Units   int    `json:"units"`
	Cents   int    `json:"total_cents"`
	Unknown bool   `json:"unknown,omitempty"`
}

type showOutput struct {
	Player types.Player `json:"player"`
	Order  []showLine   `json:"order"`
	Cents  int          `json:"total_cents"`
}

func runShow(path, barcode string) {
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
	p := r.Players[idx]
	q := playerOrder(&p)

	codes := make([]string, 0, len(q))
	for code, n := range q {
		if n > 0 {
			codes = append(codes, code)
		}
	}
	catalog.SortCodes(codes)

	var lines []showLine
	for _, code := range codes {
		line := showLine{Code: code, Units: q[code]}
		if it, ok := catalog.Lookup(code); ok {
			line.Name = it.Name
			if !it.Free {
				line.Cents = it.PriceCents * q[code]
			}
		} else {
			line.Unknown = true
		}
		lines = append(lines, line)
	}

	if jsonOutput {
		if lines == nil {
			lines = []showLine{}
		}
		outputJSON(showOutput{Player: p, Order: lines, Cents: order.TotalCents(q)})
		return
	}

	fmt.Println(ui.HeaderStyle.Render(p.DisplayName()))
	fmt.Printf("Barcode: %s\n", p.Barcode)
	if p.Team != "" {
		fmt.Printf("Team:    %s\n", p.Team)
	}
	if p.JerseyNumber != "" {
		fmt.Printf("Jersey:  %s\n", p.JerseyNumber)
	}
	if p.IsCoach() {
		fmt.Println("Coach:   yes")
	}
	if p.CellPhone != "" {
		fmt.Printf("Phone:   %s\n", p.CellPhone)
	}
	if p.Email != "" {
		fmt.Printf("Email:   %s\n", p.Email)
	}

	var pending, ordered string
	if ui.ShouldUseEmoji() {
		pending, ordered = "○ ", "✓ "
	}

	fmt.Println()
	if len(lines) == 0 {
		fmt.Println(ui.WarnStyle.Render(pending + "No order."))
		return
	}
	for _, line := range lines {
		switch {
		case line.Unknown:
			fmt.Println(ui.FailStyle.Render(fmt.Sprintf("  %dx %s (unknown code)", line.Units, line.Code)))
		case line.Cents == 0:
			fmt.Printf("  %dx %-32s %s\n", line.Units, line.Name, ui.RenderMuted("free"))
		default:
			fmt.Printf("  %dx %-32s $%.2f\n", line.Units, line.Name, float64(line.Cents)/100)
		}
	}
	fmt.Println(ui.PassStyle.Render(fmt.Sprintf("  %sTotal: $%.2f", ordered, float64(order.TotalCents(q))/100)))
}

func init() {
	rootCmd.AddCommand(showCmd)
}
