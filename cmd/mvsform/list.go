package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/order"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/ui"
)

var (
	listTeam    string
	listNoOrder bool
	listCoaches bool
)

var listCmd = &cobra.Command{
	Use:   "list <roster.csv>",
	Short: "List players with order status",
	Long: `List every player in a roster with a one-line order summary.

Filters stack: --team narrows to one team, --no-order shows only players
who have not ordered yet, --coaches shows only coach rows. The no-order
filter is how you work the outstanding list on photo day.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runList(args[0])
	},
}

type listEntry struct {
	Barcode string `json:"barcode"`
	Team    string `json:"team"`
	Name    string `json:"name"`
	Jersey  string `json:"jersey,omitempty"`
	Coach   bool   `json:"coach"`
	Units   int    `json:"units"`
	Cents   int    `json:"total_cents"`
}

func runList(path string) {
	r, err := roster.Load(path)
	if err != nil {
		if jsonOutput {
			outputJSONError(err, "load_failed")
		}
		FatalClassified(err)
	}

	var entries []listEntry
	for i := range r.Players {
		p := &r.Players[i]
		if listTeam != "" && p.Team != listTeam {
			continue
		}
		if listCoaches && !p.IsCoach() {
			continue
		}
		q := playerOrder(p)
		if listNoOrder && !q.IsEmpty() {
			continue
		}
		entries = append(entries, listEntry{
			Barcode: p.Barcode,
			Team:    p.Team,
			Name:    p.DisplayName(),
			Jersey:  p.JerseyNumber,
			Coach:   p.IsCoach(),
			Units:   q.Units(),
			Cents:   order.TotalCents(q),
		})
	}

	if jsonOutput {
		if entries == nil {
			entries = []listEntry{}
		}
		outputJSON(entries)
		return
	}

	if len(entries) == 0 {
		fmt.Println("No players match.")
		return
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	// Status glyphs, suppressed on terminals with poor glyph support.
	var ordered, pending, coach string
	if ui.ShouldUseEmoji() {
		ordered, pending, coach = "✓ ", "○ ", "★ "
	}

	for _, e := range entries {
		name := ui.PadRight(ui.Truncate(e.Name, 28), 28)
		team := ui.PadRight(ui.Truncate(e.Team, 16), 16)
		fmt.Printf("%-10s  %s %s ", e.Barcode, team, name)
		switch {
		case e.Coach:
			cyan.Printf("%sCOACH", coach)
		case e.Units == 0:
			yellow.Printf("%sno order", pending)
		default:
			green.Printf("%s%d item(s)  $%.2f", ordered, e.Units, float64(e.Cents)/100)
		}
		fmt.Println()
	}
	fmt.Println(ui.RenderMuted(fmt.Sprintf("%d player(s)", len(entries))))
}

// playerOrder decodes both order cells of a player into one quantity set.
func playerOrder(p *types.Player) order.Quantities {
	return order.Merge(
		order.Decode(p.Packages, order.ColumnPackages),
		order.Decode(p.Products, order.ColumnProducts),
	)
}

func init() {
	listCmd.Flags().StringVar(&listTeam, "team", "", "Only players on this team")
	listCmd.Flags().BoolVar(&listNoOrder, "no-order", false, "Only players without an order")
	listCmd.Flags().BoolVar(&listCoaches, "coaches", false, "Only coach rows")
	rootCmd.AddCommand(listCmd)
}
