package editor

import (
	"fmt"
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/order"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/rules"
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.current() == nil {
		b.WriteString(statusStyle.Render("No players in this view."))
		b.WriteString("\n\n")
		b.WriteString(m.renderStatusBar())
		return b.String()
	}

	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("MVS Photo Form — %s", m.path))

	var pos string
	if p := m.current(); p != nil {
		team := m.currentTeam()
		if team == "" {
			team = "all teams"
		}
		pos = positionStyle.Render(fmt.Sprintf("Player %d/%d (%s)  #%s  %s",
			m.pos+1, len(m.visible), team, p.Barcode, p.JerseyNumber))
		if p.IsCoach() {
			pos += "  " + coachBadgeStyle.Render("[COACH]")
		}
	}

	return title + "\n" + pos + "\n"
}

func (m *Model) renderForm() string {
	var b strings.Builder
	for f := field(0); f < fieldCount; f++ {
		label := labelStyle
		if f == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[f]))
		b.WriteString(" ")
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary shows the decoded order for the cells as currently typed,
// with a running total. Unknown codes are flagged but not blocked; the save
// pipeline carries them through untouched.
func (m *Model) renderSummary() string {
	pkgs := order.Decode(m.inputs[fieldPackages].Value(), order.ColumnPackages)
	prods := order.Decode(m.inputs[fieldProducts].Value(), order.ColumnProducts)
	q := order.Merge(pkgs, prods)

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Order"))
	b.WriteString("\n")

	if q.IsEmpty() {
		coach := strings.EqualFold(strings.TrimSpace(m.inputs[fieldCoach].Value()), "Y")
		if coach {
			b.WriteString(summaryItemStyle.Render("  (coach: complimentary item added on save)"))
		} else if rules.IsPlaceholderName(m.inputs[fieldLastName].Value()) {
			b.WriteString(statusStyle.Render("  (placeholder row, no order)"))
		} else {
			b.WriteString(noOrderStyle.Render("  NO ORDER"))
		}
		b.WriteString("\n")
		return b.String()
	}

	codes := make([]string, 0, len(q))
	for code, n := range q {
		if n > 0 {
			codes = append(codes, code)
		}
	}
	catalog.SortCodes(codes)

	for _, code := range codes {
		n := q[code]
		if it, ok := catalog.Lookup(code); ok {
			line := fmt.Sprintf("  %dx %-32s", n, it.Name)
			price := fmt.Sprintf("$%7.2f", float64(it.PriceCents*n)/100)
			if it.Free {
				price = "   free"
			}
			b.WriteString(summaryItemStyle.Render(line))
			b.WriteString(summaryPriceStyle.Render(price))
		} else {
			b.WriteString(unknownCodeStyle.Render(fmt.Sprintf("  %dx %s (unknown code)", n, code)))
		}
		b.WriteString("\n")
	}

	b.WriteString(summaryTotalStyle.Render(fmt.Sprintf("  Total: $%.2f", float64(order.TotalCents(q))/100)))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderStatusBar() string {
	var b strings.Builder

	if m.externalChange {
		b.WriteString(warningStyle.Render("! File changed on disk — ctrl+r to reload"))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		} else if strings.HasPrefix(m.status, "Saved") || strings.HasPrefix(m.status, "Backup written") {
			style = successStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.dirty {
		b.WriteString(warningStyle.Render("* unsaved changes"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
