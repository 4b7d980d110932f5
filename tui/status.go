package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName title-cases a room or item name for the status bar:
// "Outside building" -> "Outside Building", "KEYS" -> "Keys".
func displayName(name string) string {
	return titleCaser.String(strings.ToLower(name))
}

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, the inventory and the turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World
	cur := w.Current()

	left := fmt.Sprintf(" %s | Exits: %s", displayName(cur.Name), strings.Join(cur.Directions(), ","))
	right := fmt.Sprintf("T:%d ", m.engine.TurnCount)

	// Show inventory items if they fit, otherwise just count.
	if inv := w.Inventory(); len(inv) > 0 {
		names := make([]string, 0, len(inv))
		for _, it := range inv {
			names = append(names, displayName(it.Name))
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), m.engine.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(inv), m.engine.TurnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
