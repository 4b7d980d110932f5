package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleItemName = lipgloss.NewStyle().
			Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindItem
	kindHelp
	kindSystem
	kindError
	kindTrace
)

// Engine messages shown in the error style.
var errorLines = map[string]bool{
	"Invalid command.":         true,
	"No such item.":            true,
	"Can't go back.":           true,
	"Your inventory is empty.": true,
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case errorLines[line]:
		return kindError
	case isItemLine(line):
		return kindItem
	case strings.HasSuffix(line, " taken."), strings.HasSuffix(line, " dropped."):
		return kindRoomDesc
	case isHelpLine(line):
		return kindHelp
	default:
		return kindRoomDesc
	}
}

// isItemLine matches the "NAME: description" item listing. Item names are
// upper case in the data files.
func isItemLine(line string) bool {
	name, _, ok := strings.Cut(line, ": ")
	return ok && name != "" && name == strings.ToUpper(name) && strings.ToLower(name) != name
}

// isHelpLine matches instruction lines, which start with an upper-case
// command word followed by a space.
func isHelpLine(line string) bool {
	word, _, ok := strings.Cut(line, " ")
	if !ok || len(word) < 2 {
		return false
	}
	for _, r := range word {
		if (r < 'A' || r > 'Z') && r != '<' && r != '>' {
			return false
		}
	}
	return true
}

// styledItem renders "NAME: description" with the name bold.
func styledItem(line string) string {
	name, desc, ok := strings.Cut(line, ": ")
	if !ok {
		return styleRoomDesc.Render(line)
	}
	return styleItemName.Render(name) + styleRoomDesc.Render(": "+desc)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
