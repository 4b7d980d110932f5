// Package parser converts command strings into Commands.
// Intentionally dumb: upper-case, expand synonyms, match a handful of verbs.
package parser

import (
	"strings"
)

// Built-in verbs. Anything else is a movement command.
const (
	VerbHelp      = "HELP"
	VerbLook      = "LOOK"
	VerbBack      = "BACK"
	VerbTake      = "TAKE"
	VerbDrop      = "DROP"
	VerbInventory = "INVENTORY"
	VerbQuit      = "QUIT"
	VerbGo        = "GO"
)

// Verbs that never take an object.
var bareVerbs = map[string]bool{
	VerbHelp:      true,
	VerbLook:      true,
	VerbBack:      true,
	VerbInventory: true,
	VerbQuit:      true,
}

// Verbs that act on a named item.
var itemVerbs = map[string]bool{
	VerbTake: true,
	VerbDrop: true,
}

// Synonyms expands an input token to its canonical command.
type Synonyms interface {
	Canonical(token string) string
}

// Command is the parsed form of one line of player input.
type Command struct {
	Verb   string
	Object string // item name for TAKE/DROP, direction for GO
}

// Parse converts raw input into a Command. Input is upper-cased, then the
// whole line is looked up as a synonym, then the first word. A line that is
// not a built-in verb becomes GO with the line as the direction.
func Parse(input string, syn Synonyms) Command {
	line := strings.ToUpper(strings.TrimSpace(input))
	if line == "" {
		return Command{}
	}

	if syn != nil {
		line = syn.Canonical(line)
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}
	}
	if syn != nil && len(words) > 1 {
		words = append(strings.Fields(syn.Canonical(words[0])), words[1:]...)
	}

	verb := words[0]
	rest := words[1:]

	switch {
	case bareVerbs[verb] && len(rest) == 0:
		return Command{Verb: verb}

	case itemVerbs[verb]:
		return Command{Verb: verb, Object: strings.Join(rest, " ")}

	case verb == VerbGo && len(rest) > 0:
		dir := strings.Join(rest, " ")
		if syn != nil {
			dir = syn.Canonical(dir)
		}
		return Command{Verb: VerbGo, Object: dir}
	}

	return Command{Verb: VerbGo, Object: strings.Join(words, " ")}
}
