package parser

import (
	"testing"
)

type synonymTable map[string]string

func (s synonymTable) Canonical(token string) string {
	if c, ok := s[token]; ok {
		return c
	}
	return token
}

var testSynonyms = synonymTable{
	"N":   "NORTH",
	"S":   "SOUTH",
	"I":   "INVENTORY",
	"Q":   "QUIT",
	"GET": "TAKE",
	"L":   "LOOK",
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		// Empty / whitespace
		{name: "empty string", input: "", want: Command{}},
		{name: "whitespace only", input: "   ", want: Command{}},

		// Bare verbs
		{name: "help", input: "help", want: Command{Verb: VerbHelp}},
		{name: "look", input: "LOOK", want: Command{Verb: VerbLook}},
		{name: "back", input: "Back", want: Command{Verb: VerbBack}},
		{name: "inventory", input: "inventory", want: Command{Verb: VerbInventory}},
		{name: "quit", input: "quit", want: Command{Verb: VerbQuit}},

		// Synonyms
		{name: "i → inventory", input: "i", want: Command{Verb: VerbInventory}},
		{name: "q → quit", input: "q", want: Command{Verb: VerbQuit}},
		{name: "l → look", input: "l", want: Command{Verb: VerbLook}},
		{name: "n → go north", input: "n", want: Command{Verb: VerbGo, Object: "NORTH"}},
		{name: "get lamp → take lamp", input: "get lamp", want: Command{Verb: VerbTake, Object: "LAMP"}},

		// Items
		{name: "take key", input: "take key", want: Command{Verb: VerbTake, Object: "KEY"}},
		{name: "drop key", input: "drop  key ", want: Command{Verb: VerbDrop, Object: "KEY"}},
		{name: "take without object", input: "take", want: Command{Verb: VerbTake}},
		{name: "take two words", input: "take brass key", want: Command{Verb: VerbTake, Object: "BRASS KEY"}},

		// Movement
		{name: "direction", input: "west", want: Command{Verb: VerbGo, Object: "WEST"}},
		{name: "free-form direction", input: "xyzzy", want: Command{Verb: VerbGo, Object: "XYZZY"}},
		{name: "go north", input: "go north", want: Command{Verb: VerbGo, Object: "NORTH"}},
		{name: "go n", input: "go n", want: Command{Verb: VerbGo, Object: "NORTH"}},
		{name: "bare go", input: "go", want: Command{Verb: VerbGo, Object: "GO"}},

		// Bare verbs with trailing words are not built-ins.
		{name: "look around", input: "look around", want: Command{Verb: VerbGo, Object: "LOOK AROUND"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, testSynonyms)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_NilSynonyms(t *testing.T) {
	got := Parse("n", nil)
	want := Command{Verb: VerbGo, Object: "N"}
	if got != want {
		t.Errorf("Parse(n, nil) = %+v, want %+v", got, want)
	}
}

func TestParse_WholeLineSynonym(t *testing.T) {
	syn := synonymTable{"PICK UP": "TAKE"}
	got := Parse("pick up", syn)
	if got.Verb != VerbTake || got.Object != "" {
		t.Errorf("expected bare TAKE, got %+v", got)
	}
}
