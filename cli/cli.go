// Package cli provides the plain terminal loop for Adventure: prompt, meta
// commands and script playback.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/adventure/engine"
	"github.com/nathoo/adventure/types"
)

// DefaultWidth is the column at which game text is wrapped.
const DefaultWidth = 80

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Width     int // wrap column; 0 disables wrapping
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Width:  DefaultWidth,
	}
}

// Run starts the game loop and returns when the player quits or input ends.
func (c *CLI) Run() {
	c.printResult(c.Engine.Start())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Comment lines in script files.
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
		if result.Quit {
			c.printSystem("Goodbye.")
			return
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   Exit game",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /trace  Toggle event trace output",
		"",
		"Game commands:",
	}
	for _, line := range help {
		c.printLine(line)
	}
	for _, line := range strings.Split(c.Engine.World.Help(), "\n") {
		c.printLine("  " + line)
	}
	c.printLine("  AGAIN (G): repeat your last command")
}

func (c *CLI) cmdState() {
	w := c.Engine.World
	cur := w.Current()
	c.printSystem(fmt.Sprintf("Turn: %d", c.Engine.TurnCount))
	c.printSystem(fmt.Sprintf("Room: %d (%s)", cur.ID, cur.Name))
	c.printSystem(fmt.Sprintf("Exits: %s", strings.Join(cur.Directions(), ", ")))
	names := make([]string, 0)
	for _, it := range w.Inventory() {
		names = append(names, it.Name)
	}
	c.printSystem(fmt.Sprintf("Inventory: %v", names))
	back := "none"
	if prev, ok := c.Engine.History.Peek(); ok {
		back = prev.Name
	}
	c.printSystem(fmt.Sprintf("History: %d (back: %s)", c.Engine.History.Len(), back))
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	if c.Width > 0 {
		text = wordwrap.String(text, c.Width)
	}
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
