// Package engine provides the Step() orchestrator that turns one line of
// player input into world operations and output text.
package engine

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/adventure/engine/history"
	"github.com/nathoo/adventure/engine/parser"
	"github.com/nathoo/adventure/engine/room"
	"github.com/nathoo/adventure/engine/world"
	"github.com/nathoo/adventure/types"
)

// Player-facing messages.
const (
	msgWelcome        = "Welcome to Adventure."
	msgNoSuchItem     = "No such item."
	msgCantGoBack     = "Can't go back."
	msgInvalid        = "Invalid command."
	msgEmptyInventory = "Your inventory is empty."
)

// Event types recorded in Result.Events.
const (
	EventMoved   = "moved"
	EventForced  = "forced"
	EventBack    = "back"
	EventTaken   = "item_taken"
	EventDropped = "item_dropped"
	EventInvalid = "invalid"
)

// Engine holds one play session: the world, the back history and the
// session logger.
type Engine struct {
	World     *world.World
	History   *history.History
	SessionID string
	TurnCount int

	log *slog.Logger
}

// New creates a session over w. A nil logger uses slog.Default().
func New(w *world.World, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Engine{
		World:     w,
		History:   history.New(),
		SessionID: id,
		log:       logger.With("session", id, "game", w.Title()),
	}
}

// Start greets the player, describes the first room and follows any forced
// exits out of it.
func (e *Engine) Start() types.Result {
	var result types.Result
	result.Output = append(result.Output, msgWelcome, "", e.World.Description())
	e.followForced(&result)
	e.log.Info("session started", "room", e.World.Current().ID)
	return result
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	cmd := parser.Parse(input, e.World)
	if cmd.Verb == "" {
		return result
	}
	e.TurnCount++

	switch cmd.Verb {
	case parser.VerbHelp:
		result.Output = append(result.Output, strings.Split(e.World.Help(), "\n")...)

	case parser.VerbLook:
		result.Output = append(result.Output, e.World.LongDescription())
		result.Output = append(result.Output, itemLines(e.World.Current().Items())...)

	case parser.VerbBack:
		e.back(&result)

	case parser.VerbTake:
		e.take(&result, cmd.Object)

	case parser.VerbDrop:
		e.drop(&result, cmd.Object)

	case parser.VerbInventory:
		inv := e.World.Inventory()
		if len(inv) == 0 {
			result.Output = append(result.Output, msgEmptyInventory)
		} else {
			result.Output = append(result.Output, itemLines(inv)...)
		}

	case parser.VerbQuit:
		result.Quit = true

	default:
		e.move(&result, cmd.Object)
	}

	e.log.Debug("turn",
		"turn", e.TurnCount,
		"input", input,
		"verb", cmd.Verb,
		"object", cmd.Object,
		"room", e.World.Current().ID,
		"events", len(result.Events),
	)
	return result
}

func (e *Engine) move(result *types.Result, direction string) {
	from := e.World.Current().ID
	if !e.World.Move(direction, e.History) {
		result.Output = append(result.Output, msgInvalid)
		result.Events = append(result.Events, types.Event{
			Type: EventInvalid,
			Data: map[string]any{"direction": direction, "room": from},
		})
		return
	}
	result.Events = append(result.Events, types.Event{
		Type: EventMoved,
		Data: map[string]any{"direction": direction, "from": from, "to": e.World.Current().ID},
	})
	result.Output = append(result.Output, e.describe()...)
	e.followForced(result)
}

func (e *Engine) back(result *types.Result) {
	from := e.World.Current().ID
	if err := e.World.Back(e.History); err != nil {
		if !errors.Is(err, history.ErrEmptyHistory) {
			e.log.Error("back failed", "error", err)
		}
		result.Output = append(result.Output, msgCantGoBack)
		return
	}
	result.Events = append(result.Events, types.Event{
		Type: EventBack,
		Data: map[string]any{"from": from, "to": e.World.Current().ID},
	})
	result.Output = append(result.Output, e.World.Description())
	e.followForced(result)
}

func (e *Engine) take(result *types.Result, name string) {
	if name == "" {
		result.Output = append(result.Output, msgNoSuchItem)
		return
	}
	msg := e.World.Take(name)
	result.Output = append(result.Output, msg)
	if msg != msgNoSuchItem {
		result.Events = append(result.Events, types.Event{
			Type: EventTaken,
			Data: map[string]any{"item": name, "room": e.World.Current().ID},
		})
	}
}

func (e *Engine) drop(result *types.Result, name string) {
	if !e.World.HasItem(name) {
		result.Output = append(result.Output, msgNoSuchItem)
		return
	}
	result.Output = append(result.Output, e.World.Drop(name))
	result.Events = append(result.Events, types.Event{
		Type: EventDropped,
		Data: map[string]any{"item": name, "room": e.World.Current().ID},
	})
}

// followForced takes FORCED exits until the player lands in a room without
// one. World construction rejects every forced cycle, gated or not, so the
// room-count cap only guards against a broken world.
func (e *Engine) followForced(result *types.Result) {
	for steps := 0; e.World.IsForced(); steps++ {
		if steps >= e.World.RoomCount() {
			e.log.Error("forced chain did not terminate", "room", e.World.Current().ID)
			return
		}
		from := e.World.Current().ID
		if !e.World.Move(room.Forced, e.History) {
			return
		}
		result.Events = append(result.Events, types.Event{
			Type: EventForced,
			Data: map[string]any{"from": from, "to": e.World.Current().ID},
		})
		result.Output = append(result.Output, e.World.Description())
	}
}

// describe produces the output for a room entered by a player move: the
// description followed by the items lying in it. Start, BACK and forced
// moves print the description alone.
func (e *Engine) describe() []string {
	out := []string{e.World.Description()}
	return append(out, itemLines(e.World.Current().Items())...)
}

func itemLines(items []types.Item) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.Name+": "+it.Description)
	}
	return lines
}
