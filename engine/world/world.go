// Package world owns the room graph, the synonym table and the player's
// inventory and position. It builds the graph from loader records and
// enforces the navigation rules.
package world

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/adventure/engine/history"
	"github.com/nathoo/adventure/engine/room"
	"github.com/nathoo/adventure/types"
)

// StartRoom is the id of the room every game begins in.
const StartRoom = 1

// Construction errors. All of them abort startup.
var (
	ErrNoStartRoom = errors.New("start room 1 not found")
	ErrUnknownRoom = errors.New("unknown room")
	ErrBadRoomID   = errors.New("room ids must be positive")
	ErrBadTarget   = errors.New("malformed connection target")
	ErrForcedCycle = errors.New("forced connections form a cycle")
)

const helpText = "You can move by typing directions such as EAST/WEST/IN/OUT\n" +
	"QUIT quits the game.\n" +
	"HELP prints instructions for the game.\n" +
	"INVENTORY lists the item in your inventory.\n" +
	"LOOK lists the complete description of the room and its contents.\n" +
	"TAKE <item> take item from the room.\n" +
	"DROP <item> drop item from your inventory.\n" +
	"BACK returns to the room you came from."

// World is the mutable state of one play session.
type World struct {
	title     string
	rooms     map[int]*room.Room
	byName    map[string]int // room name → lowest id carrying it
	synonyms  map[string]string
	inventory []types.Item
	current   *room.Room
}

// New builds the world graph from loader records and places the player in
// room 1. Rooms are created first, then connections, then item placements.
func New(defs *types.Defs) (*World, error) {
	w := &World{
		title:     defs.Title,
		rooms:     make(map[int]*room.Room, len(defs.Rooms)),
		byName:    map[string]int{},
		synonyms:  make(map[string]string, len(defs.Synonyms)),
		inventory: []types.Item{},
	}

	// Duplicate ids overwrite: last write wins.
	for _, rec := range defs.Rooms {
		if rec.ID <= 0 {
			return nil, fmt.Errorf("room %d (%q): %w", rec.ID, rec.Name, ErrBadRoomID)
		}
		w.rooms[rec.ID] = room.New(rec.ID, rec.Name, rec.Description)
	}
	for _, id := range w.IDs() {
		name := w.rooms[id].Name
		if _, ok := w.byName[name]; !ok {
			w.byName[name] = id
		}
	}

	for _, rec := range defs.Connections {
		if err := w.connect(rec); err != nil {
			return nil, err
		}
	}

	for _, p := range defs.Placements {
		r, ok := w.rooms[p.Room]
		if !ok {
			return nil, fmt.Errorf("item %q placed in room %d: %w", p.Item.Name, p.Room, ErrUnknownRoom)
		}
		r.AddItem(p.Item)
	}

	for token, canonical := range defs.Synonyms {
		w.synonyms[token] = canonical
	}

	start, ok := w.rooms[StartRoom]
	if !ok {
		return nil, ErrNoStartRoom
	}
	w.current = start

	if err := w.checkForcedCycles(); err != nil {
		return nil, err
	}
	return w, nil
}

// connect registers every link of a connection record on its source room.
// Integer targets become unconditional exits; "<room>/<item>" targets become
// exits gated by item.
func (w *World) connect(rec types.ConnectionRecord) error {
	src, ok := w.rooms[rec.Source]
	if !ok {
		return fmt.Errorf("connections from room %d: %w", rec.Source, ErrUnknownRoom)
	}
	for _, link := range rec.Links {
		target := strings.TrimSpace(link.Target)
		if id, err := strconv.Atoi(target); err == nil {
			if _, ok := w.rooms[id]; !ok {
				return fmt.Errorf("room %d exit %q points to room %d: %w", rec.Source, link.Direction, id, ErrUnknownRoom)
			}
			src.AddConnection(link.Direction, id)
			continue
		}
		dest, item, found := strings.Cut(target, "/")
		if !found || dest == "" || item == "" {
			return fmt.Errorf("room %d exit %q target %q: %w", rec.Source, link.Direction, link.Target, ErrBadTarget)
		}
		src.AddConditional(item, link.Direction, dest)
	}
	return nil
}

// checkForcedCycles rejects worlds where following FORCED exits could never
// end. A room with a plain FORCED exit is left automatically; when the player
// carries the right item it may instead leave through an item-gated FORCED
// exit, so those edges count too. Gated FORCED exits in rooms without a plain
// one are never followed automatically and are ignored here.
func (w *World) checkForcedCycles() error {
	const (
		unseen = iota
		onPath
		done
	)
	state := make(map[int]int, len(w.rooms))

	var visit func(id int) error
	visit = func(id int) error {
		state[id] = onPath
		for _, next := range w.forcedTargets(w.rooms[id]) {
			switch state[next] {
			case onPath:
				return fmt.Errorf("room %d leads back to room %d: %w", id, next, ErrForcedCycle)
			case unseen:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range w.IDs() {
		if state[id] == unseen {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// forcedTargets lists every room a forced move out of r can reach.
func (w *World) forcedTargets(r *room.Room) []int {
	plain, ok := r.Connection(room.Forced)
	if !ok {
		return nil
	}
	targets := []int{plain}
	for _, item := range r.GatingItems() {
		for _, c := range r.Conditionals(item) {
			if c.Direction != room.Forced {
				continue
			}
			if dest, ok := w.Resolve(c.Target); ok {
				targets = append(targets, dest.ID)
			}
		}
	}
	return targets
}

// Resolve maps a conditional target token to a room. Integer tokens are room
// ids; anything else is matched against room names exactly, the lowest id
// winning when several rooms share a name.
func (w *World) Resolve(target string) (*room.Room, bool) {
	if id, err := strconv.Atoi(target); err == nil {
		r, ok := w.rooms[id]
		return r, ok
	}
	id, ok := w.byName[target]
	if !ok {
		return nil, false
	}
	return w.rooms[id], true
}

// Move attempts to leave the current room in direction. Conditional exits
// gated by carried items are tried first, in inventory order. The room being
// left is pushed onto h unless the move follows a FORCED exit. h may be nil.
func (w *World) Move(direction string, h *history.History) bool {
	if w.conditionalMove(direction, h) {
		return true
	}

	target, ok := w.current.Connection(direction)
	if !ok {
		return false
	}
	if direction != room.Forced && h != nil {
		h.Push(w.current)
	}
	w.current = w.rooms[target]
	return true
}

func (w *World) conditionalMove(direction string, h *history.History) bool {
	for _, item := range w.inventory {
		for _, c := range w.current.Conditionals(item.Name) {
			if c.Direction != direction {
				continue
			}
			dest, ok := w.Resolve(c.Target)
			if !ok {
				continue
			}
			if h != nil {
				h.Push(w.current)
			}
			w.current = dest
			return true
		}
	}
	return false
}

// Back returns the player to the most recently left room. On an empty
// history the current room is unchanged and history.ErrEmptyHistory is
// returned.
func (w *World) Back(h *history.History) error {
	prev, err := h.Pop()
	if err != nil {
		return err
	}
	w.current = prev
	return nil
}

// IsForced reports whether the current room has a FORCED exit.
func (w *World) IsForced() bool {
	return w.current.HasConnection(room.Forced)
}

// Description returns the long description on the first call for a room
// and marks it visited; afterwards it returns the short name.
func (w *World) Description() string {
	if w.current.IsVisited() {
		return w.current.Name
	}
	w.current.SetVisited()
	return w.current.Description
}

// LongDescription returns the long description without side effects.
func (w *World) LongDescription() string {
	return w.current.Description
}

// Take moves the first item named name from the current room to the end of
// the inventory.
func (w *World) Take(name string) string {
	item, ok := w.current.RemoveItem(name)
	if !ok {
		return "No such item."
	}
	w.inventory = append(w.inventory, item)
	return name + " taken."
}

// Drop moves the first carried item named name into the current room.
func (w *World) Drop(name string) string {
	for i, item := range w.inventory {
		if item.Name == name {
			w.inventory = append(w.inventory[:i], w.inventory[i+1:]...)
			w.current.AddItem(item)
			return name + " dropped."
		}
	}
	return "No such item."
}

// HasItem reports whether the player carries an item named name.
func (w *World) HasItem(name string) bool {
	for _, item := range w.inventory {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Inventory returns a copy of the carried items in pickup order.
func (w *World) Inventory() []types.Item {
	out := make([]types.Item, len(w.inventory))
	copy(out, w.inventory)
	return out
}

// Current returns the room the player occupies.
func (w *World) Current() *room.Room {
	return w.current
}

// Room returns the room with the given id.
func (w *World) Room(id int) (*room.Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// IDs returns all room ids in ascending order.
func (w *World) IDs() []int {
	ids := make([]int, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RoomCount returns the number of rooms in the world.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// Canonical expands a synonym to its canonical command. Unknown tokens are
// returned unchanged.
func (w *World) Canonical(token string) string {
	if c, ok := w.synonyms[token]; ok {
		return c
	}
	return token
}

// Title returns the game name the world was loaded under.
func (w *World) Title() string {
	return w.title
}

// Help returns the static instruction text.
func (w *World) Help() string {
	return helpText
}
