// Package room defines a single node of the world graph.
//
// Rooms refer to their neighbours by id only. The world owns every room and
// resolves ids, so a room never holds another room.
package room

import (
	"sort"

	"github.com/nathoo/adventure/types"
)

// Forced is the reserved direction token for automatic transitions.
const Forced = "FORCED"

// Conditional is one item-gated exit. Target is the raw target token from
// the world file and is resolved by the world at move time.
type Conditional struct {
	Direction string
	Target    string
}

// Room is a location the player can occupy.
type Room struct {
	ID          int
	Name        string
	Description string

	connections  map[string]int
	conditionals map[string][]Conditional // item name → ordered exits
	items        []types.Item
	visited      bool
}

// New creates an empty, unvisited room.
func New(id int, name, description string) *Room {
	return &Room{
		ID:           id,
		Name:         name,
		Description:  description,
		connections:  map[string]int{},
		conditionals: map[string][]Conditional{},
	}
}

// AddConnection registers an unconditional exit. A later call for the same
// direction replaces the earlier target.
func (r *Room) AddConnection(direction string, target int) {
	r.connections[direction] = target
}

// AddConditional appends an exit that is only usable while item is carried.
func (r *Room) AddConditional(item, direction, target string) {
	r.conditionals[item] = append(r.conditionals[item], Conditional{Direction: direction, Target: target})
}

// HasConnection reports whether an unconditional exit exists for direction.
func (r *Room) HasConnection(direction string) bool {
	_, ok := r.connections[direction]
	return ok
}

// Connection returns the target room id for direction.
func (r *Room) Connection(direction string) (int, bool) {
	id, ok := r.connections[direction]
	return id, ok
}

// Conditionals returns the exits gated by item, in file order.
func (r *Room) Conditionals(item string) []Conditional {
	return r.conditionals[item]
}

// GatingItems returns the item names that gate at least one exit, sorted.
func (r *Room) GatingItems() []string {
	names := make([]string, 0, len(r.conditionals))
	for name := range r.conditionals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Directions returns the player-visible unconditional directions, sorted.
// The reserved FORCED token is not listed.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.connections))
	for dir := range r.connections {
		if dir == Forced {
			continue
		}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// AddItem appends an item to the room.
func (r *Room) AddItem(item types.Item) {
	r.items = append(r.items, item)
}

// RemoveItem removes the first item named name and returns it.
func (r *Room) RemoveItem(name string) (types.Item, bool) {
	for i, it := range r.items {
		if it.Name == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return it, true
		}
	}
	return types.Item{}, false
}

// Items returns a copy of the items currently in the room.
func (r *Room) Items() []types.Item {
	out := make([]types.Item, len(r.items))
	copy(out, r.items)
	return out
}

// SetVisited marks the room as visited. The flag never reverts.
func (r *Room) SetVisited() {
	r.visited = true
}

// IsVisited reports whether the room has been described to the player.
func (r *Room) IsVisited() bool {
	return r.visited
}
