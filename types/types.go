// Package types defines the shared data structures for the adventure engine.
// It holds plain data only; behaviour lives in the engine packages.
package types

// Item is a portable object found in rooms and carried by the player.
// Name is the exact-match key used by take and drop.
type Item struct {
	Name        string
	Description string
}

// RoomRecord is one line of the room section of a world file.
type RoomRecord struct {
	ID          int
	Name        string // short form, shown once the room is visited
	Description string // long form, shown on first entry and by LOOK
}

// Link is a single (direction, target) pair from a connection record.
// Target is the raw token: a room id, or "<room>/<item>" for a conditional link.
type Link struct {
	Direction string
	Target    string
}

// ConnectionRecord is one line of the connection section of a world file.
type ConnectionRecord struct {
	Source int
	Links  []Link
}

// PlacementRecord puts an item in a room at load time.
type PlacementRecord struct {
	Item Item
	Room int
}

// Defs holds everything a loader produces for world construction.
type Defs struct {
	Title       string // game name, used for logging and display
	Rooms       []RoomRecord
	Connections []ConnectionRecord
	Placements  []PlacementRecord
	Synonyms    map[string]string // input token → canonical command
}

// Event is emitted by the engine when a command changes world state.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single engine step.
type Result struct {
	Events []Event
	Output []string
	Quit   bool
}
