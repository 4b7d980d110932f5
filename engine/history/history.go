// Package history implements the stack of rooms used by the BACK command.
package history

import (
	"errors"

	"github.com/nathoo/adventure/engine/room"
)

// ErrEmptyHistory is returned by Pop when there is no room to return to.
var ErrEmptyHistory = errors.New("history is empty")

// History is a last-in-first-out stack of previously occupied rooms.
type History struct {
	rooms []*room.Room
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Push records a room the player is leaving.
func (h *History) Push(r *room.Room) {
	h.rooms = append(h.rooms, r)
}

// Pop removes and returns the most recently pushed room.
func (h *History) Pop() (*room.Room, error) {
	if len(h.rooms) == 0 {
		return nil, ErrEmptyHistory
	}
	last := h.rooms[len(h.rooms)-1]
	h.rooms[len(h.rooms)-1] = nil
	h.rooms = h.rooms[:len(h.rooms)-1]
	return last, nil
}

// Peek returns the most recently pushed room without removing it.
func (h *History) Peek() (*room.Room, bool) {
	if len(h.rooms) == 0 {
		return nil, false
	}
	return h.rooms[len(h.rooms)-1], true
}

// Len returns the number of rooms on the stack.
func (h *History) Len() int {
	return len(h.rooms)
}
