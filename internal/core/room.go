package core

import (
	"strconv"
	"time"
)

// Room is the aggregate for one collaboration session: the presence table,
// the stroke log and the shared undo/redo stacks. Every field is owned by
// the hub goroutine, so Room carries no locking of its own.
type Room struct {
	Code string

	participants []*Participant     // join order
	clients      map[string]*Client // connID -> attached connection

	strokes   []Stroke
	strokePos map[string]int // stroke id -> position of its first log entry
	undoStack []Stroke
	redoStack []Stroke

	graceTimer *time.Timer
	graceGen   uint64
}

// NewRoom constructs an empty room for the given (already normalized) code.
func NewRoom(code string) *Room {
	return &Room{
		Code:      code,
		clients:   make(map[string]*Client),
		strokePos: make(map[string]int),
	}
}

// Join adds a participant or reconciles a reconnect. When a participant with
// the same origin already exists, its connection id and name are updated in
// place and the previous connection id is returned; otherwise a fresh
// participant with a unique display name and a random color is inserted.
func (r *Room) Join(connID, name, origin string) (p *Participant, prevConnID string) {
	if name == "" {
		name = "guest"
	}

	for _, existing := range r.participants {
		if existing.Origin == origin {
			prev := existing.ConnID
			existing.ConnID = connID
			existing.Name = r.uniqueName(name, connID)
			return existing, prev
		}
	}

	p = &Participant{
		ConnID: connID,
		Name:   r.uniqueName(name, connID),
		Color:  randomColor(),
		Origin: origin,
	}
	r.participants = append(r.participants, p)
	return p, ""
}

// Rename updates a participant's display name, re-applying the uniqueness
// suffix against everyone else. Returns false if the connection is unknown.
func (r *Room) Rename(connID, name string) bool {
	if name == "" {
		name = "guest"
	}
	for _, p := range r.participants {
		if p.ConnID == connID {
			p.Name = r.uniqueName(name, connID)
			return true
		}
	}
	return false
}

// uniqueName appends an increasing numeric suffix to base until no other
// participant (excluding connID's own entry) holds the same name.
func (r *Room) uniqueName(base, connID string) string {
	name := base
	for counter := 1; r.nameTaken(name, connID); counter++ {
		name = base + strconv.Itoa(counter)
	}
	return name
}

func (r *Room) nameTaken(name, exceptConnID string) bool {
	for _, p := range r.participants {
		if p.ConnID != exceptConnID && p.Name == name {
			return true
		}
	}
	return false
}

// RemoveParticipant drops a participant by connection id.
func (r *Room) RemoveParticipant(connID string) bool {
	for i, p := range r.participants {
		if p.ConnID == connID {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			return true
		}
	}
	return false
}

// Empty returns true if no participants remain.
func (r *Room) Empty() bool {
	return len(r.participants) == 0
}

// Participants returns a snapshot of the presence table in join order.
func (r *Room) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	for i, p := range r.participants {
		out[i] = *p
	}
	return out
}

// Strokes returns a snapshot of the committed stroke log.
func (r *Room) Strokes() []Stroke {
	out := make([]Stroke, len(r.strokes))
	copy(out, r.strokes)
	return out
}

// AppendStroke commits a finished stroke: it enters the log and the undo
// stack, and any redo history is discarded (linear undo, no branching).
func (r *Room) AppendStroke(s Stroke) {
	if _, ok := r.strokePos[s.ID]; !ok {
		r.strokePos[s.ID] = len(r.strokes)
	}
	r.strokes = append(r.strokes, s)
	r.undoStack = append(r.undoStack, s)
	r.redoStack = nil
}

// Undo pops the most recent undoable stroke, moves it to the redo stack and
// removes it from the log by id. Returns nil when there is nothing to undo.
func (r *Room) Undo() *Stroke {
	if len(r.undoStack) == 0 {
		return nil
	}
	s := r.undoStack[len(r.undoStack)-1]
	r.undoStack = r.undoStack[:len(r.undoStack)-1]
	r.redoStack = append(r.redoStack, s)
	r.removeStroke(s.ID)
	return &s
}

// Redo re-commits the most recently undone stroke. Returns nil when the redo
// stack is empty.
func (r *Room) Redo() *Stroke {
	if len(r.redoStack) == 0 {
		return nil
	}
	s := r.redoStack[len(r.redoStack)-1]
	r.redoStack = r.redoStack[:len(r.redoStack)-1]
	r.undoStack = append(r.undoStack, s)
	if _, ok := r.strokePos[s.ID]; !ok {
		r.strokePos[s.ID] = len(r.strokes)
	}
	r.strokes = append(r.strokes, s)
	return &s
}

// removeStroke deletes the first log entry with the given id, keeping the
// id->position index consistent for the shifted tail.
func (r *Room) removeStroke(id string) bool {
	pos, ok := r.strokePos[id]
	if !ok {
		return false
	}
	delete(r.strokePos, id)
	copy(r.strokes[pos:], r.strokes[pos+1:])
	r.strokes = r.strokes[:len(r.strokes)-1]
	for i := pos; i < len(r.strokes); i++ {
		sid := r.strokes[i].ID
		if cur, indexed := r.strokePos[sid]; !indexed || cur > i {
			r.strokePos[sid] = i
		}
	}
	return true
}

// Attach subscribes a connection to the room's broadcasts.
func (r *Room) Attach(c *Client) {
	r.clients[c.ConnID] = c
}

// Detach unsubscribes a connection. Safe to call for unknown ids.
func (r *Room) Detach(connID string) {
	delete(r.clients, connID)
}

// Broadcast sends an event to every attached connection except the one named
// by exceptConnID (pass "" to reach the whole room).
func (r *Room) Broadcast(event *Event, exceptConnID string) {
	for id, client := range r.clients {
		if id == exceptConnID {
			continue
		}
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}
