package core

import "strings"

// Registry is the process-wide room table plus the connection index used to
// route commands without the client re-sending the room code. It is owned by
// the hub goroutine; nothing else touches it.
type Registry struct {
	rooms map[string]*Room
	conns map[string]string // connID -> room code
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		conns: make(map[string]string),
	}
}

// NormalizeCode upper-cases a room code so that "abc" and "ABC" address the
// same room.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResolveOrCreate returns the room for code, creating an empty one on first
// join. Never fails.
func (g *Registry) ResolveOrCreate(code string) *Room {
	code = NormalizeCode(code)
	room, ok := g.rooms[code]
	if !ok {
		room = NewRoom(code)
		g.rooms[code] = room
	}
	return room
}

// Lookup returns the room for code without creating it.
func (g *Registry) Lookup(code string) (*Room, bool) {
	room, ok := g.rooms[NormalizeCode(code)]
	return room, ok
}

// RoomOfConnection resolves the room a connection currently belongs to.
func (g *Registry) RoomOfConnection(connID string) (*Room, bool) {
	code, ok := g.conns[connID]
	if !ok {
		return nil, false
	}
	room, ok := g.rooms[code]
	return room, ok
}

// Bind records that connID belongs to code's room.
func (g *Registry) Bind(connID, code string) {
	g.conns[connID] = NormalizeCode(code)
}

// Unbind forgets a connection. Safe for unknown ids.
func (g *Registry) Unbind(connID string) {
	delete(g.conns, connID)
}

// Destroy removes a room, stopping its grace timer first so it cannot fire
// against freed state. A no-op for unknown codes.
func (g *Registry) Destroy(code string) {
	code = NormalizeCode(code)
	room, ok := g.rooms[code]
	if !ok {
		return
	}
	if room.graceTimer != nil {
		room.graceTimer.Stop()
		room.graceTimer = nil
	}
	room.graceGen++
	delete(g.rooms, code)
}

// Rooms returns the registered room aggregates in no particular order.
func (g *Registry) Rooms() []*Room {
	out := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		out = append(out, room)
	}
	return out
}

// Len reports how many rooms are live.
func (g *Registry) Len() int {
	return len(g.rooms)
}
