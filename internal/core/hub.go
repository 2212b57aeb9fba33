package core

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultGrace is how long an emptied room survives an implicit disconnect
// before it is destroyed.
const DefaultGrace = 10 * time.Second

// ErrHubStopped is returned by View when the hub loop has exited.
var ErrHubStopped = errors.New("hub stopped")

type inboundCommand struct {
	client *Client
	cmd    *Command
}

type graceExpiry struct {
	code string
	gen  uint64
}

// Hub is the single writer for all room state. Run owns the registry and
// every room; connections reach it only through channels, so per-room
// mutations never interleave and broadcasts leave in mutation order.
type Hub struct {
	log   zerolog.Logger
	grace time.Duration

	registry *Registry
	clients  map[string]*Client

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundCommand
	expired    chan graceExpiry
	views      chan func(*Registry)
	done       chan struct{}
}

// NewHub creates a hub. A nil logger disables logging; a non-positive grace
// falls back to DefaultGrace.
func NewHub(logger *zerolog.Logger, grace time.Duration) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if grace <= 0 {
		grace = DefaultGrace
	}
	return &Hub{
		log:        *logger,
		grace:      grace,
		registry:   NewRegistry(),
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundCommand, 64),
		expired:    make(chan graceExpiry, 16),
		views:      make(chan func(*Registry)),
		done:       make(chan struct{}),
	}
}

// Run processes commands until ctx is cancelled. It must be running before
// clients are registered.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c.ConnID] = c
			go h.pump(c)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case in := <-h.inbound:
			h.dispatch(in.client, in.cmd)
		case ex := <-h.expired:
			h.handleExpiry(ex)
		case fn := <-h.views:
			fn(h.registry)
		}
	}
}

// RegisterClient hands a connection to the hub loop.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient runs the implicit-disconnect path. Idempotent: calling it
// for an already-removed connection is a no-op.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// pump forwards one client's commands into the hub's serialized inbound
// queue. It exits when the client's command channel closes on disconnect.
func (h *Hub) pump(c *Client) {
	for {
		select {
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			select {
			case h.inbound <- inboundCommand{client: c, cmd: cmd}:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	if cmd == nil || c.state == StateClosed {
		return
	}
	if c.state == StateUnjoined && cmd.Kind != CommandJoin {
		// No room context yet; drop silently.
		return
	}
	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(c, cmd)
	case CommandStroke:
		h.handleStroke(c, cmd)
	case CommandUndo:
		h.handleUndo(c)
	case CommandRedo:
		h.handleRedo(c)
	case CommandRename:
		h.handleRename(c, cmd)
	case CommandCursor:
		h.handleCursor(c, cmd)
	case CommandLeave:
		h.handleLeave(c)
	}
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	if c.state != StateUnjoined {
		return
	}
	if strings.TrimSpace(cmd.Room) == "" {
		h.send(c, &Event{Kind: EventError, Error: &CoreError{Code: ErrCodeBadRequest, Message: "room is required"}})
		return
	}

	room := h.registry.ResolveOrCreate(cmd.Room)
	h.cancelGrace(room)

	p, prev := room.Join(c.ConnID, cmd.Name, c.Origin)
	if prev != "" && prev != c.ConnID {
		// Reconnect from the same origin: the new connection takes over the
		// participant, the stale one stops receiving anything.
		room.Detach(prev)
		h.registry.Unbind(prev)
		if old, ok := h.clients[prev]; ok {
			old.state = StateClosed
		}
	}

	h.registry.Bind(c.ConnID, room.Code)
	room.Attach(c)
	c.state = StateJoined

	h.log.Info().
		Str("room", room.Code).
		Str("conn_id", c.ConnID).
		Str("name", p.Name).
		Bool("reconnect", prev != "").
		Msg("participant joined")

	h.send(c, &Event{
		Kind:         EventJoined,
		Room:         room.Code,
		ConnID:       c.ConnID,
		Participants: room.Participants(),
		Strokes:      room.Strokes(),
	})
	room.Broadcast(&Event{
		Kind:         EventParticipants,
		Room:         room.Code,
		Participants: room.Participants(),
	}, c.ConnID)
}

func (h *Hub) handleStroke(c *Client, cmd *Command) {
	if cmd.Stroke == nil {
		return
	}
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	if !ok {
		return
	}
	room.AppendStroke(*cmd.Stroke)
	room.Broadcast(&Event{Kind: EventStroke, Room: room.Code, Stroke: cmd.Stroke}, c.ConnID)
}

func (h *Hub) handleUndo(c *Client) {
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	if !ok {
		return
	}
	undone := room.Undo()
	if undone == nil {
		return // empty stack, nothing to broadcast
	}
	room.Broadcast(&Event{Kind: EventUndo, Room: room.Code, StrokeID: undone.ID}, "")
}

func (h *Hub) handleRedo(c *Client) {
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	if !ok {
		return
	}
	redone := room.Redo()
	if redone == nil {
		return
	}
	room.Broadcast(&Event{Kind: EventRedo, Room: room.Code, Stroke: redone}, "")
}

func (h *Hub) handleRename(c *Client, cmd *Command) {
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	if !ok {
		return
	}
	if !room.Rename(c.ConnID, cmd.Name) {
		return
	}
	room.Broadcast(&Event{
		Kind:         EventParticipants,
		Room:         room.Code,
		Participants: room.Participants(),
	}, "")
}

func (h *Hub) handleCursor(c *Client, cmd *Command) {
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	if !ok {
		return
	}
	room.Broadcast(&Event{
		Kind:   EventCursor,
		Room:   room.Code,
		Cursor: &Cursor{ConnID: c.ConnID, X: cmd.X, Y: cmd.Y},
	}, c.ConnID)
}

func (h *Hub) handleLeave(c *Client) {
	h.removeFromRoom(c, true)
	c.state = StateClosed
}

func (h *Hub) handleDisconnect(c *Client) {
	if _, ok := h.clients[c.ConnID]; !ok {
		return
	}
	delete(h.clients, c.ConnID)
	close(c.Commands)
	if c.state == StateJoined {
		h.removeFromRoom(c, false)
	}
	c.state = StateClosed
}

// removeFromRoom drops the participant and, if the room emptied, destroys it
// immediately (explicit leave) or arms the grace timer (disconnect).
func (h *Hub) removeFromRoom(c *Client, explicit bool) {
	room, ok := h.registry.RoomOfConnection(c.ConnID)
	h.registry.Unbind(c.ConnID)
	if !ok {
		return
	}
	room.Detach(c.ConnID)
	if !room.RemoveParticipant(c.ConnID) {
		return
	}

	h.log.Info().
		Str("room", room.Code).
		Str("conn_id", c.ConnID).
		Bool("explicit", explicit).
		Msg("participant left")

	room.Broadcast(&Event{
		Kind:         EventParticipants,
		Room:         room.Code,
		Participants: room.Participants(),
	}, c.ConnID)

	if !room.Empty() {
		return
	}
	if explicit {
		h.registry.Destroy(room.Code)
		h.log.Info().Str("room", room.Code).Msg("room destroyed")
		return
	}
	h.scheduleGrace(room)
}

// scheduleGrace arms the deletion timer for an emptied room. The generation
// counter makes a stale expiry (after a rejoin or destruction) a no-op.
func (h *Hub) scheduleGrace(room *Room) {
	room.graceGen++
	gen := room.graceGen
	code := room.Code
	room.graceTimer = time.AfterFunc(h.grace, func() {
		select {
		case h.expired <- graceExpiry{code: code, gen: gen}:
		case <-h.done:
		}
	})
	h.log.Info().Str("room", code).Dur("grace", h.grace).Msg("room deletion scheduled")
}

func (h *Hub) cancelGrace(room *Room) {
	if room.graceTimer == nil {
		return
	}
	room.graceTimer.Stop()
	room.graceTimer = nil
	room.graceGen++
	h.log.Info().Str("room", room.Code).Msg("room deletion canceled")
}

func (h *Hub) handleExpiry(ex graceExpiry) {
	room, ok := h.registry.Lookup(ex.code)
	if !ok || room.graceGen != ex.gen || !room.Empty() {
		return
	}
	h.registry.Destroy(ex.code)
	h.log.Info().Str("room", ex.code).Msg("room destroyed after grace period")
}

func (h *Hub) send(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}

// View runs fn on the hub goroutine with read access to the registry. Used
// by the REST inspection surface so reads never race the loop.
func (h *Hub) View(ctx context.Context, fn func(*Registry)) error {
	ran := make(chan struct{})
	wrapped := func(reg *Registry) {
		fn(reg)
		close(ran)
	}
	select {
	case h.views <- wrapped:
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RoomSummary is a read-only view of one room for the inspection API.
type RoomSummary struct {
	Code         string
	Participants int
	Strokes      int
}

// RoomSummaries lists live rooms sorted by code.
func (h *Hub) RoomSummaries(ctx context.Context) ([]RoomSummary, error) {
	var out []RoomSummary
	err := h.View(ctx, func(reg *Registry) {
		for _, room := range reg.Rooms() {
			out = append(out, RoomSummary{
				Code:         room.Code,
				Participants: len(room.participants),
				Strokes:      len(room.strokes),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b RoomSummary) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out, nil
}

// RoomDetail is the per-room inspection view.
type RoomDetail struct {
	Code         string
	Participants []Participant
	Strokes      int
}

// LookupRoom returns the inspection view for one room code.
func (h *Hub) LookupRoom(ctx context.Context, code string) (*RoomDetail, error) {
	var detail *RoomDetail
	err := h.View(ctx, func(reg *Registry) {
		room, ok := reg.Lookup(code)
		if !ok {
			return
		}
		detail = &RoomDetail{
			Code:         room.Code,
			Participants: room.Participants(),
			Strokes:      len(room.strokes),
		}
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}
