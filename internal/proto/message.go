package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin   = "join"
	InboundTypeStroke = "stroke"
	InboundTypeUndo   = "undo"
	InboundTypeRedo   = "redo"
	InboundTypeRename = "rename"
	InboundTypeCursor = "cursor"
	InboundTypeLeave  = "leave"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventJoined       = "joined"
	EventParticipants = "participants"
	EventStroke       = "stroke"
	EventUndo         = "undo"
	EventRedo         = "redo"
	EventCursor       = "cursor"
)

// Point is one coordinate sample on a stroke path.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// JoinData requests to enter a room.
type JoinData struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

// StrokeData is a finished stroke. The id is generated client-side and
// treated as opaque.
type StrokeData struct {
	ID    string  `json:"id"`
	Path  []Point `json:"path"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Tool  string  `json:"tool"`
}

// RenameData changes the sender's display name.
type RenameData struct {
	Name string `json:"name"`
}

// CursorData reports a live pointer position. Not persisted.
type CursorData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Participant is a room member as shown to clients. Origin addresses are
// never put on the wire.
type Participant struct {
	ConnID string `json:"connId"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// EventJoinedData is the full room snapshot sent only to the joining client.
type EventJoinedData struct {
	ConnID       string        `json:"connId"`
	Room         string        `json:"room"`
	Participants []Participant `json:"participants"`
	Strokes      []StrokeData  `json:"strokes"`
}

// EventParticipantsData carries the updated participant list.
type EventParticipantsData struct {
	Room         string        `json:"room"`
	Participants []Participant `json:"participants"`
}

// EventUndoData identifies a removed stroke by id only.
type EventUndoData struct {
	ID string `json:"id"`
}

// EventCursorData relays another participant's pointer position.
type EventCursorData struct {
	ConnID string  `json:"connId"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
