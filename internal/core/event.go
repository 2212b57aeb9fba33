package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventJoined delivers the full room snapshot to a client that just
	// joined (participant list plus the entire stroke log).
	EventJoined EventKind = iota
	// EventParticipants delivers the updated participant list after a join,
	// rename, leave or disconnect.
	EventParticipants
	// EventStroke announces a newly committed stroke.
	EventStroke
	// EventUndo announces a removed stroke, identified by id only.
	EventUndo
	// EventRedo announces a re-committed stroke, payload included.
	EventRedo
	// EventCursor relays another participant's pointer position.
	EventCursor
	// EventError notifies a single client about a protocol error.
	EventError
)

// Event is sent to clients to describe what happened in the room. Room and
// Kind are always set; the remaining fields depend on the kind.
type Event struct {
	Kind EventKind
	Room string

	ConnID       string        // EventJoined: the recipient's own id
	Participants []Participant // EventJoined, EventParticipants
	Strokes      []Stroke      // EventJoined
	Stroke       *Stroke       // EventStroke, EventRedo
	StrokeID     string        // EventUndo
	Cursor       *Cursor       // EventCursor
	Error        *CoreError    // EventError
}
