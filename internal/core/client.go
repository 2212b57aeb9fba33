package core

// ClientState tracks where a connection is in its session lifecycle.
type ClientState int

const (
	// StateUnjoined means the connection has not entered a room yet; only a
	// join command is accepted.
	StateUnjoined ClientState = iota
	// StateJoined means the connection belongs to exactly one room.
	StateJoined
	// StateClosed is terminal: the connection left or disconnected, or its
	// participant was taken over by a reconnect from the same origin.
	StateClosed
)

// Client is a drawing participant's connection as seen by the core layer.
// The transport writes Commands and reads Events; state is owned by the hub
// goroutine and must not be touched elsewhere.
type Client struct {
	ConnID string
	Origin string

	Commands chan *Command
	Events   chan *Event

	state ClientState
}

// NewClient constructs a client handle with initialized channels.
func NewClient(connID, origin string) *Client {
	return &Client{
		ConnID:   connID,
		Origin:   origin,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
	}
}
