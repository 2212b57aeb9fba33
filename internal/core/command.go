package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin enters (or lazily creates) a room.
	CommandJoin CommandKind = iota
	// CommandStroke appends a finished stroke to the room's log.
	CommandStroke
	// CommandUndo pops the room's shared undo stack.
	CommandUndo
	// CommandRedo pops the room's shared redo stack.
	CommandRedo
	// CommandRename changes the sender's display name.
	CommandRename
	// CommandCursor reports an ephemeral pointer position.
	CommandCursor
	// CommandLeave exits the room explicitly.
	CommandLeave
)

// Command represents an action requested by a client. Only the fields
// relevant to the Kind are set.
type Command struct {
	Kind   CommandKind
	Room   string // CommandJoin
	Name   string // CommandJoin, CommandRename
	Stroke *Stroke
	X, Y   float64 // CommandCursor
}
