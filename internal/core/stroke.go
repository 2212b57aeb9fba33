package core

// Point is a single coordinate sample on a stroke path.
type Point struct {
	X float64
	Y float64
}

// Stroke is one completed freehand drawing action. Strokes are created
// complete by the client and are immutable once appended; the ID is a
// client-generated opaque token used only for identity lookups.
type Stroke struct {
	ID    string
	Path  []Point
	Color string
	Width float64
	Tool  string
}

// Cursor is an ephemeral pointer position. It is broadcast but never stored.
type Cursor struct {
	ConnID string
	X      float64
	Y      float64
}
