package core

import (
	"fmt"
	"math/rand"
)

// Participant is a connected user's identity within one room.
// Color is assigned at creation and never changes; Origin identifies the
// client machine for reconnection reconciliation and is not broadcast.
type Participant struct {
	ConnID string
	Name   string
	Color  string
	Origin string
}

// randomColor returns a css-style #rrggbb color.
func randomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
