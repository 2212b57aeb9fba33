package core

import (
	"fmt"
	"testing"
)

func TestJoinSuffixesCollidingNames(t *testing.T) {
	room := NewRoom("ABC123")

	names := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		p, _ := room.Join(fmt.Sprintf("conn%d", i), "ada", fmt.Sprintf("10.0.0.%d", i))
		names = append(names, p.Name)
	}

	want := []string{"ada", "ada1", "ada2", "ada3"}
	for i, name := range names {
		if name != want[i] {
			t.Fatalf("join %d: got name %q, want %q", i, name, want[i])
		}
	}

	seen := make(map[string]bool)
	for _, p := range room.Participants() {
		if seen[p.Name] {
			t.Fatalf("duplicate display name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestJoinEmptyNameFallsBackToGuest(t *testing.T) {
	room := NewRoom("ABC123")

	p, _ := room.Join("conn1", "", "10.0.0.1")
	if p.Name != "guest" {
		t.Fatalf("got name %q, want guest", p.Name)
	}
	p2, _ := room.Join("conn2", "", "10.0.0.2")
	if p2.Name != "guest1" {
		t.Fatalf("got name %q, want guest1", p2.Name)
	}
}

func TestJoinSameOriginUpdatesInPlace(t *testing.T) {
	room := NewRoom("ABC123")

	first, prev := room.Join("conn1", "ada", "10.0.0.1")
	if prev != "" {
		t.Fatalf("unexpected previous conn id %q", prev)
	}
	color := first.Color

	second, prev := room.Join("conn2", "grace", "10.0.0.1")
	if prev != "conn1" {
		t.Fatalf("got previous conn id %q, want conn1", prev)
	}
	if len(room.Participants()) != 1 {
		t.Fatalf("got %d participants, want 1", len(room.Participants()))
	}
	if second.ConnID != "conn2" || second.Name != "grace" {
		t.Fatalf("participant not updated in place: %+v", second)
	}
	if second.Color != color {
		t.Fatalf("color changed on reconnect: %q -> %q", color, second.Color)
	}
}

func TestRenameExcludesSelfFromCollisionCheck(t *testing.T) {
	room := NewRoom("ABC123")
	room.Join("conn1", "ada", "10.0.0.1")
	room.Join("conn2", "grace", "10.0.0.2")

	// Renaming to one's own current name must not pick up a suffix.
	if !room.Rename("conn1", "ada") {
		t.Fatal("rename returned false")
	}
	if got := room.Participants()[0].Name; got != "ada" {
		t.Fatalf("got name %q, want ada", got)
	}

	// Renaming onto a taken name must suffix.
	room.Rename("conn2", "ada")
	if got := room.Participants()[1].Name; got != "ada1" {
		t.Fatalf("got name %q, want ada1", got)
	}
}

func TestRenameUnknownConnectionIsNoop(t *testing.T) {
	room := NewRoom("ABC123")
	if room.Rename("ghost", "ada") {
		t.Fatal("rename of unknown connection returned true")
	}
}

func TestAppendUndoRedoRoundTrip(t *testing.T) {
	room := NewRoom("ABC123")
	s1 := Stroke{ID: "s1", Color: "#111111"}
	s2 := Stroke{ID: "s2", Color: "#222222"}
	s3 := Stroke{ID: "s3", Color: "#333333"}

	room.AppendStroke(s1)
	room.AppendStroke(s2)
	room.AppendStroke(s3)

	undone := room.Undo()
	if undone == nil || undone.ID != "s3" {
		t.Fatalf("got undone %+v, want s3", undone)
	}
	if got := room.Strokes(); len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s2" {
		t.Fatalf("unexpected log after undo: %+v", got)
	}

	redone := room.Redo()
	if redone == nil || redone.ID != "s3" {
		t.Fatalf("got redone %+v, want s3", redone)
	}
	got := room.Strokes()
	if len(got) != 3 || got[0].ID != "s1" || got[1].ID != "s2" || got[2].ID != "s3" {
		t.Fatalf("round trip did not restore the log: %+v", got)
	}
}

func TestUndoOnEmptyStackIsNoop(t *testing.T) {
	room := NewRoom("ABC123")
	room.AppendStroke(Stroke{ID: "s1"})
	room.Undo()

	if room.Undo() != nil {
		t.Fatal("second undo returned a stroke")
	}
	if len(room.Strokes()) != 0 {
		t.Fatalf("log changed on empty undo: %+v", room.Strokes())
	}
	if got := room.Redo(); got == nil || got.ID != "s1" {
		t.Fatalf("redo stack corrupted by empty undo: %+v", got)
	}
}

func TestRedoOnEmptyStackIsNoop(t *testing.T) {
	room := NewRoom("ABC123")
	if room.Redo() != nil {
		t.Fatal("redo on empty room returned a stroke")
	}
}

func TestAppendClearsRedoStack(t *testing.T) {
	room := NewRoom("ABC123")
	room.AppendStroke(Stroke{ID: "s1"})
	room.Undo()
	room.AppendStroke(Stroke{ID: "s2"})

	if room.Redo() != nil {
		t.Fatal("redo succeeded after a fresh append")
	}
	if got := room.Strokes(); len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("unexpected log: %+v", got)
	}
}

func TestUndoRemovesByIdentityNotPosition(t *testing.T) {
	room := NewRoom("ABC123")
	for _, id := range []string{"a", "b", "c", "d"} {
		room.AppendStroke(Stroke{ID: id})
	}

	// Undo twice: d then c must leave a,b in order.
	room.Undo()
	room.Undo()
	got := room.Strokes()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected log: %+v", got)
	}

	// Redo both restores the original order.
	room.Redo()
	room.Redo()
	got = room.Strokes()
	want := []string{"a", "b", "c", "d"}
	for i, s := range got {
		if s.ID != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, s.ID, want[i])
		}
	}
}

func TestRemoveParticipantAndEmpty(t *testing.T) {
	room := NewRoom("ABC123")
	room.Join("conn1", "ada", "10.0.0.1")
	room.Join("conn2", "grace", "10.0.0.2")

	if !room.RemoveParticipant("conn1") {
		t.Fatal("remove returned false")
	}
	if room.RemoveParticipant("conn1") {
		t.Fatal("double remove returned true")
	}
	if room.Empty() {
		t.Fatal("room reported empty with one participant left")
	}
	room.RemoveParticipant("conn2")
	if !room.Empty() {
		t.Fatal("room not empty after last removal")
	}
}
