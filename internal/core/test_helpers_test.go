package core

import (
	"context"
	"testing"
	"time"
)

func newTestHub(t *testing.T, grace time.Duration) *Hub {
	t.Helper()

	hub := NewHub(nil, grace)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(150 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event kind %v: %+v", kind, ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func roomCodes(t *testing.T, hub *Hub) []string {
	t.Helper()

	summaries, err := hub.RoomSummaries(context.Background())
	if err != nil {
		t.Fatalf("room summaries: %v", err)
	}
	codes := make([]string, len(summaries))
	for i, s := range summaries {
		codes[i] = s.Code
	}
	return codes
}
