package http

import (
	"encoding/json"
	"testing"

	"github.com/sketchwire/sketchwire-server/internal/core"
	"github.com/sketchwire/sketchwire-server/internal/proto"
)

func inbound(t *testing.T, msgType string, data any) proto.Inbound {
	t.Helper()
	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return proto.Inbound{Type: msgType, Data: payload}
}

func TestInboundToCommandJoin(t *testing.T) {
	cmd, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeJoin, proto.JoinData{Room: "abc", Name: "ada"}))
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v, %v", err, protoErr)
	}
	if cmd.Kind != core.CommandJoin || cmd.Room != "abc" || cmd.Name != "ada" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandJoinRequiresRoom(t *testing.T) {
	_, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeJoin, proto.JoinData{Name: "ada"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if protoErr == nil || protoErr.Code != core.ErrCodeBadRequest {
		t.Fatalf("expected bad_request, got %+v", protoErr)
	}
}

func TestInboundToCommandStrokeRequiresID(t *testing.T) {
	_, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeStroke, proto.StrokeData{Color: "#fff"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if protoErr == nil || protoErr.Code != core.ErrCodeBadRequest {
		t.Fatalf("expected bad_request, got %+v", protoErr)
	}
}

func TestInboundToCommandUnknownType(t *testing.T) {
	_, protoErr, err := inboundToCommand(proto.Inbound{Type: "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if protoErr == nil || protoErr.Code != core.ErrCodeInvalidMessage {
		t.Fatalf("expected invalid_message, got %+v", protoErr)
	}
}

func TestInboundToCommandMalformedPayload(t *testing.T) {
	_, _, err := inboundToCommand(proto.Inbound{Type: proto.InboundTypeStroke, Data: json.RawMessage(`{`)})
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestOutboundFromUndoEventCarriesIDOnly(t *testing.T) {
	out := outboundFromEvent(&core.Event{Kind: core.EventUndo, Room: "ABC", StrokeID: "s1"})
	if out.Event != proto.EventUndo {
		t.Fatalf("unexpected event name: %q", out.Event)
	}
	data, ok := out.Data.(proto.EventUndoData)
	if !ok || data.ID != "s1" {
		t.Fatalf("unexpected payload: %+v", out.Data)
	}
}

func TestOutboundFromCursorEvent(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:   core.EventCursor,
		Room:   "ABC",
		Cursor: &core.Cursor{ConnID: "c1", X: 5, Y: 6},
	})
	data, ok := out.Data.(proto.EventCursorData)
	if !ok || data.ConnID != "c1" || data.X != 5 || data.Y != 6 {
		t.Fatalf("unexpected payload: %+v", out.Data)
	}
}

func TestStrokeConversionRoundTrip(t *testing.T) {
	wire := proto.StrokeData{
		ID:    "s1",
		Path:  []proto.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Color: "#00ff00",
		Width: 4,
		Tool:  "marker",
	}
	back := strokeToProto(strokeFromProto(wire))
	if back.ID != wire.ID || back.Color != wire.Color || back.Width != wire.Width || back.Tool != wire.Tool {
		t.Fatalf("round trip mangled stroke: %+v", back)
	}
	if len(back.Path) != 2 || back.Path[1] != (proto.Point{X: 3, Y: 4}) {
		t.Fatalf("round trip mangled path: %+v", back.Path)
	}
}
