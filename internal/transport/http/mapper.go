package http

import (
	"encoding/json"

	"github.com/sketchwire/sketchwire-server/internal/core"
	"github.com/sketchwire/sketchwire-server/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. A non-nil
// proto.Error means the envelope was recognized but malformed; a non-nil
// error means the payload was not even valid JSON.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandJoin,
			Room: join.Room,
			Name: join.Name,
		}, nil, nil
	case proto.InboundTypeStroke:
		var stroke proto.StrokeData
		if err := json.Unmarshal(inbound.Data, &stroke); err != nil {
			return nil, nil, err
		}
		if stroke.ID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "stroke id is required"}, nil
		}
		s := strokeFromProto(stroke)
		return &core.Command{
			Kind:   core.CommandStroke,
			Stroke: &s,
		}, nil, nil
	case proto.InboundTypeUndo:
		return &core.Command{Kind: core.CommandUndo}, nil, nil
	case proto.InboundTypeRedo:
		return &core.Command{Kind: core.CommandRedo}, nil, nil
	case proto.InboundTypeRename:
		var rename proto.RenameData
		if err := json.Unmarshal(inbound.Data, &rename); err != nil {
			return nil, nil, err
		}
		if rename.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "name is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandRename,
			Name: rename.Name,
		}, nil, nil
	case proto.InboundTypeCursor:
		var cursor proto.CursorData
		if err := json.Unmarshal(inbound.Data, &cursor); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandCursor,
			X:    cursor.X,
			Y:    cursor.Y,
		}, nil, nil
	case proto.InboundTypeLeave:
		return &core.Command{Kind: core.CommandLeave}, nil, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventJoined,
			Data: proto.EventJoinedData{
				ConnID:       event.ConnID,
				Room:         event.Room,
				Participants: participantsToProto(event.Participants),
				Strokes:      strokesToProto(event.Strokes),
			},
		}
	case core.EventParticipants:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventParticipants,
			Data: proto.EventParticipantsData{
				Room:         event.Room,
				Participants: participantsToProto(event.Participants),
			},
		}
	case core.EventStroke:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventStroke,
			Data:  strokeToProto(*event.Stroke),
		}
	case core.EventUndo:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUndo,
			Data:  proto.EventUndoData{ID: event.StrokeID},
		}
	case core.EventRedo:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRedo,
			Data:  strokeToProto(*event.Stroke),
		}
	case core.EventCursor:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventCursor,
			Data: proto.EventCursorData{
				ConnID: event.Cursor.ConnID,
				X:      event.Cursor.X,
				Y:      event.Cursor.Y,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func strokeFromProto(s proto.StrokeData) core.Stroke {
	path := make([]core.Point, len(s.Path))
	for i, p := range s.Path {
		path[i] = core.Point{X: p.X, Y: p.Y}
	}
	return core.Stroke{
		ID:    s.ID,
		Path:  path,
		Color: s.Color,
		Width: s.Width,
		Tool:  s.Tool,
	}
}

func strokeToProto(s core.Stroke) proto.StrokeData {
	path := make([]proto.Point, len(s.Path))
	for i, p := range s.Path {
		path[i] = proto.Point{X: p.X, Y: p.Y}
	}
	return proto.StrokeData{
		ID:    s.ID,
		Path:  path,
		Color: s.Color,
		Width: s.Width,
		Tool:  s.Tool,
	}
}

func strokesToProto(strokes []core.Stroke) []proto.StrokeData {
	out := make([]proto.StrokeData, len(strokes))
	for i, s := range strokes {
		out[i] = strokeToProto(s)
	}
	return out
}

func participantsToProto(participants []core.Participant) []proto.Participant {
	out := make([]proto.Participant, len(participants))
	for i, p := range participants {
		out[i] = proto.Participant{
			ConnID: p.ConnID,
			Name:   p.Name,
			Color:  p.Color,
		}
	}
	return out
}
