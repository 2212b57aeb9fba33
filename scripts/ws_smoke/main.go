package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/sketchwire/sketchwire-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	name := flag.String("name", "tester", "display name to join with")
	room := flag.String("room", "ABC123", "room code")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(msgType string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", msgType, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", msgType, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoin, proto.JoinData{Room: *room, Name: *name}); err != nil {
		return err
	}

	stroke := proto.StrokeData{
		ID:    fmt.Sprintf("smoke-%d", time.Now().UnixNano()),
		Path:  []proto.Point{{X: 10, Y: 10}, {X: 20, Y: 25}, {X: 30, Y: 20}},
		Color: "#336699",
		Width: 3,
		Tool:  "pen",
	}
	if err := send(proto.InboundTypeStroke, stroke); err != nil {
		return err
	}
	if err := send(proto.InboundTypeUndo, struct{}{}); err != nil {
		return err
	}

	// Print whatever comes back until the timeout expires.
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		raw, _ := json.Marshal(outbound)
		fmt.Printf("<- %s\n", raw)
	}
}
