// Command probe drives a running server headlessly. It creates a game,
// picks up the White rook on A1, drops it on the knight at A2 and reports
// where the rook ended up. A working server reverts the drop.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/benbeisheim/dragchess-backend/internal/model"
	"github.com/benbeisheim/dragchess-backend/internal/ws"
)

func main() {
	addr := flag.String("addr", "localhost:3000", "server host:port")
	origin := flag.String("origin", "http://localhost:5173", "Origin header sent on the websocket handshake")
	timeout := flag.Duration("timeout", 5*time.Second, "overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *addr, *origin); err != nil {
		slog.Error("probe failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, addr, origin string) error {
	playerID := uuid.New().String()

	gameID, err := createGame(ctx, addr, playerID)
	if err != nil {
		return err
	}
	slog.Info("game created", "game", gameID, "player", playerID)

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws/game/" + gameID, RawQuery: "playerId=" + url.QueryEscape(playerID)}
	conn, _, err := websocket.Dial(ctx, u.String(), &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{origin}},
	})
	if err != nil {
		return fmt.Errorf("dial %s: %w", u.String(), err)
	}
	defer conn.CloseNow()

	a1, _ := model.ParseSquare("A1")
	a2, _ := model.ParseSquare("A2")
	from := model.DefaultLayout.PlaceSquare(a1)
	to := model.DefaultLayout.PlaceSquare(a2)

	frames := []model.InputFrame{
		{Pointer: &from, Pressed: true},
		{Pointer: &to},
		{Pointer: &to, Released: true},
	}
	for _, f := range frames {
		if err := send(ctx, conn, ws.MessageTypeInput, f); err != nil {
			return err
		}
	}

	rook, err := awaitRook(ctx, conn)
	if err != nil {
		return err
	}
	fmt.Printf("rook at (%.1f, %.1f), reverted=%t\n", rook.X, rook.Y, rook.X == from.X && rook.Y == from.Y)
	return conn.Close(websocket.StatusNormalClosure, "")
}

func createGame(ctx context.Context, addr, playerID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+addr+"/api/game/create", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Player-ID", playerID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create game: status %s", resp.Status)
	}

	var body struct {
		GameID string `json:"game_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return body.GameID, nil
}

func send(ctx context.Context, conn *websocket.Conn, t ws.MessageType, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return wsjson.Write(ctx, conn, ws.Message{Type: t, Payload: b})
}

// awaitRook reads states until one shows all three frames applied, then
// returns the rook that started on A1.
func awaitRook(ctx context.Context, conn *websocket.Conn) (model.ClientPiece, error) {
	for {
		var msg ws.Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return model.ClientPiece{}, fmt.Errorf("read state: %w", err)
		}
		switch msg.Type {
		case ws.MessageTypeError:
			return model.ClientPiece{}, fmt.Errorf("server error: %s", msg.Payload)
		case ws.MessageTypeGameState:
		default:
			continue
		}

		var state model.Snapshot
		if err := json.Unmarshal(msg.Payload, &state); err != nil {
			return model.ClientPiece{}, fmt.Errorf("decode state: %w", err)
		}
		if state.Tick < 3 {
			continue
		}
		for _, p := range state.Pieces {
			if p.Home == "A1" {
				return p, nil
			}
		}
		return model.ClientPiece{}, fmt.Errorf("no piece spawned on A1")
	}
}
