package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/benbeisheim/dragchess-backend/internal/middleware"
	"github.com/benbeisheim/dragchess-backend/internal/model"
	"github.com/benbeisheim/dragchess-backend/internal/service"
	"github.com/benbeisheim/dragchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection seats the player and feeds their frames into the game
// until the socket closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	id, ok := c.Locals(middleware.SocketIdentityKey).(middleware.SocketIdentity)
	if !ok {
		c.Close()
		return
	}
	gameID, playerID := id.GameID, id.PlayerID

	role, err := wsc.gameService.RegisterConnection(gameID, playerID, c)
	if err != nil {
		slog.Warn("register connection", "game", gameID, "player", playerID, "err", err)
		c.WriteJSON(ws.NewError(err.Error()))
		c.Close()
		return
	}
	slog.Info("websocket open", "game", gameID, "player", playerID, "role", role)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			slog.Info("websocket closed", "game", gameID, "player", playerID, "err", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Warn("parse message", "game", gameID, "player", playerID, "err", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			slog.Warn("handle message", "game", gameID, "player", playerID, "type", msg.Type, "err", err)
			wsc.gameService.SendError(gameID, playerID, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeInput:
		var frame model.InputFrame
		if err := json.Unmarshal(msg.Payload, &frame); err != nil {
			return fmt.Errorf("decode input frame: %w", err)
		}
		return wsc.gameService.HandleInput(gameID, playerID, frame)

	case ws.MessageTypeReset:
		return wsc.gameService.HandleInput(gameID, playerID, model.InputFrame{
			KeysPressed: []model.Key{model.KeyReset},
		})

	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownMessage, msg.Type)
	}
}
