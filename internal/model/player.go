package model

import (
	"github.com/gofiber/websocket/v2"
)

// Player is a seated player with a live socket.
type Player struct {
	ID   string
	Role PlayerRole
	Conn *websocket.Conn
}

type ClientPlayer struct {
	ID   string     `json:"name"`
	Role PlayerRole `json:"role"`
}

// PlayerRole decides whether a player's input frames reach the board.
// Only the driver owns the pointer; everyone else watches.
type PlayerRole string

const (
	RoleDriver    PlayerRole = "driver"
	RoleSpectator PlayerRole = "spectator"
)
