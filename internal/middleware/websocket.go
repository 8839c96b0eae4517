package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// SocketIdentity is carried from the upgrade request into the websocket
// handler, whose connection no longer sees route params.
type SocketIdentity struct {
	GameID   string
	PlayerID string
}

// SocketIdentityKey is the locals key WebSocketUpgrade stores under.
const SocketIdentityKey = "wsIdentity"

// WebSocketUpgrade only lets through upgrade requests for a well-formed
// game id from a known player.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if _, err := uuid.Parse(gameID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid game ID",
			})
		}

		playerID, _ := c.Locals("playerID").(string)
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		c.Locals(SocketIdentityKey, SocketIdentity{GameID: gameID, PlayerID: playerID})
		return c.Next()
	}
}
