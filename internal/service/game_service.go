package service

import (
	"fmt"

	"github.com/benbeisheim/dragchess-backend/internal/model"
	"github.com/benbeisheim/dragchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.ListGames()
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.PlayerRole, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleInput queues a websocket frame for the tick loop.
func (gs *GameService) HandleInput(gameID string, playerID string, frame model.InputFrame) error {
	if err := gs.gameManager.EnqueueInput(gameID, playerID, frame); err != nil {
		return fmt.Errorf("input for game %s: %w", gameID, err)
	}
	return nil
}

// Tick applies a frame right away and returns the resulting board.
func (gs *GameService) Tick(gameID string, playerID string, frame model.InputFrame) (model.Snapshot, error) {
	return gs.gameManager.ApplyInput(gameID, playerID, frame)
}

func (gs *GameService) ResetGame(gameID string, playerID string) (model.Snapshot, error) {
	return gs.gameManager.ResetGame(gameID, playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) (model.PlayerRole, error) {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

// SendError reports a rejected message back to the player who sent it.
func (gs *GameService) SendError(gameID string, playerID string, errorMsg string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.SendTo(playerID, ws.NewError(errorMsg))
}
