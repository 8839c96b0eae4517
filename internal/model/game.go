package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbeisheim/dragchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections holds the live socket of every seated player.
type GameConnections struct {
	players map[string]*Player // playerID -> seat and socket
	mu      sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		players: make(map[string]*Player),
	}
}

// Game wraps one board engine with its seats, pending input and observers.
type Game struct {
	ID          string
	mu          sync.Mutex
	engine      *Engine
	driver      *ClientPlayer
	spectators  []ClientPlayer
	queue       *InputQueue
	connections *GameConnections
}

func NewGame(id string, layout Layout) *Game {
	return &Game{
		ID:          id,
		engine:      NewEngine(layout),
		queue:       NewInputQueue(),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats a player. The first player to join drives the board and
// later ones spectate. Joining twice returns the existing role.
func (g *Game) AddPlayer(playerID string) PlayerRole {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addPlayer(playerID)
}

func (g *Game) addPlayer(playerID string) PlayerRole {
	if role, ok := g.roleOf(playerID); ok {
		return role
	}
	if g.driver == nil {
		g.driver = &ClientPlayer{ID: playerID, Role: RoleDriver}
		slog.Info("driver seated", "game", g.ID, "player", playerID)
		return RoleDriver
	}
	g.spectators = append(g.spectators, ClientPlayer{ID: playerID, Role: RoleSpectator})
	slog.Info("spectator seated", "game", g.ID, "player", playerID)
	return RoleSpectator
}

func (g *Game) roleOf(playerID string) (PlayerRole, bool) {
	if g.driver != nil && g.driver.ID == playerID {
		return RoleDriver, true
	}
	for _, s := range g.spectators {
		if s.ID == playerID {
			return RoleSpectator, true
		}
	}
	return "", false
}

func (g *Game) isDriver(playerID string) bool {
	return g.driver != nil && g.driver.ID == playerID
}

func (g *Game) IsDriver(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isDriver(playerID)
}

func (g *Game) GetState() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := g.engine.Snapshot()
	s.GameID = g.ID
	if g.driver != nil {
		d := *g.driver
		s.Players.Driver = &d
	}
	s.Players.Spectators = append(s.Players.Spectators, g.spectators...)
	return s
}

// Enqueue buffers a frame for the next drain. Frames from anyone but the
// driver are refused, and unbound keys are dropped from the frame.
func (g *Game) Enqueue(playerID string, f InputFrame) error {
	if !g.IsDriver(playerID) {
		return ErrNotDriver
	}
	g.queue.Push(playerID, f.KnownKeys())
	return nil
}

// Drain runs one tick per queued frame, in arrival order, and broadcasts
// the result if any frame was applied.
func (g *Game) Drain() int {
	frames := g.queue.DrainAll()
	if len(frames) == 0 {
		return 0
	}

	g.mu.Lock()
	for _, qf := range frames {
		if !g.isDriver(qf.PlayerID) {
			continue
		}
		g.tick(qf.Frame)
	}
	state := g.snapshot()
	g.mu.Unlock()

	slog.Debug("drained input", "game", g.ID, "frames", len(frames), "lag", time.Since(frames[0].ReceivedAt))
	g.broadcastState(state)
	return len(frames)
}

// ApplyFrame runs a single tick immediately, bypassing the queue.
func (g *Game) ApplyFrame(playerID string, f InputFrame) (Snapshot, error) {
	g.mu.Lock()
	if !g.isDriver(playerID) {
		g.mu.Unlock()
		return Snapshot{}, ErrNotDriver
	}
	g.tick(f.KnownKeys())
	state := g.snapshot()
	g.mu.Unlock()

	g.broadcastState(state)
	return state, nil
}

// Reset restores the opening position on behalf of the driver.
func (g *Game) Reset(playerID string) (Snapshot, error) {
	return g.ApplyFrame(playerID, InputFrame{KeysPressed: []Key{KeyReset}})
}

func (g *Game) tick(f InputFrame) {
	rep := g.engine.Tick(f)
	if !rep.Changed() {
		return
	}
	attrs := []any{"game", g.ID, "tick", g.engine.TickCount(), "sound", rep.Sound()}
	if rep.Dropped != nil {
		attrs = append(attrs, "piece", rep.Dropped.Sprite(), "x", rep.Dropped.Position.X, "y", rep.Dropped.Position.Y)
	}
	if len(rep.Captured) > 0 {
		attrs = append(attrs, "captured", len(rep.Captured))
	}
	if len(rep.Promoted) > 0 {
		attrs = append(attrs, "promoted", len(rep.Promoted))
	}
	slog.Debug("tick", attrs...)
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) PlayerRole {
	g.mu.Lock()
	role := g.addPlayer(playerID)
	state := g.snapshot()
	g.mu.Unlock()

	g.connections.mu.Lock()
	if old, exists := g.connections.players[playerID]; exists && old.Conn != conn {
		old.Conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by a newer connection"),
		)
		old.Conn.Close()
	}
	g.connections.players[playerID] = &Player{ID: playerID, Role: role, Conn: conn}
	g.connections.mu.Unlock()
	slog.Info("connection registered", "game", g.ID, "player", playerID, "role", role,
		"conn", fmt.Sprintf("%p", conn), "open", g.ConnectionCount())

	// Send initial state...
	g.broadcastState(state)
	return role
}

// UnregisterConnection drops a player's connection, but only if it is still
// the current one for that player.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	current, exists := g.connections.players[playerID]
	if !exists || current.Conn != conn {
		g.connections.mu.Unlock()
		return
	}
	delete(g.connections.players, playerID)
	g.connections.mu.Unlock()
	slog.Info("connection unregistered", "game", g.ID, "player", playerID, "role", current.Role, "open", g.ConnectionCount())
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.players)
}

// broadcastState writes state to every connection. Writes are serialised by
// the connections lock; connections that fail are dropped.
func (g *Game) broadcastState(state Snapshot) {
	payload, err := json.Marshal(state)
	if err != nil {
		slog.Error("marshal state", "game", g.ID, "err", err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(payload)}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, p := range g.connections.players {
		if err := p.Conn.WriteJSON(msg); err != nil {
			slog.Warn("send state failed", "game", g.ID, "player", playerID, "role", p.Role, "err", err)
			delete(g.connections.players, playerID)
		}
	}
}

// SendTo writes a single message to one player's connection, if any.
func (g *Game) SendTo(playerID string, msg ws.Message) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	p, ok := g.connections.players[playerID]
	if !ok {
		return
	}
	if err := p.Conn.WriteJSON(msg); err != nil {
		slog.Warn("send failed", "game", g.ID, "player", playerID, "err", err)
		delete(g.connections.players, playerID)
	}
}
