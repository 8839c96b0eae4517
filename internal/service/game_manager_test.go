package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbeisheim/dragchess-backend/internal/model"
)

func TestCreateAndGetGame(t *testing.T) {
	gm := NewGameManager(model.DefaultLayout)

	if err := gm.CreateGame("b"); err != nil {
		t.Fatal(err)
	}
	if err := gm.CreateGame("a"); err != nil {
		t.Fatal(err)
	}
	if err := gm.CreateGame("a"); !errors.Is(err, model.ErrGameExists) {
		t.Fatalf("duplicate create err = %v", err)
	}
	if _, err := gm.GetGame("missing"); !errors.Is(err, model.ErrGameNotFound) {
		t.Fatalf("missing game err = %v", err)
	}

	ids := gm.ListGames()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("ListGames = %v", ids)
	}
}

func TestServiceInputFlow(t *testing.T) {
	gm := NewGameManager(model.DefaultLayout)
	gs := NewGameService(gm)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	role, err := gs.JoinGame(gameID, "alice")
	if err != nil || role != model.RoleDriver {
		t.Fatalf("join: %s, %v", role, err)
	}

	from, to := model.Vec2{X: -350, Y: -350}, model.Vec2{X: -250, Y: -350}
	frames := []model.InputFrame{
		{Pointer: &from, Pressed: true},
		{Pointer: &to},
		{Pointer: &to, Released: true},
	}
	for _, f := range frames {
		if err := gs.HandleInput(gameID, "alice", f); err != nil {
			t.Fatal(err)
		}
	}
	if err := gs.HandleInput(gameID, "bob", model.InputFrame{}); !errors.Is(err, model.ErrNotDriver) {
		t.Fatalf("unseated player err = %v", err)
	}
	if err := gs.HandleInput("nope", "alice", model.InputFrame{}); !errors.Is(err, model.ErrGameNotFound) {
		t.Fatalf("missing game err = %v", err)
	}

	if n := gm.DrainAll(); n != 3 {
		t.Fatalf("DrainAll applied %d frames", n)
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatal(err)
	}
	if state.Sound != model.SoundIllegal {
		t.Fatalf("sound = %q", state.Sound)
	}
	if rook := state.Pieces[0]; rook.X != -350 || rook.Y != -350 {
		t.Fatalf("rook at (%v, %v), want (-350, -350)", rook.X, rook.Y)
	}
}

func TestRunDrainsUntilCancelled(t *testing.T) {
	gm := NewGameManager(model.DefaultLayout)
	if err := gm.CreateGame("g"); err != nil {
		t.Fatal(err)
	}
	if _, err := gm.AddPlayerToGame("g", "alice"); err != nil {
		t.Fatal(err)
	}
	p := model.Vec2{X: 0, Y: 0}
	if err := gm.EnqueueInput("g", "alice", model.InputFrame{Pointer: &p}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gm.Run(ctx, time.Millisecond) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		state, err := gm.GetGameState("g")
		if err != nil {
			t.Fatal(err)
		}
		if state.Tick == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("tick loop never drained the queue")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}
