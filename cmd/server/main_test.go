package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbeisheim/dragchess-backend/internal/config"
	"github.com/benbeisheim/dragchess-backend/internal/model"
	"github.com/benbeisheim/dragchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

func testApp() *fiber.App {
	cfg := config.Config{
		Addr:           ":0",
		AllowedOrigins: []string{"http://localhost:5173"},
		TickInterval:   16 * time.Millisecond,
		BoardOriginX:   -350,
		BoardOriginY:   -350,
	}
	gm := service.NewGameManager(cfg.Layout())
	return newApp(cfg, service.NewGameService(gm))
}

func do(t *testing.T, app *fiber.App, method, path, player, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if player != "" {
		req.Header.Set("X-Player-ID", player)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, b
}

func createGame(t *testing.T, app *fiber.App, player string) string {
	t.Helper()
	status, body := do(t, app, http.MethodPost, "/api/game/create", player, "")
	if status != fiber.StatusOK {
		t.Fatalf("create: %d %s", status, body)
	}
	var created struct {
		GameID string `json:"game_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatal(err)
	}
	if created.GameID == "" {
		t.Fatalf("create returned no game id: %s", body)
	}
	return created.GameID
}

func TestHealthz(t *testing.T) {
	status, body := do(t, testApp(), http.MethodGet, "/healthz", "", "")
	if status != fiber.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz: %d %s", status, body)
	}
}

func TestRequiresPlayerID(t *testing.T) {
	status, _ := do(t, testApp(), http.MethodPost, "/api/game/create", "", "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestUnknownGame(t *testing.T) {
	status, _ := do(t, testApp(), http.MethodGet, "/api/game/nope", "alice", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestJoinRolesAndList(t *testing.T) {
	app := testApp()
	gameID := createGame(t, app, "alice")

	status, body := do(t, app, http.MethodPost, "/api/game/join/"+gameID, "alice", "")
	if status != fiber.StatusOK || !strings.Contains(string(body), `"role":"driver"`) {
		t.Fatalf("join alice: %d %s", status, body)
	}
	status, body = do(t, app, http.MethodPost, "/api/game/join/"+gameID, "bob", "")
	if status != fiber.StatusOK || !strings.Contains(string(body), `"role":"spectator"`) {
		t.Fatalf("join bob: %d %s", status, body)
	}

	status, body = do(t, app, http.MethodGet, "/api/game/", "bob", "")
	if status != fiber.StatusOK || !strings.Contains(string(body), gameID) {
		t.Fatalf("list: %d %s", status, body)
	}
}

func TestTickFlow(t *testing.T) {
	app := testApp()
	gameID := createGame(t, app, "alice")
	do(t, app, http.MethodPost, "/api/game/join/"+gameID, "alice", "")
	do(t, app, http.MethodPost, "/api/game/join/"+gameID, "bob", "")

	tick := "/api/game/" + gameID + "/tick"
	if status, _ := do(t, app, http.MethodPost, tick, "bob", `{"pressed":true}`); status != fiber.StatusForbidden {
		t.Fatalf("spectator tick status = %d, want 403", status)
	}
	if status, _ := do(t, app, http.MethodPost, tick, "alice", `{"pressed":`); status != fiber.StatusBadRequest {
		t.Fatalf("malformed frame status = %d, want 400", status)
	}

	// A1 onto A2 is blocked by the knight and snaps back.
	frames := []string{
		`{"pointer":{"x":-350,"y":-350},"pressed":true}`,
		`{"pointer":{"x":-250,"y":-350}}`,
		`{"pointer":{"x":-250,"y":-350},"released":true,"keysHeld":["ShiftLeft"]}`,
	}
	var state model.Snapshot
	for _, f := range frames {
		status, body := do(t, app, http.MethodPost, tick, "alice", f)
		if status != fiber.StatusOK {
			t.Fatalf("tick: %d %s", status, body)
		}
		if err := json.Unmarshal(body, &state); err != nil {
			t.Fatal(err)
		}
	}
	if state.Tick != 3 || state.Sound != model.SoundIllegal {
		t.Fatalf("tick %d sound %q", state.Tick, state.Sound)
	}
	rook := state.Pieces[0]
	if rook.Home != "A1" || rook.X != -350 || rook.Y != -350 {
		t.Fatalf("rook = %+v", rook)
	}

	status, body := do(t, app, http.MethodPost, "/api/game/"+gameID+"/reset", "alice", "")
	if status != fiber.StatusOK {
		t.Fatalf("reset: %d %s", status, body)
	}
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatal(err)
	}
	if state.Sound != model.SoundReset {
		t.Fatalf("reset sound = %q", state.Sound)
	}
}
