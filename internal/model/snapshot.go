package model

// ClientPiece is what the renderer needs to draw one piece.
type ClientPiece struct {
	ID       string           `json:"id"`
	Side     Side             `json:"side"`
	Type     PieceType        `json:"kind"`
	Sprite   string           `json:"sprite"`
	X        float32          `json:"x"`
	Y        float32          `json:"y"`
	Depth    float32          `json:"depth"`
	Scale    float32          `json:"scale"`
	State    InteractionState `json:"state"`
	Movable  bool             `json:"movable"`
	Pawn     bool             `json:"pawn"`
	Captured bool             `json:"captured"`
	Home     string           `json:"home"`
}

type CaptureZoneState struct {
	White Vec2 `json:"white"`
	Black Vec2 `json:"black"`
}

type Players struct {
	Driver     *ClientPlayer  `json:"driver"`
	Spectators []ClientPlayer `json:"spectators"`
}

type Snapshot struct {
	GameID       string           `json:"gameId"`
	Tick         uint64           `json:"tick"`
	Sound        Sound            `json:"sound"`
	Hover        *string          `json:"hover"` // nullable
	Pieces       []ClientPiece    `json:"pieces"`
	CaptureZones CaptureZoneState `json:"captureZones"`
	Players      Players          `json:"players"`
}

func (p *Piece) client() ClientPiece {
	return ClientPiece{
		ID:       p.ID.String(),
		Side:     p.Side,
		Type:     p.Type,
		Sprite:   p.Sprite(),
		X:        p.Position.X,
		Y:        p.Position.Y,
		Depth:    p.Depth,
		Scale:    p.Scale,
		State:    p.State,
		Movable:  p.Caps.Has(Movable),
		Pawn:     p.Caps.Has(IsPawn),
		Captured: p.Captured,
		Home:     p.Home.String(),
	}
}

// Snapshot copies the board into a value safe to hand to other goroutines.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   e.tick,
		Sound:  e.sound,
		Pieces: make([]ClientPiece, 0, e.registry.Len()),
		CaptureZones: CaptureZoneState{
			White: e.zones.Peek(White),
			Black: e.zones.Peek(Black),
		},
		Players: Players{Spectators: []ClientPlayer{}},
	}
	if e.hover != nil {
		h := e.hover.String()
		s.Hover = &h
	}
	for _, p := range e.registry.All() {
		s.Pieces = append(s.Pieces, p.client())
	}
	return s
}
