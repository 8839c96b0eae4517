package model

import (
	"github.com/google/uuid"
)

type Side string

const (
	White Side = "white"
	Black Side = "black"
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// backRank is the left-to-right order of the non-pawn pieces.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

type InteractionState string

const (
	Idle        InteractionState = "idle"
	Dragging    InteractionState = "dragging"
	JustDropped InteractionState = "dropped"
)

type Capability uint8

const (
	Movable Capability = 1 << iota
	IsPawn
)

type Capabilities uint8

func (c Capabilities) Has(cap Capability) bool {
	return uint8(c)&uint8(cap) != 0
}

func (c *Capabilities) Add(cap Capability) {
	*c = Capabilities(uint8(*c) | uint8(cap))
}

func (c *Capabilities) Remove(cap Capability) {
	*c = Capabilities(uint8(*c) &^ uint8(cap))
}

const (
	RestDepth     float32 = 1
	DragDepth     float32 = 2
	NormalScale   float32 = 1
	CapturedScale float32 = 0.4
	// HalfExtent is half the side of a piece's square hit box.
	HalfExtent float32 = 37.5
)

type Piece struct {
	ID       uuid.UUID
	Side     Side
	Type     PieceType
	Position Vec2
	Depth    float32
	Scale    float32
	State    InteractionState
	Caps     Capabilities
	Captured bool
	Home     Square
}

func newPiece(side Side, pt PieceType, home Square, pos Vec2) *Piece {
	p := &Piece{
		ID:       uuid.New(),
		Side:     side,
		Type:     pt,
		Position: pos,
		Depth:    RestDepth,
		Scale:    NormalScale,
		State:    Idle,
		Home:     home,
	}
	p.Caps.Add(Movable)
	if pt == Pawn {
		p.Caps.Add(IsPawn)
	}
	return p
}

// Box is the piece's hit box, centred on its position.
func (p *Piece) Box() Rect {
	return Rect{
		Min: Vec2{X: p.Position.X - HalfExtent, Y: p.Position.Y - HalfExtent},
		Max: Vec2{X: p.Position.X + HalfExtent, Y: p.Position.Y + HalfExtent},
	}
}

// Overlaps reports whether two hit boxes intersect. Boxes that only touch
// do not count.
func (p *Piece) Overlaps(o *Piece) bool {
	return abs32(p.Position.X-o.Position.X) < 2*HalfExtent &&
		abs32(p.Position.Y-o.Position.Y) < 2*HalfExtent
}

func (p *Piece) Sprite() string {
	return string(p.Side) + "_" + string(p.Type)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
