package model

import (
	"fmt"
	"strings"
)

const (
	BoardSize = 8
	// TilePitch is the world-space width of one square.
	TilePitch float32 = 100
)

type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Square is an algebraic board coordinate. The letter picks the row
// (A is the White back rank) and the digit picks the column.
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'A'+s.Row, s.Col+1)
}

func (s Square) valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

func ParseSquare(s string) (Square, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq := Square{Row: int(s[0] - 'A'), Col: int(s[1] - '1')}
	if !sq.valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

type Rect struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// Contains is inclusive on every edge.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Layout anchors the 8x8 grid in world space. Origin is the centre of A1.
type Layout struct {
	Origin Vec2
}

var DefaultLayout = Layout{Origin: Vec2{X: -350, Y: -350}}

// Place maps a column (file) and row (rank) index to the centre of that
// square.
func (l Layout) Place(file, rank int) Vec2 {
	return l.Origin.Add(Vec2{X: float32(file) * TilePitch, Y: float32(rank) * TilePitch})
}

func (l Layout) PlaceSquare(sq Square) Vec2 {
	return l.Place(sq.Col, sq.Row)
}

// Bounds is the board rectangle measured on tile edges.
func (l Layout) Bounds() Rect {
	half := TilePitch / 2
	return Rect{
		Min: Vec2{X: l.Origin.X - half, Y: l.Origin.Y - half},
		Max: Vec2{X: l.Origin.X + float32(BoardSize-1)*TilePitch + half, Y: l.Origin.Y + float32(BoardSize-1)*TilePitch + half},
	}
}

// RowBand spans the full board width over a single row.
func (l Layout) RowBand(row int) Rect {
	b := l.Bounds()
	centre := l.Place(0, row).Y
	half := TilePitch / 2
	return Rect{
		Min: Vec2{X: b.Min.X, Y: centre - half},
		Max: Vec2{X: b.Max.X, Y: centre + half},
	}
}

// SquareAt returns the square under a world position, if it is on the
// board.
func (l Layout) SquareAt(p Vec2) (Square, bool) {
	b := l.Bounds()
	if !b.Contains(p) {
		return Square{}, false
	}
	col := int((p.X - b.Min.X) / TilePitch)
	row := int((p.Y - b.Min.Y) / TilePitch)
	// The far edges are inclusive and would otherwise index past the board.
	if col == BoardSize {
		col--
	}
	if row == BoardSize {
		row--
	}
	return Square{Row: row, Col: col}, true
}

// Placement maps every square to its world position. Read-only once built.
type Placement map[Square]Vec2

func (l Layout) Placement() Placement {
	p := make(Placement, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{Row: row, Col: col}
			p[sq] = l.PlaceSquare(sq)
		}
	}
	return p
}
