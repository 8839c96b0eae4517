package model

import "github.com/google/uuid"

// Registry owns the live pieces in spawn order. Spawn order is also the
// order the grab pass scans in.
type Registry struct {
	pieces []*Piece
}

func NewRegistry() *Registry {
	return &Registry{}
}

// homeRows gives the back-rank row and pawn row for each side.
func homeRows(side Side) (back, pawns int) {
	if side == White {
		return 0, 1
	}
	return BoardSize - 1, BoardSize - 2
}

// SpawnBackRank adds a side's eight non-pawn pieces.
func (r *Registry) SpawnBackRank(side Side, placement Placement) {
	row, _ := homeRows(side)
	for col, pt := range backRank {
		sq := Square{Row: row, Col: col}
		r.pieces = append(r.pieces, newPiece(side, pt, sq, placement[sq]))
	}
}

// SpawnPawns adds a side's eight pawns.
func (r *Registry) SpawnPawns(side Side, placement Placement) {
	_, row := homeRows(side)
	for col := 0; col < BoardSize; col++ {
		sq := Square{Row: row, Col: col}
		r.pieces = append(r.pieces, newPiece(side, Pawn, sq, placement[sq]))
	}
}

// SpawnSide adds the full sixteen-piece army for one side.
func (r *Registry) SpawnSide(side Side, placement Placement) {
	r.SpawnBackRank(side, placement)
	r.SpawnPawns(side, placement)
}

// SpawnAll lays out the opening position: White back rank, both sides'
// pawns, then the Black back rank.
func (r *Registry) SpawnAll(placement Placement) {
	r.SpawnBackRank(White, placement)
	r.SpawnPawns(White, placement)
	r.SpawnPawns(Black, placement)
	r.SpawnBackRank(Black, placement)
}

func (r *Registry) Clear() {
	r.pieces = nil
}

func (r *Registry) Len() int {
	return len(r.pieces)
}

func (r *Registry) All() []*Piece {
	return r.pieces
}

// Select returns the pieces matching keep, in registry order.
func (r *Registry) Select(keep func(*Piece) bool) []*Piece {
	var out []*Piece
	for _, p := range r.pieces {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Registry) BySide(side Side) []*Piece {
	return r.Select(func(p *Piece) bool { return p.Side == side })
}

func (r *Registry) ByType(pt PieceType) []*Piece {
	return r.Select(func(p *Piece) bool { return p.Type == pt })
}

func (r *Registry) ByState(state InteractionState) []*Piece {
	return r.Select(func(p *Piece) bool { return p.State == state })
}

func (r *Registry) WithCap(c Capability) []*Piece {
	return r.Select(func(p *Piece) bool { return p.Caps.Has(c) })
}

func (r *Registry) Find(id uuid.UUID) *Piece {
	for _, p := range r.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Dragging returns the single piece being dragged, or nil.
func (r *Registry) Dragging() *Piece {
	for _, p := range r.pieces {
		if p.State == Dragging {
			return p
		}
	}
	return nil
}
