package model

// PromotionBand is the far row a side's pawns promote on.
func (l Layout) PromotionBand(side Side) Rect {
	if side == White {
		return l.RowBand(BoardSize - 1)
	}
	return l.RowBand(0)
}

// Promote swaps every pawn standing in its promotion band to the kind
// chosen by this frame's key edge. Promoted pieces lose the pawn
// capability, so each pawn promotes at most once.
func Promote(reg *Registry, l Layout, f InputFrame) []*Piece {
	to, ok := f.promotionChoice()
	if !ok {
		return nil
	}
	var promoted []*Piece
	for _, p := range reg.WithCap(IsPawn) {
		if !l.PromotionBand(p.Side).Contains(p.Position) {
			continue
		}
		p.Type = to
		p.Caps.Remove(IsPawn)
		promoted = append(promoted, p)
	}
	return promoted
}
