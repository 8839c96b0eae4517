package model

type Resolution struct {
	Reverted bool
	Captured []*Piece
}

// Resolve adjudicates a drop. A drop onto a friendly piece is reverted to
// the grab position and captures nothing. Otherwise every opposing piece
// the dropped piece overlaps is captured.
func Resolve(reg *Registry, in *Interaction, zones *CaptureZones, dropped *Piece) Resolution {
	var res Resolution
	if dropped == nil {
		return res
	}

	if blockedByFriend(reg, dropped) {
		if prev, ok := in.Previous(); ok {
			dropped.Position = prev
		}
		res.Reverted = true
		return res
	}

	for _, p := range reg.All() {
		if p == dropped || p.Captured || p.Side != dropped.Side.Opponent() {
			continue
		}
		if !dropped.Overlaps(p) {
			continue
		}
		capture(p, zones)
		res.Captured = append(res.Captured, p)
	}
	return res
}

func blockedByFriend(reg *Registry, dropped *Piece) bool {
	for _, p := range reg.All() {
		if p == dropped || p.Captured || p.Side != dropped.Side {
			continue
		}
		if dropped.Overlaps(p) {
			return true
		}
	}
	return false
}

func capture(p *Piece, zones *CaptureZones) {
	p.Position = zones.NextSlot(p.Side)
	p.Scale = CapturedScale
	p.Caps.Remove(Movable)
	p.Captured = true
	p.State = Idle
	p.Depth = RestDepth
}
