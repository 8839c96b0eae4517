package model

const (
	// SlotPitch is the spacing between captured pieces in a holding area.
	SlotPitch float32 = 40

	zoneGap   float32 = 300 // distance from the board's first column to a zone's row start
	zoneWidth float32 = 200
)

type zoneCursor struct {
	start Vec2
	limit float32
	next  Vec2
}

func (z *zoneCursor) take() Vec2 {
	slot := z.next
	z.next.X += SlotPitch
	if z.next.X > z.limit {
		z.next.X = z.start.X
		z.next.Y -= SlotPitch
	}
	return slot
}

// CaptureZones tracks the next free slot in each side's holding area.
// White's captured pieces collect left of the board, Black's to the right.
type CaptureZones struct {
	white zoneCursor
	black zoneCursor
}

func NewCaptureZones(l Layout) *CaptureZones {
	top := l.Origin.Y + float32(BoardSize-1)*TilePitch
	right := l.Origin.X + float32(BoardSize-1)*TilePitch

	whiteStart := Vec2{X: l.Origin.X - zoneGap, Y: top}
	blackStart := Vec2{X: right + TilePitch, Y: top}

	return &CaptureZones{
		white: zoneCursor{start: whiteStart, limit: whiteStart.X + zoneWidth, next: whiteStart},
		black: zoneCursor{start: blackStart, limit: blackStart.X + zoneWidth, next: blackStart},
	}
}

func (c *CaptureZones) cursor(side Side) *zoneCursor {
	if side == White {
		return &c.white
	}
	return &c.black
}

// NextSlot hands out the side's current slot and advances its cursor.
func (c *CaptureZones) NextSlot(side Side) Vec2 {
	return c.cursor(side).take()
}

// Peek returns the slot the next capture on side will use.
func (c *CaptureZones) Peek(side Side) Vec2 {
	return c.cursor(side).next
}

func (c *CaptureZones) Reset() {
	c.white.next = c.white.start
	c.black.next = c.black.start
}
