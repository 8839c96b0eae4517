package model

// Interaction is the pick-up/drag/drop state machine. It owns the single
// Previous slot: the position of the most recently grabbed piece at the
// moment it was grabbed.
type Interaction struct {
	previous    Vec2
	hasPrevious bool
}

func NewInteraction() *Interaction {
	return &Interaction{}
}

func (in *Interaction) Previous() (Vec2, bool) {
	return in.previous, in.hasPrevious
}

func (in *Interaction) Reset() {
	in.previous = Vec2{}
	in.hasPrevious = false
}

// expire turns last tick's dropped piece back to idle.
func (in *Interaction) expire(reg *Registry) {
	for _, p := range reg.ByState(JustDropped) {
		p.State = Idle
	}
}

// Grab picks up the first movable piece under the pointer, in registry
// order. Nothing happens while another piece is being dragged.
func (in *Interaction) Grab(reg *Registry, f InputFrame) *Piece {
	if !f.Pressed || f.Pointer == nil || reg.Dragging() != nil {
		return nil
	}
	for _, p := range reg.All() {
		if !p.Caps.Has(Movable) || !p.Box().Contains(*f.Pointer) {
			continue
		}
		for _, d := range reg.ByState(JustDropped) {
			d.State = Idle
		}
		in.previous = p.Position
		in.hasPrevious = true
		p.State = Dragging
		return p
	}
	return nil
}

// Drag moves the dragged piece onto the pointer.
func (in *Interaction) Drag(reg *Registry, f InputFrame) {
	p := reg.Dragging()
	if p == nil || f.Pointer == nil {
		return
	}
	p.Position = *f.Pointer
	p.Depth = DragDepth
}

// Drop releases the dragged piece wherever it is and returns it.
func (in *Interaction) Drop(reg *Registry, f InputFrame) *Piece {
	if !f.Released {
		return nil
	}
	p := reg.Dragging()
	if p == nil {
		return nil
	}
	p.Depth = RestDepth
	p.State = JustDropped
	return p
}
