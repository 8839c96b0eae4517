package model

// Sound names the audible event a tick produced, for the renderer.
type Sound string

const (
	SoundNone    Sound = ""
	SoundGrab    Sound = "grab"
	SoundMove    Sound = "move"
	SoundIllegal Sound = "illegal"
	SoundCapture Sound = "capture"
	SoundPromote Sound = "promote"
	SoundReset   Sound = "reset"
)

// TickReport summarises what one tick changed.
type TickReport struct {
	Reset    bool
	Grabbed  *Piece
	Dropped  *Piece
	Reverted bool
	Captured []*Piece
	Promoted []*Piece
}

func (r TickReport) Sound() Sound {
	switch {
	case r.Reset:
		return SoundReset
	case len(r.Promoted) > 0:
		return SoundPromote
	case len(r.Captured) > 0:
		return SoundCapture
	case r.Reverted:
		return SoundIllegal
	case r.Dropped != nil:
		return SoundMove
	case r.Grabbed != nil:
		return SoundGrab
	}
	return SoundNone
}

// Changed reports whether the tick did anything worth broadcasting beyond
// a drag update.
func (r TickReport) Changed() bool {
	return r.Sound() != SoundNone
}

// Engine runs the board one tick at a time. It is not safe for concurrent
// use; Game serialises access.
type Engine struct {
	layout      Layout
	placement   Placement
	registry    *Registry
	interaction *Interaction
	zones       *CaptureZones

	tick  uint64
	sound Sound
	hover *Square
}

func NewEngine(l Layout) *Engine {
	e := &Engine{
		layout:      l,
		placement:   l.Placement(),
		registry:    NewRegistry(),
		interaction: NewInteraction(),
		zones:       NewCaptureZones(l),
	}
	e.registry.SpawnAll(e.placement)
	return e
}

func (e *Engine) Layout() Layout { return e.layout }
func (e *Engine) Registry() *Registry { return e.registry }
func (e *Engine) Zones() *CaptureZones { return e.zones }
func (e *Engine) Interaction() *Interaction { return e.interaction }
func (e *Engine) TickCount() uint64 { return e.tick }

// Reset throws away every piece, captured or not, and lays out the opening
// position again with empty holding areas.
func (e *Engine) Reset() {
	e.registry.Clear()
	e.interaction.Reset()
	e.zones.Reset()
	e.registry.SpawnAll(e.placement)
	e.sound = SoundReset
}

// Tick applies one input frame. Reset short-circuits the rest of the tick;
// otherwise grab, drag and drop run before the drop is resolved, and
// promotion runs last.
func (e *Engine) Tick(f InputFrame) TickReport {
	e.tick++
	e.hover = nil
	if f.Pointer != nil {
		if sq, ok := e.layout.SquareAt(*f.Pointer); ok {
			e.hover = &sq
		}
	}

	if f.wantsReset() {
		e.Reset()
		return TickReport{Reset: true}
	}

	var rep TickReport
	e.interaction.expire(e.registry)
	rep.Grabbed = e.interaction.Grab(e.registry, f)
	e.interaction.Drag(e.registry, f)
	rep.Dropped = e.interaction.Drop(e.registry, f)
	if rep.Dropped != nil {
		res := Resolve(e.registry, e.interaction, e.zones, rep.Dropped)
		rep.Reverted = res.Reverted
		rep.Captured = res.Captured
	}
	rep.Promoted = Promote(e.registry, e.layout, f)

	e.sound = rep.Sound()
	return rep
}
