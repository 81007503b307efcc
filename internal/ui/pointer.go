package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerKind is the phase of a normalized pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "cancel"
	}
}

// PointerEvent is one mouse or touch event in screen coordinates.
type PointerEvent struct {
	Kind  PointerKind
	X, Y  float64
	Touch bool
}

type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// pointerSample is the raw device state of one frame.
type pointerSample struct {
	focused bool
	mouse   bool
	mx, my  float64
	touches []touchPoint
}

// PointerTracker turns per-frame mouse and touch state into a single
// pointer stream. Only one session runs at a time. A second finger or a
// focus loss cancels it; remaining fingers are then ignored until all of
// them lift.
type PointerTracker struct {
	Mouse bool
	Touch bool

	down         bool
	touch        bool
	touchID      ebiten.TouchID
	lastX, lastY float64
	prevMouse    bool
	waitRelease  bool

	touchIDs []ebiten.TouchID
	events   []PointerEvent
}

// NewPointerTracker creates a tracker with the given sources enabled.
func NewPointerTracker(mouse, touch bool) *PointerTracker {
	return &PointerTracker{Mouse: mouse, Touch: touch}
}

// Update reads the devices and returns this frame's events. The slice is
// reused on the next call.
func (p *PointerTracker) Update() []PointerEvent {
	s := pointerSample{focused: ebiten.IsFocused()}
	if p.Mouse {
		mx, my := ebiten.CursorPosition()
		s.mouse = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		s.mx, s.my = float64(mx), float64(my)
	}
	if p.Touch {
		p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
		for _, id := range p.touchIDs {
			tx, ty := ebiten.TouchPosition(id)
			s.touches = append(s.touches, touchPoint{id: id, x: float64(tx), y: float64(ty)})
		}
	}
	return p.step(s)
}

// Active reports whether a session is in progress.
func (p *PointerTracker) Active() bool { return p.down }

func (p *PointerTracker) step(s pointerSample) []PointerEvent {
	p.events = p.events[:0]
	justPressed := s.mouse && !p.prevMouse
	p.prevMouse = s.mouse

	if p.waitRelease && len(s.touches) == 0 {
		p.waitRelease = false
	}

	if p.down {
		switch {
		case !s.focused:
			p.end(PointerCancel, p.lastX, p.lastY)
		case p.touch:
			p.stepTouch(s)
		case s.mouse:
			p.move(s.mx, s.my)
		default:
			p.end(PointerUp, s.mx, s.my)
		}
		return p.events
	}

	if !s.focused {
		return p.events
	}
	switch {
	case p.Touch && !p.waitRelease && len(s.touches) == 1:
		t := s.touches[0]
		p.begin(t.x, t.y, true)
		p.touchID = t.id
	case p.Touch && len(s.touches) > 1:
		p.waitRelease = true
	case p.Mouse && justPressed:
		p.begin(s.mx, s.my, false)
	}
	return p.events
}

func (p *PointerTracker) stepTouch(s pointerSample) {
	if len(s.touches) > 1 {
		p.end(PointerCancel, p.lastX, p.lastY)
		p.waitRelease = true
		return
	}
	for _, t := range s.touches {
		if t.id == p.touchID {
			p.move(t.x, t.y)
			return
		}
	}
	p.end(PointerUp, p.lastX, p.lastY)
}

func (p *PointerTracker) begin(x, y float64, touch bool) {
	p.down = true
	p.touch = touch
	p.lastX, p.lastY = x, y
	p.events = append(p.events, PointerEvent{Kind: PointerDown, X: x, Y: y, Touch: touch})
}

func (p *PointerTracker) move(x, y float64) {
	if x == p.lastX && y == p.lastY {
		return
	}
	p.lastX, p.lastY = x, y
	p.events = append(p.events, PointerEvent{Kind: PointerMove, X: x, Y: y, Touch: p.touch})
}

func (p *PointerTracker) end(kind PointerKind, x, y float64) {
	p.down = false
	p.events = append(p.events, PointerEvent{Kind: kind, X: x, Y: y, Touch: p.touch})
	p.touch = false
}
