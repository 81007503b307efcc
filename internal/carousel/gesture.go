package carousel

import (
	"math"
	"time"
)

// Point is a device-independent pointer position in strip pixels.
type Point struct {
	X, Y float64
}

// Axis is the direction a drag session locked onto.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// DecisionKind is the resolved outcome of a finished interaction.
type DecisionKind int

const (
	// SnapCurrent recenters on the current selection.
	SnapCurrent DecisionKind = iota
	// SnapNearest selects the item closest to the strip's current offset.
	SnapNearest
	// Advance steps one item in Decision.Direction.
	Advance
)

func (k DecisionKind) String() string {
	switch k {
	case SnapNearest:
		return "snap-nearest"
	case Advance:
		return "advance"
	default:
		return "snap-current"
	}
}

// Decision is what a drag session resolved to.
type Decision struct {
	Kind      DecisionKind
	Direction int // -1 previous, +1 next; only for Advance
	// Click is true when the pointer never strayed past the click slop, so
	// the release may be treated as a click on the item under it.
	Click    bool
	Distance float64
	Elapsed  time.Duration
}

// Session is the state of one live interaction.
type Session struct {
	Origin   Point
	Start    time.Time
	Last     Point
	LastTime time.Time
	Axis     Axis
	maxDX    float64
	maxDY    float64
}

// Recognizer classifies a contiguous pointer interaction as a horizontal
// drag and resolves it into a Decision when it ends. Mouse and single-finger
// touch reach it in the same shape.
type Recognizer struct {
	// AxisRatio favours horizontal: |dx|*AxisRatio >= |dy| locks horizontal.
	AxisRatio float64
	// MinDistance is the swipe distance in pixels that must be exceeded.
	MinDistance float64
	// MaxMillisPerPixel bounds |elapsed ms / distance| for a swipe.
	MaxMillisPerPixel float64
	// ClickSlop is how far the pointer may move and still count as a click.
	ClickSlop float64

	session *Session
}

// NewRecognizer returns a recognizer with the default thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		AxisRatio:         1.2,
		MinDistance:       20,
		MaxMillisPerPixel: 4,
		ClickSlop:         10,
	}
}

// Active reports whether a session is live.
func (r *Recognizer) Active() bool { return r.session != nil }

// Session returns a copy of the live session.
func (r *Recognizer) Session() (Session, bool) {
	if r.session == nil {
		return Session{}, false
	}
	return *r.session, true
}

// Start opens a new session, replacing any live one.
func (r *Recognizer) Start(p Point, t time.Time) {
	r.session = &Session{Origin: p, Start: t, Last: p, LastTime: t}
}

// Move records pointer movement. For a horizontally locked session it
// returns the cumulative horizontal displacement since Start and true;
// vertical or undecided sessions return false and the caller should let the
// event through untouched.
func (r *Recognizer) Move(p Point, t time.Time) (delta float64, tracking bool) {
	s := r.session
	if s == nil {
		return 0, false
	}
	dx := math.Abs(p.X - s.Origin.X)
	dy := math.Abs(p.Y - s.Origin.Y)
	s.maxDX = math.Max(s.maxDX, dx)
	s.maxDY = math.Max(s.maxDY, dy)

	if s.Axis == AxisNone && (dx != 0 || dy != 0) {
		if dx*r.AxisRatio >= dy {
			s.Axis = AxisHorizontal
		} else {
			s.Axis = AxisVertical
		}
	}
	if s.Axis != AxisHorizontal {
		return 0, false
	}
	s.Last = p
	s.LastTime = t
	return p.X - s.Origin.X, true
}

// End closes the session and resolves it. ok is false without a session.
func (r *Recognizer) End(p Point, t time.Time) (d Decision, ok bool) {
	s := r.session
	if s == nil {
		return Decision{}, false
	}
	r.session = nil

	dx := math.Abs(p.X - s.Origin.X)
	dy := math.Abs(p.Y - s.Origin.Y)
	click := math.Max(s.maxDX, dx) <= r.ClickSlop && math.Max(s.maxDY, dy) <= r.ClickSlop

	if s.Axis == AxisVertical {
		return Decision{Kind: SnapCurrent, Click: click}, true
	}
	d = r.Resolve(t.Sub(s.Start), p.X-s.Origin.X)
	d.Click = click
	return d, true
}

// Cancel drops the session. An interrupted gesture never advances.
func (r *Recognizer) Cancel() (Decision, bool) {
	if r.session == nil {
		return Decision{}, false
	}
	r.session = nil
	return Decision{Kind: SnapCurrent}, true
}

// Resolve applies the swipe rule to a finished horizontal drag: a fast
// enough drag longer than MinDistance advances against the drag direction
// (dragging right reveals the previous item), anything else snaps to the
// nearest item.
func (r *Recognizer) Resolve(elapsed time.Duration, distance float64) Decision {
	d := Decision{Kind: SnapNearest, Distance: distance, Elapsed: elapsed}
	if math.Abs(distance) <= r.MinDistance {
		return d
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	if math.Abs(ms/distance) < r.MaxMillisPerPixel {
		d.Kind = Advance
		d.Direction = -int(math.Copysign(1, distance))
	}
	return d
}
