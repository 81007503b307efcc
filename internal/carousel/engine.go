// Package carousel is the navigation engine of the viewer: selection,
// gestures, loop arithmetic, lazy loading and thumbnail scrolling. It draws
// nothing and reads no input devices. The host feeds it normalized pointer
// events and geometry, calls Tick once per frame, and renders ListX,
// Displayed and the per-item view state.
//
// The engine is not safe for concurrent use; every call must come from the
// host's UI loop.
package carousel

import (
	"slices"
	"time"
)

// Options configures an Engine.
type Options struct {
	Loop    bool
	Loading Loading
	// Arrows enables the previous/next arrows of the main strip.
	Arrows bool
	// Selected is the initial selection.
	Selected int

	ThumbArrows     bool
	ThumbAutoScroll bool
	ThumbSlideBy    float64
	ScrollBehavior  ScrollBehavior
	// ScrollBase is the minimum smooth-scroll duration (BaseScrollTime if zero).
	ScrollBase time.Duration

	// Clock overrides time.Now for the scheduler.
	Clock func() time.Time
	// Logf receives debug messages; nil is silent.
	Logf func(format string, args ...any)
}

// DefaultOptions returns arrows and thumbnail auto-scroll enabled, auto
// loading and no looping.
func DefaultOptions() Options {
	return Options{
		Arrows:          true,
		ThumbArrows:     true,
		ThumbAutoScroll: true,
	}
}

// Engine wires the recognizer, selector, shifter, load policy and thumbnail
// synchronizer together.
type Engine struct {
	opts  Options
	sched *Scheduler

	items     []Item
	displayed []Item
	states    map[string]*ViewState

	sel    Selector
	shift  *Shifter
	rec    *Recognizer
	anim   *Animator
	thumbs *ThumbSync

	// gesture dropped because a seam reset was pending when it started
	dropping  bool
	lastClick bool
	// Options.Selected applies to the first non-empty collection
	initial int
	// commands received during a seam reset, replayed once it completes
	queued []func()
	closed bool

	onSelect    registry[SelectEvent]
	onItemClick registry[ItemEvent]
	onPause     registry[ItemEvent]
	onLoad      registry[LoadEvent]
	onThumb     registry[ThumbEvent]
}

// New creates an engine. strip and thumbs answer geometry queries; thumbs
// may be nil when no thumbnail strip is shown.
func New(opts Options, strip StripGeometry, thumbs ThumbGeometry) *Engine {
	sched := NewScheduler(opts.Clock)
	e := &Engine{
		opts:   opts,
		sched:  sched,
		states: make(map[string]*ViewState),
		shift:  NewShifter(strip, sched),
		rec:    NewRecognizer(),
		anim:   NewAnimator(sched, opts.ScrollBase),
	}
	e.sel.SetLoop(opts.Loop)
	e.initial = opts.Selected

	e.thumbs = NewThumbSync(thumbs, e.anim)
	e.thumbs.AutoScroll = opts.ThumbAutoScroll
	e.thumbs.Arrows = opts.ThumbArrows
	e.thumbs.SlideBy = opts.ThumbSlideBy
	e.thumbs.Behavior = opts.ScrollBehavior
	return e
}

func (e *Engine) logf(format string, args ...any) {
	if e.opts.Logf != nil {
		e.opts.Logf(format, args...)
	}
}

// Tick advances deferred work and animations by one frame.
func (e *Engine) Tick() {
	e.sched.Tick()
}

// Scheduler exposes the frame queue, mostly for tests.
func (e *Engine) Scheduler() *Scheduler { return e.sched }

// Close tears the engine down: pending work is dropped, animations stop
// and all subscriptions are removed.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.anim.Cancel()
	e.shift.Stop()
	e.sched.Close()
	e.queued = nil
	e.onSelect.clear()
	e.onItemClick.clear()
	e.onPause.clear()
	e.onLoad.clear()
	e.onThumb.clear()
}

// OnSelect subscribes to selection changes.
func (e *Engine) OnSelect(fn func(SelectEvent)) Subscription { return e.onSelect.add(fn) }

// OnItemClick subscribes to clicks on the main strip.
func (e *Engine) OnItemClick(fn func(ItemEvent)) Subscription { return e.onItemClick.add(fn) }

// OnPause subscribes to pause requests for video items navigated away from.
func (e *Engine) OnPause(fn func(ItemEvent)) Subscription { return e.onPause.add(fn) }

// OnLoad subscribes to resolved media loads.
func (e *Engine) OnLoad(fn func(LoadEvent)) Subscription { return e.onLoad.add(fn) }

// OnThumbClick subscribes to thumbnail clicks.
func (e *Engine) OnThumbClick(fn func(ThumbEvent)) Subscription { return e.onThumb.add(fn) }

// SetItems replaces the collection. View state survives for items whose ID
// is still present; the selection follows its item when it moves.
func (e *Engine) SetItems(items []Item) {
	if e.closed {
		return
	}
	prevCount := len(e.items)
	var prevID string
	if prevCount > 0 {
		prevID = e.items[e.sel.Index()].ID
	}

	if e.shift.Wrapping() {
		e.shift.CancelWrap()
		e.queued = nil
	}

	e.items = slices.Clone(items)
	keep := make(map[string]bool, len(items))
	for _, it := range e.items {
		keep[it.ID] = true
		if e.states[it.ID] == nil {
			e.states[it.ID] = &ViewState{}
		}
	}
	for id := range e.states {
		if !keep[id] {
			delete(e.states, id)
		}
	}

	e.sel.SetCount(len(e.items))
	if e.initial >= 0 && len(e.items) > 0 {
		e.sel.Set(e.initial)
		e.initial = -1
	}
	if prevID != "" {
		if i := slices.IndexFunc(e.items, func(it Item) bool { return it.ID == prevID }); i >= 0 {
			e.sel.Set(i)
		}
	}
	e.rebuild()
	e.thumbs.SetCount(len(e.items))

	if len(e.items) > 0 {
		cur := e.items[e.sel.Index()]
		e.states[cur.ID].Seen = true
		if prevCount > 0 && cur.ID != prevID {
			e.thumbs.Select(e.sel.Index())
			e.onSelect.emit(SelectEvent{Index: e.sel.Index(), Item: cur})
		}
	}
	e.shift.Relayout(e.sel.Index)

	if prevCount == 0 && len(e.items) > 0 {
		e.sched.Defer(func() { e.thumbs.Init(e.sel.Index()) })
	}
	e.logf("carousel: %d items, selected %d", len(e.items), e.sel.Index())
}

// SetLoop switches infinite looping on or off.
func (e *Engine) SetLoop(loop bool) {
	if e.closed || e.sel.Loop() == loop {
		return
	}
	if e.shift.Wrapping() {
		e.shift.CancelWrap()
		e.queued = nil
	}
	e.sel.SetLoop(loop)
	e.rebuild()
	e.shift.Relayout(e.sel.Index)
}

// SetLoading changes the loading mode.
func (e *Engine) SetLoading(l Loading) { e.opts.Loading = l }

func (e *Engine) rebuild() {
	f := e.fringe()
	e.displayed = Displayed(e.items, f)
	e.shift.SetLayout(f, len(e.items))
}

func (e *Engine) fringe() int {
	if len(e.items) == 0 {
		return 0
	}
	return FringeCount(e.sel.Loop())
}

// Resize schedules a relayout; call it when the host's layout changes.
func (e *Engine) Resize() {
	if e.closed {
		return
	}
	e.shift.Relayout(e.sel.Index)
}

// Select requests target as the new selection.
func (e *Engine) Select(target int) {
	if e.closed {
		return
	}
	if e.shift.Wrapping() {
		e.queued = append(e.queued, func() { e.Select(target) })
		return
	}
	prev := e.sel.Index()
	t := e.sel.Request(target)
	if !t.Changed {
		e.shift.Center(e.sel.Index())
		return
	}

	if old := e.items[prev]; old.IsVideo() {
		e.onPause.emit(ItemEvent{Index: prev, Item: old})
	}
	item := e.items[t.To]
	e.states[item.ID].Seen = true

	if t.Wrapped {
		e.logf("carousel: wrap %d -> %d", t.From, t.To)
		e.shift.Wrap(t.To, e.flushQueued)
	} else {
		e.shift.Center(t.To)
	}
	e.thumbs.Select(t.To)
	e.onSelect.emit(SelectEvent{Index: t.To, Item: item, Wrapped: t.Wrapped})
}

func (e *Engine) flushQueued() {
	q := e.queued
	e.queued = nil
	for _, fn := range q {
		fn()
	}
}

// Next selects the following item.
func (e *Engine) Next() { e.step(1) }

// Prev selects the preceding item.
func (e *Engine) Prev() { e.step(-1) }

func (e *Engine) step(dir int) {
	if e.shift.Wrapping() {
		e.queued = append(e.queued, func() { e.step(dir) })
		return
	}
	e.Select(e.sel.Index() + dir)
}

// First selects the first item.
func (e *Engine) First() { e.Select(0) }

// Last selects the last item.
func (e *Engine) Last() { e.Select(len(e.items) - 1) }

// PointerDown starts a drag session.
func (e *Engine) PointerDown(p Point, t time.Time) {
	if e.closed {
		return
	}
	e.lastClick = false
	if len(e.items) == 0 {
		return
	}
	if e.shift.Wrapping() {
		e.logf("carousel: gesture dropped during seam reset")
		e.dropping = true
		return
	}
	e.dropping = false
	e.rec.Start(p, t)
	e.shift.BeginDrag()
}

// PointerMove feeds movement. It reports whether the strip is tracking the
// pointer; false means the host should let the event through (vertical
// scrolling, or no session).
func (e *Engine) PointerMove(p Point, t time.Time) bool {
	if e.closed || e.dropping {
		return false
	}
	delta, ok := e.rec.Move(p, t)
	if ok {
		e.shift.Drag(e.sel.Index(), delta)
	}
	return ok
}

// PointerUp ends the session and applies its decision. It reports whether
// the interaction was a click.
func (e *Engine) PointerUp(p Point, t time.Time) bool {
	if e.closed {
		return false
	}
	if e.dropping {
		e.dropping = false
		return false
	}
	d, ok := e.rec.End(p, t)
	if !ok {
		return false
	}
	e.shift.EndDrag()
	e.apply(d)
	e.lastClick = d.Click
	return d.Click
}

// PointerCancel aborts the session and recenters on the current item.
func (e *Engine) PointerCancel() {
	if e.closed {
		return
	}
	e.dropping = false
	if d, ok := e.rec.Cancel(); ok {
		e.shift.EndDrag()
		e.apply(d)
	}
}

// Dragging reports whether a drag session is live.
func (e *Engine) Dragging() bool { return e.rec.Active() }

func (e *Engine) apply(d Decision) {
	switch d.Kind {
	case Advance:
		e.Select(e.sel.Index() + d.Direction)
	case SnapNearest:
		if i, ok := e.shift.Nearest(); ok {
			e.Select(i)
			return
		}
		e.shift.Center(e.sel.Index())
	default:
		e.shift.Center(e.sel.Index())
	}
}

// ClickItem reports a click on displayed item i. It only fires after a
// pointer release that resolved to a click.
func (e *Engine) ClickItem(displayed int) {
	if !e.lastClick {
		return
	}
	e.lastClick = false
	if i, ok := e.RealIndex(displayed); ok {
		e.onItemClick.emit(ItemEvent{Index: i, Item: e.items[i]})
	}
}

// Activate emits an item click for the selection (keyboard activation).
func (e *Engine) Activate() {
	if item, ok := e.SelectedItem(); ok {
		e.onItemClick.emit(ItemEvent{Index: e.sel.Index(), Item: item})
	}
}

// ClickThumb selects the item of thumbnail i.
func (e *Engine) ClickThumb(i int) {
	if e.closed || i < 0 || i >= len(e.items) {
		return
	}
	e.onThumb.emit(ThumbEvent{Index: i})
	e.Select(i)
}

// SlideThumbs scrolls the thumbnail strip one arrow step.
func (e *Engine) SlideThumbs(direction int) {
	if e.closed {
		return
	}
	e.thumbs.Slide(direction)
}

// ResolveLoad records the outcome of loading an item's source.
func (e *Engine) ResolveLoad(id string, ok bool) {
	st := e.states[id]
	if st == nil || e.closed {
		return
	}
	st.Loaded = ok
	st.Failed = !ok
	if i := e.indexOf(id); i >= 0 {
		e.onLoad.emit(LoadEvent{Item: e.items[i], OK: ok})
	}
}

// ResolveThumb records the outcome of loading an item's thumbnail.
func (e *Engine) ResolveThumb(id string, ok bool) {
	st := e.states[id]
	if st == nil || e.closed {
		return
	}
	st.ThumbFailed = !ok
	if i := e.indexOf(id); i >= 0 {
		e.onLoad.emit(LoadEvent{Item: e.items[i], OK: ok, Thumb: true})
	}
}

func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.items, func(it Item) bool { return it.ID == id })
}

// ShouldResolve reports whether displayed item i should have its source
// resolved under the current loading mode.
func (e *Engine) ShouldResolve(displayed int) bool {
	if displayed < 0 || displayed >= len(e.displayed) {
		return false
	}
	item := e.displayed[displayed]
	seen := e.states[item.ID] != nil && e.states[item.ID].Seen
	vw, w := e.shift.Geometry()
	window := ProximityWindow(vw, w)
	near := InProximity(e.sel.Index(), displayed-e.fringe(), len(e.items), e.sel.Loop(), window)
	return ShouldResolve(e.opts.Loading, seen, near)
}

// RealIndex maps a displayed index onto the collection.
func (e *Engine) RealIndex(displayed int) (int, bool) {
	n := len(e.items)
	if n == 0 || displayed < 0 || displayed >= len(e.displayed) {
		return 0, false
	}
	return ((displayed-e.fringe())%n + n) % n, true
}

// Items returns the collection.
func (e *Engine) Items() []Item { return e.items }

// Displayed returns the rendered sequence including fringe copies.
func (e *Engine) Displayed() []Item { return e.displayed }

// Fringe returns the number of fringe copies at each end.
func (e *Engine) Fringe() int { return e.fringe() }

// Selected returns the selected index.
func (e *Engine) Selected() int { return e.sel.Index() }

// SelectedItem returns the selected item; ok is false for an empty collection.
func (e *Engine) SelectedItem() (Item, bool) {
	if len(e.items) == 0 {
		return Item{}, false
	}
	return e.items[e.sel.Index()], true
}

// State returns a copy of the view state of item id.
func (e *Engine) State(id string) ViewState {
	if st := e.states[id]; st != nil {
		return *st
	}
	return ViewState{}
}

// ListX returns the main strip's translation offset.
func (e *Engine) ListX() float64 { return e.shift.ListX() }

// Animated reports whether the host should ease toward ListX.
func (e *Engine) Animated() bool { return e.shift.Animated() }

// Loop reports whether looping is enabled.
func (e *Engine) Loop() bool { return e.sel.Loop() }

// Loading returns the loading mode.
func (e *Engine) Loading() Loading { return e.opts.Loading }

// ShowPrev reports whether the previous arrow should be shown.
func (e *Engine) ShowPrev() bool { return e.opts.Arrows && e.sel.ShowPrev() }

// ShowNext reports whether the next arrow should be shown.
func (e *Engine) ShowNext() bool { return e.opts.Arrows && e.sel.ShowNext() }

// ThumbArrows reports which thumbnail arrows should be shown.
func (e *Engine) ThumbArrows() (start, end bool) { return e.thumbs.ArrowVisibility() }

// Counter returns the "i / n" counter text.
func (e *Engine) Counter() string { return e.sel.Counter() }

// Wrapping reports whether a seam reset is in progress.
func (e *Engine) Wrapping() bool { return e.shift.Wrapping() }
