package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(evs []PointerEvent) []PointerKind {
	out := make([]PointerKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func mouseAt(pressed bool, x, y float64) pointerSample {
	return pointerSample{focused: true, mouse: pressed, mx: x, my: y}
}

func touchAt(pts ...touchPoint) pointerSample {
	return pointerSample{focused: true, touches: pts}
}

func TestPointerMouseSession(t *testing.T) {
	p := NewPointerTracker(true, true)

	evs := p.step(mouseAt(true, 10, 20))
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Kind: PointerDown, X: 10, Y: 20}, evs[0])
	assert.True(t, p.Active())

	assert.Empty(t, p.step(mouseAt(true, 10, 20)), "no move without motion")

	evs = p.step(mouseAt(true, 40, 20))
	assert.Equal(t, []PointerKind{PointerMove}, kinds(evs))
	assert.Equal(t, 40.0, evs[0].X)

	evs = p.step(mouseAt(false, 45, 22))
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Kind: PointerUp, X: 45, Y: 22}, evs[0])
	assert.False(t, p.Active())
}

func TestPointerMouseHeldDoesNotRestart(t *testing.T) {
	p := NewPointerTracker(true, false)
	p.step(mouseAt(true, 0, 0))
	p.step(pointerSample{focused: false, mouse: true})
	assert.False(t, p.Active())

	// still held after focus returns: no new session until a fresh press
	assert.Empty(t, p.step(mouseAt(true, 5, 5)))
	assert.Empty(t, p.step(mouseAt(false, 5, 5)))
	assert.Equal(t, []PointerKind{PointerDown}, kinds(p.step(mouseAt(true, 5, 5))))
}

func TestPointerFocusLossCancels(t *testing.T) {
	p := NewPointerTracker(true, true)
	p.step(mouseAt(true, 10, 10))
	p.step(mouseAt(true, 30, 10))

	evs := p.step(pointerSample{focused: false, mouse: true, mx: 50, my: 10})
	require.Len(t, evs, 1)
	assert.Equal(t, PointerCancel, evs[0].Kind)
	assert.Equal(t, 30.0, evs[0].X, "cancel reports the last tracked position")
}

func TestPointerTouchSession(t *testing.T) {
	p := NewPointerTracker(true, true)
	id := ebiten.TouchID(7)

	evs := p.step(touchAt(touchPoint{id: id, x: 100, y: 50}))
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Kind: PointerDown, X: 100, Y: 50, Touch: true}, evs[0])

	evs = p.step(touchAt(touchPoint{id: id, x: 80, y: 52}))
	assert.Equal(t, []PointerKind{PointerMove}, kinds(evs))
	assert.True(t, evs[0].Touch)

	evs = p.step(touchAt())
	require.Len(t, evs, 1)
	assert.Equal(t, PointerUp, evs[0].Kind)
	assert.Equal(t, 80.0, evs[0].X, "touch release reports the last position")
}

func TestPointerSecondTouchCancels(t *testing.T) {
	p := NewPointerTracker(true, true)
	a, b := ebiten.TouchID(1), ebiten.TouchID(2)

	p.step(touchAt(touchPoint{id: a, x: 10, y: 10}))
	evs := p.step(touchAt(touchPoint{id: a, x: 12, y: 10}, touchPoint{id: b, x: 200, y: 10}))
	assert.Equal(t, []PointerKind{PointerCancel}, kinds(evs))

	// lifting one finger does not start a new session
	assert.Empty(t, p.step(touchAt(touchPoint{id: b, x: 200, y: 10})))
	assert.False(t, p.Active())

	// all fingers up, then a fresh touch works again
	assert.Empty(t, p.step(touchAt()))
	assert.Equal(t, []PointerKind{PointerDown}, kinds(p.step(touchAt(touchPoint{id: 3, x: 1, y: 1}))))
}

func TestPointerMultiTouchStartIgnored(t *testing.T) {
	p := NewPointerTracker(true, true)
	assert.Empty(t, p.step(touchAt(touchPoint{id: 1}, touchPoint{id: 2})))
	assert.Empty(t, p.step(touchAt(touchPoint{id: 1})))
}

func TestPointerDisabledSources(t *testing.T) {
	p := NewPointerTracker(false, false)
	assert.Empty(t, p.step(mouseAt(true, 1, 1)))
	assert.Empty(t, p.step(touchAt(touchPoint{id: 1})))
}

func TestPointerKindString(t *testing.T) {
	assert.Equal(t, "down", PointerDown.String())
	assert.Equal(t, "cancel", PointerCancel.String())
}
