package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorRequest(t *testing.T) {
	cases := []struct {
		name   string
		loop   bool
		from   int
		target int
		want   Transition
	}{
		{"forward", false, 1, 2, Transition{From: 1, To: 2, Changed: true}},
		{"same index", false, 2, 2, Transition{From: 2, To: 2}},
		{"below range", false, 0, -1, Transition{From: 0, To: 0, Rejected: true}},
		{"above range", false, 4, 5, Transition{From: 4, To: 4, Rejected: true}},
		{"loop back across seam", true, 0, -1, Transition{From: 0, To: 4, Changed: true, Wrapped: true}},
		{"loop forward across seam", true, 4, 5, Transition{From: 4, To: 0, Changed: true, Wrapped: true}},
		{"loop far below", true, 2, -3, Transition{From: 2, To: 4, Changed: true}},
		{"loop far above", true, 2, 9, Transition{From: 2, To: 0, Changed: true}},
		{"loop jump inside range", true, 0, 4, Transition{From: 0, To: 4, Changed: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Selector
			s.SetLoop(tc.loop)
			s.SetCount(5)
			s.Set(tc.from)

			got := s.Request(tc.target)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.To, s.Index())
		})
	}
}

func TestSelectorIdempotent(t *testing.T) {
	var s Selector
	s.SetCount(3)
	first := s.Request(1)
	second := s.Request(1)
	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Equal(t, 1, s.Index())
}

func TestSelectorEmpty(t *testing.T) {
	var s Selector
	s.SetLoop(true)
	got := s.Step(1)
	assert.True(t, got.Rejected)
	assert.Zero(t, s.Index())
	assert.Empty(t, s.Counter())
	assert.False(t, s.ShowPrev())
	assert.False(t, s.ShowNext())
}

func TestSelectorSingleItemNeverWraps(t *testing.T) {
	var s Selector
	s.SetLoop(true)
	s.SetCount(1)
	got := s.Step(1)
	assert.False(t, got.Changed)
	assert.False(t, got.Wrapped)
	assert.False(t, s.ShowNext())
}

func TestSelectorClampsOnShrink(t *testing.T) {
	var s Selector
	s.SetCount(10)
	s.Set(8)
	s.SetCount(4)
	assert.Equal(t, 3, s.Index())
	assert.Equal(t, "4 / 4", s.Counter())
}

func TestSelectorArrows(t *testing.T) {
	var s Selector
	s.SetCount(3)
	assert.False(t, s.ShowPrev())
	assert.True(t, s.ShowNext())

	s.Set(2)
	assert.True(t, s.ShowPrev())
	assert.False(t, s.ShowNext())

	s.SetLoop(true)
	assert.True(t, s.ShowNext())
}
