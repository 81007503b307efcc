package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/stripview/internal/carousel"
)

var (
	_ carousel.StripGeometry = (*StripView)(nil)
	_ carousel.ThumbGeometry = (*ThumbView)(nil)
)

func TestStripViewGeometry(t *testing.T) {
	s := NewStripView(0.5)
	assert.True(t, s.SetBounds(0, 0, 1000, 600))
	assert.False(t, s.SetBounds(0, 0, 1000, 600), "same size is not a change")
	assert.Equal(t, 1000.0, s.ViewportWidth())
	assert.Equal(t, 500.0, s.ItemWidth())

	assert.Equal(t, 1.0, NewStripView(0).Ratio)
	assert.Equal(t, 1.0, NewStripView(3).Ratio)
}

func TestStripViewItemAt(t *testing.T) {
	s := NewStripView(0.5)
	s.SetBounds(0, 0, 1000, 600)
	s.Follow(250, false)
	assert.Equal(t, 250.0, s.Scroll.Pos)

	d, ok := s.ItemAt(100, 300, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	d, ok = s.ItemAt(300, 300, 5)
	assert.True(t, ok)
	assert.Equal(t, 1, d)

	_, ok = s.ItemAt(100, 700, 5)
	assert.False(t, ok, "below the strip")

	_, ok = s.ItemAt(900, 300, 2)
	assert.False(t, ok, "past the last item")

	s.Follow(1000, true)
	assert.InDelta(t, 385.0, s.Scroll.Pos, 1e-9)
}

func TestThumbViewHorizontal(t *testing.T) {
	v := NewThumbView(100, false)
	v.SetCount(5)
	v.SetBounds(0, 500, 350, 116)

	off, size := v.ThumbExtent(2)
	assert.Equal(t, 224.0, off)
	assert.Equal(t, 100.0, size)
	assert.Equal(t, 548.0, v.ContentSize())
	assert.Equal(t, 350.0, v.ViewportSize())
	assert.Equal(t, 198.0, v.Scroll.Max)
	assert.Equal(t, 116.0, v.Extent())

	i, ok := v.ThumbAt(10, 550)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = v.ThumbAt(112, 550)
	assert.False(t, ok, "gap between thumbnails")

	i, ok = v.ThumbAt(120, 550)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	v.ScrollBy(1000)
	assert.Equal(t, 198.0, v.ScrollPos())
	i, ok = v.ThumbAt(340, 550)
	assert.True(t, ok)
	assert.Equal(t, 4, i)

	first, last := v.VisibleRange()
	assert.Equal(t, 1, first)
	assert.Equal(t, 5, last)

	_, ok = v.ThumbAt(10, 100)
	assert.False(t, ok, "outside the strip")
	assert.False(t, v.NativeSmoothScroll())
}

func TestThumbViewVertical(t *testing.T) {
	v := NewThumbView(100, true)
	v.SetCount(3)
	v.SetBounds(0, 0, 116, 300)

	assert.Equal(t, 300.0, v.ViewportSize())
	assert.Equal(t, 32.0, v.Scroll.Max)

	i, ok := v.ThumbAt(50, 120)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestThumbViewEmpty(t *testing.T) {
	v := NewThumbView(100, false)
	v.SetBounds(0, 0, 500, 116)
	assert.Equal(t, 0.0, v.ContentSize())
	first, last := v.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
	_, ok := v.ThumbAt(10, 10)
	assert.False(t, ok)
}
