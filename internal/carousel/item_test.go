package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestDisplayed(t *testing.T) {
	items := testItems(3)
	assert.Equal(t, []string{"item-0", "item-1", "item-2"}, ids(Displayed(items, 0)))
	assert.Equal(t,
		[]string{"item-2", "item-0", "item-1", "item-2", "item-0"},
		ids(Displayed(items, FringeCount(true))))
	assert.Equal(t, []string{"item-0", "item-0", "item-0"}, ids(Displayed(testItems(1), 1)))
	assert.Empty(t, Displayed(nil, 1))
}

func TestItemSources(t *testing.T) {
	it := Item{Src: "a.mp4", Kind: KindVideo}
	assert.True(t, it.IsVideo())
	assert.Equal(t, "a.mp4", it.ThumbSrc())

	it.Thumb = "a.jpg"
	assert.Equal(t, "a.jpg", it.ThumbSrc())
	assert.True(t, Item{Kind: KindEmbed}.IsVideo())
	assert.False(t, Item{}.IsVideo())
	assert.Equal(t, "embed", KindEmbed.String())
}

func TestRegistryRemoveDuringEmit(t *testing.T) {
	var r registry[int]
	var got []int
	var sub Subscription
	sub = r.add(func(v int) {
		got = append(got, v)
		sub.Remove()
	})
	r.add(func(v int) { got = append(got, v*10) })

	r.emit(1)
	r.emit(2)
	assert.Equal(t, []int{1, 10, 20}, got)
}
