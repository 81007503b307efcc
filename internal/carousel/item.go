package carousel

// Kind classifies an item's media.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindEmbed // externally hosted player, e.g. a YouTube embed URL
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindEmbed:
		return "embed"
	default:
		return "image"
	}
}

// Item is one entry of the carousel. The engine never changes an item; its
// mutable view state lives in a side table keyed by ID.
type Item struct {
	ID    string
	Src   string
	Thumb string
	Title string
	Kind  Kind
}

// IsVideo reports whether the item plays back and must be paused when
// navigated away from.
func (it Item) IsVideo() bool {
	return it.Kind == KindVideo || it.Kind == KindEmbed
}

// ThumbSrc returns the thumbnail source, falling back to Src.
func (it Item) ThumbSrc() string {
	if it.Thumb != "" {
		return it.Thumb
	}
	return it.Src
}

// ViewState holds the per-item flags the engine maintains.
type ViewState struct {
	Seen        bool // has been the selection at least once; never reset
	Loaded      bool
	Failed      bool
	ThumbFailed bool
}

// Displayed builds the rendered sequence: fringe copies of the tail, the
// items, then fringe copies of the head.
func Displayed(items []Item, fringe int) []Item {
	if fringe <= 0 || len(items) == 0 {
		return items
	}
	if fringe > len(items) {
		fringe = len(items)
	}
	out := make([]Item, 0, len(items)+2*fringe)
	out = append(out, items[len(items)-fringe:]...)
	out = append(out, items...)
	out = append(out, items[:fringe]...)
	return out
}

// FringeCount returns how many items are duplicated at each end.
func FringeCount(loop bool) int {
	if loop {
		return 1
	}
	return 0
}
