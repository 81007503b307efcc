package carousel

// Subscription removes a registered handler.
type Subscription struct {
	remove func()
}

// Remove unregisters the handler so it no longer fires. Calling it twice is harmless.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

type handler[T any] struct {
	id uint64
	fn func(T)
}

type registry[T any] struct {
	nextID   uint64
	handlers []handler[T]
}

func (r *registry[T]) add(fn func(T)) Subscription {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, handler[T]{id: id, fn: fn})
	return Subscription{remove: func() {
		for i, h := range r.handlers {
			if h.id == id {
				r.handlers = append(r.handlers[:i:i], r.handlers[i+1:]...)
				return
			}
		}
	}}
}

func (r *registry[T]) emit(v T) {
	hs := r.handlers
	for _, h := range hs {
		h.fn(v)
	}
}

func (r *registry[T]) clear() {
	r.handlers = nil
}

// SelectEvent is emitted when the selected item changes.
type SelectEvent struct {
	Index   int
	Item    Item
	Wrapped bool // the selection crossed the loop seam
}

// ItemEvent is emitted for item clicks and pause requests.
type ItemEvent struct {
	Index int
	Item  Item
}

// LoadEvent reports a resolved media load.
type LoadEvent struct {
	Item  Item
	OK    bool
	Thumb bool
}

// ThumbEvent is emitted when a thumbnail is clicked.
type ThumbEvent struct {
	Index int
}
