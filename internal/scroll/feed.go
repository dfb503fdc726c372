// Package scroll provides the page's scroll plumbing: a feed of offset changes
// that views subscribe to, and a spring animator for smooth scrolling.
package scroll

import "sync"

// Threshold is the offset past which the page counts as scrolled.
const Threshold = 50

// Scrolled reports whether offset is past Threshold. It depends on the current
// offset only.
func Scrolled(offset int) bool {
	return offset > Threshold
}

// Event is delivered to listeners on every offset change.
type Event struct {
	Offset int
}

// Listener receives scroll events.
type Listener func(Event)

// Feed fans scroll events out to subscribed listeners.
type Feed struct {
	mu        sync.RWMutex
	offset    int
	nextID    int
	listeners map[int]Listener
}

// NewFeed creates a feed at offset 0 with no listeners.
func NewFeed() *Feed {
	return &Feed{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns the function that releases it.
// Calling the release func more than once is a no-op.
func (f *Feed) Subscribe(l Listener) (release func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = l
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.listeners, id)
			f.mu.Unlock()
		})
	}
}

// Publish records offset and notifies every current listener.
// Listeners run outside the lock so they may unsubscribe themselves.
func (f *Feed) Publish(offset int) {
	f.mu.Lock()
	f.offset = offset
	snapshot := make([]Listener, 0, len(f.listeners))
	for _, l := range f.listeners {
		snapshot = append(snapshot, l)
	}
	f.mu.Unlock()

	ev := Event{Offset: offset}
	for _, l := range snapshot {
		l(ev)
	}
}

// Offset returns the last published offset.
func (f *Feed) Offset() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.offset
}

// Listeners returns the number of active subscriptions.
func (f *Feed) Listeners() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.listeners)
}
