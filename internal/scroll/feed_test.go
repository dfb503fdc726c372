package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrolled(t *testing.T) {
	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{1, false},
		{50, false},
		{51, true},
		{500, true},
		{-3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Scrolled(tt.offset), "offset %d", tt.offset)
	}
}

func TestFeed_SubscribeRelease(t *testing.T) {
	f := NewFeed()
	var got []int
	release := f.Subscribe(func(e Event) { got = append(got, e.Offset) })
	require.Equal(t, 1, f.Listeners())

	f.Publish(10)
	f.Publish(70)
	release()
	f.Publish(5)

	assert.Equal(t, []int{10, 70}, got)
	assert.Equal(t, 0, f.Listeners())
	assert.Equal(t, 5, f.Offset())

	assert.NotPanics(t, release, "second release is a no-op")
}

func TestFeed_MultipleListeners(t *testing.T) {
	f := NewFeed()
	a, b := 0, 0
	ra := f.Subscribe(func(e Event) { a = e.Offset })
	f.Subscribe(func(e Event) { b = e.Offset })

	f.Publish(3)
	ra()
	f.Publish(9)

	assert.Equal(t, 3, a)
	assert.Equal(t, 9, b)
}

func TestFeed_ListenerMayReleaseItself(t *testing.T) {
	f := NewFeed()
	calls := 0
	var release func()
	release = f.Subscribe(func(Event) {
		calls++
		release()
	})
	f.Publish(1)
	f.Publish(2)
	assert.Equal(t, 1, calls)
}
