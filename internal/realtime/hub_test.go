package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesRoomMembers(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()
	hub.Join(sub, 1)

	hub.Publish(1, "attendance:update", map[string]int{"count": 3})

	select {
	case event := <-sub.C:
		assert.Equal(t, "attendance:update", event.Name)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestPublishSkipsOtherRooms(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()
	hub.Join(sub, 1)

	hub.Publish(2, "poll:new", nil)
	assert.Empty(t, sub.C)
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()
	hub.Join(sub, 7)

	// Overflow the buffer; Publish must never block the request path.
	for i := 0; i < subscriptionBuffer+10; i++ {
		hub.Publish(7, "poll:update", i)
	}
	assert.Len(t, sub.C, subscriptionBuffer)
}

func TestCloseLeavesRooms(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	hub.Join(sub, 1)
	hub.Join(sub, 2)
	sub.Close()

	// Publishing after close must not panic or deliver.
	hub.Publish(1, "doubt:new", nil)
	hub.Publish(2, "doubt:new", nil)

	_, open := <-sub.C
	require.False(t, open)
}

func TestJoinTwiceIsNoop(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()
	hub.Join(sub, 1)
	hub.Join(sub, 1)

	hub.Publish(1, "attendance:update", nil)
	assert.Len(t, sub.C, 1)
}
