package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBefore(t *testing.T) {
	ts := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	c := cursor{ts: ts, id: 10}

	tests := []struct {
		name string
		ts   time.Time
		id   int
		want bool
	}{
		{"later timestamp", ts.Add(time.Second), 1, true},
		{"same timestamp, larger id", ts, 11, true},
		{"same timestamp, same id", ts, 10, false},
		{"same timestamp, smaller id", ts, 9, false},
		{"earlier timestamp, larger id", ts.Add(-time.Second), 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.before(tt.ts, tt.id))
		})
	}
}

func TestSubscribeAndBroadcast(t *testing.T) {
	b := NewBroadcaster(nil)

	ch, cancel := b.Subscribe()
	defer cancel()

	b.broadcast(Frame{Type: TypeEventUpsert, Data: map[string]interface{}{"id": 1}})

	select {
	case frame := <-ch:
		assert.Equal(t, TypeEventUpsert, frame.Type)
	case <-time.After(time.Second):
		t.Fatal("frame never delivered")
	}
}

func TestSlowClientDropsFramesWithoutStalling(t *testing.T) {
	b := NewBroadcaster(nil)

	ch, cancel := b.Subscribe()
	defer cancel()

	// Never read: the buffer fills and further frames are dropped, not
	// blocked on.
	for i := 0; i < clientBuffer+10; i++ {
		b.broadcast(Frame{Type: TypePing})
	}
	assert.Len(t, ch, clientBuffer)
}

func TestCancelIsIdempotent(t *testing.T) {
	b := NewBroadcaster(nil)

	ch, cancel := b.Subscribe()
	cancel()
	cancel()

	// The channel is closed exactly once and the subscriber is gone.
	_, ok := <-ch
	assert.False(t, ok)
	b.broadcast(Frame{Type: TypePing})
}

func TestStopClosesSubscribers(t *testing.T) {
	b := NewBroadcaster(nil)
	b.started = true // skip Start's poll loop; exercise teardown only

	ch, _ := b.Subscribe()
	b.Stop()

	_, ok := <-ch
	require.False(t, ok)
}
