package network

import (
	"testing"

	"github.com/darianrosebrook/figma-make-doom/pkg/api"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	a := b.Subscribe()
	c := b.Subscribe()
	if b.Count() != 2 {
		t.Fatalf("Expected 2 subscribers, got %d", b.Count())
	}

	b.Broadcast(api.ServerMessage{Type: "SNAPSHOT", Floor: 3})

	for _, ch := range []chan api.ServerMessage{a, c} {
		msg := <-ch
		if msg.Floor != 3 {
			t.Errorf("Expected floor 3, got %d", msg.Floor)
		}
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	b.Unsubscribe(ch)
	b.Unsubscribe(ch) // повторная отписка безопасна

	if _, open := <-ch; open {
		t.Error("Unsubscribed channel must be closed")
	}
	if b.Count() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", b.Count())
	}
	// Рассылка после отписки не должна паниковать по закрытому каналу.
	b.Broadcast(api.ServerMessage{Type: "SNAPSHOT"})
}

func TestBroadcaster_SlowSubscriberDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Переполняем буфер: лишние кадры тихо теряются, Broadcast не блокируется.
	for i := 0; i < 100; i++ {
		b.Broadcast(api.ServerMessage{Type: "SNAPSHOT", Floor: i})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("Expected a full buffer of %d frames, got %d", cap(ch), got)
	}
	first := <-ch
	if first.Floor != 0 {
		t.Errorf("Oldest buffered frame must survive, got floor %d", first.Floor)
	}
}
