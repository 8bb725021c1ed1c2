package core

import (
	"testing"
	"time"
)

// mustEvent waits for the next event of the given kind, discarding
// events of other kinds along the way.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// nextEvent returns the next event, whatever its kind. Fails the test
// if none arrives in time.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev := <-ch:
		if ev == nil {
			t.Fatal("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return nil
	}
}

// collectUntil gathers events up to and including the first one of the
// given kind.
func collectUntil(t *testing.T, ch <-chan *Event, kind EventKind) []*Event {
	t.Helper()

	var out []*Event
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev == nil {
				t.Fatal("event channel closed")
			}
			out = append(out, ev)
			if ev.Kind == kind {
				return out
			}
		case <-deadline:
			t.Fatalf("event kind %v not received, got %d events", kind, len(out))
		}
	}
}

// mustNoEvent asserts that no event arrives within the window.
func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(150 * time.Millisecond):
	}
}

// countKind tallies events of a kind in a slice.
func countKind(events []*Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// fixedClock pins the hub clock so message times are predictable:
// 3:04:05 PM.
func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
}

// joinAndDrain issues a join and discards everything queued for the
// joiner through the end of its own join sequence: the roster of the
// room just entered, then the room list that immediately follows it.
// Leaves the joiner's event queue empty.
func joinAndDrain(t *testing.T, c *Client, name, room string) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandJoin, Name: name, Room: room}
	for {
		ev := nextEvent(t, c.Events)
		if ev.Kind == EventRoster && ev.Room == room {
			break
		}
	}
	if ev := nextEvent(t, c.Events); ev.Kind != EventRoomList {
		t.Fatalf("expected room list after roster, got %+v", ev)
	}
}

// drainUntilRoomList discards pending events through the next room list
// broadcast, which every join and disconnect sequence ends with.
func drainUntilRoomList(t *testing.T, c *Client) {
	t.Helper()
	collectUntil(t, c.Events, EventRoomList)
}
