package core

import (
	"reflect"
	"testing"
)

func TestRegistryUpsertReplacesRecord(t *testing.T) {
	r := NewRegistry()

	first := r.Upsert("c1", "Alice", "lobby")
	if first != (UserRecord{ID: "c1", Name: "Alice", Room: "lobby"}) {
		t.Fatalf("unexpected record: %+v", first)
	}

	second := r.Upsert("c1", "Alicia", "den")
	if r.Len() != 1 {
		t.Fatalf("expected one record, got %d", r.Len())
	}
	if rec, ok := r.Find("c1"); !ok || rec != second {
		t.Fatalf("record not replaced: %+v, ok = %v", rec, ok)
	}
	if len(r.UsersInRoom("lobby")) != 0 {
		t.Fatal("old room still lists the user")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c1", "Alice", "lobby")

	r.Remove("c1")
	if _, ok := r.Find("c1"); ok {
		t.Fatal("record not removed")
	}

	// Removing an absent id is a no-op, not an error.
	r.Remove("c1")
	r.Remove("never-seen")
}

func TestRegistryFindAbsent(t *testing.T) {
	r := NewRegistry()
	if rec, ok := r.Find("ghost"); ok || rec != (UserRecord{}) {
		t.Fatalf("expected absence, got %+v, ok = %v", rec, ok)
	}
}

func TestUsersInRoomSortedByName(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c3", "Carol", "lobby")
	r.Upsert("c1", "Alice", "lobby")
	r.Upsert("c2", "Bob", "den")

	users := r.UsersInRoom("lobby")
	want := []UserRecord{
		{ID: "c1", Name: "Alice", Room: "lobby"},
		{ID: "c3", Name: "Carol", Room: "lobby"},
	}
	if !reflect.DeepEqual(users, want) {
		t.Fatalf("UsersInRoom = %+v, want %+v", users, want)
	}

	if users := r.UsersInRoom("empty"); len(users) != 0 {
		t.Fatalf("expected no users, got %+v", users)
	}
}

func TestUsersInRoomTieBreakOnID(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c2", "Alice", "lobby")
	r.Upsert("c1", "Alice", "lobby")

	users := r.UsersInRoom("lobby")
	if users[0].ID != "c1" || users[1].ID != "c2" {
		t.Fatalf("duplicate names not ordered by id: %+v", users)
	}
}

func TestActiveRoomsDeduplicatedAndSorted(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c1", "Alice", "lobby")
	r.Upsert("c2", "Bob", "lobby")
	r.Upsert("c3", "Carol", "den")

	rooms := r.ActiveRooms()
	if !reflect.DeepEqual(rooms, []string{"den", "lobby"}) {
		t.Fatalf("ActiveRooms = %v", rooms)
	}
}

func TestActiveRoomsDropsEmptiedRoom(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c1", "Alice", "x")
	r.Remove("c1")

	if rooms := r.ActiveRooms(); len(rooms) != 0 {
		t.Fatalf("emptied room still active: %v", rooms)
	}
}

func TestDerivedViewsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Upsert("c1", "Alice", "lobby")
	r.Upsert("c2", "Bob", "lobby")

	if !reflect.DeepEqual(r.UsersInRoom("lobby"), r.UsersInRoom("lobby")) {
		t.Fatal("UsersInRoom not stable across calls")
	}
	if !reflect.DeepEqual(r.ActiveRooms(), r.ActiveRooms()) {
		t.Fatal("ActiveRooms not stable across calls")
	}
}
