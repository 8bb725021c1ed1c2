package core

import "sort"

// UserRecord describes a connected user that has joined a room.
type UserRecord struct {
	ID   string
	Name string
	Room string
}

// Registry is the single source of truth for who is connected, as whom,
// and in which room. A connection appears here only once it has joined a
// room; there is no "connected but roomless" state. All access happens
// from the hub goroutine, so no locking is needed.
type Registry struct {
	users map[string]UserRecord
}

// NewRegistry constructs an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]UserRecord)}
}

// Upsert replaces any existing record for id with {id, name, room} and
// returns the new record. It never fails, even for an unknown id.
func (r *Registry) Upsert(id, name, room string) UserRecord {
	rec := UserRecord{ID: id, Name: name, Room: room}
	r.users[id] = rec
	return rec
}

// Remove deletes the record for id. Removing an absent id is a no-op.
func (r *Registry) Remove(id string) {
	delete(r.users, id)
}

// Find looks up the record for id. Absence is an expected outcome, not
// an error; callers must branch on ok.
func (r *Registry) Find(id string) (UserRecord, bool) {
	rec, ok := r.users[id]
	return rec, ok
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	return len(r.users)
}

// UsersInRoom returns the users currently in room, sorted by name for
// deterministic payloads. Recomputed on every call from the live registry.
func (r *Registry) UsersInRoom(room string) []UserRecord {
	var out []UserRecord
	for _, rec := range r.users {
		if rec.Room == room {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ActiveRooms returns the distinct room names with at least one member,
// sorted. A room that just lost its last member disappears on the next
// call; room existence is inferred purely from membership.
func (r *Registry) ActiveRooms() []string {
	seen := make(map[string]struct{})
	for _, rec := range r.users {
		seen[rec.Room] = struct{}{}
	}
	rooms := make([]string, 0, len(seen))
	for room := range seen {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}
