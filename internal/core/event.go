package core

// EventKind is a notification the hub emits to clients.
type EventKind int

const (
	// EventMessage delivers a chat or system message envelope.
	EventMessage EventKind = iota
	// EventRoster delivers the current user list of a single room.
	EventRoster
	// EventRoomList delivers the names of all rooms with members.
	EventRoomList
	// EventActivity relays a typing notice from another user.
	EventActivity
)

// Event is sent to clients to describe what happened in the system.
// Only the fields relevant to Kind are populated.
type Event struct {
	Kind    EventKind
	Message Envelope     // EventMessage
	Room    string       // EventRoster
	Users   []UserRecord // EventRoster
	Rooms   []string     // EventRoomList
	User    string       // EventActivity: the typing user's display name
}
