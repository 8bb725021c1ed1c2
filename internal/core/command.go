package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin asks to enter a room, leaving the previous one if any.
	CommandJoin CommandKind = iota
	// CommandSendMessage delivers a chat message to the sender's room.
	CommandSendMessage
	// CommandActivity relays a typing notice to the sender's room.
	CommandActivity
)

// Command represents an action requested by a client. Fields are used
// as-is; an external validation layer is expected to normalize payloads
// before they reach the hub.
type Command struct {
	Kind CommandKind
	Name string
	Room string
	Text string
}
