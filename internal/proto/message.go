package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin     = "join"
	InboundTypeMessage  = "message"
	InboundTypeActivity = "activity"

	OutboundTypeMessage  = "message"
	OutboundTypeRoster   = "roster"
	OutboundTypeRoomList = "roomList"
	OutboundTypeActivity = "activity"
)

// JoinData requests to enter a room under a display name.
type JoinData struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

// MessageData is a chat message from the client.
type MessageData struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ActivityData is a typing notice from the client.
type ActivityData struct {
	Name string `json:"name"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// EventMessage is a chat or system message as delivered to clients.
type EventMessage struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// RosterUser is one entry of a room roster.
type RosterUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}

// EventRoster is the user list of a single room.
type EventRoster struct {
	Users []RosterUser `json:"users"`
}

// EventRoomList carries the names of all rooms with members.
type EventRoomList struct {
	Rooms []string `json:"rooms"`
}
