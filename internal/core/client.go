package core

// defaultBuffer is the per-client channel capacity when none is given.
const defaultBuffer = 8

// Client is a connected participant as seen by the core layer. ID is the
// transport-assigned connection identifier, unique for the connection's
// lifetime. Commands carries inbound actions toward the hub; Events
// carries outbound notifications back to the transport.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	done chan struct{}
}

// NewClient constructs a client with channels of the given capacity.
// A non-positive buffer falls back to a small default.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Client{
		ID:       id,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
		done:     make(chan struct{}),
	}
}
