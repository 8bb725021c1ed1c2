package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast-server/internal/metrics"
)

const (
	// SystemSender is the reserved display name for server-authored messages.
	SystemSender = "Admin"

	welcomeText = "Welcome to chat App"
)

// clientCommand pairs an inbound command with the client that issued it.
type clientCommand struct {
	client *Client
	cmd    *Command
}

// Hub is the broadcast orchestrator. It owns the presence registry, the
// room groups, and the set of connected clients, and mutates them from a
// single goroutine: every handler runs to completion before the next one
// starts, so no reader ever observes a half-updated registry.
type Hub struct {
	log     zerolog.Logger
	metrics *metrics.Metrics

	registry *Registry
	rooms    map[string]*Room
	clients  map[string]*Client

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand

	now func() time.Time
}

// NewHub creates a hub. Both logger and m may be nil.
func NewHub(logger *zerolog.Logger, m *metrics.Metrics) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		log:        *logger,
		metrics:    m,
		registry:   NewRegistry(),
		rooms:      make(map[string]*Room),
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand, 64),
		now:        time.Now,
	}
}

// RegisterClient hands a new connection to the hub. The client receives
// the welcome message once the hub has processed the registration.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient tears down a connection. Safe to call for a client
// that was never registered or is already gone.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Registry exposes the presence registry for read-side collaborators.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Run processes registrations, disconnects and client commands until ctx
// is cancelled. It must run in exactly one goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case cc := <-h.commands:
			h.handleCommand(cc.client, cc.cmd)
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	if _, exists := h.clients[c.ID]; exists {
		h.log.Warn().Str("client_id", c.ID).Msg("duplicate client registration")
		return
	}
	h.clients[c.ID] = c
	go h.pump(c)

	// Upon connection - only to the new user.
	h.send(c, h.systemMessage(welcomeText))

	if h.metrics != nil {
		h.metrics.ConnectionsActive.Inc()
	}
	h.log.Debug().Str("client_id", c.ID).Msg("client connected")
}

// pump forwards the client's commands into the hub's single queue,
// preserving per-connection ordering.
func (h *Hub) pump(c *Client) {
	for {
		select {
		case <-c.done:
			return
		case cmd := <-c.Commands:
			select {
			case h.commands <- clientCommand{client: c, cmd: cmd}:
			case <-c.done:
				return
			}
		}
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	if _, registered := h.clients[c.ID]; !registered {
		return
	}
	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(c, cmd.Name, cmd.Room)
	case CommandSendMessage:
		h.handleMessage(c, cmd.Name, cmd.Text)
	case CommandActivity:
		h.handleActivity(c, cmd.Name)
	}
}

// handleJoin runs the full room-entry sequence. Joining the room the
// connection is already in still runs the whole leave+join sequence;
// only the redundant previous-room roster is skipped.
func (h *Hub) handleJoin(c *Client, name, room string) {
	prev, hadPrev := h.registry.Find(c.ID)
	if hadPrev {
		if r, ok := h.rooms[prev.Room]; ok {
			r.RemoveClient(c)
			r.Broadcast(h.systemMessage(name + " has left the room"))
		}
	}

	h.registry.Upsert(c.ID, name, room)

	target := h.room(room)
	target.AddClient(c)

	h.send(c, h.systemMessage("you have joined "+room+" chat room"))
	target.BroadcastExcept(h.systemMessage(name+" has joined the room"), c)
	target.Broadcast(h.rosterEvent(room))

	if hadPrev && prev.Room != room {
		if r, ok := h.rooms[prev.Room]; ok {
			if r.Empty() {
				delete(h.rooms, prev.Room)
			} else {
				r.Broadcast(h.rosterEvent(prev.Room))
			}
		}
	}

	h.broadcastAll(h.roomListEvent())
	h.updateRoomGauge()
	h.log.Debug().Str("client_id", c.ID).Str("name", name).Str("room", room).Msg("client joined room")
}

func (h *Hub) handleMessage(c *Client, name, text string) {
	rec, ok := h.registry.Find(c.ID)
	if !ok {
		// Sender has not joined a room; nothing to address.
		h.log.Debug().Str("client_id", c.ID).Msg("dropping message from roomless client")
		return
	}
	r, ok := h.rooms[rec.Room]
	if !ok {
		return
	}
	r.Broadcast(&Event{Kind: EventMessage, Message: BuildMessage(name, text, h.now())})
	if h.metrics != nil {
		h.metrics.MessagesRelayed.Inc()
	}
}

func (h *Hub) handleActivity(c *Client, name string) {
	rec, ok := h.registry.Find(c.ID)
	if !ok {
		return
	}
	r, ok := h.rooms[rec.Room]
	if !ok {
		return
	}
	r.BroadcastExcept(&Event{Kind: EventActivity, User: name}, c)
	if h.metrics != nil {
		h.metrics.ActivityRelayed.Inc()
	}
}

func (h *Hub) handleUnregister(c *Client) {
	if _, exists := h.clients[c.ID]; !exists {
		return
	}
	delete(h.clients, c.ID)
	close(c.done)

	rec, had := h.registry.Find(c.ID)
	h.registry.Remove(c.ID)

	if had {
		if r, ok := h.rooms[rec.Room]; ok {
			r.RemoveClient(c)
			if r.Empty() {
				delete(h.rooms, rec.Room)
			} else {
				r.Broadcast(h.systemMessage(rec.Name + " has left the room"))
				r.Broadcast(h.rosterEvent(rec.Room))
			}
		}
		h.broadcastAll(h.roomListEvent())
	}

	close(c.Events)
	if h.metrics != nil {
		h.metrics.ConnectionsActive.Dec()
	}
	h.updateRoomGauge()
	h.log.Debug().Str("client_id", c.ID).Msg("client disconnected")
}

// room returns the group for name, creating it on first use.
func (h *Hub) room(name string) *Room {
	r, ok := h.rooms[name]
	if !ok {
		r = NewRoom(name)
		h.rooms[name] = r
	}
	return r
}

// send delivers an event to a single client without blocking the hub.
func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

// broadcastAll fans an event out to every connection, joined or not.
func (h *Hub) broadcastAll(ev *Event) {
	for _, c := range h.clients {
		h.send(c, ev)
	}
}

func (h *Hub) systemMessage(text string) *Event {
	return &Event{Kind: EventMessage, Message: BuildMessage(SystemSender, text, h.now())}
}

func (h *Hub) rosterEvent(room string) *Event {
	return &Event{Kind: EventRoster, Room: room, Users: h.registry.UsersInRoom(room)}
}

func (h *Hub) roomListEvent() *Event {
	return &Event{Kind: EventRoomList, Rooms: h.registry.ActiveRooms()}
}

func (h *Hub) updateRoomGauge() {
	if h.metrics != nil {
		h.metrics.RoomsActive.Set(float64(len(h.rooms)))
	}
}
