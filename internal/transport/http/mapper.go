package http

import (
	"encoding/json"
	"fmt"

	"github.com/roomcast/roomcast-server/internal/core"
	"github.com/roomcast/roomcast-server/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. An unknown
// type yields (nil, nil): the relay ignores it rather than failing the
// connection, since payload validation belongs to an outer layer.
func inboundToCommand(in proto.Inbound) (*core.Command, error) {
	switch in.Type {
	case proto.InboundTypeJoin:
		var data proto.JoinData
		if err := unmarshalData(in.Data, &data); err != nil {
			return nil, fmt.Errorf("decode join: %w", err)
		}
		return &core.Command{Kind: core.CommandJoin, Name: data.Name, Room: data.Room}, nil
	case proto.InboundTypeMessage:
		var data proto.MessageData
		if err := unmarshalData(in.Data, &data); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		return &core.Command{Kind: core.CommandSendMessage, Name: data.Name, Text: data.Text}, nil
	case proto.InboundTypeActivity:
		var data proto.ActivityData
		if err := unmarshalData(in.Data, &data); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		return &core.Command{Kind: core.CommandActivity, Name: data.Name}, nil
	default:
		return nil, nil
	}
}

// unmarshalData tolerates an absent data field; missing fields flow
// through as zero values.
func unmarshalData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// outboundFromEvent maps a core event to its wire envelope.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: proto.EventMessage{
				Name: ev.Message.Name,
				Text: ev.Message.Text,
				Time: ev.Message.Time,
			},
		}
	case core.EventRoster:
		users := make([]proto.RosterUser, 0, len(ev.Users))
		for _, u := range ev.Users {
			users = append(users, proto.RosterUser{ID: u.ID, Name: u.Name, Room: u.Room})
		}
		return proto.Outbound{
			Type: proto.OutboundTypeRoster,
			Data: proto.EventRoster{Users: users},
		}
	case core.EventRoomList:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomList,
			Data: proto.EventRoomList{Rooms: ev.Rooms},
		}
	case core.EventActivity:
		return proto.Outbound{
			Type: proto.OutboundTypeActivity,
			Data: ev.User,
		}
	default:
		return proto.Outbound{}
	}
}
