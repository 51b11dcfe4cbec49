package http

import (
	"encoding/json"

	"github.com/vovakirdan/seabattle-server/internal/core"
	"github.com/vovakirdan/seabattle-server/internal/proto"
)

// inboundToCommand maps a wire message onto a hub command. A nil command
// with a nil error means the type is unknown and the message should be
// dropped silently.
func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeInit:
		// init carries the bare client id, not an object.
		var id string
		if err := json.Unmarshal(inbound.Data, &id); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandInit, Client: client, ClientID: id}, nil

	case proto.InboundTypeSelection:
		var sel proto.SelectionData
		if err := json.Unmarshal(inbound.Data, &sel); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandSelection, Client: client, Name: sel.Name}, nil

	case proto.InboundTypeInvite:
		var inv proto.InviteData
		if err := json.Unmarshal(inbound.Data, &inv); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandInvite, Client: client, Key: inv.Key}, nil

	case proto.InboundTypeReady:
		var ready proto.ReadyData
		if err := json.Unmarshal(inbound.Data, &ready); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandReady, Client: client, RoomID: ready.RoomID}, nil

	case proto.InboundTypeCheck:
		var check proto.CheckData
		if err := json.Unmarshal(inbound.Data, &check); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:        core.CommandCheck,
			Client:      client,
			RoomID:      check.SessionID,
			Coordinates: check.Coordinates,
		}, nil

	case proto.InboundTypeStatus:
		var status proto.StatusData
		if err := json.Unmarshal(inbound.Data, &status); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:        core.CommandStatus,
			Client:      client,
			RoomID:      status.RoomID,
			Coordinates: status.Coordinates,
			Status:      status.Status,
			Range:       status.Range,
		}, nil

	case proto.InboundTypeMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:   core.CommandMessage,
			Client: client,
			RoomID: msg.CurRoomID,
			Text:   msg.Value,
		}, nil

	case proto.InboundTypeCloseRoom:
		var cr proto.CloseRoomData
		if err := json.Unmarshal(inbound.Data, &cr); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandCloseRoom, Client: client, RoomID: cr.RoomID}, nil

	default:
		return nil, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventActiveUsers:
		return proto.Outbound{Type: proto.OutboundTypeActiveUsers, Data: event.Count}
	case core.EventGameFound:
		return proto.Outbound{
			Type: proto.OutboundTypeGameFound,
			Data: proto.GameFoundData{Name: event.Name, SessionID: event.SessionID},
		}
	case core.EventTurn:
		return proto.Outbound{Type: proto.OutboundTypeTurn, Data: event.Turn}
	case core.EventGameStart:
		return proto.Outbound{Type: proto.OutboundTypeGameStart}
	case core.EventReady:
		return proto.Outbound{Type: proto.OutboundTypeReady}
	case core.EventRoomClosed:
		return proto.Outbound{Type: proto.OutboundTypeRoomClosed}
	case core.EventCheck:
		return proto.Outbound{
			Type: proto.OutboundTypeCheck,
			Data: proto.CheckEvent{Coordinates: event.Coordinates},
		}
	case core.EventStatus:
		return proto.Outbound{
			Type: proto.OutboundTypeStatus,
			Data: proto.StatusEvent{
				Status:      event.Status,
				Coordinates: event.Coordinates,
				Range:       event.Range,
			},
		}
	case core.EventLose:
		return proto.Outbound{Type: proto.OutboundTypeLose}
	case core.EventMessage:
		return proto.Outbound{Type: proto.OutboundTypeMessage, Data: event.Text}
	default:
		return proto.Outbound{Type: proto.OutboundTypeMessage}
	}
}
