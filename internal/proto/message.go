package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeInit      = "init"
	InboundTypeSelection = "selection"
	InboundTypeInvite    = "invite"
	InboundTypeReady     = "ready"
	InboundTypeCheck     = "check"
	InboundTypeStatus    = "status"
	InboundTypeMessage   = "message"
	InboundTypeCloseRoom = "closeRoom"

	OutboundTypeActiveUsers = "activeUsersCount"
	OutboundTypeGameFound   = "gameFound"
	OutboundTypeTurn        = "turn"
	OutboundTypeGameStart   = "gameStart"
	OutboundTypeReady       = "ready"
	OutboundTypeRoomClosed  = "roomClosed"
	OutboundTypeCheck       = "check"
	OutboundTypeStatus      = "status"
	OutboundTypeLose        = "lose"
	OutboundTypeMessage     = "message"
)

// SelectionData asks to be paired with a random waiting opponent.
type SelectionData struct {
	Name string `json:"name"`
}

// InviteData asks to create or join a room under a shared code.
type InviteData struct {
	Key string `json:"key"`
}

// ReadyData signals readiness within a room.
type ReadyData struct {
	RoomID string `json:"roomId"`
}

// CheckData is a probe aimed at the opponent's board. Coordinates are
// opaque to the server and relayed untouched.
type CheckData struct {
	SessionID   string          `json:"sessionId"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// StatusData reports the outcome of the sender's last probe. Range is
// present only for destroy outcomes.
type StatusData struct {
	RoomID      string          `json:"roomId"`
	Coordinates json.RawMessage `json:"coordinates"`
	Status      string          `json:"status"`
	Range       json.RawMessage `json:"range,omitempty"`
}

// MessageData is an in-game chat message.
type MessageData struct {
	Value     string `json:"value"`
	CurRoomID string `json:"curRoomId"`
}

// CloseRoomData abandons a room.
type CloseRoomData struct {
	RoomID string `json:"roomId"`
}

// Outbound is the envelope for messages sent to the client. Events with no
// payload (gameStart, ready, roomClosed, lose) omit the data field.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// GameFoundData announces a completed pairing; Name is the opponent's
// display name, not the recipient's own.
type GameFoundData struct {
	Name      string `json:"name"`
	SessionID string `json:"sessionId"`
}

// CheckEvent relays a probe to the opponent.
type CheckEvent struct {
	Coordinates json.RawMessage `json:"coordinates"`
}

// StatusEvent relays a probe outcome to the opponent. A lose report may
// carry no coordinates, so they are omitted when absent.
type StatusEvent struct {
	Status      string          `json:"status"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Range       json.RawMessage `json:"range,omitempty"`
}
