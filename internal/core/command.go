package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandInit attaches a client-supplied identifier to the connection.
	CommandInit CommandKind = iota
	// CommandSelection requests pairing with a random waiting opponent.
	CommandSelection
	// CommandInvite creates or joins a room under a shared code.
	CommandInvite
	// CommandReady signals readiness within a room.
	CommandReady
	// CommandCheck relays a probe to the opponent.
	CommandCheck
	// CommandStatus reports the outcome of the sender's last probe.
	CommandStatus
	// CommandMessage relays a chat message to the opponent.
	CommandMessage
	// CommandCloseRoom abandons a room.
	CommandCloseRoom
	// CommandDisconnect is issued by the transport when a connection closes.
	CommandDisconnect
)

// Command represents an action requested by a client. Client is always the
// connection the command arrived on; the remaining fields depend on Kind.
type Command struct {
	Kind   CommandKind
	Client *Client

	ClientID string // init
	Name     string // selection
	Key      string // invite
	RoomID   string // ready, check, status, message, closeRoom

	Coordinates json.RawMessage // check, status
	Status      string          // status
	Range       json.RawMessage // status (destroy only)
	Text        string          // message
}
