package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventActiveUsers carries the presence count after a registry change.
	EventActiveUsers EventKind = iota
	// EventGameFound announces a completed pairing to both sides.
	EventGameFound
	// EventTurn tells a side whose move is next (1 = yours, 0 = opponent's).
	EventTurn
	// EventGameStart marks the transition into an active game.
	EventGameStart
	// EventReady echoes the opponent's readiness to the not-yet-ready side.
	EventReady
	// EventRoomClosed notifies the remaining occupant of an abandoned room.
	EventRoomClosed
	// EventCheck relays a probe location.
	EventCheck
	// EventStatus relays a probe outcome.
	EventStatus
	// EventLose is the terminal event delivered to the losing side itself.
	EventLose
	// EventMessage relays chat text.
	EventMessage
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind EventKind

	Count     int    // EventActiveUsers: number of other registered clients
	Name      string // EventGameFound: opponent's display name
	SessionID string // EventGameFound
	Turn      int    // EventTurn

	Status      string          // EventStatus
	Coordinates json.RawMessage // EventCheck, EventStatus
	Range       json.RawMessage // EventStatus (destroy only)
	Text        string          // EventMessage
}
