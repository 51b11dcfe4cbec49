package core

import "sync"

// Player occupies one of a room's two slots. Created at pairing time,
// destroyed with its room.
type Player struct {
	Name     string
	ClientID string
	Ready    bool
}

// Room is the paired-player context for one game. Turn holds the client id
// of the side to move; it is empty until both players have signaled
// readiness and the draw happens, and changes owner afterwards only
// through the status-report rule. Only the hub goroutine mutates a room.
type Room struct {
	ID      string
	Players []*Player
	Turn    string
}

// NewRoom constructs an empty room under the given session identifier.
func NewRoom(id string) *Room {
	return &Room{ID: id}
}

// AddPlayer fills the next free slot. Returns false when the room already
// holds two players.
func (r *Room) AddPlayer(p *Player) bool {
	if len(r.Players) >= 2 {
		return false
	}
	r.Players = append(r.Players, p)
	return true
}

// Player returns the occupant with the given client id, or nil.
func (r *Room) Player(clientID string) *Player {
	for _, p := range r.Players {
		if p.ClientID == clientID {
			return p
		}
	}
	return nil
}

// Opponent returns the occupant other than the given client id, or nil
// for a room still waiting on its second player.
func (r *Room) Opponent(clientID string) *Player {
	for _, p := range r.Players {
		if p.ClientID != clientID {
			return p
		}
	}
	return nil
}

// Full reports whether both slots are taken.
func (r *Room) Full() bool {
	return len(r.Players) == 2
}

// BothReady reports whether both occupants have signaled readiness.
func (r *Room) BothReady() bool {
	if !r.Full() {
		return false
	}
	return r.Players[0].Ready && r.Players[1].Ready
}

// RoomTable maps a session identifier to its room. Session ids are either
// server-generated (random pairing) or the caller's invite code, so
// invite rooms live in the same table. Writes come only from the hub
// goroutine; the lock is for observers.
type RoomTable struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRoomTable constructs an empty table.
func NewRoomTable() *RoomTable {
	return &RoomTable{
		rooms: make(map[string]*Room),
	}
}

// Put stores the room under its session id.
func (t *RoomTable) Put(room *Room) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rooms[room.ID] = room
}

// Get returns the room under id, if any.
func (t *RoomTable) Get(id string) (*Room, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	room, ok := t.rooms[id]
	return room, ok
}

// Delete removes the room under id. No-op if absent.
func (t *RoomTable) Delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rooms, id)
}

// Len returns the number of live rooms.
func (t *RoomTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rooms)
}

// Sweep deletes every room none of whose occupants satisfies alive and
// reports how many were removed. Used by the reconciliation sweep.
func (t *RoomTable) Sweep(alive func(clientID string) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, room := range t.rooms {
		reachable := false
		for _, p := range room.Players {
			if alive(p.ClientID) {
				reachable = true
				break
			}
		}
		if !reachable {
			delete(t.rooms, id)
			removed++
		}
	}
	return removed
}
