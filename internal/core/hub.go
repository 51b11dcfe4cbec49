package core

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Probe outcomes carried by a status report.
const (
	OutcomeMiss    = "miss"
	OutcomeHit     = "hit"
	OutcomeDestroy = "destroy"
	OutcomeLose    = "lose"
)

// Hub owns all matchmaking and session state: the connection registry, the
// waiting queue and the room table. Commands from every connection funnel
// through one channel and are handled to completion one at a time on the
// Run goroutine, which is the only ordering guarantee the protocol needs.
type Hub struct {
	commands chan *Command

	registry *Registry
	queue    *MatchQueue
	rooms    *RoomTable

	rng        *rand.Rand
	sweepEvery time.Duration
	log        *zerolog.Logger
}

// Option tweaks hub construction.
type Option func(*Hub)

// WithSweepInterval enables the periodic reconciliation sweep. Left unset,
// stale queue entries and rooms survive until something else touches them.
func WithSweepInterval(d time.Duration) Option {
	return func(h *Hub) {
		h.sweepEvery = d
	}
}

// WithRandSource replaces the turn-draw randomness. Tests use this to make
// the draw deterministic.
func WithRandSource(src rand.Source) Option {
	return func(h *Hub) {
		h.rng = rand.New(src)
	}
}

// NewHub creates a hub. Run must be started before dispatching commands.
func NewHub(logger *zerolog.Logger, opts ...Option) *Hub {
	h := &Hub{
		commands: make(chan *Command, 64),
		registry: NewRegistry(),
		queue:    NewMatchQueue(),
		rooms:    NewRoomTable(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Dispatch queues a command for the hub goroutine.
func (h *Hub) Dispatch(cmd *Command) {
	h.commands <- cmd
}

// Stats reports container sizes for observers such as the stats endpoint.
func (h *Hub) Stats() (clients, rooms, waiting int) {
	return h.registry.Size(), h.rooms.Len(), h.queue.Len()
}

// Run processes commands until the context is canceled. All state
// mutation happens here.
func (h *Hub) Run(ctx context.Context) {
	var sweep <-chan time.Time
	if h.sweepEvery > 0 {
		ticker := time.NewTicker(h.sweepEvery)
		defer ticker.Stop()
		sweep = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-h.commands:
			h.handle(cmd)
		case <-sweep:
			h.reconcile()
		}
	}
}

func (h *Hub) handle(cmd *Command) {
	// A fault in one command must never reach another connection's session.
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Interface("panic", r).Int("kind", int(cmd.Kind)).
				Msg("recovered while handling command")
		}
	}()

	switch cmd.Kind {
	case CommandInit:
		h.handleInit(cmd)
	case CommandSelection:
		h.handleSelection(cmd)
	case CommandInvite:
		h.handleInvite(cmd)
	case CommandReady:
		h.handleReady(cmd)
	case CommandCheck:
		h.handleCheck(cmd)
	case CommandStatus:
		h.handleStatus(cmd)
	case CommandMessage:
		h.handleMessage(cmd)
	case CommandCloseRoom:
		h.handleCloseRoom(cmd)
	case CommandDisconnect:
		h.handleDisconnect(cmd)
	}
}

func (h *Hub) handleInit(cmd *Command) {
	if cmd.ClientID == "" {
		h.log.Debug().Msg("init with empty client id ignored")
		return
	}

	cmd.Client.ID = cmd.ClientID
	if h.registry.Register(cmd.ClientID, cmd.Client) {
		h.log.Warn().Str("client_id", cmd.ClientID).
			Msg("duplicate client id, previous connection evicted")
	}
	h.broadcastPresence()
}

func (h *Hub) handleDisconnect(cmd *Command) {
	// Only the registry entry goes; rooms and queue entries referencing
	// the departed client stay until the optional sweep reclaims them.
	if h.registry.Unregister(cmd.Client) {
		h.log.Debug().Str("client_id", cmd.Client.ID).Msg("client unregistered")
		h.broadcastPresence()
	}
}

// broadcastPresence tells every registered client how many others are
// online. The minus one is applied uniformly, not per recipient; that
// arithmetic is the protocol's, not ours to correct.
func (h *Hub) broadcastPresence() {
	event := &Event{Kind: EventActiveUsers, Count: h.registry.Size() - 1}
	for _, c := range h.registry.All() {
		c.send(event)
	}
}

func (h *Hub) handleSelection(cmd *Command) {
	player := &Player{Name: cmd.Name, ClientID: cmd.Client.ID}

	opponent, ok := h.queue.Pop()
	if !ok {
		h.queue.Push(player)
		h.log.Debug().Str("client_id", player.ClientID).Msg("queued for pairing")
		return
	}
	if opponent.ClientID == player.ClientID {
		// A repeated selection never matches a client with itself; both
		// entries stay in the queue.
		h.queue.Push(opponent)
		h.queue.Push(player)
		h.log.Debug().Str("client_id", player.ClientID).Msg("duplicate queue entry")
		return
	}

	room := NewRoom(uuid.NewString())
	room.AddPlayer(opponent)
	room.AddPlayer(player)
	h.rooms.Put(room)

	h.log.Info().Str("session_id", room.ID).
		Str("a", opponent.ClientID).Str("b", player.ClientID).
		Msg("paired from queue")
	h.notifyGameFound(room)
}

func (h *Hub) handleInvite(cmd *Command) {
	if cmd.Key == "" {
		return
	}

	// The invite path carries no display name; the client id doubles as one.
	player := &Player{Name: cmd.Client.ID, ClientID: cmd.Client.ID}

	room, ok := h.rooms.Get(cmd.Key)
	if !ok {
		room = NewRoom(cmd.Key)
		room.AddPlayer(player)
		h.rooms.Put(room)
		h.log.Debug().Str("session_id", cmd.Key).Msg("invite room created, awaiting second player")
		return
	}

	if room.Player(player.ClientID) != nil {
		// Re-joining one's own code never completes a pair.
		return
	}
	if !room.AddPlayer(player) {
		// A third join against a completed code is ignored.
		h.log.Debug().Str("session_id", cmd.Key).Str("client_id", player.ClientID).
			Msg("join against full invite room ignored")
		return
	}

	h.log.Info().Str("session_id", room.ID).Msg("invite room completed")
	h.notifyGameFound(room)
}

// notifyGameFound tells each side it was paired, naming the opponent. A
// side whose connection is gone is skipped; the room stays either way.
func (h *Hub) notifyGameFound(room *Room) {
	a, b := room.Players[0], room.Players[1]
	h.sendTo(a.ClientID, &Event{Kind: EventGameFound, Name: b.Name, SessionID: room.ID})
	h.sendTo(b.ClientID, &Event{Kind: EventGameFound, Name: a.Name, SessionID: room.ID})
}

func (h *Hub) handleReady(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}
	player := room.Player(cmd.Client.ID)
	if player == nil {
		return
	}

	player.Ready = true

	opponent := room.Opponent(cmd.Client.ID)
	if opponent == nil {
		// Second slot still empty; the flag is all that happens.
		return
	}

	if !opponent.Ready {
		h.sendTo(opponent.ClientID, &Event{Kind: EventReady})
		return
	}

	// Both sides ready. The turn draw happens exactly once; a repeated
	// ready replays the start notifications without re-drawing.
	if room.Turn == "" {
		if h.rng.Intn(2) == 0 {
			room.Turn = player.ClientID
		} else {
			room.Turn = opponent.ClientID
		}
		h.log.Info().Str("session_id", room.ID).Str("turn", room.Turn).Msg("game started")
	}

	for _, p := range room.Players {
		flag := 0
		if p.ClientID == room.Turn {
			flag = 1
		}
		h.sendTo(p.ClientID, &Event{Kind: EventTurn, Turn: flag})
		h.sendTo(p.ClientID, &Event{Kind: EventGameStart})
	}
}

func (h *Hub) handleCheck(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}
	opponent := room.Opponent(cmd.Client.ID)
	if opponent == nil {
		return
	}
	h.sendTo(opponent.ClientID, &Event{Kind: EventCheck, Coordinates: cmd.Coordinates})
}

func (h *Hub) handleStatus(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}
	opponent := room.Opponent(cmd.Client.ID)

	if cmd.Status == OutcomeLose {
		// Terminal: drop the room first so a replayed report is a no-op,
		// then notify. The loser gets the bare lose event, the winner the
		// regular status relay. No turn event follows.
		h.rooms.Delete(room.ID)
		h.sendTo(cmd.Client.ID, &Event{Kind: EventLose})
		if opponent != nil {
			h.sendTo(opponent.ClientID, &Event{
				Kind:        EventStatus,
				Status:      OutcomeLose,
				Coordinates: cmd.Coordinates,
			})
		}
		h.log.Info().Str("session_id", room.ID).Str("loser", cmd.Client.ID).Msg("game over")
		return
	}

	if opponent == nil {
		return
	}

	h.sendTo(opponent.ClientID, &Event{
		Kind:        EventStatus,
		Status:      cmd.Status,
		Coordinates: cmd.Coordinates,
		Range:       cmd.Range,
	})

	// Protocol-defined flag assignment: hit and destroy keep the
	// initiative with the reporter, miss hands it over.
	actorFlag := 0
	if cmd.Status == OutcomeHit || cmd.Status == OutcomeDestroy {
		actorFlag = 1
	}
	if actorFlag == 1 {
		room.Turn = cmd.Client.ID
	} else {
		room.Turn = opponent.ClientID
	}
	h.sendTo(cmd.Client.ID, &Event{Kind: EventTurn, Turn: actorFlag})
	h.sendTo(opponent.ClientID, &Event{Kind: EventTurn, Turn: 1 - actorFlag})
}

func (h *Hub) handleMessage(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}
	opponent := room.Opponent(cmd.Client.ID)
	if opponent == nil {
		return
	}
	h.sendTo(opponent.ClientID, &Event{Kind: EventMessage, Text: cmd.Text})
}

func (h *Hub) handleCloseRoom(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}
	h.rooms.Delete(room.ID)
	// The closer gets no acknowledgement, only the other side hears.
	if opponent := room.Opponent(cmd.Client.ID); opponent != nil {
		h.sendTo(opponent.ClientID, &Event{Kind: EventRoomClosed})
	}
	h.log.Debug().Str("session_id", room.ID).Str("closed_by", cmd.Client.ID).Msg("room closed")
}

// sendTo resolves the client through the registry before sending; a
// vanished client is a silent no-op, never an error.
func (h *Hub) sendTo(clientID string, event *Event) {
	if c, ok := h.registry.Resolve(clientID); ok {
		c.send(event)
	}
}

// reconcile drops queue entries and rooms whose clients are gone. It runs
// only when a sweep interval was configured; by default the stale state
// stays.
func (h *Hub) reconcile() {
	alive := func(clientID string) bool {
		_, ok := h.registry.Resolve(clientID)
		return ok
	}

	dropped := h.queue.Prune(func(p *Player) bool { return alive(p.ClientID) })
	removed := h.rooms.Sweep(alive)
	if dropped > 0 || removed > 0 {
		h.log.Info().Int("queue_entries", dropped).Int("rooms", removed).
			Msg("reconciliation sweep reclaimed stale state")
	}
}
