package core

// Client is one connected participant as seen by the core layer. The
// transport owns the underlying connection; the core holds a non-owning
// handle and talks to it only through the Events channel.
type Client struct {
	// ID is the client-supplied identifier, attached by the hub when the
	// init command is processed. Empty until then. Only the hub goroutine
	// reads or writes it.
	ID string

	// Events is drained by the transport write loop.
	Events chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient() *Client {
	return &Client{
		Events: make(chan *Event, 16),
	}
}

// send delivers an event without blocking the hub. A full channel drops
// the event; delivery is best-effort by protocol contract.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}
