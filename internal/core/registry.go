package core

import "sync"

// Registry maps client identifiers to live connections; it is the single
// source of truth for who is reachable. The hub goroutine is the only
// writer. The lock exists so HTTP observers can read sizes safely, it is
// not a substitute for the hub's command serialization.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Register stores the mapping. A second registration under the same id
// evicts the previous connection; the new one wins. Returns true when an
// existing entry was replaced.
func (r *Registry) Register(id string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.clients[id]
	r.clients[id] = c
	return replaced
}

// Resolve returns the connection registered under id, if any.
func (r *Registry) Resolve(id string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	return c, ok
}

// Unregister removes the entry for the client's identifier, but only while
// it still points at this client: a connection evicted by a duplicate
// registration must not remove its replacement on close. Returns true if
// an entry was removed.
func (r *Registry) Unregister(c *Client) bool {
	if c.ID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.clients[c.ID]; !ok || current != c {
		return false
	}
	delete(r.clients, c.ID)
	return true
}

// Size returns the number of registered connections.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}

// All returns a snapshot of every registered connection.
func (r *Registry) All() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		all = append(all, c)
	}
	return all
}
