package core

import "sync"

// MatchQueue is the waiting list for random pairing. It is a stack: the
// most recently queued player is matched first. Entries are not
// deduplicated, so a client that asks twice before being matched waits
// twice.
type MatchQueue struct {
	mu      sync.Mutex
	waiting []*Player
}

// NewMatchQueue constructs an empty queue.
func NewMatchQueue() *MatchQueue {
	return &MatchQueue{}
}

// Push adds a player to the top of the stack.
func (q *MatchQueue) Push(p *Player) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting = append(q.waiting, p)
}

// Pop removes and returns the most recently queued player.
func (q *MatchQueue) Pop() (*Player, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.waiting)
	if n == 0 {
		return nil, false
	}
	p := q.waiting[n-1]
	q.waiting[n-1] = nil
	q.waiting = q.waiting[:n-1]
	return p, true
}

// Len returns the number of waiting entries.
func (q *MatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.waiting)
}

// Prune drops every entry the predicate rejects and reports how many were
// removed. Used by the reconciliation sweep.
func (q *MatchQueue) Prune(keep func(*Player) bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.waiting[:0]
	for _, p := range q.waiting {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	dropped := len(q.waiting) - len(kept)
	for i := len(kept); i < len(q.waiting); i++ {
		q.waiting[i] = nil
	}
	q.waiting = kept
	return dropped
}
