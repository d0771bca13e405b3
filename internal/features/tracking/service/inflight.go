package service

import (
	"sync"

	"github.com/google/uuid"
)

// mutationGuard allows at most one in-flight mutation per order.
// A second caller is refused instead of queued.
type mutationGuard struct {
	mu     sync.Mutex
	active map[string]string
}

func newMutationGuard() *mutationGuard {
	return &mutationGuard{active: make(map[string]string)}
}

// acquire reserves orderID and returns the reservation token with its release func.
func (g *mutationGuard) acquire(orderID string) (string, func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[orderID]; busy {
		return "", nil, ErrMutationInFlight
	}

	token := uuid.NewString()
	g.active[orderID] = token

	release := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.active[orderID] == token {
			delete(g.active, orderID)
		}
	}
	return token, release, nil
}

func (g *mutationGuard) busy(orderID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.active[orderID]
	return ok
}
