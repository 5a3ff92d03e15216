package pos

import (
	"context"
	"errors"
	"sync"

	"restoflow/entity"
)

// fakeGateway lets tests flip connectivity and fail individual orders
// deterministically.
type fakeGateway struct {
	mu        sync.Mutex
	offline   bool
	failKeys  map[string]bool // client keys rejected even when online
	submitted []entity.Order
	items     []entity.Item
}

var errUnreachable = errors.New("dial tcp: connection refused")

func (g *fakeGateway) setOffline(offline bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.offline = offline
}

func (g *fakeGateway) SubmitOrder(_ context.Context, o entity.Order, _ uint) (*entity.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.offline {
		return nil, errUnreachable
	}
	if g.failKeys[o.ClientKey] {
		return nil, errors.New("order totals do not match lines")
	}
	g.submitted = append(g.submitted, o)
	return &o, nil
}

func (g *fakeGateway) Items(_ context.Context, _ uint) ([]entity.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.offline {
		return nil, errUnreachable
	}
	return g.items, nil
}

func (g *fakeGateway) Orders(_ context.Context, _ uint) ([]entity.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.offline {
		return nil, errUnreachable
	}
	// newest first, like the server
	out := make([]entity.Order, len(g.submitted))
	for i, o := range g.submitted {
		out[len(g.submitted)-1-i] = o
	}
	return out, nil
}

func (g *fakeGateway) submittedCodes() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.submitted))
	for i, o := range g.submitted {
		out[i] = o.Code
	}
	return out
}
