package pos

import (
	"sync"

	"restoflow/entity"
)

// SyncStatus tracks how far an order got toward the server. Queued and
// confirmed orders look the same to the customer, but the operator can
// tell them apart, so a delivery failure is visible instead of silent.
type SyncStatus string

const (
	StatusPending   SyncStatus = "PENDING"   // submission in flight
	StatusQueued    SyncStatus = "QUEUED"    // waiting in the offline queue
	StatusConfirmed SyncStatus = "CONFIRMED" // echoed by the server
	StatusFailed    SyncStatus = "FAILED"    // rejected during replay
)

type RegisterEntry struct {
	Order  entity.Order
	Status SyncStatus
}

// Register is the terminal's local authoritative order list. Orders
// appear here the moment checkout runs, before any network round-trip,
// and are reconciled against server truth by the sync agent.
type Register struct {
	mu      sync.Mutex
	entries []RegisterEntry
}

func NewRegister() *Register {
	return &Register{}
}

// Add prepends so the newest order shows first.
func (r *Register) Add(o entity.Order, status SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]RegisterEntry{{Order: o, Status: status}}, r.entries...)
}

func (r *Register) SetStatus(clientKey string, status SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].Order.ClientKey == clientKey {
			r.entries[i].Status = status
			return
		}
	}
}

// Refresh replaces the list with server truth (all confirmed) while
// keeping local failed entries the server never accepted, so the
// operator still sees them.
func (r *Register) Refresh(serverOrders []entity.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fresh := make([]RegisterEntry, 0, len(serverOrders))
	for _, o := range serverOrders {
		fresh = append(fresh, RegisterEntry{Order: o, Status: StatusConfirmed})
	}

	known := make(map[string]bool, len(serverOrders))
	for _, o := range serverOrders {
		known[o.ClientKey] = true
	}
	for _, e := range r.entries {
		if e.Status == StatusFailed && !known[e.Order.ClientKey] {
			fresh = append(fresh, e)
		}
	}

	r.entries = fresh
}

// Entries returns a copy, newest first.
func (r *Register) Entries() []RegisterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RegisterEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Register) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
