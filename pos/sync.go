package pos

import (
	"context"
	"log"
)

// ConnectivitySource delivers became-online edges. It is injected so
// tests can flip connectivity deterministically.
type ConnectivitySource interface {
	Online() <-chan struct{}
}

// SyncAgent drains the offline queue when connectivity returns,
// replaying queued orders through the same submission path in original
// insertion order.
type SyncAgent struct {
	Gateway  Gateway
	Queue    *OfflineQueue
	Register *Register
	Catalog  *Catalog
	TenantID uint
}

// Run blocks until ctx is done, draining once per online edge.
func (a *SyncAgent) Run(ctx context.Context, src ConnectivitySource) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-src.Online():
			if err := a.Drain(ctx); err != nil {
				log.Printf("offline sync: %v", err)
			}
		}
	}
}

// Drain replays every queued order. A failing entry is logged and
// skipped, the pass continues, and the queue is cleared at the end
// regardless, so an order that keeps failing is dropped from the queue
// (it stays visible on the register as FAILED). Delivery is
// at-least-once for entries that replay cleanly, and not guaranteed
// at all for entries that error during replay.
func (a *SyncAgent) Drain(ctx context.Context) error {
	queued, err := a.Queue.ListAll()
	if err != nil {
		return err
	}

	for _, o := range queued {
		if _, err := a.Gateway.SubmitOrder(ctx, o, a.TenantID); err != nil {
			log.Printf("replay order %s: %v", o.Code, err)
			a.Register.SetStatus(o.ClientKey, StatusFailed)
			continue
		}
		a.Register.SetStatus(o.ClientKey, StatusConfirmed)
	}

	if err := a.Queue.ClearAll(); err != nil {
		return err
	}

	// reconcile the register with server truth
	if orders, err := a.Gateway.Orders(ctx, a.TenantID); err == nil {
		a.Register.Refresh(orders)
	}
	if a.Catalog != nil {
		if items, err := a.Gateway.Items(ctx, a.TenantID); err == nil {
			a.Catalog.Replace(items)
		}
	}

	return nil
}
