package pos

import (
	"context"
	"net/http"
	"time"
)

// Prober polls the server's health endpoint and emits one edge event
// per offline-to-online transition. It never fires while the link
// stays up; the sync agent is edge-triggered, not polled.
type Prober struct {
	URL      string
	Interval time.Duration
	Client   *http.Client

	online chan struct{}
	up     bool
}

func NewProber(url string, interval time.Duration) *Prober {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Prober{
		URL:      url,
		Interval: interval,
		Client:   &http.Client{Timeout: 3 * time.Second},
		online:   make(chan struct{}, 1),
	}
}

func (p *Prober) Online() <-chan struct{} {
	return p.online
}

// Run probes until ctx is done. The first successful probe counts as a
// transition, so a queue left over from the previous run drains at
// startup.
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		p.probe(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Prober) probe(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return
	}
	res, err := p.Client.Do(req)
	if err != nil {
		p.up = false
		return
	}
	res.Body.Close()

	reachable := res.StatusCode < 500
	if reachable && !p.up {
		select {
		case p.online <- struct{}{}:
		default:
		}
	}
	p.up = reachable
}
