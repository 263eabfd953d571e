package vessel

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically evicts records that have not been updated within
// the TTL. The upstream feed has global coverage, so vessels that sail
// out of it would otherwise accumulate forever; a long TTL tolerates
// normal signal gaps without making busy viewports flicker.
type Sweeper struct {
	store    *Store
	ttl      time.Duration
	interval time.Duration
}

// NewSweeper returns a sweeper over store with the given TTL and sweep
// period.
func NewSweeper(store *Store, ttl, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, ttl: ttl, interval: interval}
}

// Run sweeps on every tick until ctx is cancelled. A sweep never fails;
// whatever happens on one tick, the next tick sweeps again.
func (sw *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sw.Sweep(time.Now().Unix())
		}
	}
}

// Sweep evicts everything last updated before now-TTL and logs the
// outcome.
func (sw *Sweeper) Sweep(now int64) {
	cutoff := now - int64(sw.ttl.Seconds())
	removed, remaining := sw.store.EvictOlderThan(cutoff)
	log.Printf("eviction sweep removed %d stale vessels, %d remaining", removed, remaining)
}
