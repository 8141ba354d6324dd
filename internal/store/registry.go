package store

import (
	"context"
	"log"
	"sync"
	"time"

	"zenvy-storefront/internal/session"
)

// Registry materializes one Runtime per session id and evicts idle ones
// on a ticker.
type Registry struct {
	apiBaseURL string
	manager    *session.Manager
	opts       RuntimeOptions

	mu       sync.Mutex
	runtimes map[string]*Runtime

	ticker *time.Ticker
	stop   chan struct{}
}

// NewRegistry creates a runtime registry
func NewRegistry(apiBaseURL string, manager *session.Manager, opts RuntimeOptions) *Registry {
	return &Registry{
		apiBaseURL: apiBaseURL,
		manager:    manager,
		opts:       opts,
		runtimes:   make(map[string]*Runtime),
	}
}

// Acquire returns the runtime for a session, building and bootstrapping
// it on first sight.
func (r *Registry) Acquire(ctx context.Context, sessionID string) (*Runtime, error) {
	r.mu.Lock()
	if rt, ok := r.runtimes[sessionID]; ok {
		r.mu.Unlock()
		rt.Touch()
		return rt, nil
	}
	r.mu.Unlock()

	// Built outside the lock; bootstrapping hits the network.
	sess, err := r.manager.Open(sessionID)
	if err != nil {
		return nil, err
	}
	rt := NewRuntime(ctx, r.apiBaseURL, sess, r.opts)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.runtimes[sessionID]; ok {
		rt.Close()
		existing.Touch()
		return existing, nil
	}
	r.runtimes[sessionID] = rt
	return rt, nil
}

// Remove drops a session's runtime and stops its pollers
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	rt, ok := r.runtimes[sessionID]
	delete(r.runtimes, sessionID)
	r.mu.Unlock()
	if ok {
		rt.Close()
	}
}

// StartEviction drops runtimes idle longer than ttl, checking every
// interval, until StopEviction.
func (r *Registry) StartEviction(interval, ttl time.Duration) {
	r.mu.Lock()
	if r.stop != nil {
		r.mu.Unlock()
		return
	}
	r.ticker = time.NewTicker(interval)
	r.stop = make(chan struct{})
	ticker, stop := r.ticker, r.stop
	r.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				r.evictIdle(ttl)
			case <-stop:
				return
			}
		}
	}()
}

// StopEviction halts the eviction loop
func (r *Registry) StopEviction() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop == nil {
		return
	}
	r.ticker.Stop()
	close(r.stop)
	r.ticker = nil
	r.stop = nil
}

func (r *Registry) evictIdle(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	var evicted []*Runtime
	for id, rt := range r.runtimes {
		if rt.LastSeen().Before(cutoff) {
			evicted = append(evicted, rt)
			delete(r.runtimes, id)
		}
	}
	r.mu.Unlock()

	for _, rt := range evicted {
		rt.Close()
	}
	if len(evicted) > 0 {
		log.Printf("Evicted %d idle session runtime(s)", len(evicted))
	}
}
