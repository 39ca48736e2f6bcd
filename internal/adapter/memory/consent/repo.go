package consent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo holds per-visitor cookie consent records keyed by the anonymous
// visitor ID cookie.
type Repo struct {
	mu      sync.RWMutex
	records map[string]domain.ConsentRecord
	latency time.Duration
}

// NewRepo creates an empty consent store.
func NewRepo(latency time.Duration) *Repo {
	return &Repo{records: make(map[string]domain.ConsentRecord), latency: latency}
}

// Get returns the visitor's consent record or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, visitorID string) (*domain.ConsentRecord, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[visitorID]
	if !ok {
		return nil, fmt.Errorf("consent %q: %w", visitorID, domain.ErrNotFound)
	}
	return &rec, nil
}

// Put stores or replaces the visitor's consent record, stamping the
// consent time.
func (r *Repo) Put(ctx context.Context, rec domain.ConsentRecord) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ConsentedAt.IsZero() {
		rec.ConsentedAt = time.Now()
	}
	r.records[rec.VisitorID] = rec
	return nil
}
