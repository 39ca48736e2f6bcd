package token

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo is the registry of single-use reset/verification tokens, keyed by
// token hash. Raw tokens never enter this store.
type Repo struct {
	mu      sync.Mutex
	tokens  map[string]domain.AuthToken
	latency time.Duration
}

// NewRepo creates an empty token registry.
func NewRepo(latency time.Duration) *Repo {
	return &Repo{tokens: make(map[string]domain.AuthToken), latency: latency}
}

// Create records a token. An existing entry with the same hash is
// overwritten; hashes are 256-bit random so collisions do not occur in
// practice.
func (r *Repo) Create(ctx context.Context, t domain.AuthToken) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.tokens[t.Hash] = t
	return nil
}

// Consume looks up a token by hash and purpose and marks it used.
// Unknown, expired, wrong-purpose and already-consumed tokens all
// collapse into domain.ErrNotFound so callers cannot distinguish them.
func (r *Repo) Consume(ctx context.Context, hash string, purpose domain.TokenPurpose) (*domain.AuthToken, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[hash]
	now := time.Now()
	if !ok || t.Purpose != purpose || t.IsExpired(now) || t.IsConsumed() {
		return nil, fmt.Errorf("token: %w", domain.ErrNotFound)
	}

	t.ConsumedAt = &now
	r.tokens[hash] = t

	out := t
	return &out, nil
}

// DeleteExpired removes expired and consumed tokens and reports how many
// were purged.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for hash, t := range r.tokens {
		if t.IsExpired(now) || t.IsConsumed() {
			delete(r.tokens, hash)
			removed++
		}
	}
	return removed, nil
}
