package credential

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo maps email → bcrypt password hash. Credentials are deliberately
// kept apart from the user profile store; only hashes are ever held.
type Repo struct {
	mu      sync.RWMutex
	hashes  map[string]string
	latency time.Duration
}

// NewRepo creates a credential store seeded with a copy of the given
// email → hash map.
func NewRepo(seed map[string]string, latency time.Duration) *Repo {
	hashes := make(map[string]string, len(seed))
	for email, hash := range seed {
		hashes[normalize(email)] = hash
	}
	return &Repo{hashes: hashes, latency: latency}
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Get returns the stored hash for the email or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, email string) (string, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	hash, ok := r.hashes[normalize(email)]
	if !ok {
		return "", fmt.Errorf("credential %q: %w", email, domain.ErrNotFound)
	}
	return hash, nil
}

// Set stores or replaces the hash for the email.
func (r *Repo) Set(ctx context.Context, email, hash string) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hashes[normalize(email)] = hash
	return nil
}

// Delete removes the credential entry for the email, if any.
func (r *Repo) Delete(ctx context.Context, email string) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.hashes, normalize(email))
	return nil
}
