package user

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo is the in-memory user store. Emails are matched case-insensitively
// and are unique within the store.
type Repo struct {
	mu      sync.RWMutex
	users   []domain.User
	latency time.Duration
}

// NewRepo creates a user store seeded with a copy of the given records.
func NewRepo(seed []domain.User, latency time.Duration) *Repo {
	return &Repo{users: slices.Clone(seed), latency: latency}
}

// GetByID returns the user or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// GetByEmail returns the user with the given email (case-insensitive) or
// domain.ErrNotFound.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
}

// List returns a page of users in registration order.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 || offset >= len(r.users) || limit <= 0 {
		return []domain.User{}, nil
	}
	end := min(offset+limit, len(r.users))
	return slices.Clone(r.users[offset:end]), nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// Create appends a new user. Returns domain.ErrAlreadyExists when the
// email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, u.Email) {
			return nil, fmt.Errorf("user %q: %w", u.Email, domain.ErrAlreadyExists)
		}
	}

	now := time.Now()
	created := *u
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.users = append(r.users, created)

	out := created
	return &out, nil
}

// Update merges the supplied profile fields and refreshes UpdatedAt.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	u := &r.users[idx]
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.NameArabic != nil {
		u.NameArabic = params.NameArabic
	}
	if params.Avatar != nil {
		u.Avatar = params.Avatar
	}
	if params.Bio != nil {
		u.Bio = params.Bio
	}
	u.UpdatedAt = time.Now()

	out := *u
	return &out, nil
}

// SetVerified marks the user's email as verified.
func (r *Repo) SetVerified(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	r.users[idx].IsVerified = true
	r.users[idx].UpdatedAt = time.Now()

	out := r.users[idx]
	return &out, nil
}

// SetRole changes the user's role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	r.users[idx].Role = role
	r.users[idx].UpdatedAt = time.Now()

	out := r.users[idx]
	return &out, nil
}
