package store

import (
	"context"
	"errors"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// UserRepository accesses dashboard accounts.
type UserRepository interface {
	// GetByEmail looks a user up case-insensitively.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id idx.ID) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
	// IsEmpty reports whether any account exists, used by seeding.
	IsEmpty(ctx context.Context) (bool, error)
}

// LocationRepository accesses restaurant locations.
type LocationRepository interface {
	List(ctx context.Context, limit, offset int64) ([]domain.Location, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id idx.ID) (domain.Location, error)
	Create(ctx context.Context, loc domain.Location) error
	Update(ctx context.Context, loc domain.Location) error
	Delete(ctx context.Context, id idx.ID) error
}

// GoalsRepository accesses per-location operational targets.
type GoalsRepository interface {
	GetByLocation(ctx context.Context, locationID idx.ID) (domain.Goals, error)
	Upsert(ctx context.Context, goals domain.Goals) error
	// DeleteOrphaned removes goals rows whose location no longer exists and
	// returns how many were removed.
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// Store aggregates the repositories behind a single backing database.
type Store interface {
	Users() UserRepository
	Locations() LocationRepository
	Goals() GoalsRepository

	// WithTx runs fn against a transactional view of the store. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	ApplyMigrations() error
	Ping(ctx context.Context) error
	Close() error
}
