// Package store persists curated events and admin users in Postgres. Curated
// events use the same shape the event cards render, so the admin panel edits
// exactly what the UI shows.
package store

import (
	"context"
	"errors"

	"github.com/amokewustl/belong-chivent/pkg/models"
)

// Sentinel errors returned by store implementations.
var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: already exists")
)

// EventStore defines curated event persistence.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

// UserStore defines user account persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// Store combines both stores with connection management.
type Store interface {
	EventStore
	UserStore
	Ping(ctx context.Context) error
	Close() error
}
