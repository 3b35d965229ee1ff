// repository/store.go
package repository

import (
	"errors"
	"sync"

	"github.com/triplink-app/triplink-backend/models"
)

// ErrNotFound is returned when a record does not exist in the store
var ErrNotFound = errors.New("not found")

// Store is the single source of truth for all application state. Nothing
// is persisted: records live for the lifetime of the process, seeded from
// fixtures at startup. Every trip mutation goes through UpdateTrip, which
// replaces the stored value wholesale with the updater's result.
type Store struct {
	mu            sync.RWMutex
	trips         []models.Trip // newest first
	users         map[string]models.User
	invitations   []models.Invitation
	notifications []models.AppNotification // newest first
	sessions      map[string]models.Session
	registrations map[string]Registration
}

// Registration tracks an in-flight multi-step signup
type Registration struct {
	ID       string
	Email    string
	Verified bool
}

// InitStore creates the store and seeds the fixtures
func InitStore() *Store {
	s := NewStore()
	Seed(s)
	return s
}

// NewStore creates an empty, unseeded store (used by tests)
func NewStore() *Store {
	return &Store{
		users:         make(map[string]models.User),
		sessions:      make(map[string]models.Session),
		registrations: make(map[string]Registration),
	}
}
