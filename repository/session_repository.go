// repository/session_repository.go
package repository

import "github.com/triplink-app/triplink-backend/models"

// SessionRepository handles store operations for users, sessions and
// in-flight registrations. Sessions are the entire extent of "auth" here:
// opaque tokens mapped to in-memory records, gone on restart.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// GetUser retrieves a user by id
func (r *SessionRepository) GetUser(id string) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if u, ok := r.store.users[id]; ok {
		return u, nil
	}
	return models.User{}, ErrNotFound
}

// ListUsers returns all known users
func (r *SessionRepository) ListUsers() []models.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, u)
	}
	return users
}

// PutUser inserts or replaces a user
func (r *SessionRepository) PutUser(u models.User) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[u.ID] = u
}

// GetSession resolves a session token
func (r *SessionRepository) GetSession(token string) (models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if s, ok := r.store.sessions[token]; ok {
		return s, nil
	}
	return models.Session{}, ErrNotFound
}

// PutSession stores a session under its token
func (r *SessionRepository) PutSession(s models.Session) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[s.Token] = s
}

// DeleteSession removes a session (logout)
func (r *SessionRepository) DeleteSession(token string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, token)
}

// GetRegistration retrieves an in-flight registration
func (r *SessionRepository) GetRegistration(id string) (Registration, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if reg, ok := r.store.registrations[id]; ok {
		return reg, nil
	}
	return Registration{}, ErrNotFound
}

// PutRegistration stores an in-flight registration
func (r *SessionRepository) PutRegistration(reg Registration) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.registrations[reg.ID] = reg
}

// DeleteRegistration removes a completed or abandoned registration
func (r *SessionRepository) DeleteRegistration(id string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.registrations, id)
}
