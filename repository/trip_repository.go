// repository/trip_repository.go
package repository

import (
	"strings"

	"github.com/triplink-app/triplink-backend/models"
)

// TripRepository handles store operations for trips
type TripRepository struct {
	store *Store
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(store *Store) *TripRepository {
	return &TripRepository{store: store}
}

// ListTrips returns copies of all trips, newest first
func (r *TripRepository) ListTrips() []models.Trip {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	trips := make([]models.Trip, 0, len(r.store.trips))
	for _, t := range r.store.trips {
		trips = append(trips, t.Clone())
	}
	return trips
}

// GetTrip retrieves a trip by its id
func (r *TripRepository) GetTrip(id string) (models.Trip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.trips {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return models.Trip{}, ErrNotFound
}

// FindTripByReference resolves an opaque join reference: either the trip id
// itself, or any string that contains a known trip id (a pasted invite URL)
func (r *TripRepository) FindTripByReference(ref string) (models.Trip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.trips {
		if t.ID == ref || strings.Contains(ref, t.ID) {
			return t.Clone(), nil
		}
	}
	return models.Trip{}, ErrNotFound
}

// InsertTrip prepends a trip so newest trips list first
func (r *TripRepository) InsertTrip(trip models.Trip) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.trips = append([]models.Trip{trip.Clone()}, r.store.trips...)
}

// UpdateTrip replaces a stored trip with the result of updater, applied to
// a copy of the current value. The updater must not retain the argument;
// the replacement happens atomically under the store lock.
func (r *TripRepository) UpdateTrip(id string, updater func(models.Trip) (models.Trip, error)) (models.Trip, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.trips {
		if t.ID != id {
			continue
		}
		updated, err := updater(t.Clone())
		if err != nil {
			return models.Trip{}, err
		}
		updated.ID = id
		r.store.trips[i] = updated
		return updated.Clone(), nil
	}
	return models.Trip{}, ErrNotFound
}

// DeleteTrip removes a trip from the store
func (r *TripRepository) DeleteTrip(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.trips {
		if t.ID == id {
			r.store.trips = append(r.store.trips[:i], r.store.trips[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
