package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/models"
)

func seededRepos(t *testing.T) (*TripRepository, *Store) {
	store := NewStore()
	Seed(store)
	return NewTripRepository(store), store
}

func TestSeed(t *testing.T) {
	trips, store := seededRepos(t)

	assert.Len(t, trips.ListTrips(), 3)

	sessions := NewSessionRepository(store)
	user, err := sessions.GetUser("u1")
	assert.NoError(t, err)
	assert.Equal(t, "Alison", user.Name)

	invitations := NewInvitationRepository(store)
	assert.Len(t, invitations.ListInvitations(), 1)
}

func TestInsertTrip_NewestFirst(t *testing.T) {
	trips, _ := seededRepos(t)

	trips.InsertTrip(models.Trip{ID: "t9", Title: "Newest"})

	list := trips.ListTrips()
	assert.Equal(t, "t9", list[0].ID)
	assert.Len(t, list, 4)
}

func TestGetTrip_ReturnsIsolatedCopy(t *testing.T) {
	trips, _ := seededRepos(t)

	a, err := trips.GetTrip("t1")
	assert.NoError(t, err)
	a.Events[0].Title = "Scribbled over"

	b, err := trips.GetTrip("t1")
	assert.NoError(t, err)
	assert.Equal(t, "Meet at Kyoto Station", b.Events[0].Title)
}

func TestUpdateTrip_ReplacesWholesale(t *testing.T) {
	trips, _ := seededRepos(t)

	updated, err := trips.UpdateTrip("t1", func(trip models.Trip) (models.Trip, error) {
		trip.Title = "Renamed"
		trip.Events = append(trip.Events, models.ItineraryEvent{ID: "e9"})
		return trip, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	stored, _ := trips.GetTrip("t1")
	assert.Equal(t, "Renamed", stored.Title)
	assert.Len(t, stored.Events, 3)
}

func TestUpdateTrip_UpdaterErrorDiscardsChanges(t *testing.T) {
	trips, _ := seededRepos(t)

	boom := errors.New("boom")
	_, err := trips.UpdateTrip("t1", func(trip models.Trip) (models.Trip, error) {
		trip.Title = "Half done"
		return trip, boom
	})
	assert.Equal(t, boom, err)

	stored, _ := trips.GetTrip("t1")
	assert.Equal(t, "Kyoto Summer Heritage Tour", stored.Title)
}

func TestUpdateTrip_UnknownID(t *testing.T) {
	trips, _ := seededRepos(t)

	_, err := trips.UpdateTrip("nope", func(trip models.Trip) (models.Trip, error) {
		return trip, nil
	})
	assert.Equal(t, ErrNotFound, err)
}

func TestFindTripByReference(t *testing.T) {
	trips, _ := seededRepos(t)

	direct, err := trips.FindTripByReference("t2")
	assert.NoError(t, err)
	assert.Equal(t, "t2", direct.ID)

	fromLink, err := trips.FindTripByReference("https://triplink.app/join/t3")
	assert.NoError(t, err)
	assert.Equal(t, "t3", fromLink.ID)

	_, err = trips.FindTripByReference("nothing-here")
	assert.Equal(t, ErrNotFound, err)
}

func TestDeleteTrip(t *testing.T) {
	trips, _ := seededRepos(t)

	assert.NoError(t, trips.DeleteTrip("t2"))
	assert.Len(t, trips.ListTrips(), 2)

	_, err := trips.GetTrip("t2")
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, ErrNotFound, trips.DeleteTrip("t2"))
}

func TestNotificationRepository(t *testing.T) {
	store := NewStore()
	repo := NewNotificationRepository(store)

	repo.AddNotification(models.AppNotification{ID: "n1"})
	repo.AddNotification(models.AppNotification{ID: "n2"})

	list := repo.ListNotifications()
	assert.Equal(t, "n2", list[0].ID)
	assert.Equal(t, 2, repo.UnreadCount())

	assert.NoError(t, repo.MarkRead("n1"))
	assert.Equal(t, 1, repo.UnreadCount())

	repo.MarkAllRead()
	assert.Equal(t, 0, repo.UnreadCount())

	assert.Error(t, repo.MarkRead("missing"))
}

func TestSessionRepository(t *testing.T) {
	store := NewStore()
	repo := NewSessionRepository(store)

	repo.PutSession(models.Session{Token: "tok", UserID: "u1"})
	session, err := repo.GetSession("tok")
	assert.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)

	repo.DeleteSession("tok")
	_, err = repo.GetSession("tok")
	assert.Equal(t, ErrNotFound, err)
}
