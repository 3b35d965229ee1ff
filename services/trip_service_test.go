package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/models"
)

func TestCreateTrip_CreatorIsSoleAdmin(t *testing.T) {
	env := newTestEnv(t)

	trip, err := env.tripService.CreateTrip(memberActor("u2"), &models.CreateTripRequest{
		Title:     "Nagano Onsen Weekend",
		StartDate: "2025-10-03",
		EndDate:   "2025-10-05",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2025/10/03 - 2025/10/05", trip.Dates)
	assert.Len(t, trip.Members, 1)
	assert.Equal(t, "u2", trip.Members[0].ID)
	assert.Equal(t, models.RoleAdmin, trip.Members[0].Role)
	assert.Equal(t, models.TripStatusUpcoming, trip.Status)

	// New trips land at the top of the list
	trips := env.trips.ListTrips()
	assert.Equal(t, trip.ID, trips[0].ID)
}

func TestCreateTrip_GuestsAndBlankTitlesRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tripService.CreateTrip(guestActor("t1"), &models.CreateTripRequest{Title: "Nope"})
	assert.Error(t, err)

	_, err = env.tripService.CreateTrip(memberActor("u1"), &models.CreateTripRequest{Title: "   "})
	assert.Error(t, err)
}

func TestListTrips_Filters(t *testing.T) {
	env := newTestEnv(t)

	all, err := env.tripService.ListTrips(memberActor("u2"), TripFilterAll)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	upcoming, err := env.tripService.ListTrips(memberActor("u2"), TripFilterUpcoming)
	assert.NoError(t, err)
	assert.Len(t, upcoming, 2)

	completed, err := env.tripService.ListTrips(memberActor("u2"), TripFilterCompleted)
	assert.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, "t3", completed[0].ID)

	saved, err := env.tripService.ListTrips(memberActor("u2"), TripFilterSaved)
	assert.NoError(t, err)
	assert.Len(t, saved, 2)

	// u1 is not a member of t3
	mine, err := env.tripService.ListTrips(memberActor("u1"), "")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = env.tripService.ListTrips(memberActor("u1"), "bogus")
	assert.Error(t, err)
}

func TestListTrips_GuestSeesOnlyBoundTrip(t *testing.T) {
	env := newTestEnv(t)

	trips, err := env.tripService.ListTrips(guestActor("t1"), TripFilterAll)
	assert.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Equal(t, "t1", trips[0].ID)
}

func TestUpdateTrip_NilFieldsKeepValues(t *testing.T) {
	env := newTestEnv(t)

	title := "Kyoto Autumn Heritage Tour"
	updated, err := env.tripService.UpdateTrip(memberActor("u1"), "t1", &models.UpdateTripRequest{
		Title: &title,
	})
	assert.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "2025/08/15 - 08/17", updated.Dates)
	assert.Len(t, updated.Events, 2)
}

func TestMutateUnknownTrip_NotFound(t *testing.T) {
	env := newTestEnv(t)

	title := "Ghost"
	_, err := env.tripService.UpdateTrip(memberActor("u1"), "missing", &models.UpdateTripRequest{Title: &title})
	assertNotFound(t, err)

	_, err = env.tripService.ToggleSaved(memberActor("u1"), "missing")
	assertNotFound(t, err)

	_, err = env.tripService.CompleteTrip(memberActor("u1"), "missing")
	assertNotFound(t, err)
}

func TestDeleteTrip_AdminOnly(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.tripService.DeleteTrip(memberActor("u2"), "t1"))
	assert.NoError(t, env.tripService.DeleteTrip(memberActor("u1"), "t1"))

	_, err := env.trips.GetTrip("t1")
	assert.Error(t, err)
}

func TestToggleSaved_ViewerMayBookmark(t *testing.T) {
	env := newTestEnv(t)

	trip, err := env.tripService.ToggleSaved(memberActor("u4"), "t3")
	assert.NoError(t, err)
	assert.False(t, trip.IsSaved)

	trip, err = env.tripService.ToggleSaved(memberActor("u4"), "t3")
	assert.NoError(t, err)
	assert.True(t, trip.IsSaved)

	_, err = env.tripService.ToggleSaved(guestActor("t1"), "t1")
	assert.Error(t, err)
}

func TestCompleteTrip(t *testing.T) {
	env := newTestEnv(t)

	trip, err := env.tripService.CompleteTrip(memberActor("u1"), "t1")
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, trip.Status)

	_, err = env.tripService.CompleteTrip(memberActor("u3"), "t1")
	assert.Error(t, err, "editors may not complete trips")
}

func TestJoinTrip_ResolvesReferenceInsideLink(t *testing.T) {
	env := newTestEnv(t)

	trip, err := env.tripService.JoinTrip(memberActor("u3"), "https://triplink.app/join/t2")
	assert.NoError(t, err)
	assert.Equal(t, "t2", trip.ID)

	role, ok := trip.MemberRole("u3")
	assert.True(t, ok)
	assert.Equal(t, models.RoleEditor, role)

	// A join raises a feed notification
	assert.Equal(t, 1, env.notifications.UnreadCount())
}

func TestJoinTrip_AlreadyMember(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tripService.JoinTrip(memberActor("u1"), "t2")
	assert.Error(t, err)
}

func TestJoinTrip_UnknownReference(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tripService.JoinTrip(memberActor("u3"), "no-such-trip")
	assert.Error(t, err)
}

func TestInviteLink(t *testing.T) {
	env := newTestEnv(t)

	link, err := env.tripService.InviteLink(memberActor("u1"), "t1", "https://triplink.app/")
	assert.NoError(t, err)
	assert.Equal(t, "https://triplink.app/join/t1", link)
}
