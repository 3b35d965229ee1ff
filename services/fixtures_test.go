package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// fixedClock pins service time for deterministic assertions
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// testEnv wires every service against a freshly seeded store
type testEnv struct {
	store         *repository.Store
	trips         *repository.TripRepository
	sessions      *repository.SessionRepository
	invitations   *repository.InvitationRepository
	scheduler     *Scheduler
	clock         fixedClock
	auth          *AuthService
	tripService   *TripService
	itinerary     *ItineraryService
	expenses      *ExpenseService
	bookings      *BookingService
	memories      *MemoryService
	chat          *ChatService
	invitationSvc *InvitationService
	notifications *NotificationService
	reminders     *ReminderService
}

func newTestEnv(t *testing.T) *testEnv {
	store := repository.NewStore()
	repository.Seed(store)

	scheduler := NewScheduler()
	t.Cleanup(scheduler.Stop)

	clock := fixedClock{now: time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)}

	trips := repository.NewTripRepository(store)
	sessions := repository.NewSessionRepository(store)
	invitations := repository.NewInvitationRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	notifications := NewNotificationService(notificationRepo, scheduler, clock)

	return &testEnv{
		store:         store,
		trips:         trips,
		sessions:      sessions,
		invitations:   invitations,
		scheduler:     scheduler,
		clock:         clock,
		auth:          NewAuthService(sessions, trips),
		tripService:   NewTripService(trips, sessions, notifications),
		itinerary:     NewItineraryService(trips),
		expenses:      NewExpenseService(trips),
		bookings:      NewBookingService(trips),
		memories:      NewMemoryService(trips, clock),
		chat:          NewChatService(trips, notifications, scheduler, clock),
		invitationSvc: NewInvitationService(invitations, trips, sessions),
		notifications: notifications,
		reminders:     NewReminderService(trips, notifications, clock),
	}
}

// Seeded member actors for the Kyoto trip (t1): u1 admin, u2/u3 editors.
// u4 is a viewer on the completed Hokkaido trip (t3) only.
func memberActor(id string) Actor { return Actor{UserID: id} }

func guestActor(tripID string) Actor { return Actor{IsGuest: true, TripID: tripID} }

// assertNotFound checks that err is an application 404, not a raw
// repository sentinel the HTTP layer would map to a 500
func assertNotFound(t *testing.T, err error) {
	t.Helper()
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok, "expected *utils.AppError, got %T", err)
	if ok {
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	}
}
