package services

import (
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// Actor is the resolved session identity behind a request. Guests carry
// the trip their share link pointed at and nothing else.
type Actor struct {
	UserID  string
	IsGuest bool
	TripID  string
}

// authorizeMutation is the single write gate for trip content. Every
// mutating operation (events, expenses, bookings, memories, chat) runs
// through here: admins and editors pass, viewers and guests do not.
func authorizeMutation(trip models.Trip, actor Actor) error {
	if actor.IsGuest || actor.UserID == "" {
		return utils.NewForbiddenError(utils.ErrReadOnly)
	}
	role, ok := trip.MemberRole(actor.UserID)
	if !ok {
		return utils.NewForbiddenError(utils.ErrReadOnly)
	}
	if !models.CanMutate(role, actor.IsGuest) {
		return utils.NewForbiddenError(utils.ErrReadOnly)
	}
	return nil
}

// authorizeAdmin gates trip-level administrative actions (inviting
// members, deleting or completing the trip)
func authorizeAdmin(trip models.Trip, actor Actor) error {
	if actor.IsGuest || actor.UserID == "" {
		return utils.NewForbiddenError(utils.ErrAdminOnly)
	}
	role, ok := trip.MemberRole(actor.UserID)
	if !ok || !models.CanManageMembers(role) {
		return utils.NewForbiddenError(utils.ErrAdminOnly)
	}
	return nil
}

// authorizeRead gates trip visibility: members see their trips, guests see
// only the trip their link opened
func authorizeRead(trip models.Trip, actor Actor) error {
	if actor.IsGuest {
		if actor.TripID != trip.ID {
			return utils.NewForbiddenError(utils.ErrReadOnly)
		}
		return nil
	}
	if actor.UserID == "" {
		return utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}
	return nil
}
