// services/invitation_service.go
package services

import (
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// InvitationService handles the pending-invitation inbox. Accepting an
// invitation consumes it and materializes the invited trip with the
// accepting user as its sole editor member; declining just consumes it.
type InvitationService struct {
	invitations *repository.InvitationRepository
	trips       *repository.TripRepository
	sessions    *repository.SessionRepository
}

// NewInvitationService creates a new invitation service
func NewInvitationService(invitations *repository.InvitationRepository, trips *repository.TripRepository, sessions *repository.SessionRepository) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		trips:       trips,
		sessions:    sessions,
	}
}

// List returns the pending invitations
func (s *InvitationService) List(actor Actor) ([]models.Invitation, error) {
	if actor.IsGuest || actor.UserID == "" {
		return nil, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}
	return s.invitations.ListInvitations(), nil
}

// Accept consumes an invitation and adds exactly one new trip
func (s *InvitationService) Accept(actor Actor, invitationID string) (models.Trip, error) {
	if actor.IsGuest || actor.UserID == "" {
		return models.Trip{}, utils.NewForbiddenError(utils.ErrReadOnly)
	}
	user, err := s.sessions.GetUser(actor.UserID)
	if err != nil {
		return models.Trip{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	inv, err := s.invitations.GetInvitation(invitationID)
	if err != nil {
		return models.Trip{}, utils.NewNotFoundError("Invitation")
	}

	trip := models.NewTripFromInvitation(inv, user)
	s.trips.InsertTrip(*trip)
	if err := s.invitations.RemoveInvitation(inv.ID); err != nil {
		return models.Trip{}, utils.NewNotFoundError("Invitation")
	}
	return *trip, nil
}

// Decline consumes an invitation without joining
func (s *InvitationService) Decline(actor Actor, invitationID string) error {
	if actor.IsGuest || actor.UserID == "" {
		return utils.NewForbiddenError(utils.ErrReadOnly)
	}
	if err := s.invitations.RemoveInvitation(invitationID); err != nil {
		return utils.NewNotFoundError("Invitation")
	}
	return nil
}

// Invite snapshots a trip into a new pending invitation; admins only.
// Role changes and member removal after acceptance have no flow here.
func (s *InvitationService) Invite(actor Actor, tripID, message string) (models.Invitation, error) {
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		return models.Invitation{}, utils.NewNotFoundError("Trip")
	}
	if err := authorizeAdmin(trip, actor); err != nil {
		return models.Invitation{}, err
	}
	inviter, err := s.sessions.GetUser(actor.UserID)
	if err != nil {
		return models.Invitation{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	inv := models.Invitation{
		ID:        utils.GenerateID(),
		TripID:    trip.ID,
		TripTitle: trip.Title,
		TripDates: trip.Dates,
		TripImage: trip.CoverImage,
		Inviter:   inviter,
		Message:   message,
	}
	s.invitations.AddInvitation(inv)
	return inv, nil
}
