// services/trip_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// TripService handles trip lifecycle and membership logic
type TripService struct {
	trips         *repository.TripRepository
	sessions      *repository.SessionRepository
	notifications *NotificationService
}

// NewTripService creates a new trip service
func NewTripService(trips *repository.TripRepository, sessions *repository.SessionRepository, notifications *NotificationService) *TripService {
	return &TripService{
		trips:         trips,
		sessions:      sessions,
		notifications: notifications,
	}
}

// CreateTrip creates a trip with the actor as its sole admin member
func (s *TripService) CreateTrip(actor Actor, req *models.CreateTripRequest) (models.Trip, error) {
	if actor.IsGuest || actor.UserID == "" {
		return models.Trip{}, utils.NewForbiddenError(utils.ErrReadOnly)
	}
	title := strings.TrimSpace(req.Title)
	if err := utils.ValidateRequired(title, "title"); err != nil {
		return models.Trip{}, err
	}

	creator, err := s.sessions.GetUser(actor.UserID)
	if err != nil {
		return models.Trip{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	dates := fmt.Sprintf("%s - %s", normalizeDate(req.StartDate), normalizeDate(req.EndDate))
	trip := models.NewTrip(utils.GenerateID(), title, dates, creator)
	s.trips.InsertTrip(*trip)
	return *trip, nil
}

// normalizeDate turns date-input style "2025-08-15" into the "2025/08/15"
// labels used everywhere else
func normalizeDate(d string) string {
	return strings.ReplaceAll(strings.TrimSpace(d), "-", "/")
}

// Trip list filters
const (
	TripFilterAll       = "all"
	TripFilterUpcoming  = "upcoming"
	TripFilterCompleted = "completed"
	TripFilterSaved     = "saved"
)

// ListTrips returns the actor's trips, newest first, optionally filtered.
// Guests get only the trip their share link opened.
func (s *TripService) ListTrips(actor Actor, filter string) ([]models.Trip, error) {
	if actor.IsGuest {
		trip, err := s.trips.GetTrip(actor.TripID)
		if err != nil {
			return nil, utils.NewNotFoundError("Trip")
		}
		return []models.Trip{trip}, nil
	}
	if actor.UserID == "" {
		return nil, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	switch filter {
	case "", TripFilterAll, TripFilterUpcoming, TripFilterCompleted, TripFilterSaved:
	default:
		return nil, utils.NewValidationError("invalid filter")
	}

	trips := make([]models.Trip, 0)
	for _, t := range s.trips.ListTrips() {
		if _, ok := t.MemberRole(actor.UserID); !ok {
			continue
		}
		switch filter {
		case TripFilterUpcoming:
			if t.Status != models.TripStatusUpcoming {
				continue
			}
		case TripFilterCompleted:
			if t.Status != models.TripStatusCompleted {
				continue
			}
		case TripFilterSaved:
			if !t.IsSaved {
				continue
			}
		}
		trips = append(trips, t)
	}
	return trips, nil
}

// GetTrip returns one trip the actor may see
func (s *TripService) GetTrip(actor Actor, id string) (models.Trip, error) {
	trip, err := s.trips.GetTrip(id)
	if err != nil {
		return models.Trip{}, utils.NewNotFoundError("Trip")
	}
	if err := authorizeRead(trip, actor); err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}

// UpdateTrip updates top-level trip fields; nil request fields keep
// current values
func (s *TripService) UpdateTrip(actor Actor, id string, req *models.UpdateTripRequest) (models.Trip, error) {
	trip, err := s.trips.UpdateTrip(id, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if err := utils.ValidateRequired(title, "title"); err != nil {
				return models.Trip{}, err
			}
			t.Title = title
		}
		if req.Dates != nil {
			t.Dates = normalizeDate(*req.Dates)
		}
		if req.CoverImage != nil {
			t.CoverImage = *req.CoverImage
		}
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Trip{}, utils.NewNotFoundError("Trip")
	}
	return trip, err
}

// DeleteTrip removes a trip entirely; admins only
func (s *TripService) DeleteTrip(actor Actor, id string) error {
	trip, err := s.trips.GetTrip(id)
	if err != nil {
		return utils.NewNotFoundError("Trip")
	}
	if err := authorizeAdmin(trip, actor); err != nil {
		return err
	}
	return s.trips.DeleteTrip(id)
}

// ToggleSaved flips the saved flag. Any member may do this: the flag is a
// dashboard bookmark, not trip content, so viewers are allowed.
func (s *TripService) ToggleSaved(actor Actor, id string) (models.Trip, error) {
	trip, err := s.trips.UpdateTrip(id, func(t models.Trip) (models.Trip, error) {
		if actor.IsGuest {
			return models.Trip{}, utils.NewForbiddenError(utils.ErrReadOnly)
		}
		if _, ok := t.MemberRole(actor.UserID); !ok {
			return models.Trip{}, utils.NewForbiddenError(utils.ErrReadOnly)
		}
		t.IsSaved = !t.IsSaved
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Trip{}, utils.NewNotFoundError("Trip")
	}
	return trip, err
}

// CompleteTrip moves a trip to the completed shelf; admins only. Completed
// trips stop producing reminders.
func (s *TripService) CompleteTrip(actor Actor, id string) (models.Trip, error) {
	trip, err := s.trips.UpdateTrip(id, func(t models.Trip) (models.Trip, error) {
		if err := authorizeAdmin(t, actor); err != nil {
			return models.Trip{}, err
		}
		t.Status = models.TripStatusCompleted
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Trip{}, utils.NewNotFoundError("Trip")
	}
	return trip, err
}

// JoinTrip resolves an opaque reference (trip id or a string containing
// one) and adds the actor as an editor
func (s *TripService) JoinTrip(actor Actor, reference string) (models.Trip, error) {
	if actor.IsGuest || actor.UserID == "" {
		return models.Trip{}, utils.NewForbiddenError(utils.ErrReadOnly)
	}
	user, err := s.sessions.GetUser(actor.UserID)
	if err != nil {
		return models.Trip{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	found, err := s.trips.FindTripByReference(strings.TrimSpace(reference))
	if err != nil {
		return models.Trip{}, utils.NewBadRequestError(utils.ErrInvalidJoinRef)
	}

	joined, err := s.trips.UpdateTrip(found.ID, func(t models.Trip) (models.Trip, error) {
		if _, ok := t.MemberRole(user.ID); ok {
			return models.Trip{}, utils.NewBadRequestError(utils.ErrMemberAlready)
		}
		t.Members = append(t.Members, models.TripMember{User: user, Role: models.RoleEditor})
		return t, nil
	})
	if err != nil {
		return models.Trip{}, err
	}

	s.notifications.Add(utils.MemberJoinedTitle, fmt.Sprintf("%s joined \"%s\"", user.Name, joined.Title), models.NotificationSystem)
	return joined, nil
}

// InviteLink builds the share link text for a trip. It is display/copy
// only; joining resolves the id back out of whatever string gets pasted.
func (s *TripService) InviteLink(actor Actor, id string, host string) (string, error) {
	trip, err := s.trips.GetTrip(id)
	if err != nil {
		return "", utils.NewNotFoundError("Trip")
	}
	if err := authorizeRead(trip, actor); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/join/%s", strings.TrimRight(host, "/"), trip.ID), nil
}
