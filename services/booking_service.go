// services/booking_service.go
package services

import (
	"strings"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// BookingService handles reservation records attached to a trip
type BookingService struct {
	trips *repository.TripRepository
}

// NewBookingService creates a new booking service
func NewBookingService(trips *repository.TripRepository) *BookingService {
	return &BookingService{trips: trips}
}

func bookingFromRequest(id string, req *models.BookingRequest) (models.Booking, error) {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return models.Booking{}, err
	}
	if !models.ValidBookingType(req.Type) {
		return models.Booking{}, utils.NewValidationError("unknown booking type")
	}
	if err := utils.ValidateOptionalClock(req.Time, "time"); err != nil {
		return models.Booking{}, err
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return models.Booking{
		ID:            id,
		Type:          req.Type,
		Title:         strings.TrimSpace(req.Title),
		BookingNumber: strings.TrimSpace(req.BookingNumber),
		Date:          normalizeDate(req.Date),
		Time:          req.Time,
		Notes:         req.Notes,
		Attachments:   attachments,
	}, nil
}

// AddBooking records a booking on a trip
func (s *BookingService) AddBooking(actor Actor, tripID string, req *models.BookingRequest) (models.Booking, error) {
	booking, err := bookingFromRequest(utils.GenerateID(), req)
	if err != nil {
		return models.Booking{}, err
	}

	_, err = s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		t.Bookings = append(t.Bookings, booking)
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Booking{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// UpdateBooking replaces a booking in place
func (s *BookingService) UpdateBooking(actor Actor, tripID, bookingID string, req *models.BookingRequest) (models.Booking, error) {
	booking, err := bookingFromRequest(bookingID, req)
	if err != nil {
		return models.Booking{}, err
	}

	_, err = s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Bookings {
			if t.Bookings[i].ID == bookingID {
				t.Bookings[i] = booking
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Booking")
	})
	if err == repository.ErrNotFound {
		return models.Booking{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// RemoveBooking removes a booking from a trip
func (s *BookingService) RemoveBooking(actor Actor, tripID, bookingID string) error {
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Bookings {
			if t.Bookings[i].ID == bookingID {
				t.Bookings = append(t.Bookings[:i], t.Bookings[i+1:]...)
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Booking")
	})
	if err == repository.ErrNotFound {
		return utils.NewNotFoundError("Trip")
	}
	return err
}
