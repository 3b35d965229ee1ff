// services/itinerary_service.go
package services

import (
	"sort"
	"strings"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// Default slot offered for an empty day
const defaultSlot = "09:00"

// ItineraryService handles the day-by-day schedule: event CRUD, grouping
// by date, ordering within a day and advisory insertion slots
type ItineraryService struct {
	trips *repository.TripRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(trips *repository.TripRepository) *ItineraryService {
	return &ItineraryService{trips: trips}
}

// Schedule groups a trip's events by date label and sorts each day by
// start time. Events without a date fall back to the trip's start date;
// an empty trip still presents its start date as one empty day.
func (s *ItineraryService) Schedule(trip models.Trip) []models.DaySchedule {
	startDate := trip.StartDate()

	byDate := make(map[string][]models.ItineraryEvent)
	for _, e := range trip.Events {
		date := e.Date
		if date == "" {
			date = startDate
		}
		byDate[date] = append(byDate[date], e)
	}
	if len(byDate) == 0 {
		byDate[startDate] = nil
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	schedule := make([]models.DaySchedule, 0, len(dates))
	for _, d := range dates {
		events := byDate[d]
		// HH:MM compares lexicographically in chronological order, so a
		// plain string sort matches the clock. Collisions keep their
		// relative order and are never merged.
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].StartTime < events[j].StartTime
		})
		schedule = append(schedule, models.DaySchedule{
			Date:        d,
			Events:      events,
			Suggestions: SuggestSlots(events),
		})
	}
	return schedule
}

// SuggestSlots proposes a start time before the first event, between each
// adjacent pair, and after the last. Purely advisory: saving an event at
// any other time is fine. Input must be sorted by start time.
func SuggestSlots(events []models.ItineraryEvent) []string {
	if len(events) == 0 {
		return []string{defaultSlot}
	}

	slots := make([]string, 0, len(events)+1)
	slots = append(slots, utils.AddMinutes(events[0].StartTime, -60))
	for i := 0; i < len(events)-1; i++ {
		slots = append(slots, utils.RoundToNearest5(utils.Midpoint(events[i].StartTime, events[i+1].StartTime)))
	}
	slots = append(slots, utils.AddMinutes(events[len(events)-1].StartTime, 60))
	return slots
}

func validateEventRequest(req *models.EventRequest) error {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return err
	}
	if err := utils.ValidateClock(req.StartTime, "startTime"); err != nil {
		return err
	}
	if err := utils.ValidateOptionalClock(req.EndTime, "endTime"); err != nil {
		return err
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		return utils.NewValidationError("unknown category")
	}
	return nil
}

func eventFromRequest(id string, req *models.EventRequest) models.ItineraryEvent {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = "TBD"
	}
	category := req.Category
	if category == "" {
		category = models.CategoryActivity
	}
	return models.ItineraryEvent{
		ID:           id,
		Title:        strings.TrimSpace(req.Title),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     location,
		Category:     category,
		Notes:        req.Notes,
		CostEstimate: req.CostEstimate,
		Date:         normalizeDate(req.Date),
	}
}

// AddEvent appends an event to a trip's schedule
func (s *ItineraryService) AddEvent(actor Actor, tripID string, req *models.EventRequest) (models.ItineraryEvent, error) {
	if err := validateEventRequest(req); err != nil {
		return models.ItineraryEvent{}, err
	}
	event := eventFromRequest(utils.GenerateID(), req)

	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		if event.Date == "" {
			event.Date = t.StartDate()
		}
		t.Events = append(t.Events, event)
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.ItineraryEvent{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.ItineraryEvent{}, err
	}
	return event, nil
}

// UpdateEvent replaces an event in place
func (s *ItineraryService) UpdateEvent(actor Actor, tripID, eventID string, req *models.EventRequest) (models.ItineraryEvent, error) {
	if err := validateEventRequest(req); err != nil {
		return models.ItineraryEvent{}, err
	}
	event := eventFromRequest(eventID, req)

	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Events {
			if t.Events[i].ID == eventID {
				if event.Date == "" {
					event.Date = t.StartDate()
				}
				t.Events[i] = event
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Event")
	})
	if err == repository.ErrNotFound {
		return models.ItineraryEvent{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.ItineraryEvent{}, err
	}
	return event, nil
}

// DeleteEvent removes an event from a trip's schedule
func (s *ItineraryService) DeleteEvent(actor Actor, tripID, eventID string) error {
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Events {
			if t.Events[i].ID == eventID {
				t.Events = append(t.Events[:i], t.Events[i+1:]...)
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Event")
	})
	if err == repository.ErrNotFound {
		return utils.NewNotFoundError("Trip")
	}
	return err
}
