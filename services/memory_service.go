// services/memory_service.go
package services

import (
	"strings"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// MemoryService handles photos and notes collected during a trip. The
// media URL is an opaque reference; no image data is handled here.
type MemoryService struct {
	trips *repository.TripRepository
	clock Clock
}

// NewMemoryService creates a new memory service
func NewMemoryService(trips *repository.TripRepository, clock Clock) *MemoryService {
	return &MemoryService{trips: trips, clock: clock}
}

// AddMemory records a memory authored by the actor
func (s *MemoryService) AddMemory(actor Actor, tripID string, req *models.MemoryRequest) (models.Memory, error) {
	if strings.TrimSpace(req.URL) == "" && strings.TrimSpace(req.Caption) == "" {
		return models.Memory{}, utils.NewValidationError("a memory needs a photo or a caption")
	}

	date := normalizeDate(req.Date)
	if date == "" {
		date = s.clock.Now().Format("2006/01/02")
	}
	memory := models.Memory{
		ID:      utils.GenerateID(),
		URL:     req.URL,
		Caption: strings.TrimSpace(req.Caption),
		UserID:  actor.UserID,
		Date:    date,
	}

	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		t.Memories = append(t.Memories, memory)
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Memory{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.Memory{}, err
	}
	return memory, nil
}

// RemoveMemory removes a memory from a trip
func (s *MemoryService) RemoveMemory(actor Actor, tripID, memoryID string) error {
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Memories {
			if t.Memories[i].ID == memoryID {
				t.Memories = append(t.Memories[:i], t.Memories[i+1:]...)
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Memory")
	})
	if err == repository.ErrNotFound {
		return utils.NewNotFoundError("Trip")
	}
	return err
}
