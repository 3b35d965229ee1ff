// services/chat_service.go
package services

import (
	"strings"
	"time"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// How long the simulated companion waits before replying
const autoReplyDelay = 3 * time.Second

// ChatService handles the trip message board. There is no real remote
// party: a scheduled task plays the companion and answers a few seconds
// after each message.
type ChatService struct {
	trips         *repository.TripRepository
	notifications *NotificationService
	scheduler     *Scheduler
	clock         Clock
}

// NewChatService creates a new chat service
func NewChatService(trips *repository.TripRepository, notifications *NotificationService, scheduler *Scheduler, clock Clock) *ChatService {
	return &ChatService{
		trips:         trips,
		notifications: notifications,
		scheduler:     scheduler,
		clock:         clock,
	}
}

// SendMessage appends a message and schedules the simulated reply
func (s *ChatService) SendMessage(actor Actor, tripID string, req *models.MessageRequest) (models.ChatMessage, error) {
	text := strings.TrimSpace(req.Text)
	if err := utils.ValidateRequired(text, "text"); err != nil {
		return models.ChatMessage{}, err
	}

	message := models.ChatMessage{
		ID:        utils.GenerateID(),
		UserID:    actor.UserID,
		Text:      text,
		Timestamp: s.clock.Now().Format("15:04"),
	}

	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		t.Messages = append(t.Messages, message)
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.ChatMessage{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.ChatMessage{}, err
	}

	s.scheduler.After(autoReplyDelay, func() {
		s.DeliverAutoReply(tripID, actor.UserID)
	})
	return message, nil
}

// DeliverAutoReply appends the companion's canned answer and raises a
// message notification. Picks any member other than the sender as the
// replier; fire-and-forget, so a trip deleted in the meantime is ignored.
func (s *ChatService) DeliverAutoReply(tripID, senderID string) {
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		replierID := senderID
		for _, m := range t.Members {
			if m.ID != senderID {
				replierID = m.ID
				break
			}
		}
		t.Messages = append(t.Messages, models.ChatMessage{
			ID:        utils.GenerateID(),
			UserID:    replierID,
			Text:      utils.AutoReplyMessage,
			Timestamp: s.clock.Now().Format("15:04"),
		})
		return t, nil
	})
	if err != nil {
		return
	}
	s.notifications.Add(utils.AutoReplyTitle, utils.AutoReplyMessage, models.NotificationMessage)
}
