// services/notification_service.go
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// NotificationService maintains the in-app notification feed. Nothing is
// delivered anywhere: entries live in the store until the process exits.
type NotificationService struct {
	notifications *repository.NotificationRepository
	scheduler     *Scheduler
	clock         Clock
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications *repository.NotificationRepository, scheduler *Scheduler, clock Clock) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		scheduler:     scheduler,
		clock:         clock,
	}
}

// Add prepends a notification to the feed
func (s *NotificationService) Add(title, message, kind string) models.AppNotification {
	n := models.AppNotification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Timestamp: s.clock.Now().Format("15:04"),
		IsRead:    false,
		Type:      kind,
	}
	s.notifications.AddNotification(n)
	return n
}

// List returns the feed, newest first
func (s *NotificationService) List() []models.AppNotification {
	return s.notifications.ListNotifications()
}

// MarkRead flags one notification as read
func (s *NotificationService) MarkRead(id string) error {
	if err := s.notifications.MarkRead(id); err != nil {
		return utils.NewNotFoundError("Notification")
	}
	return nil
}

// MarkAllRead flags the whole feed as read
func (s *NotificationService) MarkAllRead() {
	s.notifications.MarkAllRead()
}

// UnreadCount returns the number of unread entries
func (s *NotificationService) UnreadCount() int {
	return s.notifications.UnreadCount()
}

// SendTest raises an immediate system notification and schedules a
// follow-up message notification, mirroring the permission-granted probe
// in the client
func (s *NotificationService) SendTest() models.AppNotification {
	n := s.Add(utils.TestNotifTitle, utils.TestNotifMessage, models.NotificationSystem)
	s.scheduler.After(3*time.Second, func() {
		s.Add(utils.AutoReplyTitle, utils.AutoReplyMessage, models.NotificationMessage)
	})
	return n
}
