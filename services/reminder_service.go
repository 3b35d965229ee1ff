// services/reminder_service.go
package services

import (
	"fmt"
	"time"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// Offsets (minutes before start) at which an event produces a reminder
var reminderOffsets = []int{0, 15, 30, 60}

// ReminderService scans all non-completed trips once a minute and raises a
// notification for every event starting exactly 0, 15, 30 or 60 minutes
// from now. The scan matches on exact minute differences, so each offset
// fires at most once per event per day.
type ReminderService struct {
	trips         *repository.TripRepository
	notifications *NotificationService
	clock         Clock
}

// NewReminderService creates a new reminder service
func NewReminderService(trips *repository.TripRepository, notifications *NotificationService, clock Clock) *ReminderService {
	return &ReminderService{
		trips:         trips,
		notifications: notifications,
		clock:         clock,
	}
}

// Start schedules the repeating scan and returns its cancel handle
func (s *ReminderService) Start(scheduler *Scheduler) TaskID {
	return scheduler.Every(time.Minute, func() {
		s.Check(s.clock.Now())
	})
}

// Check runs one scan against the given wall-clock time
func (s *ReminderService) Check(now time.Time) []models.AppNotification {
	today := now.Format("2006/01/02")
	nowMinutes := now.Hour()*60 + now.Minute()

	var fired []models.AppNotification
	for _, trip := range s.trips.ListTrips() {
		if trip.Status == models.TripStatusCompleted {
			continue
		}
		for _, event := range trip.Events {
			if event.Date != today {
				continue
			}
			start, err := utils.ParseClock(event.StartTime)
			if err != nil {
				continue
			}
			diff := start - nowMinutes
			for _, offset := range reminderOffsets {
				if diff == offset {
					n := s.notifications.Add(
						utils.ReminderTitle,
						fmt.Sprintf("\"%s\" starts at %s", event.Title, event.StartTime),
						models.NotificationSystem,
					)
					fired = append(fired, n)
					break
				}
			}
		}
	}
	return fired
}
