// repository/notification_repository.go
package repository

import "github.com/triplink-app/triplink-backend/models"

// NotificationRepository handles store operations for the notification feed
type NotificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// ListNotifications returns the feed, newest first
func (r *NotificationRepository) ListNotifications() []models.AppNotification {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]models.AppNotification(nil), r.store.notifications...)
}

// AddNotification prepends a notification so the newest shows first
func (r *NotificationRepository) AddNotification(n models.AppNotification) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications = append([]models.AppNotification{n}, r.store.notifications...)
}

// MarkRead flags a single notification as read
func (r *NotificationRepository) MarkRead(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			r.store.notifications[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllRead flags every notification as read
func (r *NotificationRepository) MarkAllRead() {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		r.store.notifications[i].IsRead = true
	}
}

// UnreadCount returns the number of unread notifications
func (r *NotificationRepository) UnreadCount() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, n := range r.store.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
