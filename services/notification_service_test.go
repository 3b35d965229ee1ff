package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/models"
)

func TestAdd_PrependsToFeed(t *testing.T) {
	env := newTestEnv(t)

	env.notifications.Add("First", "one", models.NotificationSystem)
	second := env.notifications.Add("Second", "two", models.NotificationSystem)

	feed := env.notifications.List()
	assert.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID)
	assert.Equal(t, "09:00", feed[0].Timestamp)
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	env := newTestEnv(t)

	a := env.notifications.Add("A", "a", models.NotificationSystem)
	env.notifications.Add("B", "b", models.NotificationMessage)
	assert.Equal(t, 2, env.notifications.UnreadCount())

	assert.NoError(t, env.notifications.MarkRead(a.ID))
	assert.Equal(t, 1, env.notifications.UnreadCount())

	assert.Error(t, env.notifications.MarkRead("missing"))

	env.notifications.MarkAllRead()
	assert.Equal(t, 0, env.notifications.UnreadCount())
}

func TestSendTest_ImmediateNotification(t *testing.T) {
	env := newTestEnv(t)

	n := env.notifications.SendTest()
	assert.Equal(t, "Notification Test", n.Title)
	assert.Equal(t, models.NotificationSystem, n.Type)
	assert.Equal(t, 1, env.notifications.UnreadCount())
}
