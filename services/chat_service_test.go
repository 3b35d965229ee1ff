package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/models"
)

func TestSendMessage(t *testing.T) {
	env := newTestEnv(t)

	message, err := env.chat.SendMessage(memberActor("u1"), "t1", &models.MessageRequest{Text: "  Packing list is up  "})
	assert.NoError(t, err)
	assert.Equal(t, "Packing list is up", message.Text)
	assert.Equal(t, "u1", message.UserID)
	assert.Equal(t, "09:00", message.Timestamp)

	trip, _ := env.trips.GetTrip("t1")
	assert.Len(t, trip.Messages, 3)
	assert.Equal(t, message.ID, trip.Messages[2].ID)
}

func TestSendMessage_BlankAndUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.chat.SendMessage(memberActor("u1"), "t1", &models.MessageRequest{Text: "   "})
	assert.Error(t, err)

	_, err = env.chat.SendMessage(guestActor("t1"), "t1", &models.MessageRequest{Text: "hi"})
	assert.Error(t, err)

	_, err = env.chat.SendMessage(memberActor("u1"), "missing", &models.MessageRequest{Text: "hi"})
	assert.Error(t, err)
}

func TestDeliverAutoReply(t *testing.T) {
	env := newTestEnv(t)

	env.chat.DeliverAutoReply("t1", "u1")

	trip, _ := env.trips.GetTrip("t1")
	reply := trip.Messages[len(trip.Messages)-1]
	assert.Equal(t, "Sounds good! Can't wait!", reply.Text)
	assert.NotEqual(t, "u1", reply.UserID, "a different member answers")

	feed := env.notifications.List()
	assert.Len(t, feed, 1)
	assert.Equal(t, "Auto Reply", feed[0].Title)
	assert.Equal(t, models.NotificationMessage, feed[0].Type)
}

func TestDeliverAutoReply_DeletedTripIsIgnored(t *testing.T) {
	env := newTestEnv(t)

	env.chat.DeliverAutoReply("gone", "u1")
	assert.Empty(t, env.notifications.List())
}
