package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	assert.True(t, CanMutate(RoleAdmin, false))
	assert.True(t, CanMutate(RoleEditor, false))
	assert.False(t, CanMutate(RoleViewer, false))

	// Guest sessions are read-only whatever role they carry
	assert.False(t, CanMutate(RoleAdmin, true))
	assert.False(t, CanMutate(RoleEditor, true))
	assert.False(t, CanMutate(RoleViewer, true))
}

func TestCanManageMembers(t *testing.T) {
	assert.True(t, CanManageMembers(RoleAdmin))
	assert.False(t, CanManageMembers(RoleEditor))
	assert.False(t, CanManageMembers(RoleViewer))
}

func TestTripStartDate(t *testing.T) {
	assert.Equal(t, "2025/08/15", Trip{Dates: "2025/08/15 - 08/17"}.StartDate())
	assert.Equal(t, "2025/11/02", Trip{Dates: "2025/11/02 - 11/05"}.StartDate())
	assert.Equal(t, "2025/08/15", Trip{Dates: "2025/08/15"}.StartDate())
	assert.Equal(t, "", Trip{}.StartDate())
}

func TestMemberRole(t *testing.T) {
	trip := Trip{Members: []TripMember{
		{User: User{ID: "u1"}, Role: RoleAdmin},
		{User: User{ID: "u2"}, Role: RoleViewer},
	}}

	role, ok := trip.MemberRole("u2")
	assert.True(t, ok)
	assert.Equal(t, RoleViewer, role)

	_, ok = trip.MemberRole("u9")
	assert.False(t, ok)
}

func TestTripClone_IsDeep(t *testing.T) {
	original := Trip{
		ID:      "t1",
		Members: []TripMember{{User: User{ID: "u1"}, Role: RoleAdmin}},
		Events:  []ItineraryEvent{{ID: "e1", Title: "Museum"}},
		Expenses: []Expense{
			{ID: "x1", Amount: 100},
		},
		Messages: []ChatMessage{{ID: "m1", Text: "hello"}},
		Bookings: []Booking{{ID: "b1", Attachments: []string{"a.pdf"}}},
		Memories: []Memory{{ID: "mem1"}},
	}

	clone := original.Clone()
	clone.Events[0].Title = "Changed"
	clone.Members[0].Role = RoleViewer
	clone.Expenses[0].Amount = 999
	clone.Bookings[0].Attachments[0] = "b.pdf"

	assert.Equal(t, "Museum", original.Events[0].Title)
	assert.Equal(t, RoleAdmin, original.Members[0].Role)
	assert.Equal(t, 100, original.Expenses[0].Amount)
	assert.Equal(t, "a.pdf", original.Bookings[0].Attachments[0])
}

func TestNewTrip(t *testing.T) {
	trip := NewTrip("id1", "Test Trip", "2025/09/01 - 09/03", User{ID: "u7", Name: "Grace"})

	assert.Equal(t, TripStatusUpcoming, trip.Status)
	assert.Len(t, trip.Members, 1)
	assert.Equal(t, RoleAdmin, trip.Members[0].Role)
	assert.NotNil(t, trip.Events)
	assert.NotNil(t, trip.Expenses)
}

func TestNewTripFromInvitation(t *testing.T) {
	inv := Invitation{
		ID:        "inv9",
		TripID:    "t_inv_9",
		TripTitle: "Island Hop",
		TripDates: "2026/01/10 - 01/14",
		Inviter:   User{ID: "u2"},
	}

	trip := NewTripFromInvitation(inv, User{ID: "u3", Name: "Carol"})

	assert.Equal(t, "Island Hop", trip.Title)
	assert.Len(t, trip.Members, 1)
	assert.Equal(t, "u3", trip.Members[0].ID)
	assert.Equal(t, RoleEditor, trip.Members[0].Role)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidCategory(CategoryFood))
	assert.False(t, ValidCategory("Snacks"))
	assert.True(t, ValidBookingType(BookingHotel))
	assert.False(t, ValidBookingType("Cruise"))
}
