// repository/seed.go
package repository

import "github.com/triplink-app/triplink-backend/models"

// Seed loads the demo fixtures into an empty store. There is no other data
// source: the application always starts from this state.
func Seed(s *Store) {
	users := []models.User{
		{ID: "u1", Name: "Alison", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=faces"},
		{ID: "u2", Name: "Bobby", Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=150&h=150&fit=crop&crop=faces"},
		{ID: "u3", Name: "Carol", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=faces"},
		{ID: "u4", Name: "David", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=faces"},
	}

	trips := []models.Trip{
		{
			ID:         "t1",
			Title:      "Kyoto Summer Heritage Tour",
			Dates:      "2025/08/15 - 08/17",
			CoverImage: "",
			Members: []models.TripMember{
				{User: users[0], Role: models.RoleAdmin},
				{User: users[1], Role: models.RoleEditor},
				{User: users[2], Role: models.RoleEditor},
			},
			IsSaved: true,
			Status:  models.TripStatusUpcoming,
			Messages: []models.ChatMessage{
				{ID: "m1", UserID: "u2", Text: "Booked the bullet train!", Timestamp: "10:30"},
				{ID: "m2", UserID: "u1", Text: "Thanks! Hotel confirmation is uploaded too.", Timestamp: "10:35"},
			},
			Events: []models.ItineraryEvent{
				{ID: "e1", Title: "Meet at Kyoto Station", StartTime: "10:00", Location: "Kyoto Station Central Gate", Category: models.CategoryTransport, Date: "2025/08/15"},
				{ID: "e2", Title: "Street food at Nishiki Market", StartTime: "12:00", Location: "Nishiki Market", Category: models.CategoryFood, Notes: "Don't skip the dashimaki and octopus skewers", Date: "2025/08/15"},
			},
			Expenses: []models.Expense{
				{ID: "x1", Title: "Bullet train fare", Amount: 42000, PayerID: "u2", Category: models.CategoryTransport, Date: "08/01"},
				{ID: "x2", Title: "Lunch", Amount: 4500, PayerID: "u1", Category: models.CategoryFood, Date: "08/15"},
			},
			Memories: []models.Memory{
				{ID: "mem1", URL: "", Caption: "The view from Kiyomizu-dera!", UserID: "u1", Date: "2025/08/15"},
				{ID: "mem2", URL: "", Caption: "Matcha parfait was amazing", UserID: "u2", Date: "2025/08/15"},
			},
			Bookings: []models.Booking{
				{ID: "b1", Type: models.BookingFlight, Title: "JAL 123 (Tokyo -> Osaka)", BookingNumber: "JAL-X7Y8Z9", Date: "2025/08/15", Time: "08:00", Notes: "Window seats reserved", Attachments: []string{}},
				{ID: "b2", Type: models.BookingHotel, Title: "Arashiyama Onsen Ryokan", BookingNumber: "H-998877", Date: "2025/08/15", Notes: "Dinner from 19:00", Attachments: []string{}},
			},
		},
		{
			ID:         "t2",
			Title:      "Okinawa 4 Days",
			Dates:      "2025/11/02 - 11/05",
			CoverImage: "",
			Members: []models.TripMember{
				{User: users[0], Role: models.RoleAdmin},
				{User: users[1], Role: models.RoleEditor},
			},
			IsSaved:  false,
			Status:   models.TripStatusUpcoming,
			Messages: []models.ChatMessage{},
			Events:   []models.ItineraryEvent{},
			Expenses: []models.Expense{},
			Memories: []models.Memory{},
			Bookings: []models.Booking{},
		},
		{
			ID:         "t3",
			Title:      "Hokkaido Snow Festival",
			Dates:      "2024/02/05 - 02/08",
			CoverImage: "",
			Members: []models.TripMember{
				{User: users[1], Role: models.RoleAdmin},
				{User: users[2], Role: models.RoleEditor},
				{User: users[3], Role: models.RoleViewer},
			},
			IsSaved:  true,
			Status:   models.TripStatusCompleted,
			Messages: []models.ChatMessage{},
			Events:   []models.ItineraryEvent{},
			Expenses: []models.Expense{},
			Memories: []models.Memory{},
			Bookings: []models.Booking{},
		},
	}

	invitations := []models.Invitation{
		{
			ID:        "inv1",
			TripID:    "t_inv_1",
			TripTitle: "New Year in Korea",
			TripDates: "2025/12/30 - 2026/01/03",
			TripImage: "",
			Inviter:   users[1],
			Message:   "Come along!",
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		s.users[u.ID] = u
	}
	s.trips = trips
	s.invitations = invitations
}
