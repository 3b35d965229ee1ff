// models/models.go
package models

import "strings"

// Role is a member's permission tier within a trip
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// CanMutate reports whether a session may change trip content.
// Guest (share-link) sessions are read-only regardless of role.
func CanMutate(role Role, isGuest bool) bool {
	if isGuest {
		return false
	}
	return role == RoleAdmin || role == RoleEditor
}

// CanManageMembers reports whether a role may invite members or delete the trip
func CanManageMembers(role Role) bool {
	return role == RoleAdmin
}

// Category classifies events and expenses
type Category string

const (
	CategoryTransport Category = "Transport"
	CategoryFood      Category = "Food"
	CategoryActivity  Category = "Activity"
	CategoryLodging   Category = "Lodging"
	CategoryOther     Category = "Other"
)

// ValidCategory reports whether c is a known category
func ValidCategory(c Category) bool {
	switch c {
	case CategoryTransport, CategoryFood, CategoryActivity, CategoryLodging, CategoryOther:
		return true
	}
	return false
}

// BookingType classifies bookings
type BookingType string

const (
	BookingFlight   BookingType = "Flight"
	BookingHotel    BookingType = "Hotel"
	BookingActivity BookingType = "Activity"
	BookingOther    BookingType = "Other"
)

// ValidBookingType reports whether t is a known booking type
func ValidBookingType(t BookingType) bool {
	switch t {
	case BookingFlight, BookingHotel, BookingActivity, BookingOther:
		return true
	}
	return false
}

// Trip lifecycle statuses
const (
	TripStatusUpcoming  = "upcoming"
	TripStatusCompleted = "completed"
)

// User represents an account
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TripMember is a user plus their role within one trip
type TripMember struct {
	User
	Role Role `json:"role"`
}

// ItineraryEvent is a dated, timed entry in a trip's schedule
type ItineraryEvent struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	StartTime    string   `json:"startTime"` // HH:MM
	EndTime      string   `json:"endTime,omitempty"`
	Location     string   `json:"location"`
	Category     Category `json:"category"`
	Notes        string   `json:"notes,omitempty"`
	CostEstimate int      `json:"costEstimate,omitempty"`
	Date         string   `json:"date,omitempty"` // YYYY/MM/DD
}

// Expense is a shared cost record. Amounts are integral units of a single
// currency; no conversion happens anywhere.
type Expense struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Amount   int      `json:"amount"`
	PayerID  string   `json:"payerId"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
}

// Booking holds reservation details for flights, hotels and activities
type Booking struct {
	ID            string      `json:"id"`
	Type          BookingType `json:"type"`
	Title         string      `json:"title"`
	BookingNumber string      `json:"bookingNumber"`
	Date          string      `json:"date,omitempty"`
	Time          string      `json:"time,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Attachments   []string    `json:"attachments"`
}

// Memory is a photo or note collected during the trip
type Memory struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	UserID  string `json:"userId"`
	Date    string `json:"date"`
}

// ChatMessage is one entry on the trip's message board
type ChatMessage struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Trip is the top-level container for one shared trip. It is treated as a
// value: mutations build a new Trip with the changed list swapped in and
// replace the stored copy wholesale.
type Trip struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Dates      string           `json:"dates"` // "YYYY/MM/DD - MM/DD"
	CoverImage string           `json:"coverImage"`
	Members    []TripMember     `json:"members"`
	Events     []ItineraryEvent `json:"events"`
	Expenses   []Expense        `json:"expenses"`
	Messages   []ChatMessage    `json:"messages"`
	Memories   []Memory         `json:"memories"`
	Bookings   []Booking        `json:"bookings"`
	IsSaved    bool             `json:"isSaved"`
	Status     string           `json:"status"`
}

// StartDate returns the first date label of the trip's date range
func (t Trip) StartDate() string {
	start, _, _ := strings.Cut(t.Dates, " - ")
	return strings.TrimSpace(start)
}

// MemberRole returns the user's role for this trip, if they are a member
func (t Trip) MemberRole(userID string) (Role, bool) {
	for _, m := range t.Members {
		if m.ID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// Clone returns a deep copy so callers can build a replacement trip without
// aliasing the stored slices
func (t Trip) Clone() Trip {
	c := t
	c.Members = append([]TripMember(nil), t.Members...)
	c.Events = append([]ItineraryEvent(nil), t.Events...)
	c.Expenses = append([]Expense(nil), t.Expenses...)
	c.Messages = append([]ChatMessage(nil), t.Messages...)
	c.Memories = append([]Memory(nil), t.Memories...)
	c.Bookings = append([]Booking(nil), t.Bookings...)
	for i := range c.Bookings {
		c.Bookings[i].Attachments = append([]string(nil), t.Bookings[i].Attachments...)
	}
	return c
}

// Invitation is a pending invite to join a trip. The trip fields are a
// snapshot taken when the invite was created.
type Invitation struct {
	ID        string `json:"id"`
	TripID    string `json:"tripId"`
	TripTitle string `json:"tripTitle"`
	TripDates string `json:"tripDates"`
	TripImage string `json:"tripImage"`
	Inviter   User   `json:"inviter"`
	Message   string `json:"message,omitempty"`
}

// Notification kinds
const (
	NotificationSystem  = "system"
	NotificationMessage = "message"
)

// AppNotification is one entry in the in-app notification feed
type AppNotification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"isRead"`
	Type      string `json:"type"`
}

// Session is an in-memory login session. Guest sessions are bound to a
// single trip and never gain write access.
type Session struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	IsGuest bool   `json:"isGuest"`
	TripID  string `json:"tripId,omitempty"`
}

// NewTrip creates a trip with the creator as its sole admin member
func NewTrip(id, title, dates string, creator User) *Trip {
	return &Trip{
		ID:         id,
		Title:      title,
		Dates:      dates,
		CoverImage: "",
		Members:    []TripMember{{User: creator, Role: RoleAdmin}},
		Events:     []ItineraryEvent{},
		Expenses:   []Expense{},
		Messages:   []ChatMessage{},
		Memories:   []Memory{},
		Bookings:   []Booking{},
		Status:     TripStatusUpcoming,
	}
}

// NewTripFromInvitation materializes a trip from an accepted invitation,
// with the accepting user as its sole editor member
func NewTripFromInvitation(inv Invitation, member User) *Trip {
	return &Trip{
		ID:         inv.TripID,
		Title:      inv.TripTitle,
		Dates:      inv.TripDates,
		CoverImage: inv.TripImage,
		Members:    []TripMember{{User: member, Role: RoleEditor}},
		Events:     []ItineraryEvent{},
		Expenses:   []Expense{},
		Messages:   []ChatMessage{},
		Memories:   []Memory{},
		Bookings:   []Booking{},
		Status:     TripStatusUpcoming,
	}
}
