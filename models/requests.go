package models

// Auth request models

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest starts the multi-step registration flow
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// VerifyOTPRequest request model
type VerifyOTPRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
	OTP            string `json:"otp" binding:"required"`
}

// CompleteSetupRequest finishes registration with a display name
type CompleteSetupRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
	DisplayName    string `json:"displayName" binding:"required"`
}

// GuestSessionRequest opens a read-only share-link session for one trip
type GuestSessionRequest struct {
	TripRef string `json:"tripRef" binding:"required"`
}

// SessionResponse response model
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterResponse response model
type RegisterResponse struct {
	RegistrationID string `json:"registrationId"`
}

// Trip request models

// CreateTripRequest request model
type CreateTripRequest struct {
	Title     string `json:"title" binding:"required"`
	StartDate string `json:"startDate" binding:"required"` // YYYY/MM/DD
	EndDate   string `json:"endDate" binding:"required"`   // MM/DD or YYYY/MM/DD
}

// UpdateTripRequest request model; nil fields keep current values
type UpdateTripRequest struct {
	Title      *string `json:"title"`
	Dates      *string `json:"dates"`
	CoverImage *string `json:"coverImage"`
}

// JoinTripRequest carries the opaque join reference (a trip id, or any
// string containing one, such as a pasted invite URL)
type JoinTripRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// InviteLinkResponse response model
type InviteLinkResponse struct {
	Link string `json:"link"`
}

// Itinerary request models

// EventRequest request model for creating or updating an itinerary event
type EventRequest struct {
	Title        string   `json:"title" binding:"required"`
	StartTime    string   `json:"startTime" binding:"required"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	Category     Category `json:"category"`
	Notes        string   `json:"notes"`
	CostEstimate int      `json:"costEstimate" binding:"min=0"`
	Date         string   `json:"date"`
}

// DaySchedule is one date's ordered events plus advisory insertion slots
type DaySchedule struct {
	Date        string           `json:"date"`
	Events      []ItineraryEvent `json:"events"`
	Suggestions []string         `json:"suggestions"`
}

// Expense request models

// ExpenseRequest request model
type ExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   int      `json:"amount" binding:"required,gt=0"`
	PayerID  string   `json:"payerId" binding:"required"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
}

// ExpenseSummaryResponse response model
type ExpenseSummaryResponse struct {
	Total      int              `json:"total"`
	ByCategory map[Category]int `json:"byCategory"`
	ByPayer    map[string]int   `json:"byPayer"`
	Expenses   []Expense        `json:"expenses"`
}

// Booking / memory / chat request models

// BookingRequest request model
type BookingRequest struct {
	Type          BookingType `json:"type" binding:"required"`
	Title         string      `json:"title" binding:"required"`
	BookingNumber string      `json:"bookingNumber"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Notes         string      `json:"notes"`
	Attachments   []string    `json:"attachments"`
}

// MemoryRequest request model
type MemoryRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Date    string `json:"date"`
}

// MessageRequest request model
type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// InvitationRequest request model
type InvitationRequest struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
