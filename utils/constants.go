package utils

const (
	// ID generation
	IDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	IDLength  = 9

	// HTTP status messages
	ErrInvalidRequest      = "Invalid request"
	ErrTripNotFound        = "Trip not found"
	ErrEventNotFound       = "Event not found"
	ErrExpenseNotFound     = "Expense not found"
	ErrBookingNotFound     = "Booking not found"
	ErrMemoryNotFound      = "Memory not found"
	ErrInvitationNotFound  = "Invitation not found"
	ErrInvalidJoinRef      = "Invalid invite link"
	ErrReadOnly            = "This trip is read-only for your account"
	ErrAdminOnly           = "Only a trip admin can do this"
	ErrSessionRequired     = "Login required"
	ErrMemberAlready       = "Already a member of this trip"
	ErrPasswordMismatch    = "Passwords do not match"
	ErrInvalidOTP          = "Verification code must be 6 digits"
	ErrRegistrationUnknown = "Unknown registration"

	// Notification copy
	ReminderTitle     = "Event Reminder"
	TestNotifTitle    = "Notification Test"
	TestNotifMessage  = "Notifications are working correctly!"
	AutoReplyTitle    = "Auto Reply"
	AutoReplyMessage  = "Sounds good! Can't wait!"
	MemberJoinedTitle = "Member Joined"
)
