package handlers

import (
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	AuthService         *services.AuthService
	TripService         *services.TripService
	ItineraryService    *services.ItineraryService
	ExpenseService      *services.ExpenseService
	BookingService      *services.BookingService
	MemoryService       *services.MemoryService
	ChatService         *services.ChatService
	InvitationService   *services.InvitationService
	NotificationService *services.NotificationService
	ReminderService     *services.ReminderService
	ExcelService        *services.ExcelService
}

// NewHandlerServices wires every service against one store, scheduler and
// clock
func NewHandlerServices(store *repository.Store, scheduler *services.Scheduler, clock services.Clock) *HandlerServices {
	trips := repository.NewTripRepository(store)
	sessions := repository.NewSessionRepository(store)
	invitations := repository.NewInvitationRepository(store)
	notifications := repository.NewNotificationRepository(store)

	notificationService := services.NewNotificationService(notifications, scheduler, clock)
	tripService := services.NewTripService(trips, sessions, notificationService)
	expenseService := services.NewExpenseService(trips)

	return &HandlerServices{
		AuthService:         services.NewAuthService(sessions, trips),
		TripService:         tripService,
		ItineraryService:    services.NewItineraryService(trips),
		ExpenseService:      expenseService,
		BookingService:      services.NewBookingService(trips),
		MemoryService:       services.NewMemoryService(trips, clock),
		ChatService:         services.NewChatService(trips, notificationService, scheduler, clock),
		InvitationService:   services.NewInvitationService(invitations, trips, sessions),
		NotificationService: notificationService,
		ReminderService:     services.NewReminderService(trips, notificationService, clock),
		ExcelService:        services.NewExcelService(tripService, expenseService, clock),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(hs *HandlerServices) {
	handlerServices = hs
}
