package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/handlers"
	"github.com/triplink-app/triplink-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, hs *handlers.HandlerServices) {
	handlers.InitHandlers(hs)

	v1 := router.Group("/api/v1")
	{
		// Auth endpoints (no session required)
		v1.POST("/auth/login", handlers.Login)
		v1.POST("/auth/register", handlers.Register)
		v1.POST("/auth/verify", handlers.VerifyOTP)
		v1.POST("/auth/complete", handlers.CompleteSetup)
		v1.POST("/auth/guest", handlers.GuestSession)

		authed := v1.Group("")
		authed.Use(middleware.Session(hs.AuthService))
		{
			authed.POST("/auth/logout", handlers.Logout)
			authed.PUT("/auth/profile", handlers.UpdateProfile)

			// Trip endpoints
			authed.GET("/trips", handlers.ListTrips)
			authed.POST("/trips", handlers.CreateTrip)
			authed.POST("/trips/join", handlers.JoinTrip)
			authed.GET("/trips/:tripId", handlers.GetTrip)
			authed.PUT("/trips/:tripId", handlers.UpdateTrip)
			authed.DELETE("/trips/:tripId", handlers.DeleteTrip)
			authed.POST("/trips/:tripId/save", handlers.ToggleSaved)
			authed.POST("/trips/:tripId/complete", handlers.CompleteTrip)
			authed.GET("/trips/:tripId/invite-link", handlers.InviteLink)

			// Itinerary endpoints
			authed.GET("/trips/:tripId/schedule", handlers.GetSchedule)
			authed.POST("/trips/:tripId/events", handlers.AddEvent)
			authed.PUT("/trips/:tripId/events/:eventId", handlers.UpdateEvent)
			authed.DELETE("/trips/:tripId/events/:eventId", handlers.DeleteEvent)

			// Expense endpoints
			authed.GET("/trips/:tripId/expenses", handlers.GetExpenses)
			authed.POST("/trips/:tripId/expenses", handlers.AddExpense)
			authed.PUT("/trips/:tripId/expenses/:expenseId", handlers.UpdateExpense)
			authed.DELETE("/trips/:tripId/expenses/:expenseId", handlers.RemoveExpense)
			authed.GET("/trips/:tripId/expenses/export", handlers.ExportExpenses)

			// Booking endpoints
			authed.POST("/trips/:tripId/bookings", handlers.AddBooking)
			authed.PUT("/trips/:tripId/bookings/:bookingId", handlers.UpdateBooking)
			authed.DELETE("/trips/:tripId/bookings/:bookingId", handlers.RemoveBooking)

			// Memory endpoints
			authed.POST("/trips/:tripId/memories", handlers.AddMemory)
			authed.DELETE("/trips/:tripId/memories/:memoryId", handlers.RemoveMemory)

			// Chat endpoints
			authed.POST("/trips/:tripId/messages", handlers.SendMessage)

			// Invitation endpoints
			authed.GET("/invitations", handlers.ListInvitations)
			authed.POST("/invitations/:invitationId/accept", handlers.AcceptInvitation)
			authed.POST("/invitations/:invitationId/decline", handlers.DeclineInvitation)
			authed.POST("/trips/:tripId/invitations", handlers.CreateInvitation)

			// Notification endpoints
			authed.GET("/notifications", handlers.ListNotifications)
			authed.POST("/notifications/test", handlers.SendTestNotification)
			authed.POST("/notifications/:notificationId/read", handlers.MarkNotificationRead)
			authed.POST("/notifications/read-all", handlers.MarkAllNotificationsRead)
		}
	}
}
