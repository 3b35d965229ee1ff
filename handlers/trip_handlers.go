package handlers

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// CreateTrip handles the creation of a new trip
func CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.CreateTrip(middleware.Actor(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// ListTrips returns the caller's trips, optionally filtered by
// ?filter=upcoming|completed|saved
func ListTrips(c *gin.Context) {
	trips, err := handlerServices.TripService.ListTrips(middleware.Actor(c), c.Query("filter"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trips)
}

// GetTrip returns one trip by id
func GetTrip(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// UpdateTrip updates top-level trip fields
func UpdateTrip(c *gin.Context) {
	var request models.UpdateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.UpdateTrip(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// DeleteTrip removes a trip; admins only
func DeleteTrip(c *gin.Context) {
	if err := handlerServices.TripService.DeleteTrip(middleware.Actor(c), c.Param("tripId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ToggleSaved flips the trip's saved flag
func ToggleSaved(c *gin.Context) {
	trip, err := handlerServices.TripService.ToggleSaved(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// CompleteTrip moves a trip to the completed shelf
func CompleteTrip(c *gin.Context) {
	trip, err := handlerServices.TripService.CompleteTrip(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// JoinTrip adds the caller to a trip resolved from an opaque reference
func JoinTrip(c *gin.Context) {
	var request models.JoinTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.JoinTrip(middleware.Actor(c), request.Reference)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// InviteLink returns the copyable share link for a trip
func InviteLink(c *gin.Context) {
	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "https://triplink.app"
	}

	link, err := handlerServices.TripService.InviteLink(middleware.Actor(c), c.Param("tripId"), host)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.InviteLinkResponse{Link: link})
}
