package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// GetSchedule returns the trip's events grouped by date, each day sorted
// by start time and carrying its advisory insertion slots
func GetSchedule(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, handlerServices.ItineraryService.Schedule(trip))
}

// AddEvent appends an itinerary event
func AddEvent(c *gin.Context) {
	var request models.EventRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	event, err := handlerServices.ItineraryService.AddEvent(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, event)
}

// UpdateEvent replaces an itinerary event
func UpdateEvent(c *gin.Context) {
	var request models.EventRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	event, err := handlerServices.ItineraryService.UpdateEvent(middleware.Actor(c), c.Param("tripId"), c.Param("eventId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, event)
}

// DeleteEvent removes an itinerary event
func DeleteEvent(c *gin.Context) {
	if err := handlerServices.ItineraryService.DeleteEvent(middleware.Actor(c), c.Param("tripId"), c.Param("eventId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}
