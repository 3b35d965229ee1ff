package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// AddBooking records a flight, hotel or activity booking on the trip
func AddBooking(c *gin.Context) {
	var request models.BookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	booking, err := handlerServices.BookingService.AddBooking(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, booking)
}

// UpdateBooking replaces an existing booking
func UpdateBooking(c *gin.Context) {
	var request models.BookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	booking, err := handlerServices.BookingService.UpdateBooking(middleware.Actor(c), c.Param("tripId"), c.Param("bookingId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, booking)
}

// RemoveBooking deletes a booking from the trip
func RemoveBooking(c *gin.Context) {
	if err := handlerServices.BookingService.RemoveBooking(middleware.Actor(c), c.Param("tripId"), c.Param("bookingId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}
