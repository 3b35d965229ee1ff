package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// SendMessage posts a chat message to the trip
func SendMessage(c *gin.Context) {
	var request models.MessageRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	message, err := handlerServices.ChatService.SendMessage(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, message)
}
