package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// AddMemory posts a photo or note to the trip's memory wall
func AddMemory(c *gin.Context) {
	var request models.MemoryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	memory, err := handlerServices.MemoryService.AddMemory(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, memory)
}

// RemoveMemory deletes a memory from the trip
func RemoveMemory(c *gin.Context) {
	if err := handlerServices.MemoryService.RemoveMemory(middleware.Actor(c), c.Param("tripId"), c.Param("memoryId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}
