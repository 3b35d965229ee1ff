package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// ListInvitations returns the pending invitations for the current user
func ListInvitations(c *gin.Context) {
	invitations, err := handlerServices.InvitationService.List(middleware.Actor(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, invitations)
}

// AcceptInvitation turns a pending invitation into a joined trip
func AcceptInvitation(c *gin.Context) {
	trip, err := handlerServices.InvitationService.Accept(middleware.Actor(c), c.Param("invitationId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// DeclineInvitation discards a pending invitation
func DeclineInvitation(c *gin.Context) {
	if err := handlerServices.InvitationService.Decline(middleware.Actor(c), c.Param("invitationId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"declined": true})
}

// CreateInvitation sends a trip invitation to another user
func CreateInvitation(c *gin.Context) {
	var request models.InvitationRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	invitation, err := handlerServices.InvitationService.Invite(middleware.Actor(c), c.Param("tripId"), request.Message)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, invitation)
}
