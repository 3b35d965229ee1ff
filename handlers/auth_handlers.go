package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// Login handles the simulated login state transition
func Login(c *gin.Context) {
	var request models.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	session, user, err := handlerServices.AuthService.Login(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.SessionResponse{Token: session.Token, User: user})
}

// Register starts the multi-step registration flow
func Register(c *gin.Context) {
	var request models.RegisterRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	reg, err := handlerServices.AuthService.Register(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RegisterResponse{RegistrationID: reg.ID})
}

// VerifyOTP handles the simulated verification-code step
func VerifyOTP(c *gin.Context) {
	var request models.VerifyOTPRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.AuthService.VerifyOTP(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"verified": true})
}

// CompleteSetup finishes registration with a display name
func CompleteSetup(c *gin.Context) {
	var request models.CompleteSetupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	session, user, err := handlerServices.AuthService.CompleteSetup(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.SessionResponse{Token: session.Token, User: user})
}

// GuestSession opens a read-only share-link session
func GuestSession(c *gin.Context) {
	var request models.GuestSessionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	session, trip, err := handlerServices.AuthService.GuestSession(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"token": session.Token, "trip": trip})
}

// Logout drops the current session
func Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	handlerServices.AuthService.Logout(token)
	utils.HandleSuccess(c, gin.H{"loggedOut": true})
}

// UpdateProfile renames the current user across their trips
func UpdateProfile(c *gin.Context) {
	var request struct {
		DisplayName string `json:"displayName" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	user, err := handlerServices.AuthService.UpdateProfile(middleware.Actor(c), request.DisplayName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}
