package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/utils"
)

// ListNotifications returns all notifications, newest first, with the unread count
func ListNotifications(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{
		"notifications": handlerServices.NotificationService.List(),
		"unreadCount":   handlerServices.NotificationService.UnreadCount(),
	})
}

// SendTestNotification fires an immediate system notification plus a delayed follow-up
func SendTestNotification(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.NotificationService.SendTest())
}

// MarkNotificationRead marks a single notification as read
func MarkNotificationRead(c *gin.Context) {
	if err := handlerServices.NotificationService.MarkRead(c.Param("notificationId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"read": true})
}

// MarkAllNotificationsRead marks every notification as read
func MarkAllNotificationsRead(c *gin.Context) {
	handlerServices.NotificationService.MarkAllRead()
	utils.HandleSuccess(c, gin.H{"read": true})
}
