package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplink-app/triplink-backend/middleware"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// GetExpenses returns the trip's expenses with totals per category and payer
func GetExpenses(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, handlerServices.ExpenseService.Summary(trip))
}

// AddExpense records a new expense on the trip
func AddExpense(c *gin.Context) {
	var request models.ExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.AddExpense(middleware.Actor(c), c.Param("tripId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// UpdateExpense replaces an existing expense
func UpdateExpense(c *gin.Context) {
	var request models.ExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.UpdateExpense(middleware.Actor(c), c.Param("tripId"), c.Param("expenseId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// RemoveExpense deletes an expense from the trip
func RemoveExpense(c *gin.Context) {
	if err := handlerServices.ExpenseService.RemoveExpense(middleware.Actor(c), c.Param("tripId"), c.Param("expenseId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ExportExpenses streams the trip's expense report as an Excel workbook
func ExportExpenses(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExcelService.ExportTripExpenses(middleware.Actor(c), c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
