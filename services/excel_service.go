// services/excel_service.go
package services

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/utils"
)

// ExcelService handles expense report export
type ExcelService struct {
	trips    *TripService
	expenses *ExpenseService
	clock    Clock
}

// NewExcelService creates a new Excel service
func NewExcelService(trips *TripService, expenses *ExpenseService, clock Clock) *ExcelService {
	return &ExcelService{
		trips:    trips,
		expenses: expenses,
		clock:    clock,
	}
}

// ExportTripExpenses generates an expense report workbook for a trip
func (s *ExcelService) ExportTripExpenses(actor Actor, tripID string) (*excelize.File, string, error) {
	trip, err := s.trips.GetTrip(actor, tripID)
	if err != nil {
		return nil, "", err
	}
	summary := s.expenses.Summary(trip)

	f := excelize.NewFile()

	if err := s.createExpenseSheet(f, trip); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}
	if err := s.createSummarySheet(f, trip, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Expenses_%s.xlsx",
		utils.CleanFileName(trip.Title),
		s.clock.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createExpenseSheet lists every expense row plus the grand total
func (s *ExcelService) createExpenseSheet(f *excelize.File, trip models.Trip) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Date", "Title", "Category", "Paid By", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	names := memberNames(trip)
	row := 2
	for _, e := range trip.Expenses {
		values := []interface{}{e.Date, e.Title, string(e.Category), names[e.PayerID], e.Amount}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	totalLabel, _ := excelize.CoordinatesToCellName(4, row+1)
	totalCell, _ := excelize.CoordinatesToCellName(5, row+1)
	if err := f.SetCellValue(sheetName, totalLabel, "Total"); err != nil {
		return err
	}
	return f.SetCellValue(sheetName, totalCell, Total(trip.Expenses))
}

// createSummarySheet breaks the total down by category and payer
func (s *ExcelService) createSummarySheet(f *excelize.File, trip models.Trip, summary models.ExpenseSummaryResponse) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)

	if err := f.SetCellValue(sheetName, "A1", "Trip"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "B1", trip.Title); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "A2", "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "B2", summary.Total); err != nil {
		return err
	}

	row := 4
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "By Category"); err != nil {
		return err
	}
	row++
	categories := make([]string, 0, len(summary.ByCategory))
	for c := range summary.ByCategory {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), c); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), summary.ByCategory[models.Category(c)]); err != nil {
			return err
		}
		row++
	}

	row++
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "By Payer"); err != nil {
		return err
	}
	row++
	names := memberNames(trip)
	payers := make([]string, 0, len(summary.ByPayer))
	for p := range summary.ByPayer {
		payers = append(payers, p)
	}
	sort.Strings(payers)
	for _, p := range payers {
		name := names[p]
		if name == "" {
			name = p
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), name); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), summary.ByPayer[p]); err != nil {
			return err
		}
		row++
	}
	return nil
}

func memberNames(trip models.Trip) map[string]string {
	names := make(map[string]string, len(trip.Members))
	for _, m := range trip.Members {
		names[m.ID] = m.Name
	}
	return names
}
