// services/expense_service.go
package services

import (
	"strings"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// ExpenseService handles shared expense records and their aggregation
type ExpenseService struct {
	trips *repository.TripRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(trips *repository.TripRepository) *ExpenseService {
	return &ExpenseService{trips: trips}
}

// Total sums a trip's expense amounts. Computed fresh on every call;
// there is nothing to cache or maintain incrementally at this scale.
func Total(expenses []models.Expense) int {
	total := 0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Summary aggregates a trip's expenses for display
func (s *ExpenseService) Summary(trip models.Trip) models.ExpenseSummaryResponse {
	byCategory := make(map[models.Category]int)
	byPayer := make(map[string]int)
	for _, e := range trip.Expenses {
		byCategory[e.Category] += e.Amount
		byPayer[e.PayerID] += e.Amount
	}
	return models.ExpenseSummaryResponse{
		Total:      Total(trip.Expenses),
		ByCategory: byCategory,
		ByPayer:    byPayer,
		Expenses:   trip.Expenses,
	}
}

func validateExpenseRequest(trip models.Trip, req *models.ExpenseRequest) error {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return err
	}
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return err
	}
	if _, ok := trip.MemberRole(req.PayerID); !ok {
		return utils.NewValidationError("payerId must be a trip member")
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		return utils.NewValidationError("unknown category")
	}
	return nil
}

func expenseFromRequest(id string, req *models.ExpenseRequest) models.Expense {
	category := req.Category
	if category == "" {
		category = models.CategoryOther
	}
	return models.Expense{
		ID:       id,
		Title:    strings.TrimSpace(req.Title),
		Amount:   req.Amount,
		PayerID:  req.PayerID,
		Category: category,
		Date:     normalizeDate(req.Date),
	}
}

// AddExpense records a shared expense on a trip
func (s *ExpenseService) AddExpense(actor Actor, tripID string, req *models.ExpenseRequest) (models.Expense, error) {
	var expense models.Expense
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		if err := validateExpenseRequest(t, req); err != nil {
			return models.Trip{}, err
		}
		expense = expenseFromRequest(utils.GenerateID(), req)
		t.Expenses = append(t.Expenses, expense)
		return t, nil
	})
	if err == repository.ErrNotFound {
		return models.Expense{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// UpdateExpense replaces an expense in place
func (s *ExpenseService) UpdateExpense(actor Actor, tripID, expenseID string, req *models.ExpenseRequest) (models.Expense, error) {
	var expense models.Expense
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		if err := validateExpenseRequest(t, req); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Expenses {
			if t.Expenses[i].ID == expenseID {
				expense = expenseFromRequest(expenseID, req)
				t.Expenses[i] = expense
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Expense")
	})
	if err == repository.ErrNotFound {
		return models.Expense{}, utils.NewNotFoundError("Trip")
	}
	if err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// RemoveExpense removes an expense from a trip
func (s *ExpenseService) RemoveExpense(actor Actor, tripID, expenseID string) error {
	_, err := s.trips.UpdateTrip(tripID, func(t models.Trip) (models.Trip, error) {
		if err := authorizeMutation(t, actor); err != nil {
			return models.Trip{}, err
		}
		for i := range t.Expenses {
			if t.Expenses[i].ID == expenseID {
				t.Expenses = append(t.Expenses[:i], t.Expenses[i+1:]...)
				return t, nil
			}
		}
		return models.Trip{}, utils.NewNotFoundError("Expense")
	})
	if err == repository.ErrNotFound {
		return utils.NewNotFoundError("Trip")
	}
	return err
}
