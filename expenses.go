package biztrack

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack-go/transport"
)

// Expense categories the mobile client offered. The backend accepts free
// text; these are conveniences, not an enum.
const (
	ExpenseCategoryMaterials = "materials"
	ExpenseCategoryLabor     = "labor"
	ExpenseCategoryTransport = "transport"
	ExpenseCategoryOther     = "other"
)

// ExpensesService calls the /expenses resource.
type ExpensesService struct {
	core *transport.Core
}

// List returns all logged expenses.
func (s *ExpensesService) List(ctx context.Context) ([]Expense, error) {
	var out []Expense
	if err := s.core.Get(ctx, "/expenses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create logs an expense and returns the stored record.
func (s *ExpensesService) Create(ctx context.Context, e Expense) (*Expense, error) {
	var out Expense
	if err := s.core.Post(ctx, "/expenses", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a logged expense.
func (s *ExpensesService) Delete(ctx context.Context, id int64) error {
	return s.core.Delete(ctx, fmt.Sprintf("/expenses/%d", id))
}
