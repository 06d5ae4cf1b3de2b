package biztrack

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack-go/transport"
)

// InvoicesService calls the /invoices resource. Invoices are created by
// converting estimates; this service reads them and records payments.
type InvoicesService struct {
	core *transport.Core
}

// PaymentRequest records money received against an invoice.
type PaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// List returns all invoices.
func (s *InvoicesService) List(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	if err := s.core.Get(ctx, "/invoices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one invoice with its payments.
func (s *InvoicesService) Get(ctx context.Context, id int64) (*Invoice, error) {
	var out Invoice
	if err := s.core.Get(ctx, fmt.Sprintf("/invoices/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment registers a payment and returns the updated invoice; the
// backend flips the status to PAID once the balance reaches zero.
func (s *InvoicesService) RecordPayment(ctx context.Context, id int64, p PaymentRequest) (*Invoice, error) {
	var out Invoice
	if err := s.core.Post(ctx, fmt.Sprintf("/invoices/%d/payment", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
