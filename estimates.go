package biztrack

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack-go/transport"
)

// EstimatesService calls the /estimates resource.
type EstimatesService struct {
	core *transport.Core
}

// List returns all estimates.
func (s *EstimatesService) List(ctx context.Context) ([]Estimate, error) {
	var out []Estimate
	if err := s.core.Get(ctx, "/estimates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a new estimate. Totals in e are whatever the caller
// computed for display; the backend recomputes and owns them.
func (s *EstimatesService) Create(ctx context.Context, e Estimate) (*Estimate, error) {
	var out Estimate
	if err := s.core.Post(ctx, "/estimates", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one estimate by id.
func (s *EstimatesService) Get(ctx context.Context, id int64) (*Estimate, error) {
	var out Estimate
	if err := s.core.Get(ctx, fmt.Sprintf("/estimates/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an estimate.
func (s *EstimatesService) Update(ctx context.Context, id int64, e Estimate) (*Estimate, error) {
	var out Estimate
	if err := s.core.Put(ctx, fmt.Sprintf("/estimates/%d", id), e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertToInvoice turns an accepted estimate into an invoice and returns
// the new invoice.
func (s *EstimatesService) ConvertToInvoice(ctx context.Context, id int64) (*Invoice, error) {
	var out Invoice
	if err := s.core.Post(ctx, fmt.Sprintf("/estimates/%d/convert", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
