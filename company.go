package biztrack

import (
	"context"

	"github.com/biztrack/biztrack-go/transport"
)

// CompanyService calls the singleton /company resource.
type CompanyService struct {
	core *transport.Core
}

// Get returns the business profile.
func (s *CompanyService) Get(ctx context.Context) (*Company, error) {
	var out Company
	if err := s.core.Get(ctx, "/company", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends the full profile. The whole record is persisted every time;
// partial updates are not part of the backend contract.
func (s *CompanyService) Update(ctx context.Context, c Company) (*Company, error) {
	var out Company
	if err := s.core.Put(ctx, "/company", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
