package biztrack

import (
	"context"

	"github.com/biztrack/biztrack-go/transport"
)

// DashboardService fetches the authenticated landing summary.
type DashboardService struct {
	core *transport.Core
}

// Summary returns the financial overview and recent activity.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := s.core.Get(ctx, "/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
