package biztrack

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack-go/transport"
)

// ClientsService calls the /clients resource.
type ClientsService struct {
	core *transport.Core
}

// List returns all clients.
func (s *ClientsService) List(ctx context.Context) ([]ClientRecord, error) {
	var out []ClientRecord
	if err := s.core.Get(ctx, "/clients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a client and returns the stored record.
func (s *ClientsService) Create(ctx context.Context, c ClientRecord) (*ClientRecord, error) {
	var out ClientRecord
	if err := s.core.Post(ctx, "/clients", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one client by id.
func (s *ClientsService) Get(ctx context.Context, id int64) (*ClientRecord, error) {
	var out ClientRecord
	if err := s.core.Get(ctx, fmt.Sprintf("/clients/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a client's record.
func (s *ClientsService) Update(ctx context.Context, id int64, c ClientRecord) (*ClientRecord, error) {
	var out ClientRecord
	if err := s.core.Put(ctx, fmt.Sprintf("/clients/%d", id), c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a client.
func (s *ClientsService) Delete(ctx context.Context, id int64) error {
	return s.core.Delete(ctx, fmt.Sprintf("/clients/%d", id))
}
