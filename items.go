package biztrack

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack-go/transport"
)

// ItemsService calls the /items resource.
type ItemsService struct {
	core *transport.Core
}

// List returns the whole catalog.
func (s *ItemsService) List(ctx context.Context) ([]Item, error) {
	var out []Item
	if err := s.core.Get(ctx, "/items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds an item and returns the stored record.
func (s *ItemsService) Create(ctx context.Context, item Item) (*Item, error) {
	var out Item
	if err := s.core.Post(ctx, "/items", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one item by id.
func (s *ItemsService) Get(ctx context.Context, id int64) (*Item, error) {
	var out Item
	if err := s.core.Get(ctx, fmt.Sprintf("/items/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an item.
func (s *ItemsService) Update(ctx context.Context, id int64, item Item) (*Item, error) {
	var out Item
	if err := s.core.Put(ctx, fmt.Sprintf("/items/%d", id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an item from the catalog.
func (s *ItemsService) Delete(ctx context.Context, id int64) error {
	return s.core.Delete(ctx, fmt.Sprintf("/items/%d", id))
}
